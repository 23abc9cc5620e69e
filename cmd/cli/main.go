package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "housetab-cli",
		Short: "HouseTab CLI tool",
		Long:  `A command line interface for the HouseTab shared household ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the HouseTab API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated requests")

	balancesCmd := &cobra.Command{
		Use:   "balances",
		Short: "Show shared totals and personal fund balances",
		Run: func(cmd *cobra.Command, args []string) {
			showBalances()
		},
	}

	var (
		txType   string
		paidBy   string
		fromDate string
		toDate   string
		page     int
		pageSize int
	)

	transactionsCmd := &cobra.Command{
		Use:   "transactions",
		Short: "List shared transactions",
		Run: func(cmd *cobra.Command, args []string) {
			listTransactions(txType, paidBy, fromDate, toDate, page, pageSize)
		},
	}
	transactionsCmd.Flags().StringVar(&txType, "type", "", "Filter by type (income or expense)")
	transactionsCmd.Flags().StringVar(&paidBy, "paid-by", "", "Filter by paying user ID")
	transactionsCmd.Flags().StringVar(&fromDate, "from", "", "Earliest date, inclusive (YYYY-MM-DD)")
	transactionsCmd.Flags().StringVar(&toDate, "to", "", "Latest date, inclusive (YYYY-MM-DD)")
	transactionsCmd.Flags().IntVar(&page, "page", 1, "Page number")
	transactionsCmd.Flags().IntVar(&pageSize, "page-size", 0, "Page size (0 for server default)")

	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "List household members",
		Run: func(cmd *cobra.Command, args []string) {
			listUsers()
		},
	}

	rootCmd.AddCommand(balancesCmd, transactionsCmd, usersCmd, hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Swappable for tests.
var bcryptGenerate = bcrypt.GenerateFromPassword

// hashPasswordCmd hashes a password for seeding household members.
func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Hash a password for inserting a household member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Println(string(hash))
			return nil
		},
	}
}

func apiGet(path string, query url.Values) []byte {
	u := baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	return body
}

func showBalances() {
	body := apiGet("/api/v1/balances", nil)

	var overview struct {
		TotalIncome   string `json:"total_income"`
		TotalExpense  string `json:"total_expense"`
		SharedBalance string `json:"shared_balance"`
		PersonalFunds []struct {
			Name    string `json:"name"`
			Balance string `json:"balance"`
		} `json:"personal_funds"`
	}
	if err := json.Unmarshal(body, &overview); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Shared balance: %s (income %s, expense %s)\n",
		overview.SharedBalance, overview.TotalIncome, overview.TotalExpense)
	fmt.Println("Personal funds:")
	for _, f := range overview.PersonalFunds {
		fmt.Printf("  %-20s %s\n", f.Name, f.Balance)
	}
}

func listTransactions(txType, paidBy, fromDate, toDate string, page, pageSize int) {
	query := url.Values{}
	if txType != "" {
		query.Set("type", txType)
	}
	if paidBy != "" {
		query.Set("paid_by_user_id", paidBy)
	}
	if fromDate != "" {
		query.Set("from", fromDate)
	}
	if toDate != "" {
		query.Set("to", toDate)
	}
	if page > 1 {
		query.Set("page", fmt.Sprintf("%d", page))
	}
	if pageSize > 0 {
		query.Set("page_size", fmt.Sprintf("%d", pageSize))
	}

	body := apiGet("/api/v1/transactions", query)

	var result struct {
		Items []struct {
			ID          string    `json:"id"`
			Type        string    `json:"type"`
			Amount      string    `json:"amount"`
			Description string    `json:"description"`
			OccurredAt  time.Time `json:"occurred_at"`
		} `json:"items"`
		Total int64 `json:"total"`
		Page  int   `json:"page"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Page %d (%d total)\n", result.Page, result.Total)
	for _, tx := range result.Items {
		fmt.Printf("  %s  %-7s %10s  %s\n",
			tx.OccurredAt.Format("2006-01-02 15:04"), tx.Type, tx.Amount, tx.Description)
	}
}

func listUsers() {
	body := apiGet("/api/v1/users", nil)

	var users []struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &users); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	for _, u := range users {
		fmt.Printf("%-28s %-20s %s\n", u.ID, u.Name, u.Email)
	}
}

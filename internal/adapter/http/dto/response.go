package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/housetab/housetab/internal/domain"
)

// TransactionResponse represents a shared transaction in API responses.
type TransactionResponse struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	PaidByUserID    string          `json:"paid_by_user_id"`
	Description     string          `json:"description,omitempty"`
	OccurredAt      time.Time       `json:"occurred_at"`
	CreatedByUserID string          `json:"created_by_user_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:              t.ID,
		Type:            string(t.Type),
		Amount:          t.Amount,
		PaidByUserID:    t.PaidByUserID,
		Description:     t.Description,
		OccurredAt:      t.OccurredAt,
		CreatedByUserID: t.CreatedByUserID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ListTransactionsResponse is one page of transactions.
type ListTransactionsResponse struct {
	Items    []*TransactionResponse `json:"items"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// FundEntryResponse represents a personal fund entry in API responses.
type FundEntryResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Direction       string          `json:"direction"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	OccurredAt      time.Time       `json:"occurred_at"`
	CreatedByUserID string          `json:"created_by_user_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// FundEntryFromDomain converts a domain fund entry to a response.
func FundEntryFromDomain(e *domain.PersonalFundEntry) *FundEntryResponse {
	return &FundEntryResponse{
		ID:              e.ID,
		UserID:          e.UserID,
		Direction:       string(e.Direction),
		Amount:          e.Amount,
		Description:     e.Description,
		OccurredAt:      e.OccurredAt,
		CreatedByUserID: e.CreatedByUserID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// FundEntriesFromDomain converts domain fund entries to responses.
func FundEntriesFromDomain(entries []*domain.PersonalFundEntry) []*FundEntryResponse {
	result := make([]*FundEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = FundEntryFromDomain(e)
	}
	return result
}

// ListFundEntriesResponse is one page of fund entries.
type ListFundEntriesResponse struct {
	Items    []*FundEntryResponse `json:"items"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// UserResponse represents a household member in API responses.
// The password hash never leaves the server.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// UsersFromDomain converts domain users to responses.
func UsersFromDomain(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, len(users))
	for i, u := range users {
		result[i] = UserFromDomain(u)
	}
	return result
}

// PersonalBalanceResponse is one user's fund position.
type PersonalBalanceResponse struct {
	UserID  string          `json:"user_id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// BalanceOverviewResponse is the dashboard aggregate.
type BalanceOverviewResponse struct {
	TotalIncome        decimal.Decimal           `json:"total_income"`
	TotalExpense       decimal.Decimal           `json:"total_expense"`
	SharedBalance      decimal.Decimal           `json:"shared_balance"`
	PersonalFunds      []PersonalBalanceResponse `json:"personal_funds"`
	RecentTransactions []*TransactionResponse    `json:"recent_transactions"`
}

// BalanceOverviewFromDomain converts a domain overview to a response.
func BalanceOverviewFromDomain(o *domain.BalanceOverview) *BalanceOverviewResponse {
	funds := make([]PersonalBalanceResponse, len(o.PersonalFunds))
	for i, f := range o.PersonalFunds {
		funds[i] = PersonalBalanceResponse{
			UserID:  f.UserID,
			Name:    f.Name,
			Balance: f.Balance,
		}
	}

	return &BalanceOverviewResponse{
		TotalIncome:        o.TotalIncome,
		TotalExpense:       o.TotalExpense,
		SharedBalance:      o.SharedBalance,
		PersonalFunds:      funds,
		RecentTransactions: TransactionsFromDomain(o.RecentTransactions),
	}
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ErrorResponse represents an error in API responses. Field is set for
// validation failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}

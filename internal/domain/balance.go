package domain

import "github.com/shopspring/decimal"

// PersonalBalance is one user's personal fund position:
// sum of credits minus sum of debits. Users with no entries carry 0.
type PersonalBalance struct {
	UserID  string
	Name    string
	Balance decimal.Decimal
}

// BalanceOverview aggregates the current ledger state for the dashboard.
// It is recomputed from the store on every read.
type BalanceOverview struct {
	TotalIncome        decimal.Decimal
	TotalExpense       decimal.Decimal
	SharedBalance      decimal.Decimal
	PersonalFunds      []PersonalBalance
	RecentTransactions []*Transaction
}

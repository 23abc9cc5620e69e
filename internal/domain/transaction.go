package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a shared transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the defined enum values.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a shared income or expense record.
// Amount is always strictly positive; the sign is carried by Type.
type Transaction struct {
	ID              string
	Type            TransactionType
	Amount          decimal.Decimal
	PaidByUserID    string
	Description     string
	OccurredAt      time.Time
	CreatedByUserID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SignedAmount returns the transaction's contribution to the shared balance.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionFilter holds optional list criteria, AND-combined.
// Zero values impose no constraint. From and To are compared at day
// granularity, inclusive on both ends.
type TransactionFilter struct {
	Type         TransactionType
	PaidByUserID string
	From         *time.Time
	To           *time.Time
}

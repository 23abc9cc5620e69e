package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundDirection classifies a personal fund entry.
type FundDirection string

const (
	FundDirectionCredit FundDirection = "credit"
	FundDirectionDebit  FundDirection = "debit"
)

// Valid reports whether the direction is one of the defined enum values.
func (d FundDirection) Valid() bool {
	return d == FundDirectionCredit || d == FundDirectionDebit
}

// PersonalFundEntry represents a credit or debit against one user's
// personal fund. Amount is always strictly positive.
type PersonalFundEntry struct {
	ID              string
	UserID          string
	Direction       FundDirection
	Amount          decimal.Decimal
	Description     string
	OccurredAt      time.Time
	CreatedByUserID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SignedAmount returns the entry's contribution to the owner's balance.
func (e *PersonalFundEntry) SignedAmount() decimal.Decimal {
	if e.Direction == FundDirectionDebit {
		return e.Amount.Neg()
	}
	return e.Amount
}

// FundEntryFilter holds optional list criteria for personal fund entries.
type FundEntryFilter struct {
	Direction FundDirection
	UserID    string
	From      *time.Time
	To        *time.Time
}

package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MinEntryAmount       = "0.01"
	MaxEntryAmount       = "9999999999.99" // NUMERIC(12,2)
	MaxDescriptionLength = 1000
)

// Accepted formats for user-supplied occurred-at values. The short form
// matches what datetime-local form inputs submit.
var occurredAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseAmount parses and validates a user-supplied amount for the given
// field. The value must be numeric and at least MinEntryAmount; it is
// rounded to scale 2 before storage.
func ParseAmount(field, value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, NewValidationError(field, "amount is required")
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, NewValidationError(field, "amount must be numeric")
	}

	minAmount, _ := decimal.NewFromString(MinEntryAmount)
	if d.LessThan(minAmount) {
		return decimal.Zero, NewValidationError(field, fmt.Sprintf("amount must be at least %s", MinEntryAmount))
	}

	maxAmount, _ := decimal.NewFromString(MaxEntryAmount)
	if d.GreaterThan(maxAmount) {
		return decimal.Zero, NewValidationError(field, fmt.Sprintf("amount must not exceed %s", MaxEntryAmount))
	}

	return d.Round(2), nil
}

// ValidateAmount checks an already-parsed amount against the same bounds.
func ValidateAmount(field string, d decimal.Decimal) error {
	minAmount, _ := decimal.NewFromString(MinEntryAmount)
	if d.LessThan(minAmount) {
		return NewValidationError(field, fmt.Sprintf("amount must be at least %s", MinEntryAmount))
	}

	maxAmount, _ := decimal.NewFromString(MaxEntryAmount)
	if d.GreaterThan(maxAmount) {
		return NewValidationError(field, fmt.Sprintf("amount must not exceed %s", MaxEntryAmount))
	}

	return nil
}

// ValidateDescription checks the optional description length.
func ValidateDescription(field, value string) error {
	if len(value) > MaxDescriptionLength {
		return NewValidationError(field, fmt.Sprintf("description exceeds %d characters", MaxDescriptionLength))
	}
	return nil
}

// ValidateTransactionType checks the type enum.
func ValidateTransactionType(t TransactionType) error {
	if !t.Valid() {
		return NewValidationError("type", "type must be income or expense")
	}
	return nil
}

// ValidateFundDirection checks the direction enum.
func ValidateFundDirection(d FundDirection) error {
	if !d.Valid() {
		return NewValidationError("direction", "direction must be credit or debit")
	}
	return nil
}

// ParseOccurredAt parses a required user-supplied date/time value.
func ParseOccurredAt(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, NewValidationError(field, "date/time is required")
	}

	for _, layout := range occurredAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, NewValidationError(field, "date/time is not valid")
}

package domain

import (
	"errors"
	"fmt"
)

var (
	// Ledger errors
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrFundEntryNotFound   = errors.New("personal fund entry not found")
	ErrUserNotFound        = errors.New("user not found")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
)

// ValidationError reports a single field-level constraint violation.
// An operation that returns one has persisted nothing.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError for a field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

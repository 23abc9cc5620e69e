package dto

import (
	"github.com/housetab/housetab/internal/domain"
	"github.com/housetab/housetab/internal/usecase"
)

// TransactionRequest carries the writable fields of a shared
// transaction. Amount and occurred_at arrive as strings and are
// validated during conversion, so a malformed value surfaces as a
// field-level validation error rather than a decode failure.
type TransactionRequest struct {
	Type         string `json:"type"`
	Amount       string `json:"amount"`
	PaidByUserID string `json:"paid_by_user_id"`
	Description  string `json:"description"`
	OccurredAt   string `json:"occurred_at"`
}

// ToCreateInput converts to use case input for the acting user.
func (r *TransactionRequest) ToCreateInput(actorID string) (usecase.CreateTransactionInput, error) {
	amount, err := domain.ParseAmount("amount", r.Amount)
	if err != nil {
		return usecase.CreateTransactionInput{}, err
	}

	occurredAt, err := domain.ParseOccurredAt("occurred_at", r.OccurredAt)
	if err != nil {
		return usecase.CreateTransactionInput{}, err
	}

	return usecase.CreateTransactionInput{
		Type:         domain.TransactionType(r.Type),
		Amount:       amount,
		PaidByUserID: r.PaidByUserID,
		Description:  r.Description,
		OccurredAt:   occurredAt,
		ActorID:      actorID,
	}, nil
}

// ToUpdateInput converts to use case input for an existing record.
func (r *TransactionRequest) ToUpdateInput(id, actorID string) (usecase.UpdateTransactionInput, error) {
	input, err := r.ToCreateInput(actorID)
	if err != nil {
		return usecase.UpdateTransactionInput{}, err
	}

	return usecase.UpdateTransactionInput{
		ID:           id,
		Type:         input.Type,
		Amount:       input.Amount,
		PaidByUserID: input.PaidByUserID,
		Description:  input.Description,
		OccurredAt:   input.OccurredAt,
		ActorID:      actorID,
	}, nil
}

// FundEntryRequest carries the writable fields of a personal fund entry.
type FundEntryRequest struct {
	UserID      string `json:"user_id"`
	Direction   string `json:"direction"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	OccurredAt  string `json:"occurred_at"`
}

// ToCreateInput converts to use case input for the acting user.
func (r *FundEntryRequest) ToCreateInput(actorID string) (usecase.CreateFundEntryInput, error) {
	amount, err := domain.ParseAmount("amount", r.Amount)
	if err != nil {
		return usecase.CreateFundEntryInput{}, err
	}

	occurredAt, err := domain.ParseOccurredAt("occurred_at", r.OccurredAt)
	if err != nil {
		return usecase.CreateFundEntryInput{}, err
	}

	return usecase.CreateFundEntryInput{
		UserID:      r.UserID,
		Direction:   domain.FundDirection(r.Direction),
		Amount:      amount,
		Description: r.Description,
		OccurredAt:  occurredAt,
		ActorID:     actorID,
	}, nil
}

// ToUpdateInput converts to use case input for an existing record.
func (r *FundEntryRequest) ToUpdateInput(id, actorID string) (usecase.UpdateFundEntryInput, error) {
	input, err := r.ToCreateInput(actorID)
	if err != nil {
		return usecase.UpdateFundEntryInput{}, err
	}

	return usecase.UpdateFundEntryInput{
		ID:          id,
		UserID:      input.UserID,
		Direction:   input.Direction,
		Amount:      input.Amount,
		Description: input.Description,
		OccurredAt:  input.OccurredAt,
		ActorID:     actorID,
	}, nil
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

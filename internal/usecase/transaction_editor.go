package usecase

import (
	"context"
	"time"

	"github.com/housetab/housetab/internal/domain"
)

// occurredAtFormLayout matches what datetime-local inputs submit.
const occurredAtFormLayout = "2006-01-02T15:04"

// TransactionService defines the behavior needed by TransactionEditor.
type TransactionService interface {
	Get(ctx context.Context, id string) (*domain.Transaction, error)
	Create(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error)
	Update(ctx context.Context, input UpdateTransactionInput) (*domain.Transaction, error)
	Delete(ctx context.Context, id, actorID string) error
}

// TransactionEditor holds the form state for the transaction CRUD
// panel. It has two states: creating (EditingID empty) and editing
// (EditingID bound to an existing record). Each instance is request
// scoped; there is no ambient mutable state.
type TransactionEditor struct {
	svc          TransactionService
	actingUserID string

	EditingID    string
	Type         domain.TransactionType
	Amount       string
	PaidByUserID string
	Description  string
	OccurredAt   string

	now func() time.Time
}

// NewTransactionEditor creates an editor for the acting user, in the
// creating state with default field values.
func NewTransactionEditor(svc TransactionService, actingUserID string) *TransactionEditor {
	e := &TransactionEditor{
		svc:          svc,
		actingUserID: actingUserID,
		now:          func() time.Time { return time.Now().UTC() },
	}
	e.Reset()

	return e
}

// Editing reports whether an existing record is bound.
func (e *TransactionEditor) Editing() bool {
	return e.EditingID != ""
}

// StartEdit loads an existing transaction into the form and binds its
// identifier. Fails with ErrTransactionNotFound if the ID is absent.
func (e *TransactionEditor) StartEdit(ctx context.Context, id string) error {
	tx, err := e.svc.Get(ctx, id)
	if err != nil {
		return err
	}

	e.EditingID = tx.ID
	e.Type = tx.Type
	e.Amount = tx.Amount.StringFixed(2)
	e.PaidByUserID = tx.PaidByUserID
	e.Description = tx.Description
	e.OccurredAt = tx.OccurredAt.Format(occurredAtFormLayout)

	return nil
}

// Save validates the current field values and either creates a new
// transaction (stamping the acting user as creator) or updates the
// bound one (creator unchanged). On success the form resets to the
// creating state. A validation failure persists nothing.
func (e *TransactionEditor) Save(ctx context.Context) (*domain.Transaction, error) {
	amount, err := domain.ParseAmount("amount", e.Amount)
	if err != nil {
		return nil, err
	}

	occurredAt, err := domain.ParseOccurredAt("occurred_at", e.OccurredAt)
	if err != nil {
		return nil, err
	}

	var tx *domain.Transaction
	if e.Editing() {
		tx, err = e.svc.Update(ctx, UpdateTransactionInput{
			ID:           e.EditingID,
			Type:         e.Type,
			Amount:       amount,
			PaidByUserID: e.PaidByUserID,
			Description:  e.Description,
			OccurredAt:   occurredAt,
			ActorID:      e.actingUserID,
		})
	} else {
		tx, err = e.svc.Create(ctx, CreateTransactionInput{
			Type:         e.Type,
			Amount:       amount,
			PaidByUserID: e.PaidByUserID,
			Description:  e.Description,
			OccurredAt:   occurredAt,
			ActorID:      e.actingUserID,
		})
	}
	if err != nil {
		return nil, err
	}

	e.Reset()

	return tx, nil
}

// Delete removes a transaction. If the bound record was deleted, the
// form resets to the creating state.
func (e *TransactionEditor) Delete(ctx context.Context, id string) error {
	if err := e.svc.Delete(ctx, id, e.actingUserID); err != nil {
		return err
	}

	if e.EditingID == id {
		e.Reset()
	}

	return nil
}

// Cancel resets to the creating state without persisting.
func (e *TransactionEditor) Cancel() {
	e.Reset()
}

// Reset restores the creating state defaults: expense, payer set to
// the acting user, occurred-at set to now, everything else cleared.
func (e *TransactionEditor) Reset() {
	e.EditingID = ""
	e.Type = domain.TransactionTypeExpense
	e.Amount = ""
	e.PaidByUserID = e.actingUserID
	e.Description = ""
	e.OccurredAt = e.now().Format(occurredAtFormLayout)
}

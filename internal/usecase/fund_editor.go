package usecase

import (
	"context"
	"time"

	"github.com/housetab/housetab/internal/domain"
)

// FundService defines the behavior needed by FundEditor.
type FundService interface {
	Get(ctx context.Context, id string) (*domain.PersonalFundEntry, error)
	Create(ctx context.Context, input CreateFundEntryInput) (*domain.PersonalFundEntry, error)
	Update(ctx context.Context, input UpdateFundEntryInput) (*domain.PersonalFundEntry, error)
	Delete(ctx context.Context, id, actorID string) error
}

// FundEditor holds the form state for the personal funds CRUD panel.
// Same two-state machine as TransactionEditor: creating while
// EditingID is empty, editing once bound.
type FundEditor struct {
	svc          FundService
	actingUserID string

	EditingID   string
	UserID      string
	Direction   domain.FundDirection
	Amount      string
	Description string
	OccurredAt  string

	now func() time.Time
}

// NewFundEditor creates an editor for the acting user, in the creating
// state with default field values.
func NewFundEditor(svc FundService, actingUserID string) *FundEditor {
	e := &FundEditor{
		svc:          svc,
		actingUserID: actingUserID,
		now:          func() time.Time { return time.Now().UTC() },
	}
	e.Reset()

	return e
}

// Editing reports whether an existing record is bound.
func (e *FundEditor) Editing() bool {
	return e.EditingID != ""
}

// StartEdit loads an existing entry into the form and binds its
// identifier. Fails with ErrFundEntryNotFound if the ID is absent.
func (e *FundEditor) StartEdit(ctx context.Context, id string) error {
	entry, err := e.svc.Get(ctx, id)
	if err != nil {
		return err
	}

	e.EditingID = entry.ID
	e.UserID = entry.UserID
	e.Direction = entry.Direction
	e.Amount = entry.Amount.StringFixed(2)
	e.Description = entry.Description
	e.OccurredAt = entry.OccurredAt.Format(occurredAtFormLayout)

	return nil
}

// Save validates the current field values and either creates a new
// entry or updates the bound one. On success the form resets to the
// creating state. A validation failure persists nothing.
func (e *FundEditor) Save(ctx context.Context) (*domain.PersonalFundEntry, error) {
	amount, err := domain.ParseAmount("amount", e.Amount)
	if err != nil {
		return nil, err
	}

	occurredAt, err := domain.ParseOccurredAt("occurred_at", e.OccurredAt)
	if err != nil {
		return nil, err
	}

	var entry *domain.PersonalFundEntry
	if e.Editing() {
		entry, err = e.svc.Update(ctx, UpdateFundEntryInput{
			ID:          e.EditingID,
			UserID:      e.UserID,
			Direction:   e.Direction,
			Amount:      amount,
			Description: e.Description,
			OccurredAt:  occurredAt,
			ActorID:     e.actingUserID,
		})
	} else {
		entry, err = e.svc.Create(ctx, CreateFundEntryInput{
			UserID:      e.UserID,
			Direction:   e.Direction,
			Amount:      amount,
			Description: e.Description,
			OccurredAt:  occurredAt,
			ActorID:     e.actingUserID,
		})
	}
	if err != nil {
		return nil, err
	}

	e.Reset()

	return entry, nil
}

// Delete removes an entry. If the bound record was deleted, the form
// resets to the creating state.
func (e *FundEditor) Delete(ctx context.Context, id string) error {
	if err := e.svc.Delete(ctx, id, e.actingUserID); err != nil {
		return err
	}

	if e.EditingID == id {
		e.Reset()
	}

	return nil
}

// Cancel resets to the creating state without persisting.
func (e *FundEditor) Cancel() {
	e.Reset()
}

// Reset restores the creating state defaults: credit, fund owner set
// to the acting user, occurred-at set to now, everything else cleared.
func (e *FundEditor) Reset() {
	e.EditingID = ""
	e.UserID = e.actingUserID
	e.Direction = domain.FundDirectionCredit
	e.Amount = ""
	e.Description = ""
	e.OccurredAt = e.now().Format(occurredAtFormLayout)
}

package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/housetab/housetab/internal/domain"
)

// FundUseCase handles personal fund entry business logic.
type FundUseCase struct {
	fundRepo FundEntryRepository
	userRepo UserRepository
	idGen    IDGenerator
	notifier ChangeNotifier
}

// NewFundUseCase creates a new FundUseCase.
func NewFundUseCase(fundRepo FundEntryRepository, userRepo UserRepository, idGen IDGenerator, notifier ChangeNotifier) *FundUseCase {
	return &FundUseCase{
		fundRepo: fundRepo,
		userRepo: userRepo,
		idGen:    idGen,
		notifier: notifier,
	}
}

// CreateFundEntryInput represents input for creating a fund entry.
type CreateFundEntryInput struct {
	UserID      string
	Direction   domain.FundDirection
	Amount      decimal.Decimal
	Description string
	OccurredAt  time.Time
	ActorID     string
}

// UpdateFundEntryInput represents input for updating a fund entry.
type UpdateFundEntryInput struct {
	ID          string
	UserID      string
	Direction   domain.FundDirection
	Amount      decimal.Decimal
	Description string
	OccurredAt  time.Time
	ActorID     string
}

// Create validates and persists a new fund entry, stamping the acting
// user as its creator.
func (uc *FundUseCase) Create(ctx context.Context, input CreateFundEntryInput) (*domain.PersonalFundEntry, error) {
	if err := uc.validate(ctx, input.Direction, input.Amount, input.UserID, input.Description, input.OccurredAt); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &domain.PersonalFundEntry{
		ID:              uc.idGen.Generate(),
		UserID:          input.UserID,
		Direction:       input.Direction,
		Amount:          input.Amount.Round(2),
		Description:     input.Description,
		OccurredAt:      input.OccurredAt,
		CreatedByUserID: input.ActorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.fundRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	uc.notify(ctx, domain.ActionCreated, entry.ID, input.ActorID)

	return entry, nil
}

// Update validates and applies changes to an existing fund entry,
// leaving created_by untouched.
func (uc *FundUseCase) Update(ctx context.Context, input UpdateFundEntryInput) (*domain.PersonalFundEntry, error) {
	if err := uc.validate(ctx, input.Direction, input.Amount, input.UserID, input.Description, input.OccurredAt); err != nil {
		return nil, err
	}

	entry, err := uc.fundRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	entry.UserID = input.UserID
	entry.Direction = input.Direction
	entry.Amount = input.Amount.Round(2)
	entry.Description = input.Description
	entry.OccurredAt = input.OccurredAt
	entry.UpdatedAt = time.Now().UTC()

	if err := uc.fundRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	uc.notify(ctx, domain.ActionUpdated, entry.ID, input.ActorID)

	return entry, nil
}

// Get retrieves a fund entry by ID.
func (uc *FundUseCase) Get(ctx context.Context, id string) (*domain.PersonalFundEntry, error) {
	return uc.fundRepo.GetByID(ctx, id)
}

// Delete removes a fund entry. Hard delete, no undo.
func (uc *FundUseCase) Delete(ctx context.Context, id, actorID string) error {
	if err := uc.fundRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.notify(ctx, domain.ActionDeleted, id, actorID)

	return nil
}

// ListFundEntriesInput represents input for listing fund entries.
type ListFundEntriesInput struct {
	Filter   domain.FundEntryFilter
	Page     int
	PageSize int
}

// FundEntryPage is one page of matching entries plus the total match
// count across all pages.
type FundEntryPage struct {
	Items      []*domain.PersonalFundEntry
	TotalCount int64
	Page       int
	PageSize   int
}

// List returns a filtered, paginated page ordered by occurred_at
// descending, ties broken by ID descending.
func (uc *FundUseCase) List(ctx context.Context, input ListFundEntriesInput) (*FundEntryPage, error) {
	page, size := normalizePage(input.Page, input.PageSize)

	items, total, err := uc.fundRepo.List(ctx, input.Filter, size, (page-1)*size)
	if err != nil {
		return nil, err
	}

	return &FundEntryPage{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   size,
	}, nil
}

func (uc *FundUseCase) validate(ctx context.Context, direction domain.FundDirection, amount decimal.Decimal, userID, description string, occurredAt time.Time) error {
	if err := domain.ValidateFundDirection(direction); err != nil {
		return err
	}
	if err := domain.ValidateAmount("amount", amount); err != nil {
		return err
	}
	if err := domain.ValidateDescription("description", description); err != nil {
		return err
	}
	if occurredAt.IsZero() {
		return domain.NewValidationError("occurred_at", "date/time is required")
	}
	if userID == "" {
		return domain.NewValidationError("user_id", "fund owner is required")
	}

	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.NewValidationError("user_id", "fund owner does not exist")
		}
		return err
	}

	return nil
}

func (uc *FundUseCase) notify(ctx context.Context, action, recordID, actorID string) {
	if uc.notifier == nil {
		return
	}

	uc.notifier.Notify(ctx, domain.ChangeEvent{
		ID:         uuid.New().String(),
		Entity:     domain.EntityFundEntry,
		Action:     action,
		RecordID:   recordID,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	})
}

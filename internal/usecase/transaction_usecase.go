package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/housetab/housetab/internal/domain"
)

// TransactionUseCase handles shared transaction business logic.
type TransactionUseCase struct {
	txRepo   TransactionRepository
	userRepo UserRepository
	idGen    IDGenerator
	notifier ChangeNotifier
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(txRepo TransactionRepository, userRepo UserRepository, idGen IDGenerator, notifier ChangeNotifier) *TransactionUseCase {
	return &TransactionUseCase{
		txRepo:   txRepo,
		userRepo: userRepo,
		idGen:    idGen,
		notifier: notifier,
	}
}

// CreateTransactionInput represents input for creating a transaction.
type CreateTransactionInput struct {
	Type         domain.TransactionType
	Amount       decimal.Decimal
	PaidByUserID string
	Description  string
	OccurredAt   time.Time
	ActorID      string
}

// UpdateTransactionInput represents input for updating a transaction.
// Only the scalar fields are mutable; the creator never changes.
type UpdateTransactionInput struct {
	ID           string
	Type         domain.TransactionType
	Amount       decimal.Decimal
	PaidByUserID string
	Description  string
	OccurredAt   time.Time
	ActorID      string
}

// Create validates and persists a new transaction, stamping the acting
// user as its creator.
func (uc *TransactionUseCase) Create(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	if err := uc.validate(ctx, input.Type, input.Amount, input.PaidByUserID, input.Description, input.OccurredAt); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tx := &domain.Transaction{
		ID:              uc.idGen.Generate(),
		Type:            input.Type,
		Amount:          input.Amount.Round(2),
		PaidByUserID:    input.PaidByUserID,
		Description:     input.Description,
		OccurredAt:      input.OccurredAt,
		CreatedByUserID: input.ActorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	uc.notify(ctx, domain.ActionCreated, tx.ID, input.ActorID)

	return tx, nil
}

// Update validates and applies changes to an existing transaction,
// leaving created_by untouched.
func (uc *TransactionUseCase) Update(ctx context.Context, input UpdateTransactionInput) (*domain.Transaction, error) {
	if err := uc.validate(ctx, input.Type, input.Amount, input.PaidByUserID, input.Description, input.OccurredAt); err != nil {
		return nil, err
	}

	tx, err := uc.txRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	tx.Type = input.Type
	tx.Amount = input.Amount.Round(2)
	tx.PaidByUserID = input.PaidByUserID
	tx.Description = input.Description
	tx.OccurredAt = input.OccurredAt
	tx.UpdatedAt = time.Now().UTC()

	if err := uc.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}

	uc.notify(ctx, domain.ActionUpdated, tx.ID, input.ActorID)

	return tx, nil
}

// Get retrieves a transaction by ID.
func (uc *TransactionUseCase) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.txRepo.GetByID(ctx, id)
}

// Delete removes a transaction. Hard delete, no undo.
func (uc *TransactionUseCase) Delete(ctx context.Context, id, actorID string) error {
	if err := uc.txRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.notify(ctx, domain.ActionDeleted, id, actorID)

	return nil
}

// ListTransactionsInput represents input for listing transactions.
type ListTransactionsInput struct {
	Filter   domain.TransactionFilter
	Page     int
	PageSize int
}

// TransactionPage is one page of matching transactions plus the total
// match count across all pages.
type TransactionPage struct {
	Items      []*domain.Transaction
	TotalCount int64
	Page       int
	PageSize   int
}

// List returns a filtered, paginated page ordered by occurred_at
// descending, ties broken by ID descending.
func (uc *TransactionUseCase) List(ctx context.Context, input ListTransactionsInput) (*TransactionPage, error) {
	page, size := normalizePage(input.Page, input.PageSize)

	items, total, err := uc.txRepo.List(ctx, input.Filter, size, (page-1)*size)
	if err != nil {
		return nil, err
	}

	return &TransactionPage{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   size,
	}, nil
}

func (uc *TransactionUseCase) validate(ctx context.Context, typ domain.TransactionType, amount decimal.Decimal, paidBy, description string, occurredAt time.Time) error {
	if err := domain.ValidateTransactionType(typ); err != nil {
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
	if paidBy == "" {
		return domain.NewValidationError("paid_by_user_id", "payer is required")
	}

	// Referential failures surface as validation errors on the field.
	if _, err := uc.userRepo.GetByID(ctx, paidBy); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.NewValidationError("paid_by_user_id", "payer does not exist")
		}
		return err
	}

	return nil
}

func (uc *TransactionUseCase) notify(ctx context.Context, action, recordID, actorID string) {
	if uc.notifier == nil {
		return
	}

	uc.notifier.Notify(ctx, domain.ChangeEvent{
		ID:         uuid.New().String(),
		Entity:     domain.EntityTransaction,
		Action:     action,
		RecordID:   recordID,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	})
}

// normalizePage clamps page and page size to the supported range.
func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

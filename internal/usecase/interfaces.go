package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/housetab/housetab/internal/domain"
)

// TransactionRepository defines data access for shared transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]*domain.Transaction, int64, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Transaction, error)
}

// FundEntryRepository defines data access for personal fund entries.
type FundEntryRepository interface {
	Create(ctx context.Context, entry *domain.PersonalFundEntry) error
	GetByID(ctx context.Context, id string) (*domain.PersonalFundEntry, error)
	Update(ctx context.Context, entry *domain.PersonalFundEntry) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.FundEntryFilter, limit, offset int) ([]*domain.PersonalFundEntry, int64, error)
}

// UserRepository defines read access to household members. The ledger
// never mutates users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// BalanceRepository defines the ledger-wide aggregation queries.
type BalanceRepository interface {
	SharedTotals(ctx context.Context) (income, expense decimal.Decimal, err error)
	PersonalBalances(ctx context.Context) ([]domain.PersonalBalance, error)
}

// IDGenerator generates unique record IDs.
type IDGenerator interface {
	Generate() string
}

// ChangeNotifier tells read-only views that ledger data changed.
// Delivery is advisory.
type ChangeNotifier interface {
	Notify(ctx context.Context, event domain.ChangeEvent)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

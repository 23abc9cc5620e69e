package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/housetab/housetab/internal/domain"
)

// dayStart mirrors the repository's day-granularity range bounds.
func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MockTransactionRepository is an in-memory mock of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction

	CreateFunc  func(ctx context.Context, tx *domain.Transaction) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Transaction, error)
	UpdateFunc  func(ctx context.Context, tx *domain.Transaction) error
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]*domain.Transaction, int64, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[string]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *tx
	m.transactions[tx.ID] = &cp
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if tx, ok := m.transactions[id]; ok {
		cp := *tx
		return &cp, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[tx.ID]; !ok {
		return domain.ErrTransactionNotFound
	}
	cp := *tx
	m.transactions[tx.ID] = &cp
	return nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.transactions, id)
	return nil
}

func (m *MockTransactionRepository) List(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]*domain.Transaction, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []*domain.Transaction
	for _, tx := range m.transactions {
		if matchesTransactionFilter(tx, filter) {
			cp := *tx
			matched = append(matched, &cp)
		}
	}
	sortByOccurredAtDesc(matched)

	total := int64(len(matched))
	return pageOf(matched, limit, offset), total, nil
}

func (m *MockTransactionRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Transaction, error) {
	items, _, err := m.List(ctx, domain.TransactionFilter{}, limit, 0)
	return items, err
}

func matchesTransactionFilter(tx *domain.Transaction, filter domain.TransactionFilter) bool {
	if filter.Type != "" && tx.Type != filter.Type {
		return false
	}
	if filter.PaidByUserID != "" && tx.PaidByUserID != filter.PaidByUserID {
		return false
	}
	if filter.From != nil && tx.OccurredAt.Before(dayStart(*filter.From)) {
		return false
	}
	if filter.To != nil && !tx.OccurredAt.Before(dayStart(*filter.To).AddDate(0, 0, 1)) {
		return false
	}
	return true
}

func sortByOccurredAtDesc(items []*domain.Transaction) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].OccurredAt.Equal(items[j].OccurredAt) {
			return items[i].OccurredAt.After(items[j].OccurredAt)
		}
		return items[i].ID > items[j].ID
	})
}

func pageOf[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// MockFundEntryRepository is an in-memory mock of FundEntryRepository.
type MockFundEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.PersonalFundEntry

	CreateFunc  func(ctx context.Context, entry *domain.PersonalFundEntry) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.PersonalFundEntry, error)
	UpdateFunc  func(ctx context.Context, entry *domain.PersonalFundEntry) error
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context, filter domain.FundEntryFilter, limit, offset int) ([]*domain.PersonalFundEntry, int64, error)
}

func NewMockFundEntryRepository() *MockFundEntryRepository {
	return &MockFundEntryRepository{
		entries: make(map[string]*domain.PersonalFundEntry),
	}
}

func (m *MockFundEntryRepository) Create(ctx context.Context, entry *domain.PersonalFundEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *entry
	m.entries[entry.ID] = &cp
	return nil
}

func (m *MockFundEntryRepository) GetByID(ctx context.Context, id string) (*domain.PersonalFundEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if entry, ok := m.entries[id]; ok {
		cp := *entry
		return &cp, nil
	}
	return nil, domain.ErrFundEntryNotFound
}

func (m *MockFundEntryRepository) Update(ctx context.Context, entry *domain.PersonalFundEntry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[entry.ID]; !ok {
		return domain.ErrFundEntryNotFound
	}
	cp := *entry
	m.entries[entry.ID] = &cp
	return nil
}

func (m *MockFundEntryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return domain.ErrFundEntryNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *MockFundEntryRepository) List(ctx context.Context, filter domain.FundEntryFilter, limit, offset int) ([]*domain.PersonalFundEntry, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []*domain.PersonalFundEntry
	for _, entry := range m.entries {
		if matchesFundFilter(entry, filter) {
			cp := *entry
			matched = append(matched, &cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].OccurredAt.Equal(matched[j].OccurredAt) {
			return matched[i].OccurredAt.After(matched[j].OccurredAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	return pageOf(matched, limit, offset), total, nil
}

func matchesFundFilter(entry *domain.PersonalFundEntry, filter domain.FundEntryFilter) bool {
	if filter.Direction != "" && entry.Direction != filter.Direction {
		return false
	}
	if filter.UserID != "" && entry.UserID != filter.UserID {
		return false
	}
	if filter.From != nil && entry.OccurredAt.Before(dayStart(*filter.From)) {
		return false
	}
	if filter.To != nil && !entry.OccurredAt.Before(dayStart(*filter.To).AddDate(0, 0, 1)) {
		return false
	}
	return true
}

// MockUserRepository is an in-memory mock of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	ListFunc       func(ctx context.Context) ([]*domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

// Add seeds a user. The repository interface itself is read-only.
func (m *MockUserRepository) Add(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	users := make([]*domain.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

// allRecords is a page size large enough to read a whole mock store.
const allRecords = 1 << 20

// InMemoryBalanceRepository implements BalanceRepository over the
// transaction and fund entry mocks, recomputing aggregates from the
// stored records on every call like the SQL repository does from the
// base tables.
type InMemoryBalanceRepository struct {
	Transactions *MockTransactionRepository
	FundEntries  *MockFundEntryRepository
	Users        *MockUserRepository
}

func NewInMemoryBalanceRepository(txs *MockTransactionRepository, entries *MockFundEntryRepository, users *MockUserRepository) *InMemoryBalanceRepository {
	return &InMemoryBalanceRepository{
		Transactions: txs,
		FundEntries:  entries,
		Users:        users,
	}
}

func (r *InMemoryBalanceRepository) SharedTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	txs, _, err := r.Transactions.List(ctx, domain.TransactionFilter{}, allRecords, 0)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	income, expense := decimal.Zero, decimal.Zero
	for _, tx := range txs {
		signed := tx.SignedAmount()
		if signed.Sign() < 0 {
			expense = expense.Sub(signed)
		} else {
			income = income.Add(signed)
		}
	}

	return income, expense, nil
}

func (r *InMemoryBalanceRepository) PersonalBalances(ctx context.Context) ([]domain.PersonalBalance, error) {
	users, err := r.Users.List(ctx)
	if err != nil {
		return nil, err
	}

	entries, _, err := r.FundEntries.List(ctx, domain.FundEntryFilter{}, allRecords, 0)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal, len(users))
	for _, entry := range entries {
		sums[entry.UserID] = sums[entry.UserID].Add(entry.SignedAmount())
	}

	// Every member appears, entries or not; List already sorts by name.
	balances := make([]domain.PersonalBalance, 0, len(users))
	for _, user := range users {
		balances = append(balances, domain.PersonalBalance{
			UserID:  user.ID,
			Name:    user.Name,
			Balance: sums[user.ID],
		})
	}

	return balances, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmtID(m.next)
}

func fmtID(n int) string {
	// Zero-padded so lexical order matches creation order, like ULIDs.
	const digits = "0123456789"
	buf := []byte("id-0000")
	for i := len(buf) - 1; n > 0 && i >= 3; i-- {
		buf[i] = digits[n%10]
		n /= 10
	}
	return string(buf)
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/housetab/housetab/internal/domain"
)

// BalanceRepository implements usecase.BalanceRepository. Aggregates
// are recomputed from the base tables on every call; nothing here is
// cached or maintained incrementally.
type BalanceRepository struct {
	pool *pgxpool.Pool
}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository(pool *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{pool: pool}
}

// SharedTotals returns total income and total expense over all shared
// transactions. An empty ledger yields two zeros.
func (r *BalanceRepository) SharedTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM transactions
	`

	var income, expense pgtype.Numeric
	if err := r.pool.QueryRow(ctx, query).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(income), numericToDecimal(expense), nil
}

// PersonalBalances returns one row per household member with the sum
// of fund credits minus fund debits, ordered by name. Members without
// entries appear with a zero balance.
func (r *BalanceRepository) PersonalBalances(ctx context.Context) ([]domain.PersonalBalance, error) {
	query := `
		SELECT
			u.id,
			u.name,
			COALESCE(SUM(CASE WHEN e.direction = 'credit' THEN e.amount ELSE -e.amount END), 0)
		FROM users u
		LEFT JOIN personal_fund_entries e ON e.user_id = u.id
		GROUP BY u.id, u.name
		ORDER BY u.name, u.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []domain.PersonalBalance
	for rows.Next() {
		var (
			b   domain.PersonalBalance
			sum pgtype.Numeric
		)
		if err := rows.Scan(&b.UserID, &b.Name, &sum); err != nil {
			return nil, err
		}
		b.Balance = numericToDecimal(sum)
		balances = append(balances, b)
	}

	return balances, rows.Err()
}

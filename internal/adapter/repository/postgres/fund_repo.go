package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/housetab/housetab/internal/domain"
)

// FundEntryRepository implements usecase.FundEntryRepository.
type FundEntryRepository struct {
	pool *pgxpool.Pool
}

// NewFundEntryRepository creates a new FundEntryRepository.
func NewFundEntryRepository(pool *pgxpool.Pool) *FundEntryRepository {
	return &FundEntryRepository{pool: pool}
}

const fundEntryColumns = `id, user_id, direction, amount, description, occurred_at, created_by_user_id, created_at, updated_at`

// Create inserts a new personal fund entry.
func (r *FundEntryRepository) Create(ctx context.Context, entry *domain.PersonalFundEntry) error {
	query := `
		INSERT INTO personal_fund_entries (id, user_id, direction, amount, description, occurred_at, created_by_user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		string(entry.Direction),
		decimalToNumeric(entry.Amount),
		entry.Description,
		timeToPgTimestamptz(entry.OccurredAt),
		textOrNull(entry.CreatedByUserID),
		timeToPgTimestamptz(entry.CreatedAt),
		timeToPgTimestamptz(entry.UpdatedAt),
	)

	return err
}

// GetByID retrieves a fund entry by ID.
func (r *FundEntryRepository) GetByID(ctx context.Context, id string) (*domain.PersonalFundEntry, error) {
	query := `SELECT ` + fundEntryColumns + ` FROM personal_fund_entries WHERE id = $1`

	entry, err := scanFundEntry(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFundEntryNotFound
	}

	return entry, err
}

// Update rewrites the mutable fields of an existing fund entry.
func (r *FundEntryRepository) Update(ctx context.Context, entry *domain.PersonalFundEntry) error {
	query := `
		UPDATE personal_fund_entries
		SET user_id = $2, direction = $3, amount = $4, description = $5, occurred_at = $6, updated_at = $7
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		string(entry.Direction),
		decimalToNumeric(entry.Amount),
		entry.Description,
		timeToPgTimestamptz(entry.OccurredAt),
		timeToPgTimestamptz(entry.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFundEntryNotFound
	}

	return nil
}

// Delete removes a fund entry.
func (r *FundEntryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM personal_fund_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFundEntryNotFound
	}

	return nil
}

// List returns a page of fund entries matching the filter, newest
// first, plus the total match count for pagination.
func (r *FundEntryRepository) List(ctx context.Context, filter domain.FundEntryFilter, limit, offset int) ([]*domain.PersonalFundEntry, int64, error) {
	preds := fundPredicates(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM personal_fund_entries` + preds.clause()
	if err := r.pool.QueryRow(ctx, countQuery, preds.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageQuery := fmt.Sprintf(
		`SELECT `+fundEntryColumns+` FROM personal_fund_entries%s ORDER BY occurred_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		preds.clause(), preds.next(), preds.next()+1,
	)
	args := append(preds.args, limit, offset)

	rows, err := r.pool.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []*domain.PersonalFundEntry
	for rows.Next() {
		entry, err := scanFundEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}

	return entries, total, rows.Err()
}

func scanFundEntry(row pgx.Row) (*domain.PersonalFundEntry, error) {
	var (
		entry      domain.PersonalFundEntry
		direction  string
		amount     pgtype.Numeric
		occurredAt pgtype.Timestamptz
		createdBy  pgtype.Text
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)

	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&direction,
		&amount,
		&entry.Description,
		&occurredAt,
		&createdBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Direction = domain.FundDirection(direction)
	entry.CreatedByUserID = createdBy.String
	entry.Amount = numericToDecimal(amount)
	entry.OccurredAt = occurredAt.Time
	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return &entry, nil
}

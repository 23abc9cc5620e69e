package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/housetab/housetab/internal/domain"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestTransactionPredicates_Empty(t *testing.T) {
	p := transactionPredicates(domain.TransactionFilter{})

	assert.Empty(t, p.clause())
	assert.Empty(t, p.args)
	assert.Equal(t, 1, p.next())
}

func TestTransactionPredicates_AllFields(t *testing.T) {
	from := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	to := time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC)

	p := transactionPredicates(domain.TransactionFilter{
		Type:         domain.TransactionTypeExpense,
		PaidByUserID: "user-1",
		From:         timePtr(from),
		To:           timePtr(to),
	})

	assert.Equal(t,
		" WHERE type = $1 AND paid_by_user_id = $2 AND occurred_at >= $3 AND occurred_at < $4",
		p.clause(),
	)
	require.Len(t, p.args, 4)
	assert.Equal(t, "expense", p.args[0])
	assert.Equal(t, "user-1", p.args[1])
	assert.Equal(t, 5, p.next())
}

func TestTransactionPredicates_DayGranularBounds(t *testing.T) {
	from := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	to := time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC)

	p := transactionPredicates(domain.TransactionFilter{
		From: timePtr(from),
		To:   timePtr(to),
	})

	require.Len(t, p.args, 2)
	// From widens back to midnight, To widens forward to the next midnight.
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), p.args[0])
	assert.Equal(t, time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC), p.args[1])
}

func TestFundPredicates_DirectionAndUser(t *testing.T) {
	p := fundPredicates(domain.FundEntryFilter{
		Direction: domain.FundDirectionDebit,
		UserID:    "user-2",
	})

	assert.Equal(t, " WHERE direction = $1 AND user_id = $2", p.clause())
	assert.Equal(t, []any{"debit", "user-2"}, p.args)
}

func TestFundPredicates_OnlyTo(t *testing.T) {
	to := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	p := fundPredicates(domain.FundEntryFilter{To: timePtr(to)})

	assert.Equal(t, " WHERE occurred_at < $1", p.clause())
	require.Len(t, p.args, 1)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), p.args[0])
}

func TestDayStart_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(2026, 6, 15, 1, 30, 0, 0, loc) // 2026-06-14 23:30 UTC

	got := dayStart(in)

	assert.Equal(t, time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC), got)
}

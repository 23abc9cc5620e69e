package postgres

import (
	"fmt"
	"strings"

	"github.com/housetab/housetab/internal/domain"
)

// predicateSet accumulates WHERE conditions with positional args.
type predicateSet struct {
	conditions []string
	args       []any
}

func (p *predicateSet) add(column, op string, value any) {
	p.args = append(p.args, value)
	p.conditions = append(p.conditions, fmt.Sprintf("%s %s $%d", column, op, len(p.args)))
}

// clause renders the accumulated conditions as a WHERE clause, or an
// empty string when no filter is active.
func (p *predicateSet) clause() string {
	if len(p.conditions) == 0 {
		return ""
	}

	return " WHERE " + strings.Join(p.conditions, " AND ")
}

// next returns the placeholder index for the next appended argument.
func (p *predicateSet) next() int {
	return len(p.args) + 1
}

// transactionPredicates builds the WHERE conditions for a transaction
// filter. Date bounds are widened to whole days: occurred_at >= start
// of From, occurred_at < start of the day after To.
func transactionPredicates(filter domain.TransactionFilter) *predicateSet {
	p := &predicateSet{}

	if filter.Type != "" {
		p.add("type", "=", string(filter.Type))
	}
	if filter.PaidByUserID != "" {
		p.add("paid_by_user_id", "=", filter.PaidByUserID)
	}
	if filter.From != nil {
		p.add("occurred_at", ">=", dayStart(*filter.From))
	}
	if filter.To != nil {
		p.add("occurred_at", "<", dayStart(*filter.To).AddDate(0, 0, 1))
	}

	return p
}

// fundPredicates builds the WHERE conditions for a fund entry filter.
func fundPredicates(filter domain.FundEntryFilter) *predicateSet {
	p := &predicateSet{}

	if filter.Direction != "" {
		p.add("direction", "=", string(filter.Direction))
	}
	if filter.UserID != "" {
		p.add("user_id", "=", filter.UserID)
	}
	if filter.From != nil {
		p.add("occurred_at", ">=", dayStart(*filter.From))
	}
	if filter.To != nil {
		p.add("occurred_at", "<", dayStart(*filter.To).AddDate(0, 0, 1))
	}

	return p
}

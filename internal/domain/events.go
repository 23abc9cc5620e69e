package domain

import "time"

// Change event entity kinds.
const (
	EntityTransaction = "transaction"
	EntityFundEntry   = "personal_fund_entry"
)

// Change event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeEvent tells read-only views that ledger data changed and their
// next read should recompute. Delivery is advisory; correctness never
// depends on receiving it.
type ChangeEvent struct {
	ID         string    `json:"id"`
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	RecordID   string    `json:"record_id"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

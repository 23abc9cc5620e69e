package domain

import "time"

// User is a household member. The ledger references users and never
// mutates them; account management belongs to the auth subsystem.
type User struct {
	ID             string
	Name           string
	Email          string
	HashedPassword string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

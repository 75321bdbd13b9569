package models

import "time"

// AccountRole identifies who holds a balance
type AccountRole string

const (
	RoleRider    AccountRole = "rider"
	RoleDriver   AccountRole = "driver"
	RolePlatform AccountRole = "platform"
)

// Valid reports whether the role is one of the known account roles
func (r AccountRole) Valid() bool {
	switch r {
	case RoleRider, RoleDriver, RolePlatform:
		return true
	}
	return false
}

// Account is any actor holding a wallet balance, in minor currency units
type Account struct {
	ID            string      `json:"id" db:"id"`
	Role          AccountRole `json:"role" db:"role"`
	WalletBalance int64       `json:"walletBalance" db:"wallet_balance"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`
}

// EntryKind classifies a ledger movement
type EntryKind string

const (
	EntryTransfer   EntryKind = "transfer"
	EntryTopUp      EntryKind = "topup"
	EntryDeduct     EntryKind = "deduct"
	EntryTripPayout EntryKind = "trip_payout"
	EntryCommission EntryKind = "commission"
)

// LedgerEntry is an immutable record of one fund movement.
// From is nil for money entering the system, To is nil for money leaving it.
type LedgerEntry struct {
	ID        string    `json:"id" db:"id"`
	From      *string   `json:"from" db:"from_account"`
	To        *string   `json:"to" db:"to_account"`
	Amount    int64     `json:"amount" db:"amount"`
	Kind      EntryKind `json:"kind" db:"kind"`
	TripID    *string   `json:"tripId,omitempty" db:"trip_id"`
	Note      *string   `json:"note,omitempty" db:"note"`
	Timestamp time.Time `json:"ts" db:"created_at"`
}

// Settlement is the driver/platform split of a single charge
type Settlement struct {
	Amount     int64 `json:"amount"`
	Payout     int64 `json:"payout"`
	Commission int64 `json:"commission"`
}

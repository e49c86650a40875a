package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Minimal snapshots for command-side reads

type VoucherSnapshot struct {
	ID           uuid.UUID
	Code         string
	StayID       uuid.UUID
	Status       string
	ValidFrom    time.Time
	ValidUntil   time.Time
	Allowance    decimal.Decimal
	Signature    string
	CancelReason *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RedemptionSnapshot struct {
	ID          uuid.UUID
	VoucherID   uuid.UUID
	RedeemedAt  time.Time
	DeviceID    uuid.UUID
	CafeteriaID uuid.UUID
	Notes       *string
}

type StaySnapshot struct {
	ID       uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
}

type TerminalSnapshot struct {
	ID          uuid.UUID
	Name        string
	CafeteriaID uuid.UUID
	SecretHash  string
	Active      bool
}

// SyncLogEntry is one append-only record of a processed offline redemption
// attempt, keyed by (DeviceID, LocalID).
type SyncLogEntry struct {
	DeviceID    uuid.UUID
	LocalID     string
	VoucherCode string
	Outcome     string
	Detail      []byte
	CreatedAt   time.Time
}

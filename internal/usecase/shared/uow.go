package shared

import (
	"context"
	"time"

	"mealvoucher/internal/domain/voucher"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Vouchers() VoucherRepository
	Redemptions() RedemptionRepository
	SyncLog() SyncLogRepository
	Stays() StayRepository
	Terminals() TerminalRepository
	Reads() CommandReads
}

type CommandReads interface {
	VoucherByCode(ctx context.Context, code string) (*VoucherSnapshot, error)
	RedemptionByVoucherID(ctx context.Context, voucherID uuid.UUID) (*RedemptionSnapshot, error)
	StayByID(ctx context.Context, id uuid.UUID) (*StaySnapshot, error)
	TerminalByName(ctx context.Context, name string) (*TerminalSnapshot, error)
}

type VoucherRepository interface {
	Create(ctx context.Context, v *voucher.Voucher) error
	// FindByCodeForUpdate locks the voucher row for the remainder of the
	// transaction, serializing concurrent redemptions of the same code.
	FindByCodeForUpdate(ctx context.Context, code string) (*VoucherSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*VoucherSnapshot, error)
	// SetStatusIfCurrent performs a compare-and-swap on the status column and
	// reports whether a row was updated.
	SetStatusIfCurrent(ctx context.Context, id uuid.UUID, from, to voucher.Status, updatedAt time.Time) (bool, error)
	SetCancelled(ctx context.Context, id uuid.UUID, from voucher.Status, reason *string, updatedAt time.Time) (bool, error)
	NextCodeSequence(ctx context.Context) (int64, error)
	ListOverdueActive(ctx context.Context, asOf time.Time, limit int32) ([]VoucherSnapshot, error)
}

type RedemptionRepository interface {
	// Create inserts the redemption record. The storage layer enforces
	// uniqueness on voucher_id; a duplicate insert surfaces as KindDuplicateKey.
	Create(ctx context.Context, voucherID uuid.UUID, rec voucher.RedemptionRecord) (uuid.UUID, error)
	FindByVoucherID(ctx context.Context, voucherID uuid.UUID) (*RedemptionSnapshot, error)
}

type SyncLogRepository interface {
	// Append records a processed attempt. Replays of the same (device, local
	// id) pair are absorbed by the unique constraint and not duplicated.
	Append(ctx context.Context, entry SyncLogEntry) error
}

type StayRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StaySnapshot, error)
}

type TerminalRepository interface {
	FindByName(ctx context.Context, name string) (*TerminalSnapshot, error)
	UpdateLastSeen(ctx context.Context, id uuid.UUID, at time.Time) error
}

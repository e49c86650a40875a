package queries

import (
	"context"
	"time"

	"mealvoucher/internal/domain/voucher"
	"mealvoucher/internal/infra"
	"mealvoucher/internal/pkg/clock"
	"mealvoucher/internal/pkg/errs"
	"mealvoucher/internal/pkg/signer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Validation failure reasons returned to clients. Stable API strings.
const (
	ReasonNotFound          = "NOT_FOUND"
	ReasonSignatureMismatch = "SIGNATURE_MISMATCH"
	ReasonAlreadyRedeemed   = "ALREADY_REDEEMED"
	ReasonExpired           = "EXPIRED"
	ReasonCancelled         = "CANCELLED"
	ReasonNotActive         = "NOT_ACTIVE"
	ReasonNotYetValid       = "NOT_YET_VALID"
)

type RedemptionView struct {
	ID          uuid.UUID
	RedeemedAt  time.Time
	DeviceID    uuid.UUID
	CafeteriaID uuid.UUID
	Notes       *string
}

type VoucherView struct {
	ID           uuid.UUID
	Code         string
	StayID       uuid.UUID
	Status       string
	ValidFrom    time.Time
	ValidUntil   time.Time
	Allowance    decimal.Decimal
	Signature    string
	CancelReason *string
	Redemption   *RedemptionView
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidationResult is the read-only answer to "would this voucher redeem
// right now". Validation never mutates state: a voucher past its window is
// reported EXPIRED but its stored status is left for the redeem path or the
// sweep to change.
type ValidationResult struct {
	Valid   bool
	Reason  string
	Voucher *VoucherView
}

// VoucherReader is the query-side port backed by the read store.
type VoucherReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VoucherView, error)
	FindByCode(ctx context.Context, code string) (*VoucherView, error)
	ListByStay(ctx context.Context, stayID uuid.UUID) ([]VoucherView, error)
}

type VoucherQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VoucherView, error)
	ListByStay(ctx context.Context, stayID uuid.UUID) ([]VoucherView, error)
	// Validate checks redeemability without consuming the voucher. The
	// signature is verified only when the caller presents one.
	Validate(ctx context.Context, code string, signature *string) (*ValidationResult, error)
}

type voucherQueriesImpl struct {
	reader VoucherReader
	signer signer.Signer
	clock  clock.Clock
}

func NewVoucherQueries(reader VoucherReader, s signer.Signer, clk clock.Clock) VoucherQueries {
	return &voucherQueriesImpl{
		reader: reader,
		signer: s,
		clock:  clk,
	}
}

func (q *voucherQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VoucherView, error) {
	view, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVoucherNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *voucherQueriesImpl) ListByStay(ctx context.Context, stayID uuid.UUID) ([]VoucherView, error) {
	views, err := q.reader.ListByStay(ctx, stayID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *voucherQueriesImpl) Validate(ctx context.Context, code string, signature *string) (*ValidationResult, error) {
	view, err := q.reader.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &ValidationResult{Valid: false, Reason: ReasonNotFound}, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if signature != nil {
		payload := voucher.SigningPayload(voucher.Code(view.Code), view.ValidFrom, view.ValidUntil, view.StayID)
		if !q.signer.Verify(payload, *signature) {
			return &ValidationResult{Valid: false, Reason: ReasonSignatureMismatch, Voucher: view}, nil
		}
	}

	if reason := q.redeemabilityReason(view); reason != "" {
		return &ValidationResult{Valid: false, Reason: reason, Voucher: view}, nil
	}

	return &ValidationResult{Valid: true, Voucher: view}, nil
}

func (q *voucherQueriesImpl) redeemabilityReason(view *VoucherView) string {
	switch voucher.Status(view.Status) {
	case voucher.StatusRedeemed:
		return ReasonAlreadyRedeemed
	case voucher.StatusExpired:
		return ReasonExpired
	case voucher.StatusCancelled:
		return ReasonCancelled
	case voucher.StatusPending:
		return ReasonNotActive
	}

	now := q.clock.Now()
	if now.Before(view.ValidFrom) {
		return ReasonNotYetValid
	}
	if now.After(view.ValidUntil) {
		return ReasonExpired
	}
	return ""
}

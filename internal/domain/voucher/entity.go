package voucher

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidWindow     = errors.New("validFrom must be before validUntil")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrExpired           = errors.New("voucher expired")
	ErrAlreadyRedeemed   = errors.New("voucher already redeemed")
)

// RedemptionRecord captures the single consumption of a voucher. At most one
// record ever exists per voucher.
type RedemptionRecord struct {
	RedeemedAt  time.Time
	DeviceID    uuid.UUID
	CafeteriaID uuid.UUID
	Notes       *string
}

type Voucher struct {
	id           uuid.UUID
	code         Code
	stayID       uuid.UUID
	status       Status
	validFrom    time.Time
	validUntil   time.Time
	allowance    decimal.Decimal
	signature    string
	redemption   *RedemptionRecord
	cancelReason *string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewVoucher creates a freshly issued voucher. Issuance may create vouchers
// Pending or directly Active.
func NewVoucher(
	id uuid.UUID,
	code Code,
	stayID uuid.UUID,
	validFrom, validUntil time.Time,
	allowance decimal.Decimal,
	signature string,
	activate bool,
	now time.Time,
) (*Voucher, error) {
	if !validFrom.Before(validUntil) {
		return nil, ErrInvalidWindow
	}

	status := StatusPending
	if activate {
		status = StatusActive
	}

	return &Voucher{
		id:         id,
		code:       code,
		stayID:     stayID,
		status:     status,
		validFrom:  validFrom,
		validUntil: validUntil,
		allowance:  allowance,
		signature:  signature,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	code Code,
	stayID uuid.UUID,
	status Status,
	validFrom, validUntil time.Time,
	allowance decimal.Decimal,
	signature string,
	redemption *RedemptionRecord,
	cancelReason *string,
	createdAt, updatedAt time.Time,
) *Voucher {
	return &Voucher{
		id:           id,
		code:         code,
		stayID:       stayID,
		status:       status,
		validFrom:    validFrom,
		validUntil:   validUntil,
		allowance:    allowance,
		signature:    signature,
		redemption:   redemption,
		cancelReason: cancelReason,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (v *Voucher) IsExpired(now time.Time) bool {
	return now.After(v.validUntil)
}

func (v *Voucher) IsValid(now time.Time) bool {
	return v.status == StatusActive && !v.IsExpired(now)
}

// Activate moves a Pending voucher to Active.
func (v *Voucher) Activate(now time.Time) error {
	if v.status != StatusPending {
		return ErrInvalidTransition
	}
	v.status = StatusActive
	v.updatedAt = now
	return nil
}

// Redeem consumes the voucher. Only Active, unexpired vouchers can be
// redeemed. Redeeming past validUntil forces the Expired transition before
// reporting ErrExpired, so the expiry is persisted even though the redemption
// fails.
func (v *Voucher) Redeem(rec RedemptionRecord, now time.Time) error {
	if v.status == StatusRedeemed {
		return ErrAlreadyRedeemed
	}
	if v.status != StatusActive {
		return ErrInvalidTransition
	}
	if v.IsExpired(now) {
		v.status = StatusExpired
		v.updatedAt = now
		return ErrExpired
	}

	v.status = StatusRedeemed
	v.redemption = &rec
	v.updatedAt = now
	return nil
}

// Expire marks an overdue voucher Expired. A no-op when already Expired.
func (v *Voucher) Expire(now time.Time) error {
	if v.status == StatusExpired {
		return nil
	}
	if v.status != StatusActive {
		return ErrInvalidTransition
	}
	v.status = StatusExpired
	v.updatedAt = now
	return nil
}

// Cancel withdraws a Pending or Active voucher with an optional reason.
func (v *Voucher) Cancel(reason *string, now time.Time) error {
	if v.status != StatusPending && v.status != StatusActive {
		return ErrInvalidTransition
	}
	v.status = StatusCancelled
	v.cancelReason = reason
	v.updatedAt = now
	return nil
}

func (v *Voucher) ID() uuid.UUID                 { return v.id }
func (v *Voucher) Code() Code                    { return v.code }
func (v *Voucher) StayID() uuid.UUID             { return v.stayID }
func (v *Voucher) Status() Status                { return v.status }
func (v *Voucher) ValidFrom() time.Time          { return v.validFrom }
func (v *Voucher) ValidUntil() time.Time         { return v.validUntil }
func (v *Voucher) Allowance() decimal.Decimal    { return v.allowance }
func (v *Voucher) Signature() string             { return v.signature }
func (v *Voucher) Redemption() *RedemptionRecord { return v.redemption }
func (v *Voucher) CancelReason() *string         { return v.cancelReason }
func (v *Voucher) CreatedAt() time.Time          { return v.createdAt }
func (v *Voucher) UpdatedAt() time.Time          { return v.updatedAt }

// SigningPayload returns the canonical payload for this voucher's signature.
func (v *Voucher) SigningPayload() []byte {
	return SigningPayload(v.code, v.validFrom, v.validUntil, v.stayID)
}

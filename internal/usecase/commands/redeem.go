package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mealvoucher/internal/domain/voucher"
	"mealvoucher/internal/infra"
	"mealvoucher/internal/pkg/audit"
	"mealvoucher/internal/pkg/clock"
	"mealvoucher/internal/pkg/errs"
	"mealvoucher/internal/usecase/shared"

	"github.com/google/uuid"
)

// errLostRedemptionRace aborts the transaction when another terminal redeemed
// the voucher first; the caller re-queries the winner's record afterwards.
var errLostRedemptionRace = errs.New("lost redemption race")

type RedeemParams struct {
	Code        string
	DeviceID    uuid.UUID
	CafeteriaID uuid.UUID
	Notes       *string
}

type RedeemResult struct {
	VoucherID    uuid.UUID
	RedemptionID uuid.UUID
	Code         string
	Status       voucher.Status
	RedeemedAt   time.Time
}

// ConflictInfo describes the redemption that won the race.
type ConflictInfo struct {
	ExistingTimestamp time.Time
	ExistingCafeteria uuid.UUID
	ExistingDevice    uuid.UUID
}

// AlreadyRedeemedError is the conflict outcome of redeeming a voucher some
// other terminal already consumed. It is an expected, frequently-occurring
// result in the offline-sync path, so it carries the winner's record for the
// caller to report.
type AlreadyRedeemedError struct {
	Existing ConflictInfo
}

func (e *AlreadyRedeemedError) Error() string {
	return fmt.Sprintf("voucher already redeemed at %s by device %s",
		e.Existing.ExistingTimestamp.Format(time.RFC3339), e.Existing.ExistingDevice)
}

func (e *AlreadyRedeemedError) Is(target error) bool {
	return target == errs.ErrAlreadyRedeemed
}

// InvalidStateError reports a redemption attempt against a voucher that is
// not Active.
type InvalidStateError struct {
	Status voucher.Status
}

func (e *InvalidStateError) Error() string {
	return "voucher not redeemable in state " + e.Status.String()
}

func (e *InvalidStateError) Is(target error) bool {
	return target == errs.ErrInvalidState
}

type BatchFailure struct {
	Code   string
	Reason string
}

type BatchRedeemResult struct {
	Successful []RedeemResult
	Failed     []BatchFailure
}

type RedeemCommands interface {
	// Redeem atomically validates and consumes one voucher. Exactly one
	// concurrent caller ever succeeds per code; losers receive
	// *AlreadyRedeemedError with the winner's record.
	Redeem(ctx context.Context, params RedeemParams) (*RedeemResult, error)
	// RedeemBatch applies Redeem per code independently; one failing code
	// never aborts its siblings.
	RedeemBatch(ctx context.Context, codes []string, device RedeemParams) (*BatchRedeemResult, error)
}

type redeemUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	auditSink audit.Sink
}

func NewRedeemCommands(uow shared.UnitOfWork, clk clock.Clock, auditSink audit.Sink) RedeemCommands {
	return &redeemUseCaseImpl{
		uow:       uow,
		clock:     clk,
		auditSink: auditSink,
	}
}

func (c *redeemUseCaseImpl) Redeem(ctx context.Context, params RedeemParams) (*RedeemResult, error) {
	now := c.clock.Now()
	rec := voucher.RedemptionRecord{
		RedeemedAt:  now,
		DeviceID:    params.DeviceID,
		CafeteriaID: params.CafeteriaID,
		Notes:       params.Notes,
	}

	var (
		result  *RedeemResult
		expired bool
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Vouchers().FindByCodeForUpdate(ctx, params.Code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrVoucherNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		v, err := voucherFromSnapshot(snap)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		switch redeemErr := v.Redeem(rec, now); {
		case redeemErr == nil:
			// fall through to persist below

		case errors.Is(redeemErr, voucher.ErrAlreadyRedeemed):
			return errLostRedemptionRace

		case errors.Is(redeemErr, voucher.ErrExpired):
			// Persist the forced Expired transition; the error still commits.
			if _, uerr := tx.Vouchers().SetStatusIfCurrent(ctx, v.ID(), voucher.StatusActive, voucher.StatusExpired, now); uerr != nil {
				return errs.Mark(uerr, errs.ErrDatabaseOperationFailed)
			}
			expired = true
			return nil

		default:
			return &InvalidStateError{Status: snapStatus(snap)}
		}

		swapped, err := tx.Vouchers().SetStatusIfCurrent(ctx, v.ID(), voucher.StatusActive, voucher.StatusRedeemed, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !swapped {
			return errLostRedemptionRace
		}

		redemptionID, err := tx.Redemptions().Create(ctx, v.ID(), rec)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errLostRedemptionRace
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = &RedeemResult{
			VoucherID:    v.ID(),
			RedemptionID: redemptionID,
			Code:         params.Code,
			Status:       voucher.StatusRedeemed,
			RedeemedAt:   now,
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, errLostRedemptionRace) {
			return nil, c.conflictFromStore(ctx, params)
		}
		return nil, err
	}

	if expired {
		return nil, errs.ErrVoucherExpired
	}

	c.auditSink.Emit(ctx, audit.Event{
		Kind:       audit.EventRedemptionSucceeded,
		OccurredAt: now,
		Fields: map[string]any{
			"voucher_id":   result.VoucherID,
			"code":         result.Code,
			"device_id":    params.DeviceID,
			"cafeteria_id": params.CafeteriaID,
		},
	})

	return result, nil
}

func (c *redeemUseCaseImpl) RedeemBatch(ctx context.Context, codes []string, device RedeemParams) (*BatchRedeemResult, error) {
	result := &BatchRedeemResult{}

	for _, code := range codes {
		params := device
		params.Code = code

		res, err := c.Redeem(ctx, params)
		if err != nil {
			result.Failed = append(result.Failed, BatchFailure{
				Code:   code,
				Reason: failureReason(err),
			})
			continue
		}
		result.Successful = append(result.Successful, *res)
	}

	return result, nil
}

// conflictFromStore re-queries the winning redemption after losing the
// uniqueness race and shapes it into the conflict error.
func (c *redeemUseCaseImpl) conflictFromStore(ctx context.Context, params RedeemParams) error {
	reads := c.uow.CommandReads()

	snap, err := reads.VoucherByCode(ctx, params.Code)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rec, err := reads.RedemptionByVoucherID(ctx, snap.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Redeemed status without a record should be unreachable.
			return errs.Mark(errs.New("redeemed voucher has no redemption record"), errs.ErrAlreadyRedeemed)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.auditSink.Emit(ctx, audit.Event{
		Kind:       audit.EventRedemptionConflict,
		OccurredAt: c.clock.Now(),
		Fields: map[string]any{
			"voucher_id":      snap.ID,
			"code":            params.Code,
			"device_id":       params.DeviceID,
			"winner_device":   rec.DeviceID,
			"winner_redeemed": rec.RedeemedAt,
		},
	})

	return &AlreadyRedeemedError{
		Existing: ConflictInfo{
			ExistingTimestamp: rec.RedeemedAt,
			ExistingCafeteria: rec.CafeteriaID,
			ExistingDevice:    rec.DeviceID,
		},
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, errs.ErrVoucherNotFound):
		return ReasonNotFound
	case errors.Is(err, errs.ErrAlreadyRedeemed):
		return ReasonConflict
	case errors.Is(err, errs.ErrVoucherExpired):
		return ReasonExpired
	case errors.Is(err, errs.ErrInvalidState):
		return ReasonInvalidState
	default:
		return ReasonInternal
	}
}

func snapStatus(snap *shared.VoucherSnapshot) voucher.Status {
	st, err := voucher.ParseStatus(snap.Status)
	if err != nil {
		return voucher.Status(snap.Status)
	}
	return st
}

func voucherFromSnapshot(snap *shared.VoucherSnapshot) (*voucher.Voucher, error) {
	status, err := voucher.ParseStatus(snap.Status)
	if err != nil {
		return nil, err
	}

	return voucher.Reconstruct(
		snap.ID,
		voucher.Code(snap.Code),
		snap.StayID,
		status,
		snap.ValidFrom,
		snap.ValidUntil,
		snap.Allowance,
		snap.Signature,
		nil,
		snap.CancelReason,
		snap.CreatedAt,
		snap.UpdatedAt,
	), nil
}

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mealvoucher/internal/pkg/clock"
	"mealvoucher/internal/pkg/config"
	"mealvoucher/internal/pkg/errs"
	"mealvoucher/internal/usecase/shared"

	"github.com/google/uuid"
)

// Reason codes attached to failed redemption outcomes. These are part of the
// API surface consumed by offline terminals, so they stay stable.
const (
	ReasonNotFound         = "NOT_FOUND"
	ReasonConflict         = "ALREADY_REDEEMED"
	ReasonExpired          = "EXPIRED"
	ReasonInvalidState     = "INVALID_STATE"
	ReasonInvalidStructure = "INVALID_STRUCTURE"
	ReasonInternal         = "INTERNAL"
)

const (
	OutcomeSynced   = "synced"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// RedemptionAttempt is one queued offline redemption uploaded by a terminal.
// LocalID is the terminal's own identifier for the attempt and makes the
// upload idempotent per device.
type RedemptionAttempt struct {
	LocalID        string
	VoucherCode    string
	CafeteriaID    uuid.UUID
	LocalTimestamp time.Time
	Notes          *string
}

type AttemptOutcome struct {
	LocalID      string
	VoucherCode  string
	Outcome      string
	RedemptionID *uuid.UUID
	RedeemedAt   *time.Time
	Existing     *ConflictInfo
	Reason       string
}

type ReconcileResult struct {
	Synced    int
	Conflicts int
	Errors    int
	Outcomes  []AttemptOutcome
}

type ReconcileCommands interface {
	// Reconcile replays a device's queued redemptions through the same
	// atomic redeem path used online. Each attempt resolves independently;
	// a conflict or error never blocks the rest of the batch.
	Reconcile(ctx context.Context, deviceID uuid.UUID, attempts []RedemptionAttempt) (*ReconcileResult, error)
}

type reconcileUseCaseImpl struct {
	redeemer RedeemCommands
	uow      shared.UnitOfWork
	clock    clock.Clock
	cfg      config.VoucherConfig
}

func NewReconcileCommands(redeemer RedeemCommands, uow shared.UnitOfWork, clk clock.Clock, cfg config.VoucherConfig) ReconcileCommands {
	return &reconcileUseCaseImpl{
		redeemer: redeemer,
		uow:      uow,
		clock:    clk,
		cfg:      cfg,
	}
}

func (c *reconcileUseCaseImpl) Reconcile(ctx context.Context, deviceID uuid.UUID, attempts []RedemptionAttempt) (*ReconcileResult, error) {
	if len(attempts) == 0 {
		return nil, errs.Mark(errs.New("empty sync batch"), errs.ErrDomainValidation)
	}
	if len(attempts) > c.cfg.MaxSyncBatchSize {
		return nil, errs.ErrBatchTooLarge
	}

	result := &ReconcileResult{Outcomes: make([]AttemptOutcome, 0, len(attempts))}

	for _, attempt := range attempts {
		outcome := c.resolveAttempt(ctx, deviceID, attempt)

		switch outcome.Outcome {
		case OutcomeSynced:
			result.Synced++
		case OutcomeConflict:
			result.Conflicts++
		default:
			result.Errors++
		}

		if err := c.appendSyncLog(ctx, deviceID, attempt, outcome); err != nil {
			return nil, err
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result, nil
}

func (c *reconcileUseCaseImpl) resolveAttempt(ctx context.Context, deviceID uuid.UUID, attempt RedemptionAttempt) AttemptOutcome {
	outcome := AttemptOutcome{
		LocalID:     attempt.LocalID,
		VoucherCode: attempt.VoucherCode,
	}

	if attempt.LocalID == "" || attempt.VoucherCode == "" {
		outcome.Outcome = OutcomeError
		outcome.Reason = ReasonInvalidStructure
		return outcome
	}

	res, err := c.redeemer.Redeem(ctx, RedeemParams{
		Code:        attempt.VoucherCode,
		DeviceID:    deviceID,
		CafeteriaID: attempt.CafeteriaID,
		Notes:       attempt.Notes,
	})
	if err == nil {
		outcome.Outcome = OutcomeSynced
		outcome.RedemptionID = &res.RedemptionID
		outcome.RedeemedAt = &res.RedeemedAt
		return outcome
	}

	var conflict *AlreadyRedeemedError
	if errors.As(err, &conflict) {
		outcome.Outcome = OutcomeConflict
		outcome.Reason = ReasonConflict
		outcome.Existing = &conflict.Existing
		return outcome
	}

	outcome.Outcome = OutcomeError
	outcome.Reason = failureReason(err)
	return outcome
}

// appendSyncLog records the resolution so a device re-uploading the same
// batch gets deduplicated on (device_id, local_id).
func (c *reconcileUseCaseImpl) appendSyncLog(ctx context.Context, deviceID uuid.UUID, attempt RedemptionAttempt, outcome AttemptOutcome) error {
	detail, err := json.Marshal(map[string]any{
		"local_timestamp": attempt.LocalTimestamp,
		"reason":          outcome.Reason,
		"redemption_id":   outcome.RedemptionID,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode sync log detail")
	}

	return c.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		entry := shared.SyncLogEntry{
			DeviceID:    deviceID,
			LocalID:     attempt.LocalID,
			VoucherCode: attempt.VoucherCode,
			Outcome:     outcome.Outcome,
			Detail:      detail,
			CreatedAt:   c.clock.Now(),
		}
		if err := tx.SyncLog().Append(ctx, entry); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

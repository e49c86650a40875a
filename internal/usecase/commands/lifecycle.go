package commands

import (
	"context"

	"mealvoucher/internal/domain/voucher"
	"mealvoucher/internal/infra"
	"mealvoucher/internal/pkg/audit"
	"mealvoucher/internal/pkg/clock"
	"mealvoucher/internal/pkg/errs"
	"mealvoucher/internal/usecase/shared"

	"github.com/google/uuid"
)

type LifecycleCommands interface {
	// Activate moves a Pending voucher to Active.
	Activate(ctx context.Context, id uuid.UUID) error
	// Cancel withdraws a Pending or Active voucher.
	Cancel(ctx context.Context, id uuid.UUID, reason *string) error
	// ExpireOverdue sweeps Active vouchers whose window has passed and marks
	// them Expired. Returns the number of vouchers transitioned.
	ExpireOverdue(ctx context.Context, limit int32) (int, error)
}

type lifecycleUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	auditSink audit.Sink
}

func NewLifecycleCommands(uow shared.UnitOfWork, clk clock.Clock, auditSink audit.Sink) LifecycleCommands {
	return &lifecycleUseCaseImpl{
		uow:       uow,
		clock:     clk,
		auditSink: auditSink,
	}
}

func (c *lifecycleUseCaseImpl) Activate(ctx context.Context, id uuid.UUID) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Vouchers().FindByID(ctx, id)
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
		if err := v.Activate(now); err != nil {
			return &InvalidStateError{Status: snapStatus(snap)}
		}

		swapped, err := tx.Vouchers().SetStatusIfCurrent(ctx, id, voucher.StatusPending, voucher.StatusActive, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !swapped {
			return &InvalidStateError{Status: snapStatus(snap)}
		}
		return nil
	})
}

func (c *lifecycleUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID, reason *string) error {
	now := c.clock.Now()

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Vouchers().FindByID(ctx, id)
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
		prev := v.Status()
		if err := v.Cancel(reason, now); err != nil {
			return &InvalidStateError{Status: prev}
		}

		swapped, err := tx.Vouchers().SetCancelled(ctx, id, prev, reason, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !swapped {
			return &InvalidStateError{Status: prev}
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.auditSink.Emit(ctx, audit.Event{
		Kind:       audit.EventVoucherCancelled,
		OccurredAt: now,
		Fields: map[string]any{
			"voucher_id": id,
			"reason":     reason,
		},
	})
	return nil
}

func (c *lifecycleUseCaseImpl) ExpireOverdue(ctx context.Context, limit int32) (int, error) {
	now := c.clock.Now()
	expired := 0

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Within retries the closure after rollback; the count restarts
		// with it or a retried sweep would double-count.
		expired = 0

		overdue, err := tx.Vouchers().ListOverdueActive(ctx, now, limit)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		for _, snap := range overdue {
			// CAS keeps the sweep safe against a concurrent redemption that
			// already moved the voucher out of Active.
			swapped, err := tx.Vouchers().SetStatusIfCurrent(ctx, snap.ID, voucher.StatusActive, voucher.StatusExpired, now)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if swapped {
				expired++
			}
		}
		return nil
	})
	if err != nil {
		// The whole sweep rolled back, so no partial count to report.
		return 0, err
	}

	return expired, nil
}

package commands

import (
	"context"
	"time"

	"mealvoucher/internal/domain/stay"
	"mealvoucher/internal/domain/voucher"
	"mealvoucher/internal/infra"
	"mealvoucher/internal/pkg/audit"
	"mealvoucher/internal/pkg/clock"
	"mealvoucher/internal/pkg/config"
	"mealvoucher/internal/pkg/errs"
	"mealvoucher/internal/pkg/signer"
	"mealvoucher/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IssueVouchersParams struct {
	StayID     uuid.UUID
	ValidFrom  time.Time
	ValidUntil time.Time
	Count      int
	// Activate issues vouchers directly Active instead of Pending.
	Activate bool
	// Allowance overrides the configured default when non-nil.
	Allowance *decimal.Decimal
}

type IssuedVoucher struct {
	ID         uuid.UUID
	Code       string
	StayID     uuid.UUID
	Status     voucher.Status
	ValidFrom  time.Time
	ValidUntil time.Time
	Allowance  decimal.Decimal
	Signature  string
}

type IssueCommands interface {
	// Issue creates a batch of signed vouchers bound to one stay in a single
	// transaction. Either every voucher is persisted or none are.
	Issue(ctx context.Context, params IssueVouchersParams) ([]IssuedVoucher, error)
}

type issueUseCaseImpl struct {
	uow       shared.UnitOfWork
	signer    signer.Signer
	clock     clock.Clock
	cfg       config.VoucherConfig
	auditSink audit.Sink
}

func NewIssueCommands(uow shared.UnitOfWork, s signer.Signer, clk clock.Clock, cfg config.VoucherConfig, auditSink audit.Sink) IssueCommands {
	return &issueUseCaseImpl{
		uow:       uow,
		signer:    s,
		clock:     clk,
		cfg:       cfg,
		auditSink: auditSink,
	}
}

func (c *issueUseCaseImpl) Issue(ctx context.Context, params IssueVouchersParams) ([]IssuedVoucher, error) {
	if params.Count < 1 || params.Count > c.cfg.MaxIssueCount {
		return nil, errs.ErrInvalidVoucherCount
	}
	if !params.ValidFrom.Before(params.ValidUntil) {
		return nil, errs.ErrInvalidWindow
	}

	allowance, err := c.resolveAllowance(params.Allowance)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	issued := make([]IssuedVoucher, 0, params.Count)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Within retries the closure after rollback; each attempt starts
		// from an empty batch or retried issuance would return phantom
		// vouchers from the rolled-back attempt.
		issued = issued[:0]

		staySnap, err := tx.Stays().FindByID(ctx, params.StayID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrStayNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		st, err := stay.NewStay(staySnap.ID, staySnap.CheckIn, staySnap.CheckOut)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if !st.Covers(params.ValidFrom, params.ValidUntil) {
			return errs.ErrWindowOutsideStay
		}

		for i := 0; i < params.Count; i++ {
			seq, err := tx.Vouchers().NextCodeSequence(ctx)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}

			code, err := voucher.FormatCode(c.cfg.CodePrefix, now.Year(), seq)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}

			sig := c.signer.Sign(voucher.SigningPayload(code, params.ValidFrom, params.ValidUntil, params.StayID))

			v, err := voucher.NewVoucher(
				uuid.New(), code, params.StayID,
				params.ValidFrom, params.ValidUntil,
				allowance, sig, params.Activate, now,
			)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}

			if err := tx.Vouchers().Create(ctx, v); err != nil {
				if infra.IsKind(err, infra.KindForeignKeyViolated) {
					return errs.ErrStayNotFound
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}

			issued = append(issued, IssuedVoucher{
				ID:         v.ID(),
				Code:       v.Code().String(),
				StayID:     v.StayID(),
				Status:     v.Status(),
				ValidFrom:  v.ValidFrom(),
				ValidUntil: v.ValidUntil(),
				Allowance:  v.Allowance(),
				Signature:  v.Signature(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.auditSink.Emit(ctx, audit.Event{
		Kind:       audit.EventVoucherIssued,
		OccurredAt: now,
		Fields: map[string]any{
			"stay_id": params.StayID,
			"count":   len(issued),
		},
	})

	return issued, nil
}

func (c *issueUseCaseImpl) resolveAllowance(override *decimal.Decimal) (decimal.Decimal, error) {
	if override != nil {
		if override.IsNegative() {
			return decimal.Zero, errs.Mark(errs.New("allowance must not be negative"), errs.ErrDomainValidation)
		}
		return *override, nil
	}
	allowance, err := decimal.NewFromString(c.cfg.DefaultAllowance)
	if err != nil {
		return decimal.Zero, errs.Wrap(err, "invalid default allowance configured")
	}
	return allowance, nil
}

//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"mealvoucher/internal/domain/voucher"
	"mealvoucher/internal/pkg/audit"
	"mealvoucher/internal/pkg/clock"
	"mealvoucher/internal/pkg/config"
	"mealvoucher/internal/pkg/errs"
	"mealvoucher/internal/pkg/signer"
	"mealvoucher/internal/usecase/commands"
	"mealvoucher/internal/usecase/shared"
	sharedmock "mealvoucher/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type issueFixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	vouchers *sharedmock.MockVoucherRepository
	stays    *sharedmock.MockStayRepository
	signer   signer.Signer
	sut      commands.IssueCommands
}

func issueConfig() config.VoucherConfig {
	return config.VoucherConfig{
		CodePrefix:       "MEAL",
		DefaultAllowance: "25.00",
		MaxIssueCount:    20,
		MaxSyncBatchSize: 50,
	}
}

func newIssueFixture(t *testing.T) *issueFixture {
	ctrl := gomock.NewController(t)

	s, err := signer.NewHMACSigner([]byte(strings.Repeat("k", 32)))
	require.NoError(t, err)

	f := &issueFixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		vouchers: sharedmock.NewMockVoucherRepository(ctrl),
		stays:    sharedmock.NewMockStayRepository(ctrl),
		signer:   s,
	}

	f.tx.EXPECT().Vouchers().Return(f.vouchers).AnyTimes()
	f.tx.EXPECT().Stays().Return(f.stays).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		},
	).AnyTimes()

	f.sut = commands.NewIssueCommands(f.uow, s, clock.NewMockClock(fixedNow), issueConfig(), audit.NopSink{})
	return f
}

func issueParams(stayID uuid.UUID, count int) commands.IssueVouchersParams {
	return commands.IssueVouchersParams{
		StayID:     stayID,
		ValidFrom:  fixedNow,
		ValidUntil: fixedNow.Add(72 * time.Hour),
		Count:      count,
		Activate:   true,
	}
}

func staySnapshot(id uuid.UUID) *shared.StaySnapshot {
	return &shared.StaySnapshot{
		ID:       id,
		CheckIn:  fixedNow.Add(-24 * time.Hour),
		CheckOut: fixedNow.Add(96 * time.Hour),
	}
}

func TestIssue_Success(t *testing.T) {
	f := newIssueFixture(t)
	stayID := uuid.New()
	params := issueParams(stayID, 3)

	f.stays.EXPECT().FindByID(gomock.Any(), stayID).Return(staySnapshot(stayID), nil)

	seq := int64(100)
	f.vouchers.EXPECT().NextCodeSequence(gomock.Any()).DoAndReturn(
		func(context.Context) (int64, error) {
			seq++
			return seq, nil
		},
	).Times(3)
	f.vouchers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	issued, err := f.sut.Issue(context.Background(), params)

	require.NoError(t, err)
	require.Len(t, issued, 3)

	for i, v := range issued {
		assert.Equal(t, stayID, v.StayID)
		assert.Equal(t, voucher.StatusActive, v.Status)
		assert.True(t, v.Allowance.Equal(decimal.RequireFromString("25.00")))

		// Each voucher gets its own sequential code and a verifiable signature.
		assert.Equal(t, fmt.Sprintf("MEAL-2025-%04d", 101+i), v.Code)
		payload := voucher.SigningPayload(voucher.Code(v.Code), params.ValidFrom, params.ValidUntil, stayID)
		assert.True(t, f.signer.Verify(payload, v.Signature))
	}
}

func TestIssue_PendingWhenNotActivated(t *testing.T) {
	f := newIssueFixture(t)
	stayID := uuid.New()
	params := issueParams(stayID, 1)
	params.Activate = false

	f.stays.EXPECT().FindByID(gomock.Any(), stayID).Return(staySnapshot(stayID), nil)
	f.vouchers.EXPECT().NextCodeSequence(gomock.Any()).Return(int64(7), nil)
	f.vouchers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	issued, err := f.sut.Issue(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, voucher.StatusPending, issued[0].Status)
}

func TestIssue_AllowanceOverride(t *testing.T) {
	f := newIssueFixture(t)
	stayID := uuid.New()
	override := decimal.RequireFromString("42.50")
	params := issueParams(stayID, 1)
	params.Allowance = &override

	f.stays.EXPECT().FindByID(gomock.Any(), stayID).Return(staySnapshot(stayID), nil)
	f.vouchers.EXPECT().NextCodeSequence(gomock.Any()).Return(int64(8), nil)
	f.vouchers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	issued, err := f.sut.Issue(context.Background(), params)

	require.NoError(t, err)
	assert.True(t, issued[0].Allowance.Equal(override))
}

func TestIssue_NegativeAllowanceRejected(t *testing.T) {
	f := newIssueFixture(t)
	override := decimal.RequireFromString("-1.00")
	params := issueParams(uuid.New(), 1)
	params.Allowance = &override

	issued, err := f.sut.Issue(context.Background(), params)

	require.Nil(t, issued)
	require.ErrorIs(t, err, errs.ErrDomainValidation)
}

func TestIssue_CountBounds(t *testing.T) {
	cases := []struct {
		name  string
		count int
	}{
		{name: "zero", count: 0},
		{name: "negative", count: -1},
		{name: "over maximum", count: 21},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newIssueFixture(t)

			issued, err := f.sut.Issue(context.Background(), issueParams(uuid.New(), c.count))

			require.Nil(t, issued)
			require.ErrorIs(t, err, errs.ErrInvalidVoucherCount)
		})
	}
}

func TestIssue_InvalidWindow(t *testing.T) {
	f := newIssueFixture(t)
	params := issueParams(uuid.New(), 1)
	params.ValidFrom, params.ValidUntil = params.ValidUntil, params.ValidFrom

	issued, err := f.sut.Issue(context.Background(), params)

	require.Nil(t, issued)
	require.ErrorIs(t, err, errs.ErrInvalidWindow)
}

func TestIssue_StayNotFound(t *testing.T) {
	f := newIssueFixture(t)
	stayID := uuid.New()

	f.stays.EXPECT().FindByID(gomock.Any(), stayID).Return(nil, notFoundErr())

	issued, err := f.sut.Issue(context.Background(), issueParams(stayID, 1))

	require.Nil(t, issued)
	require.ErrorIs(t, err, errs.ErrStayNotFound)
}

func TestIssue_RetriedTransactionStartsClean(t *testing.T) {
	ctrl := gomock.NewController(t)

	s, err := signer.NewHMACSigner([]byte(strings.Repeat("k", 32)))
	require.NoError(t, err)

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	vouchers := sharedmock.NewMockVoucherRepository(ctrl)
	stays := sharedmock.NewMockStayRepository(ctrl)

	tx.EXPECT().Vouchers().Return(vouchers).AnyTimes()
	tx.EXPECT().Stays().Return(stays).AnyTimes()

	// A serialization failure rolls the first attempt back and the unit of
	// work runs the closure again on a fresh transaction.
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			if err := fn(ctx, tx); err != nil {
				return err
			}
			return fn(ctx, tx)
		},
	)

	stayID := uuid.New()
	stays.EXPECT().FindByID(gomock.Any(), stayID).Return(staySnapshot(stayID), nil).Times(2)

	seq := int64(200)
	vouchers.EXPECT().NextCodeSequence(gomock.Any()).DoAndReturn(
		func(context.Context) (int64, error) {
			seq++
			return seq, nil
		},
	).Times(4)
	vouchers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(4)

	sut := commands.NewIssueCommands(uow, s, clock.NewMockClock(fixedNow), issueConfig(), audit.NopSink{})

	issued, err := sut.Issue(context.Background(), issueParams(stayID, 2))

	require.NoError(t, err)
	// Only the committed attempt's vouchers come back; the rolled-back
	// attempt's codes must not leak into the result.
	require.Len(t, issued, 2)
	assert.Equal(t, "MEAL-2025-0203", issued[0].Code)
	assert.Equal(t, "MEAL-2025-0204", issued[1].Code)
}

func TestIssue_WindowOutsideStay(t *testing.T) {
	f := newIssueFixture(t)
	stayID := uuid.New()
	params := issueParams(stayID, 1)
	params.ValidUntil = fixedNow.Add(200 * time.Hour)

	f.stays.EXPECT().FindByID(gomock.Any(), stayID).Return(staySnapshot(stayID), nil)

	issued, err := f.sut.Issue(context.Background(), params)

	require.Nil(t, issued)
	require.ErrorIs(t, err, errs.ErrWindowOutsideStay)
}

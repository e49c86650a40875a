//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mealvoucher/internal/domain/voucher"
	"mealvoucher/internal/infra"
	"mealvoucher/internal/pkg/audit"
	"mealvoucher/internal/pkg/clock"
	"mealvoucher/internal/pkg/errs"
	"mealvoucher/internal/usecase/commands"
	"mealvoucher/internal/usecase/shared"
	"mealvoucher/tests/common/builder"
	sharedmock "mealvoucher/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

type redeemFixture struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	vouchers    *sharedmock.MockVoucherRepository
	redemptions *sharedmock.MockRedemptionRepository
	reads       *sharedmock.MockCommandReads
	clock       *clock.MockClock
	sut         commands.RedeemCommands
}

func newRedeemFixture(t *testing.T) *redeemFixture {
	ctrl := gomock.NewController(t)

	f := &redeemFixture{
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		vouchers:    sharedmock.NewMockVoucherRepository(ctrl),
		redemptions: sharedmock.NewMockRedemptionRepository(ctrl),
		reads:       sharedmock.NewMockCommandReads(ctrl),
		clock:       clock.NewMockClock(fixedNow),
	}

	f.tx.EXPECT().Vouchers().Return(f.vouchers).AnyTimes()
	f.tx.EXPECT().Redemptions().Return(f.redemptions).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		},
	).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()

	f.sut = commands.NewRedeemCommands(f.uow, f.clock, audit.NopSink{})
	return f
}

func redeemParams(code string) commands.RedeemParams {
	return commands.RedeemParams{
		Code:        code,
		DeviceID:    uuid.New(),
		CafeteriaID: uuid.New(),
	}
}

func notFoundErr() error {
	return infra.WrapRepoErr("voucher not found", errors.New("no rows"), infra.KindNotFound)
}

func TestRedeem_Success(t *testing.T) {
	f := newRedeemFixture(t)
	snap := builder.NewVoucherBuilder().BuildSnapshot()
	redemptionID := uuid.New()

	f.vouchers.EXPECT().FindByCodeForUpdate(gomock.Any(), snap.Code).Return(snap, nil)
	f.vouchers.EXPECT().
		SetStatusIfCurrent(gomock.Any(), snap.ID, voucher.StatusActive, voucher.StatusRedeemed, fixedNow).
		Return(true, nil)
	f.redemptions.EXPECT().
		Create(gomock.Any(), snap.ID, gomock.Any()).
		Return(redemptionID, nil)

	result, err := f.sut.Redeem(context.Background(), redeemParams(snap.Code))

	require.NoError(t, err)
	assert.Equal(t, snap.ID, result.VoucherID)
	assert.Equal(t, redemptionID, result.RedemptionID)
	assert.Equal(t, voucher.StatusRedeemed, result.Status)
	assert.Equal(t, fixedNow, result.RedeemedAt)
}

func TestRedeem_NotFound(t *testing.T) {
	f := newRedeemFixture(t)

	f.vouchers.EXPECT().FindByCodeForUpdate(gomock.Any(), "MEAL-2025-9999").Return(nil, notFoundErr())

	result, err := f.sut.Redeem(context.Background(), redeemParams("MEAL-2025-9999"))

	require.Nil(t, result)
	require.ErrorIs(t, err, errs.ErrVoucherNotFound)
}

func TestRedeem_AlreadyRedeemed(t *testing.T) {
	f := newRedeemFixture(t)
	snap := builder.NewVoucherBuilder().With(func(b *builder.VoucherBuilder) {
		b.Status = "redeemed"
	}).BuildSnapshot()

	winner := &shared.RedemptionSnapshot{
		ID:          uuid.New(),
		VoucherID:   snap.ID,
		RedeemedAt:  fixedNow.Add(-time.Hour),
		DeviceID:    uuid.New(),
		CafeteriaID: uuid.New(),
	}

	f.vouchers.EXPECT().FindByCodeForUpdate(gomock.Any(), snap.Code).Return(snap, nil)
	f.reads.EXPECT().VoucherByCode(gomock.Any(), snap.Code).Return(snap, nil)
	f.reads.EXPECT().RedemptionByVoucherID(gomock.Any(), snap.ID).Return(winner, nil)

	result, err := f.sut.Redeem(context.Background(), redeemParams(snap.Code))

	require.Nil(t, result)
	require.ErrorIs(t, err, errs.ErrAlreadyRedeemed)

	var conflict *commands.AlreadyRedeemedError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, winner.RedeemedAt, conflict.Existing.ExistingTimestamp)
	assert.Equal(t, winner.DeviceID, conflict.Existing.ExistingDevice)
	assert.Equal(t, winner.CafeteriaID, conflict.Existing.ExistingCafeteria)
}

func TestRedeem_LosesInsertRace(t *testing.T) {
	f := newRedeemFixture(t)
	snap := builder.NewVoucherBuilder().BuildSnapshot()

	winner := &shared.RedemptionSnapshot{
		ID:          uuid.New(),
		VoucherID:   snap.ID,
		RedeemedAt:  fixedNow,
		DeviceID:    uuid.New(),
		CafeteriaID: uuid.New(),
	}

	f.vouchers.EXPECT().FindByCodeForUpdate(gomock.Any(), snap.Code).Return(snap, nil)
	f.vouchers.EXPECT().
		SetStatusIfCurrent(gomock.Any(), snap.ID, voucher.StatusActive, voucher.StatusRedeemed, fixedNow).
		Return(true, nil)
	f.redemptions.EXPECT().
		Create(gomock.Any(), snap.ID, gomock.Any()).
		Return(uuid.Nil, infra.WrapRepoErr("voucher already redeemed", errors.New("23505"), infra.KindDuplicateKey))

	// After rollback the winner's record is fetched outside the transaction.
	f.reads.EXPECT().VoucherByCode(gomock.Any(), snap.Code).Return(snap, nil)
	f.reads.EXPECT().RedemptionByVoucherID(gomock.Any(), snap.ID).Return(winner, nil)

	result, err := f.sut.Redeem(context.Background(), redeemParams(snap.Code))

	require.Nil(t, result)
	require.ErrorIs(t, err, errs.ErrAlreadyRedeemed)
}

func TestRedeem_LosesStatusRace(t *testing.T) {
	f := newRedeemFixture(t)
	snap := builder.NewVoucherBuilder().BuildSnapshot()

	winner := &shared.RedemptionSnapshot{
		ID:         uuid.New(),
		VoucherID:  snap.ID,
		RedeemedAt: fixedNow,
	}

	f.vouchers.EXPECT().FindByCodeForUpdate(gomock.Any(), snap.Code).Return(snap, nil)
	f.vouchers.EXPECT().
		SetStatusIfCurrent(gomock.Any(), snap.ID, voucher.StatusActive, voucher.StatusRedeemed, fixedNow).
		Return(false, nil)
	f.reads.EXPECT().VoucherByCode(gomock.Any(), snap.Code).Return(snap, nil)
	f.reads.EXPECT().RedemptionByVoucherID(gomock.Any(), snap.ID).Return(winner, nil)

	_, err := f.sut.Redeem(context.Background(), redeemParams(snap.Code))
	require.ErrorIs(t, err, errs.ErrAlreadyRedeemed)
}

func TestRedeem_ExpiredPersistsTransition(t *testing.T) {
	f := newRedeemFixture(t)
	snap := builder.NewVoucherBuilder().With(func(b *builder.VoucherBuilder) {
		b.ValidFrom = fixedNow.Add(-72 * time.Hour)
		b.ValidUntil = fixedNow.Add(-time.Hour)
	}).BuildSnapshot()

	// The Expired transition is written and committed before the error surfaces.
	f.vouchers.EXPECT().FindByCodeForUpdate(gomock.Any(), snap.Code).Return(snap, nil)
	f.vouchers.EXPECT().
		SetStatusIfCurrent(gomock.Any(), snap.ID, voucher.StatusActive, voucher.StatusExpired, fixedNow).
		Return(true, nil)

	result, err := f.sut.Redeem(context.Background(), redeemParams(snap.Code))

	require.Nil(t, result)
	require.ErrorIs(t, err, errs.ErrVoucherExpired)
}

func TestRedeem_InvalidStates(t *testing.T) {
	for _, status := range []string{"pending", "expired", "cancelled"} {
		t.Run(status, func(t *testing.T) {
			f := newRedeemFixture(t)
			snap := builder.NewVoucherBuilder().With(func(b *builder.VoucherBuilder) {
				b.Status = status
			}).BuildSnapshot()

			f.vouchers.EXPECT().FindByCodeForUpdate(gomock.Any(), snap.Code).Return(snap, nil)

			result, err := f.sut.Redeem(context.Background(), redeemParams(snap.Code))

			require.Nil(t, result)
			require.ErrorIs(t, err, errs.ErrInvalidState)

			var invalid *commands.InvalidStateError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, voucher.Status(status), invalid.Status)
		})
	}
}

func TestRedeemBatch_PartialFailure(t *testing.T) {
	f := newRedeemFixture(t)

	okSnap := builder.NewVoucherBuilder().With(func(b *builder.VoucherBuilder) {
		b.Code = "MEAL-2025-0001"
	}).BuildSnapshot()
	cancelledSnap := builder.NewVoucherBuilder().With(func(b *builder.VoucherBuilder) {
		b.Code = "MEAL-2025-0002"
		b.Status = "cancelled"
	}).BuildSnapshot()

	f.vouchers.EXPECT().FindByCodeForUpdate(gomock.Any(), okSnap.Code).Return(okSnap, nil)
	f.vouchers.EXPECT().
		SetStatusIfCurrent(gomock.Any(), okSnap.ID, voucher.StatusActive, voucher.StatusRedeemed, fixedNow).
		Return(true, nil)
	f.redemptions.EXPECT().Create(gomock.Any(), okSnap.ID, gomock.Any()).Return(uuid.New(), nil)

	f.vouchers.EXPECT().FindByCodeForUpdate(gomock.Any(), cancelledSnap.Code).Return(cancelledSnap, nil)
	f.vouchers.EXPECT().FindByCodeForUpdate(gomock.Any(), "MEAL-2025-0003").Return(nil, notFoundErr())

	result, err := f.sut.RedeemBatch(context.Background(),
		[]string{okSnap.Code, cancelledSnap.Code, "MEAL-2025-0003"},
		redeemParams(""),
	)

	require.NoError(t, err)
	require.Len(t, result.Successful, 1)
	require.Len(t, result.Failed, 2)
	assert.Equal(t, okSnap.Code, result.Successful[0].Code)
	assert.Equal(t, commands.ReasonInvalidState, result.Failed[0].Reason)
	assert.Equal(t, commands.ReasonNotFound, result.Failed[1].Reason)
}

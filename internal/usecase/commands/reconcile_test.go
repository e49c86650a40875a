//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"mealvoucher/internal/domain/voucher"
	"mealvoucher/internal/pkg/clock"
	"mealvoucher/internal/pkg/config"
	"mealvoucher/internal/pkg/errs"
	"mealvoucher/internal/usecase/commands"
	"mealvoucher/internal/usecase/shared"
	mockcommands "mealvoucher/tests/mock/commands"
	sharedmock "mealvoucher/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconcileFixture struct {
	redeemer *mockcommands.MockRedeemCommands
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	syncLog  *sharedmock.MockSyncLogRepository
	sut      commands.ReconcileCommands
}

func newReconcileFixture(t *testing.T, batchSize int) *reconcileFixture {
	ctrl := gomock.NewController(t)

	f := &reconcileFixture{
		redeemer: mockcommands.NewMockRedeemCommands(ctrl),
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		syncLog:  sharedmock.NewMockSyncLogRepository(ctrl),
	}

	f.tx.EXPECT().SyncLog().Return(f.syncLog).AnyTimes()
	f.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		},
	).AnyTimes()

	cfg := config.VoucherConfig{MaxSyncBatchSize: batchSize}
	f.sut = commands.NewReconcileCommands(f.redeemer, f.uow, clock.NewMockClock(fixedNow), cfg)
	return f
}

func attempt(localID, code string) commands.RedemptionAttempt {
	return commands.RedemptionAttempt{
		LocalID:        localID,
		VoucherCode:    code,
		CafeteriaID:    uuid.New(),
		LocalTimestamp: fixedNow.Add(-time.Hour),
	}
}

func TestReconcile_EmptyBatch(t *testing.T) {
	f := newReconcileFixture(t, 50)

	result, err := f.sut.Reconcile(context.Background(), uuid.New(), nil)

	require.Nil(t, result)
	require.ErrorIs(t, err, errs.ErrDomainValidation)
}

func TestReconcile_BatchOverCap(t *testing.T) {
	f := newReconcileFixture(t, 2)

	attempts := []commands.RedemptionAttempt{
		attempt("a", "MEAL-2025-0001"),
		attempt("b", "MEAL-2025-0002"),
		attempt("c", "MEAL-2025-0003"),
	}

	result, err := f.sut.Reconcile(context.Background(), uuid.New(), attempts)

	require.Nil(t, result)
	require.ErrorIs(t, err, errs.ErrBatchTooLarge)
}

func TestReconcile_MixedOutcomes(t *testing.T) {
	f := newReconcileFixture(t, 50)
	deviceID := uuid.New()

	synced := attempt("local-1", "MEAL-2025-0001")
	conflicted := attempt("local-2", "MEAL-2025-0002")
	missing := attempt("local-3", "MEAL-2025-0003")
	malformed := attempt("", "MEAL-2025-0004")

	redemptionID := uuid.New()
	winner := commands.ConflictInfo{
		ExistingTimestamp: fixedNow.Add(-2 * time.Hour),
		ExistingCafeteria: uuid.New(),
		ExistingDevice:    uuid.New(),
	}

	f.redeemer.EXPECT().
		Redeem(gomock.Any(), commands.RedeemParams{
			Code:        synced.VoucherCode,
			DeviceID:    deviceID,
			CafeteriaID: synced.CafeteriaID,
		}).
		Return(&commands.RedeemResult{
			VoucherID:    uuid.New(),
			RedemptionID: redemptionID,
			Code:         synced.VoucherCode,
			Status:       voucher.StatusRedeemed,
			RedeemedAt:   fixedNow,
		}, nil)
	f.redeemer.EXPECT().
		Redeem(gomock.Any(), gomock.AssignableToTypeOf(commands.RedeemParams{})).
		Return(nil, &commands.AlreadyRedeemedError{Existing: winner})
	f.redeemer.EXPECT().
		Redeem(gomock.Any(), gomock.AssignableToTypeOf(commands.RedeemParams{})).
		Return(nil, errs.ErrVoucherNotFound)

	var logged []shared.SyncLogEntry
	f.syncLog.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry shared.SyncLogEntry) error {
			logged = append(logged, entry)
			return nil
		}).
		Times(4)

	result, err := f.sut.Reconcile(context.Background(), deviceID,
		[]commands.RedemptionAttempt{synced, conflicted, missing, malformed})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 1, result.Conflicts)
	assert.Equal(t, 2, result.Errors)
	require.Len(t, result.Outcomes, 4)

	want := []commands.AttemptOutcome{
		{
			LocalID:      "local-1",
			VoucherCode:  synced.VoucherCode,
			Outcome:      commands.OutcomeSynced,
			RedemptionID: &redemptionID,
			RedeemedAt:   &fixedNow,
		},
		{
			LocalID:     "local-2",
			VoucherCode: conflicted.VoucherCode,
			Outcome:     commands.OutcomeConflict,
			Existing:    &winner,
			Reason:      commands.ReasonConflict,
		},
		{
			LocalID:     "local-3",
			VoucherCode: missing.VoucherCode,
			Outcome:     commands.OutcomeError,
			Reason:      commands.ReasonNotFound,
		},
		{
			LocalID:     "",
			VoucherCode: malformed.VoucherCode,
			Outcome:     commands.OutcomeError,
			Reason:      commands.ReasonInvalidStructure,
		},
	}
	if diff := cmp.Diff(want, result.Outcomes); diff != "" {
		t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
	}

	// Every attempt leaves a log entry regardless of outcome.
	require.Len(t, logged, 4)
	for i, entry := range logged {
		assert.Equal(t, deviceID, entry.DeviceID)
		assert.Equal(t, result.Outcomes[i].Outcome, entry.Outcome)
	}
}

func TestReconcile_ReplayedBatchStaysIdempotent(t *testing.T) {
	f := newReconcileFixture(t, 50)
	deviceID := uuid.New()
	replay := attempt("local-1", "MEAL-2025-0001")

	// A replayed attempt hits the conflict path inside Redeem; the sync log
	// absorbs the duplicate (device_id, local_id) pair.
	f.redeemer.EXPECT().
		Redeem(gomock.Any(), gomock.Any()).
		Return(nil, &commands.AlreadyRedeemedError{Existing: commands.ConflictInfo{
			ExistingTimestamp: fixedNow.Add(-time.Hour),
			ExistingDevice:    deviceID,
		}})
	f.syncLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.sut.Reconcile(context.Background(), deviceID,
		[]commands.RedemptionAttempt{replay})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Synced)
	assert.Equal(t, 1, result.Conflicts)
	assert.Equal(t, deviceID, result.Outcomes[0].Existing.ExistingDevice)
}

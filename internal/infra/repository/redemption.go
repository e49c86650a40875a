package repository

import (
	"context"

	"mealvoucher/internal/domain/voucher"
	"mealvoucher/internal/infra"
	"mealvoucher/internal/infra/db"
	"mealvoucher/internal/pkg/pgconv"
	"mealvoucher/internal/usecase/shared"

	"github.com/google/uuid"
)

type RedemptionRepository struct {
	q db.DBTX
}

func NewRedemptionRepository(q db.DBTX) *RedemptionRepository {
	return &RedemptionRepository{q: q}
}

// Create inserts the single redemption record for a voucher. The UNIQUE
// constraint on voucher_id is the race arbiter: the second concurrent insert
// fails with KindDuplicateKey.
func (r *RedemptionRepository) Create(ctx context.Context, voucherID uuid.UUID, rec voucher.RedemptionRecord) (uuid.UUID, error) {
	query := `
		INSERT INTO voucher_redemptions (id, voucher_id, redeemed_at, device_id, cafeteria_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6)`

	id := uuid.New()
	_, err := r.q.Exec(ctx, query, id, voucherID, rec.RedeemedAt, rec.DeviceID, rec.CafeteriaID, rec.Notes)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("voucher already redeemed", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert redemption", err)
	}

	return id, nil
}

func (r *RedemptionRepository) FindByVoucherID(ctx context.Context, voucherID uuid.UUID) (*shared.RedemptionSnapshot, error) {
	query := `
		SELECT id, voucher_id, redeemed_at, device_id, cafeteria_id, notes
		FROM voucher_redemptions WHERE voucher_id = $1`

	var snap shared.RedemptionSnapshot
	err := r.q.QueryRow(ctx, query, voucherID).Scan(
		&snap.ID, &snap.VoucherID, &snap.RedeemedAt, &snap.DeviceID, &snap.CafeteriaID, &snap.Notes,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("redemption not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find redemption by voucher ID", err)
	}
	return &snap, nil
}

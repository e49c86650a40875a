package repository

import (
	"context"

	"mealvoucher/internal/infra"
	"mealvoucher/internal/infra/db"
	"mealvoucher/internal/usecase/shared"
)

type SyncLogRepository struct {
	q db.DBTX
}

func NewSyncLogRepository(q db.DBTX) *SyncLogRepository {
	return &SyncLogRepository{q: q}
}

// Append writes one processed attempt to the append-only sync log. A replayed
// (device_id, local_id) pair is absorbed by ON CONFLICT DO NOTHING so the log
// keeps the first classification.
func (r *SyncLogRepository) Append(ctx context.Context, entry shared.SyncLogEntry) error {
	query := `
		INSERT INTO redemption_sync_log (device_id, local_id, voucher_code, outcome, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (device_id, local_id) DO NOTHING`

	_, err := r.q.Exec(ctx, query,
		entry.DeviceID, entry.LocalID, entry.VoucherCode, entry.Outcome, entry.Detail, entry.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append sync log entry", err)
	}
	return nil
}

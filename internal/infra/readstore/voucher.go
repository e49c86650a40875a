package readstore

import (
	"context"
	"time"

	"mealvoucher/internal/infra"
	"mealvoucher/internal/infra/db"
	"mealvoucher/internal/pkg/pgconv"
	"mealvoucher/internal/usecase/queries"

	"github.com/google/uuid"
)

// VoucherReadStore serves the query side with denormalized voucher views,
// joining the redemption record when one exists.
type VoucherReadStore struct {
	q db.DBTX
}

func NewVoucherReadStore(q db.DBTX) *VoucherReadStore {
	return &VoucherReadStore{q: q}
}

const voucherViewQuery = `
	SELECT
		v.id, v.code, v.stay_id, v.status, v.valid_from, v.valid_until,
		v.allowance, v.signature, v.cancel_reason, v.created_at, v.updated_at,
		r.id, r.redeemed_at, r.device_id, r.cafeteria_id, r.notes
	FROM vouchers v
	LEFT JOIN voucher_redemptions r ON r.voucher_id = v.id`

func (s *VoucherReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VoucherView, error) {
	view, err := scanVoucherView(s.q.QueryRow(ctx, voucherViewQuery+` WHERE v.id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read voucher by ID", err)
	}
	return view, nil
}

func (s *VoucherReadStore) FindByCode(ctx context.Context, code string) (*queries.VoucherView, error) {
	view, err := scanVoucherView(s.q.QueryRow(ctx, voucherViewQuery+` WHERE v.code = $1`, code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read voucher by code", err)
	}
	return view, nil
}

func (s *VoucherReadStore) ListByStay(ctx context.Context, stayID uuid.UUID) ([]queries.VoucherView, error) {
	rows, err := s.q.Query(ctx, voucherViewQuery+` WHERE v.stay_id = $1 ORDER BY v.code`, stayID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vouchers by stay", err)
	}
	defer rows.Close()

	var views []queries.VoucherView
	for rows.Next() {
		view, err := scanVoucherView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan voucher view", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate voucher views", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVoucherView(row rowScanner) (*queries.VoucherView, error) {
	var (
		view queries.VoucherView

		// LEFT JOIN columns come back NULL for unredeemed vouchers
		redID        *uuid.UUID
		redAt        *time.Time
		redDevice    *uuid.UUID
		redCafeteria *uuid.UUID
		redNotes     *string
	)

	err := row.Scan(
		&view.ID, &view.Code, &view.StayID, &view.Status,
		&view.ValidFrom, &view.ValidUntil, &view.Allowance, &view.Signature,
		&view.CancelReason, &view.CreatedAt, &view.UpdatedAt,
		&redID, &redAt, &redDevice, &redCafeteria, &redNotes,
	)
	if err != nil {
		return nil, err
	}

	if redID != nil {
		view.Redemption = &queries.RedemptionView{
			ID:          *redID,
			RedeemedAt:  *redAt,
			DeviceID:    *redDevice,
			CafeteriaID: *redCafeteria,
			Notes:       redNotes,
		}
	}
	return &view, nil
}

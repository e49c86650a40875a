package repository

import (
	"context"
	"time"

	"mealvoucher/internal/domain/voucher"
	"mealvoucher/internal/infra"
	"mealvoucher/internal/infra/db"
	"mealvoucher/internal/pkg/pgconv"
	"mealvoucher/internal/usecase/shared"

	"github.com/google/uuid"
)

type VoucherRepository struct {
	q db.DBTX
}

// NewVoucherRepository builds the voucher adapter. Pass a pool or a tx.
func NewVoucherRepository(q db.DBTX) *VoucherRepository {
	return &VoucherRepository{q: q}
}

const voucherColumns = `id, code, stay_id, status, valid_from, valid_until, allowance, signature, cancel_reason, created_at, updated_at`

func (r *VoucherRepository) Create(ctx context.Context, v *voucher.Voucher) error {
	query := `
		INSERT INTO vouchers (id, code, stay_id, status, valid_from, valid_until, allowance, signature, cancel_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.q.Exec(ctx, query,
		v.ID(), v.Code().String(), v.StayID(), v.Status().String(),
		v.ValidFrom(), v.ValidUntil(), v.Allowance(), v.Signature(),
		v.CancelReason(), v.CreatedAt(), v.UpdatedAt(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("voucher code already exists", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("stay does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert voucher", err)
	}

	return nil
}

func (r *VoucherRepository) FindByCodeForUpdate(ctx context.Context, code string) (*shared.VoucherSnapshot, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE code = $1 FOR UPDATE`

	snap, err := r.scanVoucher(r.q.QueryRow(ctx, query, code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher by code", err)
	}
	return snap, nil
}

func (r *VoucherRepository) FindByCode(ctx context.Context, code string) (*shared.VoucherSnapshot, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE code = $1`

	snap, err := r.scanVoucher(r.q.QueryRow(ctx, query, code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher by code", err)
	}
	return snap, nil
}

func (r *VoucherRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.VoucherSnapshot, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE id = $1`

	snap, err := r.scanVoucher(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher by ID", err)
	}
	return snap, nil
}

func (r *VoucherRepository) SetStatusIfCurrent(ctx context.Context, id uuid.UUID, from, to voucher.Status, updatedAt time.Time) (bool, error) {
	query := `UPDATE vouchers SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`

	tag, err := r.q.Exec(ctx, query, id, from.String(), to.String(), updatedAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update voucher status", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *VoucherRepository) SetCancelled(ctx context.Context, id uuid.UUID, from voucher.Status, reason *string, updatedAt time.Time) (bool, error) {
	query := `
		UPDATE vouchers SET status = $3, cancel_reason = $4, updated_at = $5
		WHERE id = $1 AND status = $2`

	tag, err := r.q.Exec(ctx, query, id, from.String(), voucher.StatusCancelled.String(), reason, updatedAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel voucher", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *VoucherRepository) NextCodeSequence(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.q.QueryRow(ctx, `SELECT nextval('voucher_code_seq')`).Scan(&seq); err != nil {
		return 0, infra.WrapRepoErr("failed to advance voucher code sequence", err)
	}
	return seq, nil
}

func (r *VoucherRepository) ListOverdueActive(ctx context.Context, asOf time.Time, limit int32) ([]shared.VoucherSnapshot, error) {
	query := `
		SELECT ` + voucherColumns + `
		FROM vouchers
		WHERE status = 'active' AND valid_until < $1
		ORDER BY valid_until
		LIMIT $2`

	rows, err := r.q.Query(ctx, query, asOf, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue vouchers", err)
	}
	defer rows.Close()

	var result []shared.VoucherSnapshot
	for rows.Next() {
		snap, err := r.scanVoucher(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan voucher row", err)
		}
		result = append(result, *snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate voucher rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *VoucherRepository) scanVoucher(row rowScanner) (*shared.VoucherSnapshot, error) {
	var snap shared.VoucherSnapshot
	err := row.Scan(
		&snap.ID, &snap.Code, &snap.StayID, &snap.Status,
		&snap.ValidFrom, &snap.ValidUntil, &snap.Allowance, &snap.Signature,
		&snap.CancelReason, &snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

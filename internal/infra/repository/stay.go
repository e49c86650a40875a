package repository

import (
	"context"

	"mealvoucher/internal/infra"
	"mealvoucher/internal/infra/db"
	"mealvoucher/internal/pkg/pgconv"
	"mealvoucher/internal/usecase/shared"

	"github.com/google/uuid"
)

type StayRepository struct {
	q db.DBTX
}

func NewStayRepository(q db.DBTX) *StayRepository {
	return &StayRepository{q: q}
}

func (r *StayRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.StaySnapshot, error) {
	query := `SELECT id, check_in_date, check_out_date FROM stays WHERE id = $1`

	var snap shared.StaySnapshot
	err := r.q.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.CheckIn, &snap.CheckOut)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("stay not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find stay by ID", err)
	}
	return &snap, nil
}

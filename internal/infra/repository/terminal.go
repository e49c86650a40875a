package repository

import (
	"context"
	"time"

	"mealvoucher/internal/infra"
	"mealvoucher/internal/infra/db"
	"mealvoucher/internal/pkg/pgconv"
	"mealvoucher/internal/usecase/shared"

	"github.com/google/uuid"
)

type TerminalRepository struct {
	q db.DBTX
}

func NewTerminalRepository(q db.DBTX) *TerminalRepository {
	return &TerminalRepository{q: q}
}

func (r *TerminalRepository) FindByName(ctx context.Context, name string) (*shared.TerminalSnapshot, error) {
	query := `SELECT id, name, cafeteria_id, secret_hash, active FROM terminals WHERE name = $1`

	var snap shared.TerminalSnapshot
	err := r.q.QueryRow(ctx, query, name).Scan(
		&snap.ID, &snap.Name, &snap.CafeteriaID, &snap.SecretHash, &snap.Active,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("terminal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find terminal by name", err)
	}
	return &snap, nil
}

func (r *TerminalRepository) UpdateLastSeen(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE terminals SET last_seen_at = $2 WHERE id = $1`

	if _, err := r.q.Exec(ctx, query, id, at); err != nil {
		return infra.WrapRepoErr("failed to update terminal last seen", err)
	}
	return nil
}

package components

import (
	"mealvoucher/internal/infra/db"
	"mealvoucher/internal/infra/readstore"
	"mealvoucher/internal/infra/uow"
	"mealvoucher/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// NewPostgresUoW already returns the shared.UnitOfWork interface
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewVoucherReadStore,
			fx.As(new(queries.VoucherReader)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

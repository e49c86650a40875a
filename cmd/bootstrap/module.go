package bootstrap

import (
	"mealvoucher/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	SignerModule,
	AuditModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

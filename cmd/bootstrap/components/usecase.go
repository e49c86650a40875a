package components

import (
	"mealvoucher/internal/pkg/clock"
	"mealvoucher/internal/pkg/config"
	"mealvoucher/internal/usecase/commands"
	"mealvoucher/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.VoucherConfig {
		return cfg.Voucher
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewIssueCommands,
		commands.NewRedeemCommands,
		commands.NewLifecycleCommands,
		commands.NewReconcileCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVoucherQueries,
	),
)

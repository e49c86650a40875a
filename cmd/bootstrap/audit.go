package bootstrap

import (
	"log/slog"

	"mealvoucher/internal/pkg/audit"

	"go.uber.org/fx"
)

var AuditModule = fx.Module("audit",
	fx.Provide(
		func(logger *slog.Logger) audit.Sink {
			return audit.NewSlogSink(logger)
		},
	),
)

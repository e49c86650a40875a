package components

import (
	"mealvoucher/internal/handler"
	"mealvoucher/internal/handler/api"
	"mealvoucher/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewVoucherHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

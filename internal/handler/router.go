package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mealvoucher/internal/handler/api"
	"mealvoucher/internal/handler/middleware"
	"mealvoucher/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, authHandler *api.AuthHandler, voucherHandler *api.VoucherHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, voucherHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, authHandler *api.AuthHandler, voucherHandler *api.VoucherHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})
		}

		vouchers := apiGroup.Group("/vouchers")
		vouchers.Use(authMiddleware.RequireTerminal())
		{
			addRoutes(vouchers, []route{
				{Method: http.MethodPost, Path: "", Handler: voucherHandler.IssueVouchers},
				{Method: http.MethodPost, Path: "/redeem", Handler: voucherHandler.RedeemVoucher},
				{Method: http.MethodPost, Path: "/redeem-batch", Handler: voucherHandler.RedeemBatch},
				{Method: http.MethodPost, Path: "/validate", Handler: voucherHandler.ValidateVoucher},
				{Method: http.MethodPost, Path: "/expire-sweep", Handler: voucherHandler.ExpireSweep},
				{Method: http.MethodGet, Path: "/:id", Handler: voucherHandler.GetVoucher},
				{Method: http.MethodPost, Path: "/:id/activate", Handler: voucherHandler.ActivateVoucher},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: voucherHandler.CancelVoucher},
			})
		}

		stays := apiGroup.Group("/stays")
		stays.Use(authMiddleware.RequireTerminal())
		{
			addRoutes(stays, []route{
				{Method: http.MethodGet, Path: "/:id/vouchers", Handler: voucherHandler.ListStayVouchers},
			})
		}

		redemptions := apiGroup.Group("/redemptions")
		redemptions.Use(authMiddleware.RequireTerminal())
		{
			addRoutes(redemptions, []route{
				{Method: http.MethodPost, Path: "/sync", Handler: voucherHandler.SyncRedemptions},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/handler/api"
	"spotlight-ledger/internal/handler/middleware"
	"spotlight-ledger/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Network    *api.NetworkHandler
	Schedule   *api.ScheduleHandler
	Account    *api.AccountHandler
	Allocation *api.AllocationHandler
	Withdrawal *api.WithdrawalHandler
	Deposit    *api.DepositHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger())
	engine.Use(middleware.RequestMetrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/networks", Handler: h.Network.List},
			{Method: http.MethodGet, Path: "/schedule", Handler: h.Schedule.Snapshot},
			{Method: http.MethodGet, Path: "/schedule/coins/:coinId", Handler: h.Schedule.CoinStatus},
			{Method: http.MethodPost, Path: "/schedule/preview", Handler: h.Schedule.Preview},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Account.Me},
			{Method: http.MethodGet, Path: "/me/entries", Handler: h.Account.Entries},
			{Method: http.MethodPost, Path: "/allocations", Handler: h.Allocation.Create},
			{Method: http.MethodGet, Path: "/allocations", Handler: h.Allocation.ListMine},
			{Method: http.MethodPost, Path: "/withdrawals", Handler: h.Withdrawal.Create},
			{Method: http.MethodGet, Path: "/withdrawals", Handler: h.Withdrawal.ListMine},
			{Method: http.MethodPost, Path: "/withdrawals/:id/cancel", Handler: h.Withdrawal.Cancel},
			{Method: http.MethodPost, Path: "/deposits", Handler: h.Deposit.Create},
			{Method: http.MethodGet, Path: "/deposits", Handler: h.Deposit.ListMine},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(account.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/accounts", Handler: h.Account.Open},
				{Method: http.MethodPost, Path: "/accounts/:id/credit", Handler: h.Account.Credit},
				{Method: http.MethodPost, Path: "/accounts/:id/debit", Handler: h.Account.Debit},
				{Method: http.MethodGet, Path: "/allocations", Handler: h.Allocation.ListAll},
				{Method: http.MethodPost, Path: "/allocations/:id/cancel", Handler: h.Allocation.Cancel},
				{Method: http.MethodPost, Path: "/allocations/:id/close", Handler: h.Allocation.Close},
				{Method: http.MethodGet, Path: "/withdrawals", Handler: h.Withdrawal.ListAll},
				{Method: http.MethodPost, Path: "/withdrawals/:id/resolve", Handler: h.Withdrawal.Resolve},
				{Method: http.MethodGet, Path: "/deposits", Handler: h.Deposit.ListAll},
				{Method: http.MethodPost, Path: "/deposits/:id/resolve", Handler: h.Deposit.Resolve},
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

package handler

import (
	"carbon-credit-exchange/internal/adapter/http/middleware"
	redisStore "carbon-credit-exchange/internal/adapter/storage/redis"
	"carbon-credit-exchange/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	RegistrySvc    ports.RegistryService
	TradingSvc     ports.TradingService
	FundsLedger    ports.FundsLedger
	CreditLedger   ports.CreditLedger
	Authz          ports.AuthorizationPolicy
	RoleRepo       ports.RoleRepository
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	registryHandler := NewRegistryHandler(deps.RegistrySvc)
	tradingHandler := NewTradingHandler(deps.TradingSvc)

	// --- Project registry ---
	projects := v1.Group("/projects")
	{
		projects.GET("/:id", rl("queries"), registryHandler.Get)

		projects.POST("", jwtAuth, rl("registry"), registryHandler.Submit)
		projects.GET("", jwtAuth, rl("queries"), registryHandler.ListMine)
		projects.PUT("/:id", jwtAuth, rl("registry"), registryHandler.Edit)
		projects.POST("/:id/accept", jwtAuth, rl("registry"), registryHandler.Accept)
		projects.POST("/:id/reject", jwtAuth, rl("registry"), registryHandler.Reject)
	}

	// --- Trading engine ---
	orders := v1.Group("/orders")
	{
		orders.GET("", rl("queries"), tradingHandler.ListOpen)
		orders.GET("/:id", rl("queries"), tradingHandler.Get)
		// Permissionless lazy expiration probe
		orders.POST("/:id/check-expiration", rl("trades"), tradingHandler.CheckExpiration)

		orders.POST("", jwtAuth, rl("orders"), tradingHandler.Create)
		orders.POST("/:id/execute", jwtAuth, rl("trades"), tradingHandler.Execute)
		orders.DELETE("/:id", jwtAuth, rl("orders"), tradingHandler.Cancel)
	}

	market := v1.Group("/market")
	{
		market.GET("/settings", rl("queries"), tradingHandler.GetSettings)
	}

	// --- Wallet (JWT-authenticated) ---
	walletHandler := NewWalletHandler(deps.FundsLedger, deps.CreditLedger)
	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.GET("/balance", rl("wallet"), walletHandler.GetBalance)
		wallet.POST("/deposit", rl("wallet"), walletHandler.Deposit)
		wallet.GET("/credits/:projectID", rl("wallet"), walletHandler.GetCreditBalance)
		wallet.PUT("/approvals", rl("wallet"), walletHandler.SetApproval)
	}

	// --- Administration (JWT-authenticated, role-checked downstream) ---
	adminHandler := NewAdminHandler(deps.TradingSvc, deps.Authz, deps.RoleRepo)
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.PUT("/fee", rl("registry"), adminHandler.UpdateFee)
		admin.POST("/pause", rl("registry"), adminHandler.TogglePause)
		admin.POST("/roles", rl("registry"), adminHandler.GrantRole)
		admin.DELETE("/roles", rl("registry"), adminHandler.RevokeRole)
	}

	return r
}

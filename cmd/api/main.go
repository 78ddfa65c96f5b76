package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carbon-credit-exchange/config"
	httpHandler "carbon-credit-exchange/internal/adapter/http/handler"
	pgStorage "carbon-credit-exchange/internal/adapter/storage/postgres"
	redisStorage "carbon-credit-exchange/internal/adapter/storage/redis"
	"carbon-credit-exchange/internal/core/domain"
	"carbon-credit-exchange/internal/core/ports"
	"carbon-credit-exchange/internal/service"
	"carbon-credit-exchange/pkg/logger"

	"github.com/google/uuid"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Carbon Credit Exchange")

	ctx := context.Background()

	escrowAccount, err := uuid.Parse(cfg.Marketplace.EscrowAccount)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid escrow account id")
	}
	platformAccount, err := uuid.Parse(cfg.Marketplace.PlatformAccount)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid platform account id")
	}

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories and ledgers
	projectRepo := pgStorage.NewProjectRepo(pool)
	orderRepo := pgStorage.NewOrderRepo(pool)
	settingsRepo := pgStorage.NewSettingsRepo(pool)
	accountRepo := pgStorage.NewAccountRepo(pool)
	roleRepo := pgStorage.NewRoleRepo(pool)
	creditLedger := pgStorage.NewCreditLedger(pool)
	fundsLedger := pgStorage.NewFundsLedger(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Seed the settings row and configured admin accounts
	if err := settingsRepo.Seed(ctx, cfg.Marketplace.FeeBps, cfg.Marketplace.Paused); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed market settings")
	}
	for _, raw := range cfg.Marketplace.AdminAccounts {
		adminID, err := uuid.Parse(raw)
		if err != nil {
			log.Fatal().Err(err).Str("account", raw).Msg("Invalid admin account id")
		}
		if err := roleRepo.Grant(ctx, adminID, domain.RoleMarketplaceAdmin); err != nil {
			log.Fatal().Err(err).Str("account", raw).Msg("Failed to grant admin role")
		}
	}

	// Initialize Redis-backed components
	publisher := redisStorage.NewPublisher(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	fingerprintSvc := service.NewSHA256FingerprintService()
	authz := service.NewRoleAuthorizationPolicy(roleRepo)

	// Initialize business services
	authSvc := service.NewAuthService(accountRepo, hashSvc, tokenSvc)
	registrySvc, err := service.NewRegistryService(
		projectRepo,
		creditLedger,
		authz,
		fingerprintSvc,
		publisher,
		transactor,
		cfg.Marketplace.MintPercentage,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize registry service")
	}
	tradingSvc := service.NewTradingService(
		orderRepo,
		settingsRepo,
		registrySvc,
		creditLedger,
		fundsLedger,
		authz,
		publisher,
		transactor,
		escrowAccount,
		platformAccount,
		cfg.Marketplace.OrderTTL,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		RegistrySvc:    registrySvc,
		TradingSvc:     tradingSvc,
		FundsLedger:    fundsLedger,
		CreditLedger:   creditLedger,
		Authz:          authz,
		RoleRepo:       roleRepo,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

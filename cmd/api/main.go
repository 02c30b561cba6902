package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fillipeguerrabtc/agro-token-kaleido/config"
	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/adapter/chain"
	httpHandler "github.com/fillipeguerrabtc/agro-token-kaleido/internal/adapter/http/handler"
	pgStorage "github.com/fillipeguerrabtc/agro-token-kaleido/internal/adapter/storage/postgres"
	redisStorage "github.com/fillipeguerrabtc/agro-token-kaleido/internal/adapter/storage/redis"
	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/adapter/ws"
	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/ports"
	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/service"
	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Agro Token Platform")

	ctx := context.Background()

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

	// Chain backend: live iff both contract addresses are configured
	backend, err := chain.New(cfg.Chain, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize chain backend")
	}

	// Key vault for custodial signing keys
	vault, err := service.NewKeyVault(cfg.Vault.Secret)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize key vault")
	}

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	assetRepo := pgStorage.NewAssetTokenRepo(pool)
	listingRepo := pgStorage.NewListingRepo(pool)
	orderRepo := pgStorage.NewOrderRepo(pool)
	stableRepo := pgStorage.NewStablecoinTxRepo(pool)
	historyRepo := pgStorage.NewHistoryRepo(pool)
	crossRepo := pgStorage.NewCrossBorderRepo(pool)

	// Listing claim lock
	listingLock := redisStorage.NewListingLock(rdb)

	// WebSocket hub
	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	hub := ws.NewHub(log)
	go hub.Run(hubCtx)

	// Initialize business services
	walletSvc := service.NewWalletService(walletRepo, vault, backend, logger.Component(log, "wallet"))
	settlementSvc := service.NewSettlementService(
		walletRepo,
		assetRepo,
		listingRepo,
		orderRepo,
		stableRepo,
		historyRepo,
		crossRepo,
		vault,
		backend,
		hub,
		listingLock,
		logger.Component(log, "settlement"),
	)
	tokenizationSvc := service.NewTokenizationService(
		walletRepo,
		assetRepo,
		listingRepo,
		historyRepo,
		vault,
		backend,
		hub,
		logger.Component(log, "tokenization"),
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:       walletSvc,
		SettlementSvc:   settlementSvc,
		TokenizationSvc: tokenizationSvc,
		Hub:             hub,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		Logger:          log,
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
	stopHub()

	log.Info().Msg("Server exited")
}

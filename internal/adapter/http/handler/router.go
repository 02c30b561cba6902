package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/adapter/http/middleware"
	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/adapter/ws"
	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/ports"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc       ports.WalletService
	SettlementSvc   ports.SettlementService
	TokenizationSvc ports.TokenizationService
	Hub             *ws.Hub
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Event stream
	r.GET("/ws", func(c *gin.Context) {
		deps.Hub.HandleWS(c.Writer, c.Request)
	})

	// API v1 routes
	v1 := r.Group("/api/v1")

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallets := v1.Group("/wallets")
	{
		wallets.POST("", walletHandler.Create)
		wallets.POST("/import", walletHandler.Import)
		wallets.GET("", walletHandler.List)
		wallets.GET("/:address/balances", walletHandler.Balances)
	}

	stablecoinHandler := NewStablecoinHandler(deps.SettlementSvc)
	stablecoin := v1.Group("/stablecoin")
	{
		stablecoin.POST("/mint", stablecoinHandler.Mint)
		stablecoin.POST("/burn", stablecoinHandler.Burn)
		stablecoin.POST("/transfer", stablecoinHandler.Transfer)
		stablecoin.GET("/transactions/:address", stablecoinHandler.Transactions)
	}
	v1.POST("/payments/cross-border", stablecoinHandler.CrossBorder)
	v1.GET("/payments/cross-border/:address", stablecoinHandler.CrossBorderPayments)
	v1.GET("/history/:address", stablecoinHandler.History)

	marketplaceHandler := NewMarketplaceHandler(deps.TokenizationSvc, deps.SettlementSvc)
	assets := v1.Group("/assets")
	{
		assets.POST("/tokenize", marketplaceHandler.Tokenize)
		assets.GET("/:address", marketplaceHandler.AssetsByOwner)
	}
	marketplace := v1.Group("/marketplace")
	{
		marketplace.POST("/listings", marketplaceHandler.ListForSale)
		marketplace.GET("/listings", marketplaceHandler.ActiveListings)
		marketplace.POST("/listings/:id/cancel", marketplaceHandler.CancelListing)
		marketplace.GET("/orders/:address", marketplaceHandler.OrdersByBuyer)
		marketplace.POST("/buy", marketplaceHandler.Buy)
	}

	return r
}

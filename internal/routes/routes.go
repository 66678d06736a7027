// Package routes wires repositories, services and handlers together and
// registers the HTTP surface.
package routes

import (
	"quicktop/internal/config"
	"quicktop/internal/handlers"
	"quicktop/internal/middleware"
	"quicktop/internal/repositories"
	"quicktop/internal/services/auth"
	"quicktop/internal/services/purchase"
	"quicktop/internal/services/wallet"
	"quicktop/internal/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes is the composition root. Everything downstream of the fiber
// app is constructed here and injected.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	walletRepo := repositories.NewWalletRepository(db)
	txnRepo := repositories.NewTransactionRepository(db)
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)

	var walletCache wallet.Cache
	var purchaseCache purchase.Cache
	if repositories.CacheService != nil {
		walletCache = repositories.CacheService
		purchaseCache = repositories.CacheService
	}

	authService := auth.NewService(userRepo)
	walletService := wallet.NewService(walletRepo, txnRepo, walletCache)
	gateway := purchase.NewVTUGateway(purchase.GatewayConfig{
		Latency:     config.GetDurationEnv("PROVIDER_LATENCY", 0),
		FailureRate: config.GetFloatEnv("PROVIDER_FAILURE_RATE", 0),
	})
	purchaseService := purchase.NewService(walletRepo, txnRepo, gateway, purchaseCache, purchase.Config{
		ProviderTimeout: config.GetDurationEnv("PROVIDER_TIMEOUT", 0),
	})

	authHandler := handlers.NewAuthHandler(authService)
	walletHandler := handlers.NewWalletHandler(walletService)
	servicesHandler := handlers.NewServicesHandler(purchaseService)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("QuickTop API is running")
	})
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return utils.Success(c, fiber.Map{"uptime": "ok"})
	})

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	walletGroup := api.Group("/wallet", authMiddleware.Handler)
	walletGroup.Get("/balance", walletHandler.GetBalance)
	walletGroup.Get("/transactions", walletHandler.GetTransactions)
	walletGroup.Post("/fund", walletHandler.FundWallet)

	servicesGroup := api.Group("/services", authMiddleware.Handler)
	servicesGroup.Post("/airtime", servicesHandler.BuyAirtime)
	servicesGroup.Post("/data", servicesHandler.BuyData)
	servicesGroup.Post("/cable", servicesHandler.BuyCable)
	servicesGroup.Post("/electricity", servicesHandler.BuyElectricity)
}

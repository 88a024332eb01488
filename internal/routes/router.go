package routes

import (
	"net/http"

	"installer-track/internal/config"
	"installer-track/internal/delivery/http/handler"
	"installer-track/internal/events"
	"installer-track/internal/infrastructure/database/postgres"
	"installer-track/internal/logger"
	"installer-track/internal/middleware"
	"installer-track/internal/usecase/auth"
	"installer-track/internal/usecase/inventory"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires repositories, services and handlers onto the router.
// credDB is the credential store, invDB the device inventory store; they
// are separate databases.
func SetupRoutes(cfg *config.Config, credDB, invDB *postgres.DB, publisher events.Publisher) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := credDB.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Credential database connection failed",
			})
			return
		}
		if err := invDB.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Inventory database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	installerRepository := postgres.NewInstallerRepository(credDB)
	authService := auth.NewService(installerRepository, cfg)
	authHandler := handler.NewAuthHandler(authService)

	deviceRepository := postgres.NewDeviceRepository(invDB)
	inventoryService := inventory.NewService(deviceRepository, publisher)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)

	api := router.Group("/api")
	{
		authHandler.RegisterRoutes(api)
		inventoryHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			inventoryHandler.RegisterProtectedRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}

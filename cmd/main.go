package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"installer-track/internal/config"
	"installer-track/internal/events"
	"installer-track/internal/infrastructure/database/postgres"
	"installer-track/internal/logger"
	"installer-track/internal/routes"
	"installer-track/pkg/mqtt"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("environment", env),
	)

	if cfg.Credentials.Host == "" || cfg.Credentials.DBName == "" {
		logger.Fatal("Credential database configuration is missing. Please set CRED_DB_HOST and CRED_DB_NAME environment variables.")
	}
	if cfg.Inventory.Host == "" || cfg.Inventory.DBName == "" {
		logger.Fatal("Inventory database configuration is missing. Please set INV_DB_HOST and INV_DB_NAME environment variables.")
	}
	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT secret is missing. Please set JWT_SECRET environment variable.")
	}

	credDB, err := postgres.NewDB(&cfg.Credentials, env)
	if err != nil {
		logger.Fatal("Failed to connect to credential database", zap.Error(err))
	}
	defer func() {
		if err := credDB.Close(); err != nil {
			logger.Error("Failed to close credential database connection", zap.Error(err))
		}
	}()

	invDB, err := postgres.NewDB(&cfg.Inventory, env)
	if err != nil {
		logger.Fatal("Failed to connect to inventory database", zap.Error(err))
	}
	defer func() {
		if err := invDB.Close(); err != nil {
			logger.Error("Failed to close inventory database connection", zap.Error(err))
		}
	}()

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.MQTT.Broker != "" {
		client := mqtt.NewClient(&mqtt.Config{
			Broker:               cfg.MQTT.Broker,
			ClientID:             cfg.MQTT.ClientID,
			Username:             cfg.MQTT.Username,
			Password:             cfg.MQTT.Password,
			ConnectTimeout:       10 * time.Second,
			MaxReconnectInterval: 1 * time.Minute,
		})
		if err := client.Connect(); err != nil {
			// Event publishing is best-effort; the API stays up without it.
			logger.Warn("Failed to connect to MQTT broker, status events disabled", zap.Error(err))
		} else {
			defer client.Disconnect()
			publisher = events.NewMQTTPublisher(client, cfg.MQTT.TopicPrefix)
		}
	}

	router := routes.SetupRoutes(cfg, credDB, invDB, publisher)

	host := cfg.Server.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Failed to shutdown server", zap.Error(err))
	}

	log.Println("Server exited properly")
}

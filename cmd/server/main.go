package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "github.com/ezyy-cloud/rentals-sub000/internal/api/http"
	"github.com/ezyy-cloud/rentals-sub000/internal/clock"
	"github.com/ezyy-cloud/rentals-sub000/internal/config"
	"github.com/ezyy-cloud/rentals-sub000/internal/logger"
	"github.com/ezyy-cloud/rentals-sub000/internal/migrations"
	"github.com/ezyy-cloud/rentals-sub000/internal/repository/postgres"
	"github.com/ezyy-cloud/rentals-sub000/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting rentals booking server...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Apply schema migrations
	if err := migrations.Run(db, cfg.Migrations.Path); err != nil {
		logger.Error("Failed to apply migrations", "error", err)
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	logger.Info("Database schema up to date")

	// Initialize Repositories
	store := postgres.NewStore(db)
	clk := clock.New()

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
	)

	// Initialize Services
	availabilitySvc := service.NewAvailabilityService(
		store.DeviceTypeRepository,
		store.DeviceRepository,
		store.RentalRepository,
	)
	bookingSvc := service.NewBookingService(
		store.AllocationRepository,
		store.DeviceTypeRepository,
		store.RentalRepository,
		store.NotificationRepository,
		emailSvc,
		clk,
	)
	lifecycleSvc := service.NewLifecycleService(
		store.RentalRepository,
		store.NotificationRepository,
		clk,
	)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)
	subscriptionSvc := service.NewSubscriptionService(
		store.DeviceRepository,
		store.SubscriptionPaymentRepository,
		clk,
	)

	// Set up HTTP server
	router := httpapi.NewRouter(
		availabilitySvc,
		bookingSvc,
		lifecycleSvc,
		notificationSvc,
		subscriptionSvc,
		clk,
	)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}

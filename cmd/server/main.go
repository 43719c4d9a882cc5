package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"rentledger-be-svc/docs"
	"rentledger-be-svc/internal/config"
	"rentledger-be-svc/internal/database"
	"rentledger-be-svc/internal/handler"
	"rentledger-be-svc/internal/middleware"
	"rentledger-be-svc/internal/repository"
	"rentledger-be-svc/internal/scheduler"
	"rentledger-be-svc/internal/service"
	"rentledger-be-svc/pkg/logger"
)

// @title Rent Ledger Backend Service API
// @version 1.0
// @description RESTful API for the property-management billing ledger and payment reconciliation engine

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Rent Ledger Backend Service API"
	docs.SwaggerInfo.Description = "RESTful API for the property-management billing ledger and payment reconciliation engine"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Rent Ledger Backend Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	billRepo := repository.NewBillRepository(db.DB)
	tenantRepo := repository.NewTenantRepository(db.DB)
	schedulerLogRepo := repository.NewSchedulerLogRepository(db.DB)

	// Initialize services
	tenantSyncService := service.NewTenantSyncService(billRepo, tenantRepo)
	ledgerService := service.NewLedgerService(billRepo, tenantRepo, tenantSyncService, appLogger)
	batchService := service.NewRentBatchService(ledgerService, tenantRepo, billRepo, appLogger)
	tenantService := service.NewTenantService(tenantRepo, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS())
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, ledgerService, batchService, tenantService, appLogger)

	// Start the monthly rent scheduler
	var rentScheduler *scheduler.RentScheduler
	if cfg.Scheduler.Enabled {
		rentScheduler = scheduler.NewRentScheduler(batchService, tenantRepo, schedulerLogRepo, appLogger, cfg.Scheduler.RentCronExpression)
		if err := rentScheduler.Start(); err != nil {
			appLogger.WithField("error", err).Fatal("Failed to start rent scheduler")
		}
	}

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Stop the scheduler before draining requests
	if rentScheduler != nil {
		rentScheduler.Stop()
	}

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}

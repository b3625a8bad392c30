package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config2 "dev-insights-service/pkg/config"

	_ "dev-insights-service/docs"
	"dev-insights-service/internal/handler"
	"dev-insights-service/internal/repository"
	"dev-insights-service/internal/router"
	"dev-insights-service/internal/service"
	"dev-insights-service/migrations"

	"github.com/go-playground/validator/v10"
)

// @title Developer Insights Service API
// @version 1.0
// @description Computes developer and team productivity metrics from version-control and review activity and persists them as period snapshots.
func main() {
	// Configure logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config2.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Apply schema migrations
	if err := config2.RunMigrations(*cfg, migrations.FS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Connect to database
	pool, err := config2.MustInitDB(context.Background(), *cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	slog.Info("successfully connected to database")

	// Initialize repositories
	activityRepo := repository.NewActivityRepository(pool)
	directoryRepo := repository.NewDirectoryRepository(pool)
	snapshotRepo := repository.NewSnapshotRepository(pool)

	// Initialize validator
	validate := validator.New()

	// Initialize services
	insightsService := service.NewInsightsService(activityRepo, directoryRepo, snapshotRepo)
	snapshotService := service.NewSnapshotService(insightsService, snapshotRepo, cfg.SnapshotConcurrency)

	// Initialize handlers
	insightsHandler := handler.NewInsightsHandler(insightsService)
	snapshotHandler := handler.NewSnapshotHandler(snapshotService, validate)
	healthHandler := handler.NewHealthHandler(pool)

	slog.Info("successfully configured services and handlers")

	// Setup router
	r := router.SetupRouter(
		insightsHandler,
		snapshotHandler,
		healthHandler,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
}

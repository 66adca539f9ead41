package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"finance-visualizer/internal/config"
	"finance-visualizer/internal/database"
	"finance-visualizer/internal/repositories"
	"finance-visualizer/internal/server"
	"finance-visualizer/internal/services"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to read .env file: %v", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := cfg.Logging.NewLogger()
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	transactionRepo := repositories.NewTransactionRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	metrics := services.NewPrometheusMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Features.SeedDemoData {
		seeder := services.NewDemoSeeder(transactionRepo, budgetRepo, categoryRepo, metrics, gofakeit.New(0))
		if _, err := seeder.SeedIfEmpty(ctx); err != nil {
			logger.Error("failed to seed demo data", "error", err)
		}
	}

	deps := server.Dependencies{
		Health:           db,
		TransactionRepo:  transactionRepo,
		BudgetRepo:       budgetRepo,
		CategoryRepo:     categoryRepo,
		Dashboard:        services.NewDashboardService(transactionRepo, budgetRepo, categoryRepo, metrics),
		Metrics:          metrics,
		MetricsHandler:   promhttp.Handler(),
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
	}

	e := server.NewRouter(deps)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		logger.Info("starting finance visualizer API",
			"address", cfg.Server.Address(),
			"environment", cfg.Server.Environment,
			"driver", db.Driver(),
		)
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	logger.Info("server stopped")
}

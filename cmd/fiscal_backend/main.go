package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/fiscal_balance/internal/core/ports/repositories"
	"github.com/SscSPs/fiscal_balance/internal/core/services"
	"github.com/SscSPs/fiscal_balance/internal/handlers"
	"github.com/SscSPs/fiscal_balance/internal/middleware"
	"github.com/SscSPs/fiscal_balance/internal/platform/config"
	"github.com/SscSPs/fiscal_balance/internal/platform/events"
	"github.com/SscSPs/fiscal_balance/internal/repositories/database/pgsql"
	"github.com/SscSPs/fiscal_balance/internal/repositories/memory"
	"github.com/SscSPs/fiscal_balance/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Fiscal Balance API
// @version 1.0
// @description Double-entry ledger: workplaces, accounts, journals, reversals and balances.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	var repoProvider repositories.RepositoryProvider
	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")
		repoProvider = memory.NewRepositoryProvider(memory.NewStore())
	default:
		if cfg.RunMigrations {
			applied, err := database.RunMigrations(cfg.DatabaseURL, logger)
			if err != nil {
				logger.Error("Failed to run database migrations", slog.String("error", err.Error()))
				os.Exit(1)
			}
			logger.Info("Database migrations checked", slog.Bool("applied", applied))
		}

		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to create database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer dbPool.Close()
		logger.Info("Database connection pool established")
		repoProvider = pgsql.NewRepositoryProvider(dbPool)
	}

	publisher, err := events.NewPublisher(cfg, logger)
	if err != nil {
		logger.Error("Failed to create event publisher", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close event publisher", slog.String("error", err.Error()))
		}
	}()

	container := services.NewServiceContainer(cfg, repoProvider, publisher)

	if cfg.CurrencySeedFile != "" {
		seeded, err := container.Currency.SeedCurrencies(ctx, cfg.CurrencySeedFile)
		if err != nil {
			logger.Warn("Failed to seed currencies", slog.String("file", cfg.CurrencySeedFile), slog.String("error", err.Error()))
		} else {
			logger.Info("Currencies seeded", slog.Int("count", seeded))
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Starting server", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Failed to run server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

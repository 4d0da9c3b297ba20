package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"

	_ "github.com/SscSPs/property_ledger/cmd/docs"
	"github.com/SscSPs/property_ledger/internal/adapters/events/eventlog"
	"github.com/SscSPs/property_ledger/internal/adapters/events/kafka"
	"github.com/SscSPs/property_ledger/internal/core/chart"
	portsevents "github.com/SscSPs/property_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/property_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/property_ledger/internal/core/services"
	"github.com/SscSPs/property_ledger/internal/handlers"
	"github.com/SscSPs/property_ledger/internal/middleware"
	"github.com/SscSPs/property_ledger/internal/platform/config"
	"github.com/SscSPs/property_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/property_ledger/internal/repositories/memory"
	"github.com/SscSPs/property_ledger/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Property Ledger API
// @version 1.0
// @description Double-entry ledger and financial reports for property management.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	registry := chart.Default()
	if cfg.ChartOfAccountsFile != "" {
		registry, err = chart.LoadRegistry(cfg.ChartOfAccountsFile)
		if err != nil {
			logger.Error("Failed to load chart of accounts", slog.String("file", cfg.ChartOfAccountsFile), slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Chart of accounts extended", slog.String("file", cfg.ChartOfAccountsFile), slog.Int("accounts", len(registry.Accounts())))
	}

	repos, closeRepos := setupRepositories(cfg, logger)
	defer closeRepos()

	publisher, closePublisher := setupPublisher(cfg, logger)
	defer closePublisher()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	if cfg.RateLimit != "" {
		lim, closeLimiter := setupRateLimiter(cfg, logger)
		defer closeLimiter()
		r.Use(middleware.RateLimit(lim))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(repos, registry, publisher)
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupRepositories connects to Postgres when a URL is configured and falls
// back to the in-memory store otherwise.
func setupRepositories(cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func()) {
	if cfg.DatabaseURL == "" {
		logger.Warn("No database configured, using in-memory storage. Data will not survive a restart.")
		return memory.NewStore().RepositoryProvider(), func() {}
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database connection pool established.")

	if cfg.RunMigrations {
		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			database.ClosePgxPool(dbPool)
			os.Exit(1)
		}
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }
}

func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if err := errors.Join(sourceErr, dbErr); err != nil {
		return err
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// setupRateLimiter keeps counters in Redis when it is reachable and in
// process memory otherwise.
func setupRateLimiter(cfg *config.Config, logger *slog.Logger) (*limiter.Limiter, func()) {
	if cfg.RedisAddr != "" {
		client, err := database.NewRedisClient(context.Background(), cfg.RedisAddr)
		if err == nil {
			lim, err := middleware.NewRedisRateLimiter(cfg.RateLimit, client)
			if err != nil {
				logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
				os.Exit(1)
			}
			return lim, func() { database.CloseRedisClient(client) }
		}
		logger.Warn("Redis unavailable, rate limits will be tracked per instance", slog.String("error", err.Error()))
	}

	lim, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	return lim, func() {}
}

// setupPublisher returns a Kafka publisher when brokers are configured and a
// log-only publisher otherwise.
func setupPublisher(cfg *config.Config, logger *slog.Logger) (portsevents.Publisher, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("No Kafka brokers configured, journal events will be logged only")
		return eventlog.NewLogPublisher(cfg.KafkaTopic), func() {}
	}

	p := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	logger.Info("Publishing journal events to Kafka", slog.Any("brokers", cfg.KafkaBrokers), slog.String("topic", cfg.KafkaTopic))
	return p, func() {
		if err := p.Close(); err != nil {
			logger.Error("Failed to close Kafka publisher", slog.String("error", err.Error()))
		}
	}
}

// Package main is the entry point for the service.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/costanza-quotes/internal/adapters/http"
	"github.com/jsamuelsen/costanza-quotes/internal/adapters/http/handlers"
	"github.com/jsamuelsen/costanza-quotes/internal/adapters/storage"
	"github.com/jsamuelsen/costanza-quotes/internal/app"
	"github.com/jsamuelsen/costanza-quotes/internal/platform/config"
	"github.com/jsamuelsen/costanza-quotes/internal/platform/logging"
	"github.com/jsamuelsen/costanza-quotes/internal/platform/telemetry"
	"github.com/jsamuelsen/costanza-quotes/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load .env; variables already set in the environment win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	// 2. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 3. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 4. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 5. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 6. Resolve the connection string; without one the service cannot start
	dsn, source, err := cfg.Database.ResolveDSN()
	if err != nil {
		return fmt.Errorf("resolving database: %w", err)
	}

	logger.Info("database configured", slog.String("source", source))

	// 7. Open the pool and create the table if it is missing
	db, err := storage.Open(ctx, storage.Config{
		DSN:             dsn,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		PingTimeout:     cfg.Database.PingTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("database close error", slog.Any("error", closeErr))
		}
	}()

	if err := db.CreateSchema(ctx); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	// 8. Health checks and pool metrics
	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(db); err != nil {
		return fmt.Errorf("registering database health check: %w", err)
	}

	if err := db.RegisterMetrics(prometheus.DefaultRegisterer); err != nil {
		return fmt.Errorf("registering database metrics: %w", err)
	}

	// 9. Create quote service (application layer)
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Repository: storage.NewQuoteStore(db),
		Logger:     logger,
	})

	// 10. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	quoteHandler := handlers.NewQuoteHandler(quoteService)

	// 11. Create HTTP server and router
	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.NewDefaultRouterConfig(logger, cfg, healthHandler, quoteHandler, db))

	// 12. Serve until SIGINT or SIGTERM; draining finishes before the
	// deferred pool close runs
	if err := server.Run(ctx); err != nil {
		return err
	}

	logger.Info("shutdown complete")

	return nil
}

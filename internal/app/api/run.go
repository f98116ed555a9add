// Package api wires configuration, observability, persistence, and the HTTP
// surface into a runnable orders API process.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	ordershttp "github.com/ekviron/orders-api/internal/orders/adapters/http"
	ordersmemory "github.com/ekviron/orders-api/internal/orders/adapters/memory"
	ordersobs "github.com/ekviron/orders-api/internal/orders/adapters/observability"
	orderspostgres "github.com/ekviron/orders-api/internal/orders/adapters/persistence/postgres"
	ordersapp "github.com/ekviron/orders-api/internal/orders/application"
	ordersports "github.com/ekviron/orders-api/internal/orders/ports"
	"github.com/ekviron/orders-api/internal/platform/metrics"
	"github.com/ekviron/orders-api/internal/platform/migrations"
	platformobservability "github.com/ekviron/orders-api/internal/platform/observability"
	platformpostgres "github.com/ekviron/orders-api/internal/platform/postgres"
)

const serviceName = "orders-api"

// Run boots the orders HTTP API with observability and repositories wired.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName, cfg.Environment, cfg.Log.PlatformLog())
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	repo, cleanupRepo := buildOrderRepository(ctx, logger, cfg.PostgresDSN)
	defer cleanupRepo()

	coreService := ordersapp.NewService(repo)
	orderService := ordersobs.New(
		coreService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	api := ordershttp.NewOrderAPI(orderService)
	router := ordershttp.NewRouter(api, metrics.NewHTTPMetrics(), otelgin.Middleware(serviceName))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Orders API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("Orders API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// buildOrderRepository prefers PostgreSQL and falls back to the in-memory
// adapter when no DSN is configured or the connection fails.
func buildOrderRepository(ctx context.Context, logger *slog.Logger, dsn string) (ordersports.Repository, func()) {
	if dsn == "" {
		logger.Warn("postgres DSN not set, falling back to in-memory order repository")
		return ordersmemory.NewRepository(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, dsn)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return ordersmemory.NewRepository(), func() {}
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to migrate schema, falling back to memory", slog.String("error", err.Error()))
		return ordersmemory.NewRepository(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return ordersmemory.NewRepository(), func() {}
	}
	logger.Info("order repository configured with postgres")
	return orderspostgres.NewRepository(db), func() { _ = sqlDB.Close() }
}

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	portsrepo "github.com/condobooks/condo_books_app/internal/core/ports/repositories"
	portssvc "github.com/condobooks/condo_books_app/internal/core/ports/services"
	"github.com/condobooks/condo_books_app/internal/core/services"
	"github.com/condobooks/condo_books_app/internal/handlers"
	"github.com/condobooks/condo_books_app/internal/middleware"
	"github.com/condobooks/condo_books_app/internal/repositories/database/pgsql"
	"github.com/condobooks/condo_books_app/internal/repositories/memory"
	"github.com/condobooks/condo_books_app/pkg/config"
	"github.com/condobooks/condo_books_app/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// The database is preferred but not required: when it is down the app
	// still serves from an in-memory store so the books stay reviewable,
	// and the degraded state is logged.
	snapshotRepo := newSnapshotRepository(ctx, cfg, logger)
	store := services.NewStoreService(ctx, snapshotRepo)

	container := &portssvc.ServiceContainer{
		Auth:        services.NewAuthService(cfg),
		Import:      services.NewImportService(store),
		Transaction: services.NewTransactionService(store),
		Rule:        services.NewRuleService(store),
		Account:     services.NewAccountService(store),
		Ledger:      services.NewLedgerService(store),
		Reporting:   services.NewReportingService(store),
		System:      services.NewSystemService(store),
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, newLoginLimiter(cfg, logger))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newSnapshotRepository connects to PostgreSQL, falling back to the
// in-memory store when the pool or the snapshot table cannot be set up.
func newSnapshotRepository(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) portsrepo.SnapshotRepository {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database, falling back to in-memory store", slog.String("error", err.Error()))
		return memory.NewSnapshotRepository()
	}
	repo, err := pgsql.NewSnapshotRepository(ctx, pool)
	if err != nil {
		logger.Error("Failed to prepare snapshot table, falling back to in-memory store", slog.String("error", err.Error()))
		database.ClosePgxPool(pool)
		return memory.NewSnapshotRepository()
	}
	logger.Info("Snapshot store backed by PostgreSQL")
	return repo
}

// newLoginLimiter builds the per-IP limiter applied to /auth/login.
func newLoginLimiter(cfg *config.AppConfig, logger *slog.Logger) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		logger.Warn("Invalid LOGIN_RATE_LIMIT, defaulting to 10-M", slog.String("error", err.Error()))
		rate = limiter.Rate{Period: time.Minute, Limit: 10}
	}
	return limiter.New(limitermem.NewStore(), rate)
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/housetab/housetab/internal/adapter/http"
	"github.com/housetab/housetab/internal/adapter/http/handler"
	"github.com/housetab/housetab/internal/adapter/http/middleware"
	postgresRepo "github.com/housetab/housetab/internal/adapter/repository/postgres"
	redisRepo "github.com/housetab/housetab/internal/adapter/repository/redis"
	"github.com/housetab/housetab/internal/domain"
	"github.com/housetab/housetab/internal/infrastructure/auth"
	"github.com/housetab/housetab/internal/infrastructure/config"
	"github.com/housetab/housetab/internal/infrastructure/logger"
	"github.com/housetab/housetab/internal/infrastructure/logging"
	"github.com/housetab/housetab/internal/infrastructure/metrics"
	"github.com/housetab/housetab/internal/infrastructure/postgres"
	"github.com/housetab/housetab/internal/infrastructure/redis"
	"github.com/housetab/housetab/internal/usecase"
)

func main() {
	// Local development convenience; absent .env is fine.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Request-path logging uses zerolog, background components log
	// through slog.
	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	appLog := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	slog.SetDefault(appLog.Logger)

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Apply migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txRepo := postgresRepo.NewTransactionRepository(pool)
	fundRepo := postgresRepo.NewFundEntryRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	balanceRepo := postgresRepo.NewBalanceRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	notifier := &countingNotifier{
		next: redisRepo.NewChangeNotifier(redisClient, appLog.Logger.With("component", "notifier")),
		m:    m,
	}
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	txUC := usecase.NewTransactionUseCase(txRepo, userRepo, idGen, notifier)
	fundUC := usecase.NewFundUseCase(fundRepo, userRepo, idGen, notifier)
	balanceUC := usecase.NewBalanceUseCase(balanceRepo, txRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	// Authentication is on only when a secret is configured.
	var jwtManager *auth.JWTManager
	if cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
		if !cfg.AuthRequired {
			log.Warn().Msg("AUTH_REQUIRED=false, accepting unauthenticated requests")
		}
	} else {
		log.Warn().Msg("JWT_SECRET not set, running without authentication")
	}

	// Initialize handlers
	txHandler := handler.NewTransactionHandler(txUC)
	fundHandler := handler.NewFundHandler(fundUC)
	balanceHandler := handler.NewBalanceHandler(&countingBalanceService{next: balanceUC, m: m})
	userHandler := handler.NewUserHandler(userUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	var authHandler *handler.AuthHandler
	if jwtManager != nil {
		authHandler = handler.NewAuthHandler(userUC, jwtManager)
	}

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: txHandler,
		FundHandler:        fundHandler,
		BalanceHandler:     balanceHandler,
		UserHandler:        userHandler,
		AuthHandler:        authHandler,
		HealthHandler:      healthHandler,
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		JWTManager:         jwtManager,
		AuthOptional:       !cfg.AuthRequired,
		RateLimiter:        rateLimiter,
		Logger:             log.Logger,
	})

	// Change listener keeps a count of ledger changes; read-only views
	// subscribe to the same channel out of process.
	listenerCtx, stopListener := context.WithCancel(ctx)
	defer stopListener()

	listener := redisRepo.NewChangeListener(redisClient, appLog.Logger.With("component", "listener"), func(event domain.ChangeEvent) {
		m.ChangeEventsReceived.Inc()
		log.Debug().
			Str("entity", event.Entity).
			Str("action", event.Action).
			Str("record_id", event.RecordID).
			Msg("ledger changed")
	})
	go func() {
		if err := listener.Listen(listenerCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("change listener stopped")
		}
	}()

	// Drop idle per-IP limiters once an hour.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-listenerCtx.Done():
				return
			case <-ticker.C:
				rateLimiter.Reset()
			}
		}
	}()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	stopListener()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// countingNotifier counts outgoing change events and the writes behind
// them before handing off to the real notifier.
type countingNotifier struct {
	next usecase.ChangeNotifier
	m    *metrics.Metrics
}

func (n *countingNotifier) Notify(ctx context.Context, event domain.ChangeEvent) {
	n.m.ChangeEventsPublished.WithLabelValues(event.Entity).Inc()

	if event.Action == domain.ActionDeleted {
		n.m.RecordsDeleted.WithLabelValues(event.Entity).Inc()
	} else {
		n.m.RecordsWritten.WithLabelValues(event.Entity, event.Action).Inc()
	}

	n.next.Notify(ctx, event)
}

// countingBalanceService counts dashboard recomputations.
type countingBalanceService struct {
	next handler.BalanceService
	m    *metrics.Metrics
}

func (s *countingBalanceService) Overview(ctx context.Context) (*domain.BalanceOverview, error) {
	s.m.BalanceReads.Inc()
	return s.next.Overview(ctx)
}

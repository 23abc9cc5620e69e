package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/housetab/housetab/internal/adapter/http/handler"
	"github.com/housetab/housetab/internal/adapter/http/middleware"
	"github.com/housetab/housetab/internal/infrastructure/auth"
	"github.com/housetab/housetab/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	TransactionHandler *handler.TransactionHandler
	FundHandler        *handler.FundHandler
	BalanceHandler     *handler.BalanceHandler
	UserHandler        *handler.UserHandler
	AuthHandler        *handler.AuthHandler
	HealthHandler      *handler.HealthHandler
	IdempotencyStore   usecase.IdempotencyStore
	IdempotencyTTL     time.Duration
	JWTManager         *auth.JWTManager
	AuthOptional       bool
	RateLimiter        *middleware.RateLimiter
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Login stays outside the auth wall.
		if cfg.AuthHandler != nil {
			r.Post("/auth/login", cfg.AuthHandler.Login)
		}

		r.Group(func(r chi.Router) {
			// AuthOptional still verifies tokens that are sent, so
			// voluntary logins stamp the actor.
			if cfg.JWTManager != nil {
				if cfg.AuthOptional {
					r.Use(middleware.OptionalAuth(cfg.JWTManager))
				} else {
					r.Use(middleware.AuthMiddleware(cfg.JWTManager))
				}
			}

			// Idempotency middleware for mutating requests
			if cfg.IdempotencyStore != nil {
				idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
				r.Use(idempotencyMiddleware.Wrap)
			}

			if cfg.AuthHandler != nil {
				r.Get("/auth/me", cfg.AuthHandler.GetCurrentUser)
			}

			// Shared transactions
			r.Route("/transactions", func(r chi.Router) {
				r.Post("/", cfg.TransactionHandler.Create)
				r.Get("/", cfg.TransactionHandler.List)
				r.Get("/{id}", cfg.TransactionHandler.Get)
				r.Put("/{id}", cfg.TransactionHandler.Update)
				r.Delete("/{id}", cfg.TransactionHandler.Delete)
			})

			// Personal fund entries
			r.Route("/funds", func(r chi.Router) {
				r.Post("/", cfg.FundHandler.Create)
				r.Get("/", cfg.FundHandler.List)
				r.Get("/{id}", cfg.FundHandler.Get)
				r.Put("/{id}", cfg.FundHandler.Update)
				r.Delete("/{id}", cfg.FundHandler.Delete)
			})

			// Household members and balances
			r.Get("/users", cfg.UserHandler.List)
			r.Get("/users/{id}", cfg.UserHandler.Get)
			r.Get("/balances", cfg.BalanceHandler.Overview)
		})
	})

	return r
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/housetab/housetab/internal/adapter/http/middleware"
	"github.com/housetab/housetab/internal/domain"
	"github.com/housetab/housetab/internal/infrastructure/auth"
)

func claimsEchoHandler(t *testing.T, wantUserID string) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			t.Fatal("expected claims in context")
		}
		if claims.UserID != wantUserID {
			t.Fatalf("expected user %s, got %s", wantUserID, claims.UserID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	token, err := jwtManager.Generate(&domain.User{ID: "user-alice", Name: "Alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	h := middleware.AuthMiddleware(jwtManager)(claimsEchoHandler(t, "user-alice"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	forged, err := auth.NewJWTManager("other-secret", time.Hour).
		Generate(&domain.User{ID: "user-alice"})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "wrong secret", header: "Bearer " + forged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := middleware.AuthMiddleware(jwtManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not run")
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestOptionalAuth_ExtractsClaims(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	token, err := jwtManager.Generate(&domain.User{ID: "user-alice", Name: "Alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	h := middleware.OptionalAuth(jwtManager)(claimsEchoHandler(t, "user-alice"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOptionalAuth_InvalidTokenPassesWithoutClaims(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	h := middleware.OptionalAuth(jwtManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); ok {
			t.Fatal("expected no claims for an invalid token")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOptionalAuth_PassesWithoutToken(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	h := middleware.OptionalAuth(jwtManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); ok {
			t.Fatal("expected no claims without a token")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

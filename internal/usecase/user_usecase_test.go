package usecase_test

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/housetab/housetab/internal/domain"
	"github.com/housetab/housetab/internal/usecase"
	"github.com/housetab/housetab/internal/usecase/mocks"
)

func TestUserUseCase_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	userRepo := mocks.NewMockUserRepository()
	userRepo.Add(&domain.User{
		ID:             "user-alice",
		Name:           "Alice",
		Email:          "alice@example.com",
		HashedPassword: string(hash),
	})

	uc := usecase.NewUserUseCase(userRepo)

	user, err := uc.Authenticate(context.Background(), "alice@example.com", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "user-alice" {
		t.Fatalf("unexpected user %+v", user)
	}

	if _, err := uc.Authenticate(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}

	// Unknown emails fail the same way so callers cannot probe accounts.
	if _, err := uc.Authenticate(context.Background(), "nobody@example.com", "hunter2"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestUserUseCase_List_SortedByName(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.Add(&domain.User{ID: "u2", Name: "Zoe", Email: "zoe@example.com"})
	userRepo.Add(&domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"})

	uc := usecase.NewUserUseCase(userRepo)

	users, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 || users[0].Name != "Alice" || users[1].Name != "Zoe" {
		t.Fatalf("expected name order, got %+v", users)
	}
}

func TestUserUseCase_Get_NotFound(t *testing.T) {
	uc := usecase.NewUserUseCase(mocks.NewMockUserRepository())

	if _, err := uc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

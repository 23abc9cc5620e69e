package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/housetab/housetab/internal/domain"
	"github.com/housetab/housetab/internal/usecase"
	"github.com/housetab/housetab/internal/usecase/mocks"
)

func newFundEditorFixture(t *testing.T) (*usecase.FundEditor, *usecase.FundUseCase) {
	t.Helper()

	fundRepo := mocks.NewMockFundEntryRepository()
	userRepo := mocks.NewMockUserRepository()
	seedUsers(userRepo)

	uc := usecase.NewFundUseCase(fundRepo, userRepo, mocks.NewMockIDGenerator(), nil)

	return usecase.NewFundEditor(uc, "user-alice"), uc
}

func TestFundEditor_Defaults(t *testing.T) {
	editor, _ := newFundEditorFixture(t)

	if editor.Editing() {
		t.Fatal("expected creating state")
	}
	if editor.Direction != domain.FundDirectionCredit {
		t.Fatalf("expected credit default, got %s", editor.Direction)
	}
	if editor.UserID != "user-alice" {
		t.Fatalf("expected owner defaulted to acting user, got %s", editor.UserID)
	}
	if _, err := domain.ParseOccurredAt("occurred_at", editor.OccurredAt); err != nil {
		t.Fatalf("expected parseable default occurred_at %q: %v", editor.OccurredAt, err)
	}
}

func TestFundEditor_SaveCreateThenFlipDirection(t *testing.T) {
	editor, uc := newFundEditorFixture(t)

	editor.Amount = "75.00"
	editor.Description = "savings top-up"
	editor.OccurredAt = "2026-03-05T08:00"

	created, err := editor.Save(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Direction != domain.FundDirectionCredit {
		t.Fatalf("expected credit entry, got %s", created.Direction)
	}
	if editor.Editing() || editor.Amount != "" {
		t.Fatal("expected form reset after save")
	}

	if err := editor.StartEdit(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if editor.Amount != "75.00" {
		t.Fatalf("expected form loaded from record, got amount=%q", editor.Amount)
	}

	editor.Direction = domain.FundDirectionDebit

	updated, err := editor.Save(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != created.ID || updated.Direction != domain.FundDirectionDebit {
		t.Fatalf("expected direction flipped on same record, got %+v", updated)
	}

	stored, err := uc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Direction != domain.FundDirectionDebit {
		t.Fatalf("expected flip persisted, got %+v", stored)
	}
}

func TestFundEditor_SaveValidationPersistsNothing(t *testing.T) {
	editor, uc := newFundEditorFixture(t)

	editor.Amount = "0"
	editor.OccurredAt = "2026-03-05T08:00"

	_, err := editor.Save(context.Background())
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "amount" {
		t.Fatalf("expected amount validation error, got %v", err)
	}

	page, err := uc.List(context.Background(), usecase.ListFundEntriesInput{})
	if err != nil || page.TotalCount != 0 {
		t.Fatalf("expected nothing persisted, got total=%d err=%v", page.TotalCount, err)
	}
}

func TestFundEditor_DeleteBoundResets(t *testing.T) {
	editor, _ := newFundEditorFixture(t)

	editor.Amount = "30.00"
	editor.OccurredAt = "2026-03-05T08:00"
	created, err := editor.Save(context.Background())
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := editor.StartEdit(context.Background(), created.ID); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := editor.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if editor.Editing() {
		t.Fatal("expected creating state after deleting bound record")
	}

	if err := editor.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrFundEntryNotFound) {
		t.Fatalf("expected ErrFundEntryNotFound on second delete, got %v", err)
	}
}

package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/housetab/housetab/internal/adapter/http/dto"
	"github.com/housetab/housetab/internal/adapter/http/handler"
	"github.com/housetab/housetab/internal/domain"
	"github.com/housetab/housetab/internal/usecase"
)

type transactionServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error)
	getFn    func(ctx context.Context, id string) (*domain.Transaction, error)
	updateFn func(ctx context.Context, input usecase.UpdateTransactionInput) (*domain.Transaction, error)
	deleteFn func(ctx context.Context, id, actorID string) error
	listFn   func(ctx context.Context, input usecase.ListTransactionsInput) (*usecase.TransactionPage, error)
}

func (s *transactionServiceStub) Create(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
	return s.createFn(ctx, input)
}

func (s *transactionServiceStub) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.getFn(ctx, id)
}

func (s *transactionServiceStub) Update(ctx context.Context, input usecase.UpdateTransactionInput) (*domain.Transaction, error) {
	return s.updateFn(ctx, input)
}

func (s *transactionServiceStub) Delete(ctx context.Context, id, actorID string) error {
	return s.deleteFn(ctx, id, actorID)
}

func (s *transactionServiceStub) List(ctx context.Context, input usecase.ListTransactionsInput) (*usecase.TransactionPage, error) {
	return s.listFn(ctx, input)
}

func transactionRouter(h *handler.TransactionHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/transactions", h.Create)
	r.Get("/transactions", h.List)
	r.Get("/transactions/{id}", h.Get)
	r.Put("/transactions/{id}", h.Update)
	r.Delete("/transactions/{id}", h.Delete)

	return r
}

func sampleTransaction() *domain.Transaction {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	return &domain.Transaction{
		ID:              "tx-1",
		Type:            domain.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("42.50"),
		PaidByUserID:    "user-alice",
		Description:     "groceries",
		OccurredAt:      now,
		CreatedByUserID: "user-alice",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestTransactionHandler_Create(t *testing.T) {
	var captured usecase.CreateTransactionInput
	stub := &transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
			captured = input
			return sampleTransaction(), nil
		},
	}

	r := transactionRouter(handler.NewTransactionHandler(stub))

	body := `{"type":"expense","amount":"42.50","paid_by_user_id":"user-alice","description":"groceries","occurred_at":"2026-03-10T14:30"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	if !captured.Amount.Equal(decimal.RequireFromString("42.50")) {
		t.Fatalf("expected amount parsed, got %s", captured.Amount)
	}
	if !captured.OccurredAt.Equal(time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)) {
		t.Fatalf("expected occurred_at parsed, got %v", captured.OccurredAt)
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ID != "tx-1" || resp.Type != "expense" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestTransactionHandler_Create_BadAmount(t *testing.T) {
	stub := &transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
			t.Fatal("service must not be called for invalid input")
			return nil, nil
		},
	}

	r := transactionRouter(handler.NewTransactionHandler(stub))

	body := `{"type":"expense","amount":"abc","paid_by_user_id":"user-alice","occurred_at":"2026-03-10T14:30"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Field != "amount" {
		t.Fatalf("expected amount field named, got %+v", resp)
	}
}

func TestTransactionHandler_Create_MalformedBody(t *testing.T) {
	r := transactionRouter(handler.NewTransactionHandler(&transactionServiceStub{}))

	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Get_NotFound(t *testing.T) {
	stub := &transactionServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Transaction, error) {
			return nil, domain.ErrTransactionNotFound
		},
	}

	r := transactionRouter(handler.NewTransactionHandler(stub))

	req := httptest.NewRequest(http.MethodGet, "/transactions/missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransactionHandler_Update(t *testing.T) {
	var captured usecase.UpdateTransactionInput
	stub := &transactionServiceStub{
		updateFn: func(ctx context.Context, input usecase.UpdateTransactionInput) (*domain.Transaction, error) {
			captured = input
			return sampleTransaction(), nil
		},
	}

	r := transactionRouter(handler.NewTransactionHandler(stub))

	body := `{"type":"income","amount":"99.99","paid_by_user_id":"user-bob","occurred_at":"2026-04-01"}`
	req := httptest.NewRequest(http.MethodPut, "/transactions/tx-1", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	if captured.ID != "tx-1" || captured.Type != domain.TransactionTypeIncome {
		t.Fatalf("unexpected input %+v", captured)
	}
}

func TestTransactionHandler_Delete(t *testing.T) {
	var deletedID string
	stub := &transactionServiceStub{
		deleteFn: func(ctx context.Context, id, actorID string) error {
			deletedID = id
			return nil
		},
	}

	r := transactionRouter(handler.NewTransactionHandler(stub))

	req := httptest.NewRequest(http.MethodDelete, "/transactions/tx-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deletedID != "tx-1" {
		t.Fatalf("expected tx-1 deleted, got %q", deletedID)
	}
}

func TestTransactionHandler_List_QueryParams(t *testing.T) {
	var captured usecase.ListTransactionsInput
	stub := &transactionServiceStub{
		listFn: func(ctx context.Context, input usecase.ListTransactionsInput) (*usecase.TransactionPage, error) {
			captured = input
			return &usecase.TransactionPage{
				Items:      []*domain.Transaction{sampleTransaction()},
				TotalCount: 1,
				Page:       2,
				PageSize:   5,
			}, nil
		},
	}

	r := transactionRouter(handler.NewTransactionHandler(stub))

	req := httptest.NewRequest(http.MethodGet,
		"/transactions?type=expense&paid_by_user_id=user-alice&from=2026-03-01&to=2026-03-31&page=2&page_size=5", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	if captured.Filter.Type != domain.TransactionTypeExpense || captured.Filter.PaidByUserID != "user-alice" {
		t.Fatalf("unexpected filter %+v", captured.Filter)
	}
	if captured.Filter.From == nil || captured.Filter.To == nil {
		t.Fatal("expected date range parsed")
	}
	if captured.Page != 2 || captured.PageSize != 5 {
		t.Fatalf("unexpected pagination page=%d size=%d", captured.Page, captured.PageSize)
	}

	var resp dto.ListTransactionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Total != 1 || len(resp.Items) != 1 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestTransactionHandler_List_InvalidType(t *testing.T) {
	stub := &transactionServiceStub{
		listFn: func(ctx context.Context, input usecase.ListTransactionsInput) (*usecase.TransactionPage, error) {
			t.Fatal("service must not be called for invalid filter")
			return nil, nil
		},
	}

	r := transactionRouter(handler.NewTransactionHandler(stub))

	req := httptest.NewRequest(http.MethodGet, "/transactions?type=transfer", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Field != "type" {
		t.Fatalf("expected type field named, got %+v", resp)
	}
}

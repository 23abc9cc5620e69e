package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/housetab/housetab/internal/adapter/http/dto"
	"github.com/housetab/housetab/internal/adapter/http/middleware"
	"github.com/housetab/housetab/internal/domain"
	"github.com/housetab/housetab/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	Create(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error)
	Get(ctx context.Context, id string) (*domain.Transaction, error)
	Update(ctx context.Context, input usecase.UpdateTransactionInput) (*domain.Transaction, error)
	Delete(ctx context.Context, id, actorID string) error
	List(ctx context.Context, input usecase.ListTransactionsInput) (*usecase.TransactionPage, error)
}

// TransactionHandler handles shared transaction HTTP requests.
type TransactionHandler struct {
	txUC TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txUC TransactionService) *TransactionHandler {
	return &TransactionHandler{txUC: txUC}
}

// Create creates a new transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToCreateInput(actorID(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	tx, err := h.txUC.Create(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(tx))
}

// Get retrieves a transaction by ID.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	tx, err := h.txUC.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(tx))
}

// Update updates an existing transaction.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	var req dto.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUpdateInput(id, actorID(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	tx, err := h.txUC.Update(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(tx))
}

// Delete removes a transaction.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	if err := h.txUC.Delete(r.Context(), id, actorID(r)); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists transactions with optional filters and pagination.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := transactionFilterFromQuery(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	page, err := h.txUC.List(r.Context(), usecase.ListTransactionsInput{
		Filter:   filter,
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 0),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Items:    dto.TransactionsFromDomain(page.Items),
		Total:    page.TotalCount,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
}

func transactionFilterFromQuery(r *http.Request) (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{
		Type:         domain.TransactionType(r.URL.Query().Get("type")),
		PaidByUserID: r.URL.Query().Get("paid_by_user_id"),
	}

	if filter.Type != "" && !filter.Type.Valid() {
		return domain.TransactionFilter{}, domain.NewValidationError("type", "must be income or expense")
	}

	from, err := parseTimeQuery(r, "from")
	if err != nil {
		return domain.TransactionFilter{}, err
	}
	filter.From = from

	to, err := parseTimeQuery(r, "to")
	if err != nil {
		return domain.TransactionFilter{}, err
	}
	filter.To = to

	return filter, nil
}

// actorID returns the authenticated user's ID, or empty when the
// request is unauthenticated.
func actorID(r *http.Request) string {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		return ""
	}
	return claims.UserID
}

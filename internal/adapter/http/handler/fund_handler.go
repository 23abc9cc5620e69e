package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/housetab/housetab/internal/adapter/http/dto"
	"github.com/housetab/housetab/internal/domain"
	"github.com/housetab/housetab/internal/usecase"
)

// FundService defines the behavior needed by FundHandler.
type FundService interface {
	Create(ctx context.Context, input usecase.CreateFundEntryInput) (*domain.PersonalFundEntry, error)
	Get(ctx context.Context, id string) (*domain.PersonalFundEntry, error)
	Update(ctx context.Context, input usecase.UpdateFundEntryInput) (*domain.PersonalFundEntry, error)
	Delete(ctx context.Context, id, actorID string) error
	List(ctx context.Context, input usecase.ListFundEntriesInput) (*usecase.FundEntryPage, error)
}

// FundHandler handles personal fund entry HTTP requests.
type FundHandler struct {
	fundUC FundService
}

// NewFundHandler creates a new FundHandler.
func NewFundHandler(fundUC FundService) *FundHandler {
	return &FundHandler{fundUC: fundUC}
}

// Create creates a new fund entry.
func (h *FundHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.FundEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToCreateInput(actorID(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	entry, err := h.fundUC.Create(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.FundEntryFromDomain(entry))
}

// Get retrieves a fund entry by ID.
func (h *FundHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing fund entry ID", "")
		return
	}

	entry, err := h.fundUC.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.FundEntryFromDomain(entry))
}

// Update updates an existing fund entry.
func (h *FundHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing fund entry ID", "")
		return
	}

	var req dto.FundEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUpdateInput(id, actorID(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	entry, err := h.fundUC.Update(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.FundEntryFromDomain(entry))
}

// Delete removes a fund entry.
func (h *FundHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing fund entry ID", "")
		return
	}

	if err := h.fundUC.Delete(r.Context(), id, actorID(r)); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists fund entries with optional filters and pagination.
func (h *FundHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := fundFilterFromQuery(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	page, err := h.fundUC.List(r.Context(), usecase.ListFundEntriesInput{
		Filter:   filter,
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 0),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListFundEntriesResponse{
		Items:    dto.FundEntriesFromDomain(page.Items),
		Total:    page.TotalCount,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
}

func fundFilterFromQuery(r *http.Request) (domain.FundEntryFilter, error) {
	filter := domain.FundEntryFilter{
		Direction: domain.FundDirection(r.URL.Query().Get("direction")),
		UserID:    r.URL.Query().Get("user_id"),
	}

	if filter.Direction != "" && !filter.Direction.Valid() {
		return domain.FundEntryFilter{}, domain.NewValidationError("direction", "must be credit or debit")
	}

	from, err := parseTimeQuery(r, "from")
	if err != nil {
		return domain.FundEntryFilter{}, err
	}
	filter.From = from

	to, err := parseTimeQuery(r, "to")
	if err != nil {
		return domain.FundEntryFilter{}, err
	}
	filter.To = to

	return filter, nil
}

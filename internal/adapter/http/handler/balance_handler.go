package handler

import (
	"context"
	"net/http"

	"github.com/housetab/housetab/internal/adapter/http/dto"
	"github.com/housetab/housetab/internal/domain"
)

// BalanceService defines the behavior needed by BalanceHandler.
type BalanceService interface {
	Overview(ctx context.Context) (*domain.BalanceOverview, error)
}

// BalanceHandler serves the dashboard aggregates.
type BalanceHandler struct {
	balanceUC BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceUC BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC}
}

// Overview returns the shared totals, personal fund balances and
// recent transactions, recomputed from the store.
func (h *BalanceHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.balanceUC.Overview(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceOverviewFromDomain(overview))
}

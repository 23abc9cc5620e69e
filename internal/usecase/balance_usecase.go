package usecase

import (
	"context"

	"github.com/housetab/housetab/internal/domain"
)

// BalanceUseCase computes the dashboard aggregates. It is a pure
// function of current store state: no caching, no incremental totals,
// every read recomputes from the two tables.
type BalanceUseCase struct {
	balanceRepo BalanceRepository
	txRepo      TransactionRepository
}

// NewBalanceUseCase creates a new BalanceUseCase.
func NewBalanceUseCase(balanceRepo BalanceRepository, txRepo TransactionRepository) *BalanceUseCase {
	return &BalanceUseCase{
		balanceRepo: balanceRepo,
		txRepo:      txRepo,
	}
}

// Overview returns income/expense totals, the shared balance, every
// user's personal fund balance and the most recent transactions.
func (uc *BalanceUseCase) Overview(ctx context.Context) (*domain.BalanceOverview, error) {
	income, expense, err := uc.balanceRepo.SharedTotals(ctx)
	if err != nil {
		return nil, err
	}

	personal, err := uc.balanceRepo.PersonalBalances(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := uc.txRepo.ListRecent(ctx, RecentTransactionsLimit)
	if err != nil {
		return nil, err
	}

	return &domain.BalanceOverview{
		TotalIncome:        income,
		TotalExpense:       expense,
		SharedBalance:      income.Sub(expense),
		PersonalFunds:      personal,
		RecentTransactions: recent,
	}, nil
}

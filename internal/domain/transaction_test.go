package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_SignedAmount(t *testing.T) {
	income := &Transaction{Type: TransactionTypeIncome, Amount: decimal.RequireFromString("100.00")}
	expense := &Transaction{Type: TransactionTypeExpense, Amount: decimal.RequireFromString("40.00")}

	assert.True(t, income.SignedAmount().Equal(decimal.RequireFromString("100.00")))
	assert.True(t, expense.SignedAmount().Equal(decimal.RequireFromString("-40.00")))
}

func TestPersonalFundEntry_SignedAmount(t *testing.T) {
	credit := &PersonalFundEntry{Direction: FundDirectionCredit, Amount: decimal.RequireFromString("60.00")}
	debit := &PersonalFundEntry{Direction: FundDirectionDebit, Amount: decimal.RequireFromString("25.00")}

	assert.True(t, credit.SignedAmount().Equal(decimal.RequireFromString("60.00")))
	assert.True(t, debit.SignedAmount().Equal(decimal.RequireFromString("-25.00")))
}

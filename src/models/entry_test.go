package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedger(t *testing.T) {
	assert.Equal(t, "income_entries", LedgerIncome.Table())
	assert.Equal(t, "expense_entries", LedgerExpense.Table())
	assert.Equal(t, CategoryTypeIncome, LedgerIncome.CategoryType())
	assert.Equal(t, CategoryTypeExpense, LedgerExpense.CategoryType())
	assert.True(t, LedgerIncome.Valid())
	assert.True(t, LedgerExpense.Valid())
	assert.False(t, Ledger("transfers").Valid())
}

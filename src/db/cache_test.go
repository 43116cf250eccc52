package db

import (
	"testing"

	"fintrack-server/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerCacheKey(t *testing.T) {
	key := LedgerCacheKey(models.LedgerIncome, "p1", 3, 2024)
	assert.Equal(t, "income:p1:3:2024", key)
	assert.NotEqual(t, key, LedgerCacheKey(models.LedgerExpense, "p1", 3, 2024))
	assert.NotEqual(t, key, LedgerCacheKey(models.LedgerIncome, "p1", 0, 0))
}

func TestLedgerCacheRoundTrip(t *testing.T) {
	InitCache()

	key := LedgerCacheKey(models.LedgerIncome, "p1", 0, 0)
	SetLedgerCache(models.LedgerIncome, key, []models.Entry{{ID: "e1"}})
	Cache.Wait()

	cached, found := GetLedgerCache(key)
	require.True(t, found)
	entries, ok := cached.([]models.Entry)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "e1", entries[0].ID)

	// A write to the income ledger drops its cached lists but leaves the
	// expense ledger alone.
	expenseKey := LedgerCacheKey(models.LedgerExpense, "p1", 0, 0)
	SetLedgerCache(models.LedgerExpense, expenseKey, []models.Entry{{ID: "x1"}})
	Cache.Wait()

	ClearLedgerCaches(models.LedgerIncome)
	_, found = GetLedgerCache(key)
	assert.False(t, found)
	_, found = GetLedgerCache(expenseKey)
	assert.True(t, found)
}

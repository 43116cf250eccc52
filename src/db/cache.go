package db

import (
	"fmt"
	"log"
	"sync"

	"fintrack-server/src/models"

	"github.com/dgraph-io/ristretto"
)

// Cached ledger list responses, keyed per ledger so any write to a ledger
// can drop every cached list for it.
var (
	Cache            *ristretto.Cache
	IncomeCacheKeys  = newKeySet()
	ExpenseCacheKeys = newKeySet()
)

type keySet struct {
	sync.RWMutex
	m map[string]struct{}
}

func newKeySet() *keySet {
	return &keySet{m: make(map[string]struct{})}
}

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func ledgerKeys(ledger models.Ledger) *keySet {
	if ledger == models.LedgerExpense {
		return ExpenseCacheKeys
	}
	return IncomeCacheKeys
}

// LedgerCacheKey builds the cache key for a filtered ledger list. Zero
// month/year mean the filter was absent.
func LedgerCacheKey(ledger models.Ledger, profileID string, month, year int) string {
	return fmt.Sprintf("%s:%s:%d:%d", ledger, profileID, month, year)
}

func SetLedgerCache(ledger models.Ledger, cacheKey string, value interface{}) {
	if Cache == nil {
		return
	}
	ks := ledgerKeys(ledger)
	ks.Lock()
	ks.m[cacheKey] = struct{}{}
	ks.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func GetLedgerCache(cacheKey string) (interface{}, bool) {
	if Cache == nil {
		return nil, false
	}
	return Cache.Get(cacheKey)
}

// ClearLedgerCaches drops every cached list for the ledger. Called after any
// create, update or delete against it.
func ClearLedgerCaches(ledger models.Ledger) {
	if Cache == nil {
		return
	}
	ks := ledgerKeys(ledger)
	ks.Lock()
	for key := range ks.m {
		Cache.Del(key)
	}
	ks.m = make(map[string]struct{})
	ks.Unlock()
}

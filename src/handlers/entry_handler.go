package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	cachedb "fintrack-server/src/db"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// parseLedgerFilter turns profileId/month/year query params into an
// EntryFilter plus the raw month/year for cache keying.
func parseLedgerFilter(r *http.Request) (db.EntryFilter, int, int, error) {
	q := r.URL.Query()
	filter := db.EntryFilter{ProfileID: q.Get("profileId")}

	var month, year int
	var err error
	if raw := q.Get("month"); raw != "" {
		month, err = strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return filter, 0, 0, fmt.Errorf("month must be 1-12")
		}
	}
	if raw := q.Get("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil || year < 1 {
			return filter, 0, 0, fmt.Errorf("invalid year")
		}
	}
	if start, end, ok := util.DateWindow(month, year, time.Now()); ok {
		filter.Start = start
		filter.End = end
	}
	return filter, month, year, nil
}

// checkEntryCategory verifies the category exists and matches the ledger's
// polarity, so an EXPENSE category can never land on the income ledger. The
// returned message is safe to show the client; ok=false with an empty
// message means the lookup itself failed.
func checkEntryCategory(ctx context.Context, pool *pgxpool.Pool, ledger models.Ledger, categoryID string) (string, bool, error) {
	category, err := db.GetCategoryByID(ctx, pool, categoryID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "category does not exist", false, nil
		}
		return "", false, err
	}
	if category.Type != ledger.CategoryType() {
		return fmt.Sprintf("category type %s does not match the %s ledger", category.Type, ledger), false, nil
	}
	return "", true, nil
}

func GetAllEntries(pool *pgxpool.Pool, ledger models.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, month, year, err := parseLedgerFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		cacheKey := cachedb.LedgerCacheKey(ledger, filter.ProfileID, month, year)
		if cached, found := cachedb.GetLedgerCache(cacheKey); found {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(cached)
			return
		}

		entries, err := db.GetAllEntries(r.Context(), pool, ledger, filter)
		if err != nil {
			log.Printf("ERROR: Failed to get %s entries: %v", ledger, err)
			http.Error(w, fmt.Sprintf("failed to get %s entries", ledger), http.StatusInternalServerError)
			return
		}
		cachedb.SetLedgerCache(ledger, cacheKey, entries)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}

func CreateEntry(pool *pgxpool.Pool, ledger models.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Amount      *float64 `json:"amount"`
			Description *string  `json:"description"`
			Date        string   `json:"date"`
			CategoryID  string   `json:"categoryId"`
			ProfileID   string   `json:"profileId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create %s entry request body: %v", ledger, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Amount == nil || req.Date == "" || req.CategoryID == "" || req.ProfileID == "" {
			http.Error(w, "amount, date, categoryId, and profileId are required", http.StatusBadRequest)
			return
		}
		if !util.ValidateAmount(*req.Amount) {
			http.Error(w, "amount must be non-negative", http.StatusBadRequest)
			return
		}
		date, err := util.ParseDate(req.Date)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
		msg, ok, err := checkEntryCategory(r.Context(), pool, ledger, req.CategoryID)
		if err != nil {
			log.Printf("ERROR: Failed to check category %s: %v", req.CategoryID, err)
			http.Error(w, fmt.Sprintf("failed to create %s entry", ledger), http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		entry := &models.Entry{
			Amount:      *req.Amount,
			Description: req.Description,
			Date:        date,
			CategoryID:  req.CategoryID,
			ProfileID:   req.ProfileID,
		}
		created, err := db.CreateEntry(r.Context(), pool, ledger, entry)
		if err != nil {
			log.Printf("ERROR: Failed to create %s entry: %v", ledger, err)
			http.Error(w, fmt.Sprintf("failed to create %s entry", ledger), http.StatusInternalServerError)
			return
		}
		cachedb.ClearLedgerCaches(ledger)

		log.Printf("INFO: Created %s entry %s for profile %s", ledger, created.ID, created.ProfileID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetEntryByID(pool *pgxpool.Pool, ledger models.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		entry, err := db.GetEntryByID(r.Context(), pool, ledger, id)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, fmt.Sprintf("%s entry not found", ledger), http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to get %s entry %s: %v", ledger, id, err)
			http.Error(w, fmt.Sprintf("failed to get %s entry", ledger), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entry)
	}
}

func UpdateEntry(pool *pgxpool.Pool, ledger models.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req struct {
			Amount      *float64 `json:"amount"`
			Description *string  `json:"description"`
			Date        *string  `json:"date"`
			CategoryID  *string  `json:"categoryId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update %s entry request body: %v", ledger, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Amount != nil && !util.ValidateAmount(*req.Amount) {
			http.Error(w, "amount must be non-negative", http.StatusBadRequest)
			return
		}
		upd := db.EntryUpdate{
			Amount:      req.Amount,
			Description: req.Description,
			CategoryID:  req.CategoryID,
		}
		if req.Date != nil {
			date, err := util.ParseDate(*req.Date)
			if err != nil {
				http.Error(w, "invalid date", http.StatusBadRequest)
				return
			}
			upd.Date = &date
		}
		if req.CategoryID != nil {
			msg, ok, err := checkEntryCategory(r.Context(), pool, ledger, *req.CategoryID)
			if err != nil {
				log.Printf("ERROR: Failed to check category %s: %v", *req.CategoryID, err)
				http.Error(w, fmt.Sprintf("failed to update %s entry", ledger), http.StatusInternalServerError)
				return
			}
			if !ok {
				http.Error(w, msg, http.StatusBadRequest)
				return
			}
		}

		updated, err := db.UpdateEntry(r.Context(), pool, ledger, id, upd)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, fmt.Sprintf("%s entry not found", ledger), http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update %s entry %s: %v", ledger, id, err)
			http.Error(w, fmt.Sprintf("failed to update %s entry", ledger), http.StatusInternalServerError)
			return
		}
		cachedb.ClearLedgerCaches(ledger)

		log.Printf("INFO: Updated %s entry %s", ledger, updated.ID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteEntry(pool *pgxpool.Pool, ledger models.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := db.DeleteEntry(r.Context(), pool, ledger, id); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, fmt.Sprintf("%s entry not found", ledger), http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete %s entry %s: %v", ledger, id, err)
			http.Error(w, fmt.Sprintf("failed to delete %s entry", ledger), http.StatusInternalServerError)
			return
		}
		cachedb.ClearLedgerCaches(ledger)

		log.Printf("INFO: Deleted %s entry %s", ledger, id)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": fmt.Sprintf("%s entry deleted", ledger)})
	}
}

package handlers

import (
	"fmt"
	"log"
	"net/http"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/export"
	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ExportEntries streams a ledger as a CSV attachment, honoring the same
// profileId/month/year filters as the list endpoint.
func ExportEntries(pool *pgxpool.Pool, ledger models.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, _, _, err := parseLedgerFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		entries, err := db.GetAllEntries(r.Context(), pool, ledger, filter)
		if err != nil {
			log.Printf("ERROR: Failed to get %s entries for export: %v", ledger, err)
			http.Error(w, fmt.Sprintf("failed to export %s entries", ledger), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", string(ledger)+".csv"))
		if err := export.WriteEntries(w, entries); err != nil {
			log.Printf("ERROR: Failed to write %s CSV: %v", ledger, err)
		}
	}
}

// ExportSavingsTargets streams the savings targets of a profile as CSV.
func ExportSavingsTargets(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := r.URL.Query().Get("profileId")
		targets, err := db.GetAllSavingsTargets(r.Context(), pool, profileID)
		if err != nil {
			log.Printf("ERROR: Failed to get savings targets for export: %v", err)
			http.Error(w, "failed to export savings targets", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="savings.csv"`)
		if err := export.WriteSavingsTargets(w, targets); err != nil {
			log.Printf("ERROR: Failed to write savings CSV: %v", err)
		}
	}
}

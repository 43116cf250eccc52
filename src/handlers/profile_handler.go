package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateProfile(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name        string  `json:"name"`
			Description *string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create profile request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		created, err := db.CreateProfile(r.Context(), pool, req.Name, req.Description)
		if err != nil {
			log.Printf("ERROR: Failed to create profile: %v", err)
			http.Error(w, "failed to create profile", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created profile %s (%s)", created.ID, created.Name)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetAllProfiles(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := db.GetAllProfiles(r.Context(), pool)
		if err != nil {
			log.Printf("ERROR: Failed to get profiles: %v", err)
			http.Error(w, "failed to get profiles", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(profiles)
	}
}

// GetProfileByID returns the profile together with its ledger entries and
// savings targets.
func GetProfileByID(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		profile, err := db.GetProfileByID(r.Context(), pool, id)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "profile not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to get profile %s: %v", id, err)
			http.Error(w, "failed to get profile", http.StatusInternalServerError)
			return
		}

		detail := struct {
			models.Profile
			Incomes        []models.Entry         `json:"incomes"`
			Expenses       []models.Entry         `json:"expenses"`
			SavingsTargets []models.SavingsTarget `json:"savingsTargets"`
		}{Profile: *profile}

		filter := db.EntryFilter{ProfileID: id}
		if detail.Incomes, err = db.GetAllEntries(r.Context(), pool, models.LedgerIncome, filter); err == nil {
			if detail.Expenses, err = db.GetAllEntries(r.Context(), pool, models.LedgerExpense, filter); err == nil {
				detail.SavingsTargets, err = db.GetAllSavingsTargets(r.Context(), pool, id)
			}
		}
		if err != nil {
			log.Printf("ERROR: Failed to load related records for profile %s: %v", id, err)
			http.Error(w, "failed to get profile", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(detail)
	}
}

func UpdateProfile(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req struct {
			Name        *string `json:"name"`
			Description *string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update profile request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name != nil && *req.Name == "" {
			http.Error(w, "name cannot be empty", http.StatusBadRequest)
			return
		}
		updated, err := db.UpdateProfile(r.Context(), pool, id, req.Name, req.Description)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "profile not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update profile %s: %v", id, err)
			http.Error(w, "failed to update profile", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Updated profile %s", updated.ID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

// DeleteProfile removes the profile and, through the schema's cascading
// foreign keys, every ledger entry and savings target scoped to it.
func DeleteProfile(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := db.DeleteProfile(r.Context(), pool, id); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "profile not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete profile %s: %v", id, err)
			http.Error(w, "failed to delete profile", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Deleted profile %s", id)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "profile deleted"})
	}
}

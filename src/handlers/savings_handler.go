package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateSavingsTarget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name              string   `json:"name"`
			TargetAmount      *float64 `json:"targetAmount"`
			CurrentAmount     *float64 `json:"currentAmount"`
			StartDate         string   `json:"startDate"`
			TargetDate        string   `json:"targetDate"`
			AllocationPercent *float64 `json:"allocationPercent"`
			ProfileID         string   `json:"profileId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create savings target request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.TargetAmount == nil || req.StartDate == "" || req.TargetDate == "" || req.ProfileID == "" {
			http.Error(w, "name, targetAmount, startDate, targetDate, and profileId are required", http.StatusBadRequest)
			return
		}
		// A zero target would make progress undefined, so it is rejected
		// up front.
		if *req.TargetAmount <= 0 {
			http.Error(w, "targetAmount must be greater than zero", http.StatusBadRequest)
			return
		}
		startDate, err := util.ParseDate(req.StartDate)
		if err != nil {
			http.Error(w, "invalid startDate", http.StatusBadRequest)
			return
		}
		targetDate, err := util.ParseDate(req.TargetDate)
		if err != nil {
			http.Error(w, "invalid targetDate", http.StatusBadRequest)
			return
		}

		target := &models.SavingsTarget{
			Name:         req.Name,
			TargetAmount: *req.TargetAmount,
			StartDate:    startDate,
			TargetDate:   targetDate,
			ProfileID:    req.ProfileID,
		}
		if req.CurrentAmount != nil {
			if !util.ValidateAmount(*req.CurrentAmount) {
				http.Error(w, "currentAmount must be non-negative", http.StatusBadRequest)
				return
			}
			target.CurrentAmount = *req.CurrentAmount
		}
		if req.AllocationPercent != nil {
			target.AllocationPercent = *req.AllocationPercent
		}

		created, err := db.CreateSavingsTarget(r.Context(), pool, target)
		if err != nil {
			log.Printf("ERROR: Failed to create savings target: %v", err)
			http.Error(w, "failed to create savings target", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created savings target %s (%s) for profile %s", created.ID, created.Name, created.ProfileID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetAllSavingsTargets(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := r.URL.Query().Get("profileId")
		targets, err := db.GetAllSavingsTargets(r.Context(), pool, profileID)
		if err != nil {
			log.Printf("ERROR: Failed to get savings targets: %v", err)
			http.Error(w, "failed to get savings targets", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(targets)
	}
}

func GetSavingsTargetByID(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		target, err := db.GetSavingsTargetByID(r.Context(), pool, id)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "savings target not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to get savings target %s: %v", id, err)
			http.Error(w, "failed to get savings target", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(target)
	}
}

func UpdateSavingsTarget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req struct {
			Name              *string  `json:"name"`
			TargetAmount      *float64 `json:"targetAmount"`
			CurrentAmount     *float64 `json:"currentAmount"`
			StartDate         *string  `json:"startDate"`
			TargetDate        *string  `json:"targetDate"`
			AllocationPercent *float64 `json:"allocationPercent"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update savings target request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.TargetAmount != nil && *req.TargetAmount <= 0 {
			http.Error(w, "targetAmount must be greater than zero", http.StatusBadRequest)
			return
		}
		if req.CurrentAmount != nil && !util.ValidateAmount(*req.CurrentAmount) {
			http.Error(w, "currentAmount must be non-negative", http.StatusBadRequest)
			return
		}
		upd := db.SavingsTargetUpdate{
			Name:              req.Name,
			TargetAmount:      req.TargetAmount,
			CurrentAmount:     req.CurrentAmount,
			AllocationPercent: req.AllocationPercent,
		}
		var err error
		if req.StartDate != nil {
			var startDate time.Time
			if startDate, err = util.ParseDate(*req.StartDate); err != nil {
				http.Error(w, "invalid startDate", http.StatusBadRequest)
				return
			}
			upd.StartDate = &startDate
		}
		if req.TargetDate != nil {
			var targetDate time.Time
			if targetDate, err = util.ParseDate(*req.TargetDate); err != nil {
				http.Error(w, "invalid targetDate", http.StatusBadRequest)
				return
			}
			upd.TargetDate = &targetDate
		}

		updated, err := db.UpdateSavingsTarget(r.Context(), pool, id, upd)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "savings target not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update savings target %s: %v", id, err)
			http.Error(w, "failed to update savings target", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Updated savings target %s", updated.ID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteSavingsTarget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := db.DeleteSavingsTarget(r.Context(), pool, id); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "savings target not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete savings target %s: %v", id, err)
			http.Error(w, "failed to delete savings target", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Deleted savings target %s", id)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "savings target deleted"})
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name  string  `json:"name"`
			Type  string  `json:"type"`
			Color string  `json:"color"`
			Icon  *string `json:"icon"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create category request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.Type == "" {
			http.Error(w, "name and type are required", http.StatusBadRequest)
			return
		}
		if !util.ValidateCategoryType(req.Type) {
			http.Error(w, "type must be INCOME or EXPENSE", http.StatusBadRequest)
			return
		}
		if req.Color == "" {
			req.Color = "#000000"
		}
		if !util.ValidateHexColor(req.Color) {
			http.Error(w, "color must be a hex color like #1a2b3c", http.StatusBadRequest)
			return
		}
		category := &models.Category{
			Name:  req.Name,
			Type:  req.Type,
			Color: req.Color,
			Icon:  req.Icon,
		}
		created, err := db.CreateCategory(r.Context(), pool, category)
		if err != nil {
			log.Printf("ERROR: Failed to create category: %v", err)
			http.Error(w, "failed to create category", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created category %s (%s, %s)", created.ID, created.Name, created.Type)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetAllCategories(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryType := r.URL.Query().Get("type")
		if categoryType != "" && !util.ValidateCategoryType(categoryType) {
			http.Error(w, "type must be INCOME or EXPENSE", http.StatusBadRequest)
			return
		}
		categories, err := db.GetAllCategories(r.Context(), pool, categoryType)
		if err != nil {
			log.Printf("ERROR: Failed to get categories: %v", err)
			http.Error(w, "failed to get categories", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(categories)
	}
}

func GetCategoryByID(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		category, err := db.GetCategoryByID(r.Context(), pool, id)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "category not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to get category %s: %v", id, err)
			http.Error(w, "failed to get category", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(category)
	}
}

func UpdateCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req struct {
			Name  *string `json:"name"`
			Type  *string `json:"type"`
			Color *string `json:"color"`
			Icon  *string `json:"icon"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update category request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Type != nil && !util.ValidateCategoryType(*req.Type) {
			http.Error(w, "type must be INCOME or EXPENSE", http.StatusBadRequest)
			return
		}
		if req.Color != nil && !util.ValidateHexColor(*req.Color) {
			http.Error(w, "color must be a hex color like #1a2b3c", http.StatusBadRequest)
			return
		}
		updated, err := db.UpdateCategory(r.Context(), pool, id, req.Name, req.Type, req.Color, req.Icon)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "category not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update category %s: %v", id, err)
			http.Error(w, "failed to update category", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Updated category %s", updated.ID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

// DeleteCategory refuses (via the store's RESTRICT constraint) while ledger
// entries still reference the category.
func DeleteCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := db.DeleteCategory(r.Context(), pool, id); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "category not found", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete category %s: %v", id, err)
			http.Error(w, "failed to delete category", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Deleted category %s", id)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "category deleted"})
	}
}

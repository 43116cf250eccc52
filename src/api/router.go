package api

import (
	"net/http"

	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"
	"fintrack-server/src/models"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(allowedOrigins))
	r.Use(middleware.LoggingMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		// Profiles
		r.Get("/profiles", handlers.GetAllProfiles(pool))
		r.Post("/profiles", handlers.CreateProfile(pool))
		r.Get("/profiles/{id}", handlers.GetProfileByID(pool))
		r.Patch("/profiles/{id}", handlers.UpdateProfile(pool))
		r.Delete("/profiles/{id}", handlers.DeleteProfile(pool))

		// Categories
		r.Get("/categories", handlers.GetAllCategories(pool))
		r.Post("/categories", handlers.CreateCategory(pool))
		r.Get("/categories/{id}", handlers.GetCategoryByID(pool))
		r.Patch("/categories/{id}", handlers.UpdateCategory(pool))
		r.Delete("/categories/{id}", handlers.DeleteCategory(pool))

		// Ledgers
		for _, ledger := range []models.Ledger{models.LedgerIncome, models.LedgerExpense} {
			base := "/" + string(ledger)
			r.Get(base, handlers.GetAllEntries(pool, ledger))
			r.Post(base, handlers.CreateEntry(pool, ledger))
			r.Get(base+"/{id}", handlers.GetEntryByID(pool, ledger))
			r.Patch(base+"/{id}", handlers.UpdateEntry(pool, ledger))
			r.Delete(base+"/{id}", handlers.DeleteEntry(pool, ledger))
			r.Get("/export"+base+".csv", handlers.ExportEntries(pool, ledger))
		}

		// Savings targets
		r.Get("/savings", handlers.GetAllSavingsTargets(pool))
		r.Post("/savings", handlers.CreateSavingsTarget(pool))
		r.Get("/savings/{id}", handlers.GetSavingsTargetByID(pool))
		r.Patch("/savings/{id}", handlers.UpdateSavingsTarget(pool))
		r.Delete("/savings/{id}", handlers.DeleteSavingsTarget(pool))
		r.Get("/export/savings.csv", handlers.ExportSavingsTargets(pool))

		// Reports
		r.Get("/reports/summary", handlers.GetSummary(pool))
		r.Get("/reports/trend", handlers.GetMonthlyTrend(pool))

		// News
		r.Get("/news", handlers.GetNews())
	})

	return r
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/reports"

	"github.com/jackc/pgx/v5/pgxpool"
)

type savingsProgressItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Progress      float64 `json:"progress"`
}

type summaryResponse struct {
	TotalIncome       float64                 `json:"totalIncome"`
	TotalExpense      float64                 `json:"totalExpense"`
	Balance           float64                 `json:"balance"`
	SavingsRate       float64                 `json:"savingsRate"`
	ExpenseRatio      float64                 `json:"expenseRatio"`
	IncomeByCategory  []reports.CategoryTotal `json:"incomeByCategory"`
	ExpenseByCategory []reports.CategoryTotal `json:"expenseByCategory"`
	Savings           []savingsProgressItem   `json:"savings"`
}

// GetSummary aggregates both ledgers and the savings targets of one profile
// for an optional month/year window.
func GetSummary(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, _, _, err := parseLedgerFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if filter.ProfileID == "" {
			http.Error(w, "profileId is required", http.StatusBadRequest)
			return
		}

		income, err := db.GetAllEntries(r.Context(), pool, models.LedgerIncome, filter)
		if err != nil {
			log.Printf("ERROR: Failed to get income entries for summary: %v", err)
			http.Error(w, "failed to build summary", http.StatusInternalServerError)
			return
		}
		expense, err := db.GetAllEntries(r.Context(), pool, models.LedgerExpense, filter)
		if err != nil {
			log.Printf("ERROR: Failed to get expense entries for summary: %v", err)
			http.Error(w, "failed to build summary", http.StatusInternalServerError)
			return
		}
		targets, err := db.GetAllSavingsTargets(r.Context(), pool, filter.ProfileID)
		if err != nil {
			log.Printf("ERROR: Failed to get savings targets for summary: %v", err)
			http.Error(w, "failed to build summary", http.StatusInternalServerError)
			return
		}

		totalIncome := reports.TotalAmount(income)
		totalExpense := reports.TotalAmount(expense)
		resp := summaryResponse{
			TotalIncome:       totalIncome,
			TotalExpense:      totalExpense,
			Balance:           totalIncome - totalExpense,
			SavingsRate:       reports.SavingsRate(totalIncome, totalExpense),
			ExpenseRatio:      reports.ExpenseRatio(totalIncome, totalExpense),
			IncomeByCategory:  reports.GroupByCategory(income),
			ExpenseByCategory: reports.GroupByCategory(expense),
			Savings:           make([]savingsProgressItem, 0, len(targets)),
		}
		for _, t := range targets {
			resp.Savings = append(resp.Savings, savingsProgressItem{
				ID:            t.ID,
				Name:          t.Name,
				TargetAmount:  t.TargetAmount,
				CurrentAmount: t.CurrentAmount,
				Progress:      reports.SavingsProgress(t.CurrentAmount, t.TargetAmount),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

// GetMonthlyTrend serves the 12-point income/expense series for a year,
// defaulting to the current one.
func GetMonthlyTrend(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := r.URL.Query().Get("profileId")
		if profileID == "" {
			http.Error(w, "profileId is required", http.StatusBadRequest)
			return
		}
		year := time.Now().Year()
		if raw := r.URL.Query().Get("year"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				http.Error(w, "invalid year", http.StatusBadRequest)
				return
			}
			year = parsed
		}

		filter := db.EntryFilter{
			ProfileID: profileID,
			Start:     time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:       time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC),
		}
		income, err := db.GetAllEntries(r.Context(), pool, models.LedgerIncome, filter)
		if err != nil {
			log.Printf("ERROR: Failed to get income entries for trend: %v", err)
			http.Error(w, "failed to build trend", http.StatusInternalServerError)
			return
		}
		expense, err := db.GetAllEntries(r.Context(), pool, models.LedgerExpense, filter)
		if err != nil {
			log.Printf("ERROR: Failed to get expense entries for trend: %v", err)
			http.Error(w, "failed to build trend", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reports.MonthlyTrend(income, expense, year))
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"fintrack-server/src/models"
)

// GetNews serves placeholder economic headlines. There is no real feed
// integration; a news API client would slot in here.
func GetNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		items := []models.NewsItem{
			{
				Title:       "Global Economic Growth Improves in Q4",
				Description: "Recent reports show a global economic recovery with positive growth across major sectors.",
				URL:         "https://example.com/news1",
				PublishedAt: now.AddDate(0, 0, -2),
			},
			{
				Title:       "Central Bank Holds Interest Rates Steady",
				Description: "The central bank kept rates unchanged to preserve economic stability and keep inflation in check.",
				URL:         "https://example.com/news2",
				PublishedAt: now.AddDate(0, 0, -3),
			},
			{
				Title:       "Global Stock Markets Post Gains",
				Description: "Global indices trended upward, supported by strong corporate results and optimistic investor sentiment.",
				URL:         "https://example.com/news3",
				PublishedAt: now.AddDate(0, 0, -5),
			},
			{
				Title:       "Commodity Prices Stabilize After Volatile Stretch",
				Description: "After a period of high volatility, major commodity prices are showing improved stability.",
				URL:         "https://example.com/news4",
				PublishedAt: now.AddDate(0, 0, -7),
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
	}
}

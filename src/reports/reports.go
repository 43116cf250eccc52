// Package reports holds the pure aggregation functions behind the report
// endpoints. Everything here operates on already-fetched lists; no function
// touches the database.
package reports

import "fintrack-server/src/models"

// CategoryTotal is one slice of a per-category breakdown. Color is taken
// from the first entry seen for the category name.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// TrendPoint is one month of a yearly income/expense series.
type TrendPoint struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func TotalAmount(entries []models.Entry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Amount
	}
	return sum
}

func Balance(income, expense []models.Entry) float64 {
	return TotalAmount(income) - TotalAmount(expense)
}

// SavingsRate is (income - expense) / income as a percentage, 0 when there
// is no income.
func SavingsRate(totalIncome, totalExpense float64) float64 {
	if totalIncome == 0 {
		return 0
	}
	return (totalIncome - totalExpense) / totalIncome * 100
}

// ExpenseRatio is expense / income as a percentage, 0 when there is no
// income.
func ExpenseRatio(totalIncome, totalExpense float64) float64 {
	if totalIncome == 0 {
		return 0
	}
	return totalExpense / totalIncome * 100
}

// GroupByCategory sums amounts per category name in first-seen order.
func GroupByCategory(entries []models.Entry) []CategoryTotal {
	totals := make(map[string]int)
	var out []CategoryTotal
	for _, e := range entries {
		name, color := "", "#000000"
		if e.Category != nil {
			name = e.Category.Name
			color = e.Category.Color
		}
		if idx, seen := totals[name]; seen {
			out[idx].Value += e.Amount
			continue
		}
		totals[name] = len(out)
		out = append(out, CategoryTotal{Name: name, Value: e.Amount, Color: color})
	}
	return out
}

// MonthlyTrend produces exactly 12 points for the year, in month order,
// zero-filled for months without records.
func MonthlyTrend(income, expense []models.Entry, year int) []TrendPoint {
	points := make([]TrendPoint, 12)
	for i := range points {
		points[i].Month = monthLabels[i]
	}
	add := func(entries []models.Entry, pick func(*TrendPoint) *float64) {
		for _, e := range entries {
			if e.Date.Year() != year {
				continue
			}
			p := &points[int(e.Date.Month())-1]
			*pick(p) += e.Amount
		}
	}
	add(income, func(p *TrendPoint) *float64 { return &p.Income })
	add(expense, func(p *TrendPoint) *float64 { return &p.Expense })
	return points
}

// SavingsProgress is current/target as a percentage, clamped to 100. A
// non-positive target reports 0 rather than a non-finite value.
func SavingsProgress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	progress := current / target * 100
	if progress > 100 {
		return 100
	}
	return progress
}

package models

import "time"

// Ledger selects which transaction table an entry belongs to. Income and
// expense records share a structure but live in separate tables and must
// reference a category of matching polarity.
type Ledger string

const (
	LedgerIncome  Ledger = "income"
	LedgerExpense Ledger = "expense"
)

func (l Ledger) Valid() bool {
	return l == LedgerIncome || l == LedgerExpense
}

// Table returns the backing table name for the ledger.
func (l Ledger) Table() string {
	if l == LedgerExpense {
		return "expense_entries"
	}
	return "income_entries"
}

// CategoryType returns the category polarity this ledger accepts.
func (l Ledger) CategoryType() string {
	if l == LedgerExpense {
		return CategoryTypeExpense
	}
	return CategoryTypeIncome
}

// Entry is a single income or expense record, enriched with its category
// and profile on reads.
type Entry struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
	CategoryID  string    `json:"categoryId"`
	ProfileID   string    `json:"profileId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Category    *Category `json:"category,omitempty"`
	Profile     *Profile  `json:"profile,omitempty"`
}

package models

import "time"

// SavingsTarget is a goal with a manually-tracked current amount. Progress
// is never derived from ledger entries; callers update CurrentAmount
// themselves. AllocationPercent is advisory and not enforced anywhere.
type SavingsTarget struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	TargetAmount      float64   `json:"targetAmount"`
	CurrentAmount     float64   `json:"currentAmount"`
	StartDate         time.Time `json:"startDate"`
	TargetDate        time.Time `json:"targetDate"`
	AllocationPercent float64   `json:"allocationPercent"`
	ProfileID         string    `json:"profileId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	Profile           *Profile  `json:"profile,omitempty"`
}

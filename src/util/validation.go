package util

import (
	"regexp"
	"time"

	"fintrack-server/src/models"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func ValidateCategoryType(categoryType string) bool {
	return categoryType == models.CategoryTypeIncome || categoryType == models.CategoryTypeExpense
}

func ValidateHexColor(color string) bool {
	return hexColorRe.MatchString(color)
}

func ValidateAmount(amount float64) bool {
	return amount >= 0
}

// ParseDate accepts RFC 3339 timestamps or bare YYYY-MM-DD dates.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

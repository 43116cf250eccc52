package util

import "time"

// DateWindow converts a month/year filter into a half-open [start, end) UTC
// window. month is 1-12 or 0 when absent; year is 0 when absent. A month
// without a year assumes the year of now. Returns ok=false when neither
// dimension is set, meaning no date filter applies.
func DateWindow(month, year int, now time.Time) (start, end time.Time, ok bool) {
	if month == 0 && year == 0 {
		return time.Time{}, time.Time{}, false
	}
	if month != 0 {
		if year == 0 {
			year = now.Year()
		}
		start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0), true
	}
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0), true
}

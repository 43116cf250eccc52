// Package export flattens record lists into CSV. Fields go through
// encoding/csv so descriptions containing commas, quotes or newlines are
// quoted correctly.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"fintrack-server/src/models"
)

const dateLayout = "02/01/2006"

var entryHeader = []string{"Date", "Description", "Category", "Amount"}

var savingsHeader = []string{"Target Name", "Target Amount", "Current Amount", "Start Date", "Target Date", "Allocation Percent"}

// WriteEntries serializes a ledger list. An empty list yields a header-only
// document.
func WriteEntries(w io.Writer, entries []models.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(entryHeader); err != nil {
		return err
	}
	for _, e := range entries {
		description := "-"
		if e.Description != nil && *e.Description != "" {
			description = *e.Description
		}
		category := ""
		if e.Category != nil {
			category = e.Category.Name
		}
		record := []string{
			e.Date.Format(dateLayout),
			description,
			category,
			formatAmount(e.Amount),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSavingsTargets serializes a savings target list.
func WriteSavingsTargets(w io.Writer, targets []models.SavingsTarget) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(savingsHeader); err != nil {
		return err
	}
	for _, s := range targets {
		record := []string{
			s.Name,
			formatAmount(s.TargetAmount),
			formatAmount(s.CurrentAmount),
			s.StartDate.Format(dateLayout),
			s.TargetDate.Format(dateLayout),
			formatAmount(s.AllocationPercent) + "%",
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

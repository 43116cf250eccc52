package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"fintrack-server/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestWriteEntriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, nil))
	assert.Equal(t, "Date,Description,Category,Amount\n", buf.String())
}

func TestWriteEntries(t *testing.T) {
	entries := []models.Entry{
		{
			Amount:      150000,
			Description: strptr("weekly groceries"),
			Date:        time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
			Category:    &models.Category{Name: "Food"},
		},
		{
			Amount:   75000,
			Date:     time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC),
			Category: &models.Category{Name: "Transport"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, entries))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Date", "Description", "Category", "Amount"}, records[0])
	assert.Equal(t, []string{"05/03/2024", "weekly groceries", "Food", "150000"}, records[1])
	// Empty description is rendered as a dash.
	assert.Equal(t, []string{"08/03/2024", "-", "Transport", "75000"}, records[2])
}

func TestWriteEntriesQuotesDelimiters(t *testing.T) {
	entries := []models.Entry{
		{
			Amount:      42,
			Description: strptr("dinner, drinks\nand a \"show\""),
			Date:        time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			Category:    &models.Category{Name: "Fun"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, entries))

	// The raw output must quote the field so a reader round-trips it.
	assert.True(t, strings.Contains(buf.String(), `"dinner, drinks`))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "dinner, drinks\nand a \"show\"", records[1][1])
}

func TestWriteSavingsTargetsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSavingsTargets(&buf, nil))
	assert.Equal(t, "Target Name,Target Amount,Current Amount,Start Date,Target Date,Allocation Percent\n", buf.String())
}

func TestWriteSavingsTargets(t *testing.T) {
	targets := []models.SavingsTarget{
		{
			Name:              "Emergency Fund",
			TargetAmount:      1000000,
			CurrentAmount:     250000,
			StartDate:         time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			TargetDate:        time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
			AllocationPercent: 12.5,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSavingsTargets(&buf, targets))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Emergency Fund", "1000000", "250000", "01/01/2024", "31/12/2024", "12.5%"}, records[1])
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fintrack-server/src/models"

	"github.com/stretchr/testify/assert"
)

// Validation failures are rejected before any database access, so a nil
// pool is safe in these tests.

func TestCreateEntryMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: `{}`},
		{name: "missing amount", body: `{"date":"2024-03-05","categoryId":"c1","profileId":"p1"}`},
		{name: "missing date", body: `{"amount":100,"categoryId":"c1","profileId":"p1"}`},
		{name: "missing categoryId", body: `{"amount":100,"date":"2024-03-05","profileId":"p1"}`},
		{name: "missing profileId", body: `{"amount":100,"date":"2024-03-05","categoryId":"c1"}`},
	}
	for _, ledger := range []models.Ledger{models.LedgerIncome, models.LedgerExpense} {
		handler := CreateEntry(nil, ledger)
		for _, tt := range tests {
			t.Run(string(ledger)+"/"+tt.name, func(t *testing.T) {
				rr := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodPost, "/"+string(ledger), strings.NewReader(tt.body))
				handler(rr, req)
				assert.Equal(t, http.StatusBadRequest, rr.Code)
			})
		}
	}
}

func TestCreateEntryInvalidValues(t *testing.T) {
	handler := CreateEntry(nil, models.LedgerIncome)

	tests := []struct {
		name string
		body string
	}{
		{name: "negative amount", body: `{"amount":-5,"date":"2024-03-05","categoryId":"c1","profileId":"p1"}`},
		{name: "malformed date", body: `{"amount":100,"date":"03/05/2024","categoryId":"c1","profileId":"p1"}`},
		{name: "non-numeric amount", body: `{"amount":"abc","date":"2024-03-05","categoryId":"c1","profileId":"p1"}`},
		{name: "not json", body: `amount=100`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/income", strings.NewReader(tt.body))
			handler(rr, req)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestGetAllEntriesRejectsBadFilter(t *testing.T) {
	handler := GetAllEntries(nil, models.LedgerExpense)

	tests := []struct {
		name  string
		query string
	}{
		{name: "month too large", query: "?month=13"},
		{name: "month zero", query: "?month=0"},
		{name: "month not a number", query: "?month=march"},
		{name: "year not a number", query: "?year=twenty"},
		{name: "negative year", query: "?year=-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/expense"+tt.query, nil)
			handler(rr, req)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestUpdateEntryRejectsBadValues(t *testing.T) {
	handler := UpdateEntry(nil, models.LedgerExpense)

	tests := []struct {
		name string
		body string
	}{
		{name: "negative amount", body: `{"amount":-1}`},
		{name: "malformed date", body: `{"date":"yesterday"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, "/expense/abc", strings.NewReader(tt.body))
			handler(rr, req)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

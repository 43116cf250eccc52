package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSummaryRequiresProfileID(t *testing.T) {
	handler := GetSummary(nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/summary", nil)
	handler(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "profileId is required")
}

func TestGetSummaryRejectsBadWindow(t *testing.T) {
	handler := GetSummary(nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/summary?profileId=p1&month=13", nil)
	handler(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetMonthlyTrendValidation(t *testing.T) {
	handler := GetMonthlyTrend(nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/trend", nil)
	handler(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/reports/trend?profileId=p1&year=abc", nil)
	handler(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateProfileRequiresName(t *testing.T) {
	handler := CreateProfile(nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/profiles", strings.NewReader(`{"description":"no name"}`))
	handler(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateProfileRejectsEmptyName(t *testing.T) {
	handler := UpdateProfile(nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/profiles/abc", strings.NewReader(`{"name":""}`))
	handler(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodNotAllowedHandler(t *testing.T) {
	handler := NewMethodNotAllowedHandler(http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete)

	req := httptest.NewRequest(http.MethodPatch, "/api/users", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET, POST, PUT, DELETE", rr.Header().Get("Allow"))
	assert.Equal(t, "Method PATCH Not Allowed", rr.Body.String())
}

func TestHealthHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthHandler()(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

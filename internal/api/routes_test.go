package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// Les routes protégées doivent refuser toute requête sans session,
// avant le moindre accès à la base.
func TestProtectedRoutesRejectAnonymousRequests(t *testing.T) {
	router := SetupRouter()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/jobs/daily-progress"},
		{http.MethodPost, "/chat/messages"},
		{http.MethodPost, "/tasks/3/toggle"},
		{http.MethodPost, "/challenges/weekly/complete"},
	}

	for _, route := range protected {
		req := httptest.NewRequest(route.method, route.path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected status %d, got %d",
				route.method, route.path, http.StatusUnauthorized, rec.Code)
		}
	}
}

func TestHealthCheckStaysPublic(t *testing.T) {
	router := SetupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("GET /health: expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

package http

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	appdeals "sports-deals-service/internal/app/deals"
	"sports-deals-service/internal/app/forecast"
	domaindeals "sports-deals-service/internal/domain/deals"
	"sports-deals-service/internal/domain/schedule"
	"sports-deals-service/internal/http/handlers"
)

type staticProvider struct{}

func (staticProvider) FetchSchedule(ctx context.Context, url string) (schedule.Document, error) {
	return schedule.Document{Raw: []byte(`{"events":[]}`)}, nil
}

type emptyStore struct{}

func (emptyStore) Reports() []domaindeals.TeamReport { return nil }

func (emptyStore) ReportBySource(string) (domaindeals.TeamReport, bool) {
	return domaindeals.TeamReport{}, false
}

func (emptyStore) UpdatedAt() time.Time { return time.Time{} }

func newTestRouter(t *testing.T) nethttp.Handler {
	t.Helper()
	registry := []domaindeals.TeamConfig{{Team: "Tampa Bay Rays", Abbreviation: "TB", Source: "rays"}}
	sources := map[string]string{"rays": "http://example.com/rays"}
	svc := appdeals.NewService(staticProvider{}, registry, sources, nil)
	fc := forecast.NewService(staticProvider{}, "Tampa Bay Rays", "TB", "http://example.com/rays", nil)
	handler := handlers.NewHandler(svc, fc, emptyStore{}, nil, nil)
	admin := handlers.NewAdminHandler(nil, svc, "secret", nil)
	return NewRouter(handler, admin)
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
		status int
	}{
		{"GET", "/health", nethttp.StatusOK},
		{"GET", "/ready", nethttp.StatusOK},
		{"GET", "/deals", nethttp.StatusOK},
		{"GET", "/deals/rays", nethttp.StatusOK},
		{"GET", "/forecast", nethttp.StatusOK},
		{"GET", "/report/rays", nethttp.StatusOK},
		{"GET", "/nope", nethttp.StatusNotFound},
		{"POST", "/deals", nethttp.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		if w.Code != tc.status {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.status, w.Code)
		}
	}
}

func TestRouterAdminGuard(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin/schedule/rays", nil))
	if w.Code != nethttp.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	r := httptest.NewRequest("GET", "/admin/schedule/rays", nil)
	r.Header.Set("Authorization", "Bearer secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	if w.Code != nethttp.StatusOK {
		t.Fatalf("expected 200 with token, got %d", w.Code)
	}
}

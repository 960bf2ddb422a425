package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"sports-deals-service/internal/config"
	"sports-deals-service/internal/domain/schedule"
	"sports-deals-service/internal/poller"
)

type staticProvider struct{}

func (staticProvider) FetchSchedule(ctx context.Context, url string) (schedule.Document, error) {
	return schedule.Document{Raw: []byte(`{"events":[]}`)}, nil
}

func testConfig() config.Config {
	cfg := config.Load()
	cfg.Metrics.Enabled = false
	cfg.AdminToken = "secret"
	return cfg
}

func TestServerWiresRoutes(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, staticProvider{})

	cases := []struct {
		path   string
		status int
	}{
		{"/health", http.StatusOK},
		{"/deals", http.StatusOK},
		{"/deals/rays", http.StatusOK},
		{"/deals/magic", http.StatusOK},
		{"/deals/lightning", http.StatusOK},
		{"/forecast", http.StatusOK},
		{"/report/rays", http.StatusOK},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", tc.path, nil))
		if w.Code != tc.status {
			t.Fatalf("GET %s: expected %d, got %d", tc.path, tc.status, w.Code)
		}
	}
}

func TestServerServesAllBuiltinTeams(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, staticProvider{})

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/deals", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Teams []struct {
			Team   string `json:"team"`
			Source string `json:"source"`
		} `json:"teams"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Teams) != 3 {
		t.Fatalf("expected 3 builtin teams, got %d", len(resp.Teams))
	}
}

func TestServerAdminRoutesGuarded(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, staticProvider{})

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/admin/cache/status", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	r := httptest.NewRequest("GET", "/admin/cache/status", nil)
	r.Header.Set("Authorization", "Bearer secret")
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", w.Code)
	}
}

func TestServerOmitsAdminWithoutToken(t *testing.T) {
	cfg := testConfig()
	cfg.AdminToken = ""
	srv := newServerWithProvider(cfg, nil, staticProvider{})

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/admin/cache/status", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when admin disabled, got %d", w.Code)
	}
}

type fakeHTTPServer struct {
	shutdowns atomic.Int32
}

func (f *fakeHTTPServer) ListenAndServe() error { return http.ErrServerClosed }

func (f *fakeHTTPServer) Shutdown(ctx context.Context) error {
	f.shutdowns.Add(1)
	return nil
}

func (f *fakeHTTPServer) Addr() string          { return ":0" }
func (f *fakeHTTPServer) Handler() http.Handler { return http.NewServeMux() }

type fakePoller struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (f *fakePoller) Start(ctx context.Context) error { f.started.Add(1); return nil }
func (f *fakePoller) Stop(ctx context.Context) error  { f.stopped.Add(1); return nil }
func (f *fakePoller) Status() poller.Status           { return poller.Status{} }

func TestRunShutsDownGracefully(t *testing.T) {
	httpSrv := &fakeHTTPServer{}
	plr := &fakePoller{}
	srv := newServerWithDeps(testConfig(), nil, nil, httpSrv, plr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for shutdown")
	}

	if plr.started.Load() != 1 || plr.stopped.Load() != 1 {
		t.Fatalf("expected poller started and stopped once, got %d/%d", plr.started.Load(), plr.stopped.Load())
	}
	if httpSrv.shutdowns.Load() != 1 {
		t.Fatalf("expected one http shutdown, got %d", httpSrv.shutdowns.Load())
	}
}

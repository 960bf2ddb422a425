package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	appdeals "sports-deals-service/internal/app/deals"
	"sports-deals-service/internal/app/forecast"
	domaindeals "sports-deals-service/internal/domain/deals"
	"sports-deals-service/internal/poller"
)

type nowFunc func() time.Time

// ReportStore reads the refresh-cycle snapshots published by the poller.
type ReportStore interface {
	Reports() []domaindeals.TeamReport
	ReportBySource(source string) (domaindeals.TeamReport, bool)
	UpdatedAt() time.Time
}

// Handler wires HTTP routes to the deal and forecast services.
type Handler struct {
	svc      *appdeals.Service
	forecast *forecast.Service
	store    ReportStore
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *appdeals.Service, fc *forecast.Service, store ReportStore, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		forecast: fc,
		store:    store,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// DealsResponse is the payload served on /deals.
type DealsResponse struct {
	UpdatedAt time.Time                `json:"updatedAt"`
	Teams     []domaindeals.TeamReport `json:"teams"`
}

func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Deals serves the latest evaluation snapshot for every configured team,
// evaluating on demand when the poller has not published one yet.
func (h *Handler) Deals(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	reports := h.store.Reports()
	updatedAt := h.store.UpdatedAt()
	if len(reports) == 0 {
		fresh, err := h.svc.EvaluateAll(r.Context())
		if err != nil {
			writeError(w, r, nethttp.StatusBadGateway, "deal evaluation unavailable", logger)
			return
		}
		reports = fresh
		updatedAt = h.now()
	}

	writeJSON(w, nethttp.StatusOK, DealsResponse{UpdatedAt: updatedAt, Teams: reports}, logger)
}

// DealsByTeam serves one team's evaluation, by schedule source key.
func (h *Handler) DealsByTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	source, ok := sourceFromPath(r.URL.Path, "/deals/")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team", logger)
		return
	}
	if _, known := h.svc.TeamBySource(source); !known {
		writeError(w, r, nethttp.StatusNotFound, "unknown team", logger)
		return
	}

	if report, found := h.store.ReportBySource(source); found {
		writeJSON(w, nethttp.StatusOK, report, logger)
		return
	}

	report, err := h.svc.EvaluateTeam(r.Context(), source)
	if err != nil {
		writeError(w, r, nethttp.StatusBadGateway, "deal evaluation unavailable", logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, report, logger)
}

// Forecast serves the 7-day pizza outlook.
func (h *Handler) Forecast(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	if h.forecast == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "forecast not configured", logger)
		return
	}
	f, err := h.forecast.Forecast(r.Context())
	if err != nil {
		writeError(w, r, nethttp.StatusBadGateway, "forecast unavailable", logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, f, logger)
}

// Report serves the last-game score summary for one team.
func (h *Handler) Report(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	source, ok := sourceFromPath(r.URL.Path, "/report/")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team", logger)
		return
	}
	if _, known := h.svc.TeamBySource(source); !known {
		writeError(w, r, nethttp.StatusNotFound, "unknown team", logger)
		return
	}

	report, err := h.svc.LastGameReport(r.Context(), source)
	if err != nil {
		writeError(w, r, nethttp.StatusBadGateway, "schedule unavailable", logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, report, logger)
}

func sourceFromPath(path, prefix string) (string, bool) {
	raw := strings.TrimPrefix(path, prefix)
	if raw == "" || raw == path {
		return "", false
	}
	source, err := url.PathUnescape(raw)
	if err != nil || source == "" || strings.ContainsAny(source, " \t/") {
		return "", false
	}
	return source, true
}

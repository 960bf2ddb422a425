package handlers

import (
	"log/slog"
	"net/http"

	appdeals "sports-deals-service/internal/app/deals"
	"sports-deals-service/internal/cache"
	"sports-deals-service/internal/http/requestutil"
	"sports-deals-service/internal/logging"
)

// ScheduleCache exposes the cache operations the admin surface needs.
type ScheduleCache interface {
	Clear()
	Status() map[string]cache.KeyStatus
}

// AdminHandler exposes operator-only endpoints, guarded by a bearer token.
type AdminHandler struct {
	cache  ScheduleCache
	svc    *appdeals.Service
	token  string
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(scheduleCache ScheduleCache, svc *appdeals.Service, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		cache:  scheduleCache,
		svc:    svc,
		token:  token,
		logger: logger,
	}
}

// CacheClear drops every cached schedule document so the next evaluation
// fetches fresh data.
func (h *AdminHandler) CacheClear(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		h.denied(w, r)
		return
	}
	if h.cache == nil {
		writeError(w, r, http.StatusServiceUnavailable, "cache not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	h.cache.Clear()
	logging.Info(logger, "schedule cache cleared")
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
}

// CacheStatus reports per-URL cache entry age and expiry.
func (h *AdminHandler) CacheStatus(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if !h.authorize(r) {
		h.denied(w, r)
		return
	}
	if h.cache == nil {
		writeError(w, r, http.StatusServiceUnavailable, "cache not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	status := h.cache.Status()
	writeJSON(w, http.StatusOK, map[string]any{
		"entries": status,
		"count":   len(status),
	}, logger)
}

// RawSchedule fetches and returns the upstream schedule document for one
// team, unmodified, for connectivity diagnostics.
func (h *AdminHandler) RawSchedule(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if !h.authorize(r) {
		h.denied(w, r)
		return
	}

	logger := loggerFromContext(r, h.logger)
	source, ok := sourceFromPath(r.URL.Path, "/admin/schedule/")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid team", logger)
		return
	}

	raw, err := h.svc.RawSchedule(r.Context(), source)
	if err != nil {
		logging.Warn(logger, "admin raw schedule fetch failed",
			slog.String(logging.FieldSource, source),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusBadGateway, "failed to fetch schedule", logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		logging.Warn(logger, "admin raw schedule write failed", slog.Any("err", err))
	}
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}

func (h *AdminHandler) denied(w http.ResponseWriter, r *http.Request) {
	logging.Warn(h.logger, "admin unauthorized",
		slog.String(logging.FieldPath, r.URL.Path),
		slog.String("client_ip", requestutil.ClientIP(r)),
	)
	writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
}

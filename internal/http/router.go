package http

import (
	nethttp "net/http"

	"sports-deals-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/deals", handler.Deals)
	mux.HandleFunc("/deals/", handler.DealsByTeam)
	mux.HandleFunc("/forecast", handler.Forecast)
	mux.HandleFunc("/report/", handler.Report)
	if admin != nil {
		mux.HandleFunc("/admin/cache/clear", admin.CacheClear)
		mux.HandleFunc("/admin/cache/status", admin.CacheStatus)
		mux.HandleFunc("/admin/schedule/", admin.RawSchedule)
	}
	return mux
}

package server

import (
	"context"
	"log/slog"
	"net/http"

	appdeals "sports-deals-service/internal/app/deals"
	"sports-deals-service/internal/app/forecast"
	"sports-deals-service/internal/cache"
	"sports-deals-service/internal/config"
	domaindeals "sports-deals-service/internal/domain/deals"
	httpserver "sports-deals-service/internal/http"
	"sports-deals-service/internal/http/handlers"
	"sports-deals-service/internal/http/middleware"
	"sports-deals-service/internal/logging"
	"sports-deals-service/internal/metrics"
	"sports-deals-service/internal/poller"
	"sports-deals-service/internal/providers"
	"sports-deals-service/internal/providers/espn"
	"sports-deals-service/internal/store"
)

// forecastSource is the team schedule the pizza forecast derives from.
const forecastSource = "magic"

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	scheduleCache *cache.ScheduleCache
	dealsService  *appdeals.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.ScheduleProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = espn.NewClient(espn.Config{Timeout: cfg.ESPN.Timeout})
	}
	provider = providers.NewLoggingProvider(provider, logger)
	scheduleCache := cache.New(provider, cfg.CacheTTL, logger, recorder)

	registry := domaindeals.BuiltinRegistry()
	sources := cfg.ESPN.SourceURLs()
	dealSvc := appdeals.NewService(scheduleCache, registry, sources, logger)
	forecastSvc := buildForecast(scheduleCache, registry, sources, logger)

	memoryStore := store.NewMemoryStore()
	plr := poller.New(dealSvc, memoryStore, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, memoryStore, dealSvc, forecastSvc, scheduleCache, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		scheduleCache: scheduleCache,
		dealsService:  dealSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, dealSvc *appdeals.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:          cfg,
		logger:       logger,
		dealsService: dealSvc,
		httpServer:   httpSrv,
		poller:       plr,
	}
}

func buildForecast(provider providers.ScheduleProvider, registry []domaindeals.TeamConfig, sources map[string]string, logger *slog.Logger) *forecast.Service {
	for _, cfg := range registry {
		if cfg.Source == forecastSource {
			return forecast.NewService(provider, cfg.Team, cfg.Abbreviation, sources[cfg.Source], logger)
		}
	}
	return nil
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, dealSvc *appdeals.Service, forecastSvc *forecast.Service, scheduleCache *cache.ScheduleCache, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(dealSvc, forecastSvc, memoryStore, logger, statusFn)
	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" {
		admin = handlers.NewAdminHandler(scheduleCache, dealSvc, cfg.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if err := s.poller.Start(ctx); err != nil && s.logger != nil {
		s.logger.Error("failed to start poller", "error", err)
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

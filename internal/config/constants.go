package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envCacheTTL     = "SCHEDULE_CACHE_TTL"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken   = "ADMIN_TOKEN"

	defaultPort = "4000"
	// Upstream schedule data moves slowly; a few minutes between refresh
	// cycles keeps results current without hammering ESPN.
	defaultPollInterval = 5 * Duration(time.Minute)
	defaultCacheTTL     = 5 * Duration(time.Minute)
	defaultMetricsPort  = "9090"
)

package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	CacheTTL     Duration
	AdminToken   string
	ESPN         ESPNConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		CacheTTL:     durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		AdminToken:   envOrDefault(envAdminToken, ""),
		ESPN:         loadESPN(),
		Metrics:      loadMetrics(),
	}
}

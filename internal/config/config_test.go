package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval %s, got %s", defaultPollInterval, cfg.PollInterval)
	}
	if cfg.CacheTTL != defaultCacheTTL {
		t.Fatalf("expected default cache ttl %s, got %s", defaultCacheTTL, cfg.CacheTTL)
	}
	if cfg.AdminToken != "" {
		t.Fatalf("expected empty admin token by default, got %s", cfg.AdminToken)
	}
	if cfg.ESPN.BaseURL != defaultEspnBaseURL {
		t.Fatalf("expected default espn base url %s, got %s", defaultEspnBaseURL, cfg.ESPN.BaseURL)
	}
	if cfg.ESPN.Timeout != defaultEspnTimeout {
		t.Fatalf("expected default espn timeout %s, got %s", defaultEspnTimeout, cfg.ESPN.Timeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envPollInterval, "45s")
	t.Setenv(envCacheTTL, "90s")
	t.Setenv(envAdminToken, "secret-token")
	t.Setenv(envEspnBaseURL, "http://example.com/sports")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.PollInterval != 45*time.Second {
		t.Fatalf("expected poll interval 45s, got %s", cfg.PollInterval)
	}
	if cfg.CacheTTL != 90*time.Second {
		t.Fatalf("expected cache ttl 90s, got %s", cfg.CacheTTL)
	}
	if cfg.AdminToken != "secret-token" {
		t.Fatalf("expected admin token override, got %s", cfg.AdminToken)
	}
	if cfg.ESPN.BaseURL != "http://example.com/sports" {
		t.Fatalf("expected espn base url override, got %s", cfg.ESPN.BaseURL)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on invalid value, got %s", cfg.PollInterval)
	}
}

func TestSourceURLs(t *testing.T) {
	espn := ESPNConfig{BaseURL: "http://example.com/sports"}

	urls := espn.SourceURLs()
	want := map[string]string{
		"rays":      "http://example.com/sports/baseball/mlb/teams/tb/schedule",
		"magic":     "http://example.com/sports/basketball/nba/teams/orl/schedule",
		"lightning": "http://example.com/sports/hockey/nhl/teams/tb/schedule",
	}
	if len(urls) != len(want) {
		t.Fatalf("expected %d sources, got %d", len(want), len(urls))
	}
	for source, url := range want {
		if urls[source] != url {
			t.Fatalf("source %s: expected %s, got %s", source, urls[source], url)
		}
	}
}

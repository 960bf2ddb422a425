package config

import "time"

const (
	envEspnBaseURL = "ESPN_BASE_URL"
	envEspnTimeout = "ESPN_TIMEOUT"

	defaultEspnBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
	defaultEspnTimeout = 15 * Duration(time.Second)
)

// ESPNConfig controls how we talk to the ESPN site API.
type ESPNConfig struct {
	BaseURL string
	Timeout Duration
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envEspnBaseURL, defaultEspnBaseURL),
		Timeout: durationEnvOrDefault(envEspnTimeout, defaultEspnTimeout),
	}
}

// SourceURLs maps each configured team source to its ESPN team-schedule URL.
func (c ESPNConfig) SourceURLs() map[string]string {
	return map[string]string{
		"rays":      c.BaseURL + "/baseball/mlb/teams/tb/schedule",
		"magic":     c.BaseURL + "/basketball/nba/teams/orl/schedule",
		"lightning": c.BaseURL + "/hockey/nhl/teams/tb/schedule",
	}
}

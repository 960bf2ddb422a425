package espn

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"sports-deals-service/internal/domain/schedule"
	"sports-deals-service/internal/providers"
)

const defaultTimeout = 15 * time.Second

// maxBodyBytes bounds how much of a schedule document is read; team
// schedules are well under this.
const maxBodyBytes = 8 << 20

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the ESPN client reaches the site API.
type Config struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
}

// Client fetches team-schedule documents from the ESPN site API and maps
// them to domain game events.
type Client struct {
	httpClient httpDoer
	userAgent  string
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		httpClient: httpClient,
		userAgent:  cfg.UserAgent,
	}
}

// FetchSchedule retrieves and normalizes one team's schedule document. A
// document without an events array degrades to an empty schedule; transport
// and decode failures surface as *providers.FetchError.
func (c *Client) FetchSchedule(ctx context.Context, url string) (schedule.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return schedule.Document{}, &providers.FetchError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return schedule.Document{}, &providers.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return schedule.Document{}, &providers.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return schedule.Document{}, &providers.FetchError{URL: url, Err: err}
	}

	var payload scheduleResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return schedule.Document{}, &providers.FetchError{URL: url, Err: err}
	}

	return schedule.Document{
		Events: mapEvents(payload),
		Raw:    raw,
	}, nil
}

package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"sports-deals-service/internal/domain/schedule"
	"sports-deals-service/internal/logging"
	"sports-deals-service/internal/metrics"
	"sports-deals-service/internal/providers"
)

// DefaultTTL matches the original 5-minute schedule-document cache policy.
const DefaultTTL = 5 * time.Minute

type entry struct {
	doc       schedule.Document
	fetchedAt time.Time
}

// ScheduleCache memoizes fetched schedule documents per source URL for a
// fixed TTL. It implements providers.ScheduleProvider so it stacks as a
// decorator over the real client.
//
// Concurrent requests for the same key during a miss are not coalesced; the
// occasional duplicate fetch is acceptable because entries are replaced
// atomically (last writer wins). Failures are never cached, so the next call
// retries the fetch.
type ScheduleCache struct {
	mu      sync.RWMutex
	entries map[string]entry

	provider providers.ScheduleProvider
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// New constructs a ScheduleCache over the given provider. A non-positive ttl
// falls back to DefaultTTL.
func New(provider providers.ScheduleProvider, ttl time.Duration, logger *slog.Logger, recorder *metrics.Recorder) *ScheduleCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ScheduleCache{
		entries:  make(map[string]entry),
		provider: provider,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
		metrics:  recorder,
	}
}

// FetchSchedule returns the cached document when the entry is still live,
// otherwise fetches, stores, and returns a fresh one.
func (c *ScheduleCache) FetchSchedule(ctx context.Context, url string) (schedule.Document, error) {
	now := c.now()

	c.mu.RLock()
	cached, ok := c.entries[url]
	c.mu.RUnlock()

	if ok && now.Sub(cached.fetchedAt) < c.ttl {
		c.metrics.RecordCacheHit(url)
		logging.Info(logging.FromContext(ctx, c.logger), "using cached schedule",
			slog.String(logging.FieldSource, url),
		)
		return cached.doc, nil
	}

	c.metrics.RecordCacheMiss(url)

	start := time.Now()
	doc, err := c.provider.FetchSchedule(ctx, url)
	c.metrics.RecordFetch(url, time.Since(start), err)
	if err != nil {
		return schedule.Document{}, err
	}

	c.mu.Lock()
	c.entries[url] = entry{doc: doc, fetchedAt: c.now()}
	c.mu.Unlock()

	return doc, nil
}

// Clear removes all entries unconditionally.
func (c *ScheduleCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()

	logging.Info(c.logger, "schedule cache cleared")
}

// KeyStatus describes one cache entry for diagnostics.
type KeyStatus struct {
	AgeSeconds int64 `json:"ageSeconds"`
	Expired    bool  `json:"expired"`
}

// Status reports each key's age and whether its entry has expired.
func (c *ScheduleCache) Status() map[string]KeyStatus {
	now := c.now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	status := make(map[string]KeyStatus, len(c.entries))
	for key, e := range c.entries {
		age := now.Sub(e.fetchedAt)
		status[key] = KeyStatus{
			AgeSeconds: int64(age.Seconds()),
			Expired:    age >= c.ttl,
		}
	}
	return status
}

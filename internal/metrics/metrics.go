package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	fetches          int
	fetchErrors      int
	cacheHits        int
	cacheMisses      int
	lastFetchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about schedule fetches,
// cache behavior, and refresh cycles. It is intentionally simple so it can
// be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*sourceStats

	refreshCycles   int
	refreshFailures int
	lastRefresh     time.Duration

	otel *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sourceStats),
		otel:  otel,
	}
}

// RecordFetch increments fetch counters for a source and stores the last
// observed latency.
func (r *Recorder) RecordFetch(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStats(source)
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.fetchErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(source, duration, err)
	}
}

// RecordCacheHit tracks a schedule served without a network fetch.
func (r *Recorder) RecordCacheHit(source string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureStats(source).cacheHits++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheAccess(source, true)
	}
}

// RecordCacheMiss tracks a cache miss or expired entry.
func (r *Recorder) RecordCacheMiss(source string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureStats(source).cacheMisses++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheAccess(source, false)
	}
}

// RecordRefreshCycle tracks one full deal-evaluation cycle.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.refreshCycles++
	r.lastRefresh = duration
	if err != nil {
		r.refreshFailures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefreshCycle(duration, err)
	}
}

// RecordHTTPRequest tracks an inbound API request.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// SourceSnapshot is a point-in-time copy of one source's counters.
type SourceSnapshot struct {
	Fetches     int
	FetchErrors int
	CacheHits   int
	CacheMisses int
	LastLatency time.Duration
}

// Snapshot returns a copy of the counters for a source.
func (r *Recorder) Snapshot(source string) SourceSnapshot {
	if r == nil {
		return SourceSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok {
		return SourceSnapshot{}
	}
	return SourceSnapshot{
		Fetches:     stats.fetches,
		FetchErrors: stats.fetchErrors,
		CacheHits:   stats.cacheHits,
		CacheMisses: stats.cacheMisses,
		LastLatency: stats.lastFetchLatency,
	}
}

// RefreshCycles returns the number of refresh cycles recorded.
func (r *Recorder) RefreshCycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshCycles
}

// RefreshFailures returns the number of failed refresh cycles recorded.
func (r *Recorder) RefreshFailures() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshFailures
}

func (r *Recorder) ensureStats(source string) *sourceStats {
	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{}
		r.stats[source] = stats
	}
	return stats
}

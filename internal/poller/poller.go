package poller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	domaindeals "sports-deals-service/internal/domain/deals"
	"sports-deals-service/internal/logging"
	"sports-deals-service/internal/metrics"
)

const defaultInterval = 5 * time.Minute

// Evaluator runs a full deal evaluation across the configured teams.
type Evaluator interface {
	EvaluateAll(ctx context.Context) ([]domaindeals.TeamReport, error)
}

// ResultStore receives the reports produced by each refresh cycle.
type ResultStore interface {
	SetReports(reports []domaindeals.TeamReport, at time.Time)
}

// Poller refreshes deal evaluations on a cron schedule and publishes the
// results to the store.
type Poller struct {
	evaluator Evaluator
	store     ResultStore
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration
	now       func() time.Time

	cron     *cron.Cron
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(evaluator Evaluator, store ResultStore, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		evaluator: evaluator,
		store:     store,
		logger:    logger,
		metrics:   recorder,
		interval:  interval,
		now:       time.Now,
	}
}

// Start runs an immediate refresh to warm the store, then schedules
// recurring refreshes until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) error {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return nil
	}
	p.started = true
	p.startMu.Unlock()

	p.cron = cron.New()
	spec := fmt.Sprintf("@every %s", p.interval)
	if _, err := p.cron.AddFunc(spec, func() { p.refreshOnce(ctx) }); err != nil {
		return fmt.Errorf("schedule refresh %q: %w", spec, err)
	}

	p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
	// Warm the store on boot before the first tick fires.
	go p.refreshOnce(ctx)
	p.cron.Start()

	go func() {
		<-ctx.Done()
		_ = p.Stop(context.Background())
	}()
	return nil
}

// Stop halts the refresh schedule, waiting for an in-flight cycle to finish.
func (p *Poller) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		if p.cron == nil {
			return
		}
		done := p.cron.Stop().Done()
		select {
		case <-done:
		case <-ctx.Done():
		}
		p.logInfo("poller stopped")
	})
	return nil
}

func (p *Poller) refreshOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	reports, err := p.evaluator.EvaluateAll(ctx)
	if p.metrics != nil {
		p.metrics.RecordRefreshCycle(time.Since(start), err)
	}
	if err != nil {
		p.logError("refresh cycle failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	if p.store != nil {
		p.store.SetReports(reports, p.now())
	}
	p.recordSuccess(start)
	p.logInfo("refreshed deal evaluations",
		slog.Int(logging.FieldCount, len(reports)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

package deals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	domaindeals "sports-deals-service/internal/domain/deals"
	"sports-deals-service/internal/domain/schedule"
	"sports-deals-service/internal/logging"
	"sports-deals-service/internal/providers"
)

// maxWorkers caps the per-refresh fan-out pool; there are only a handful of
// configured teams.
const maxWorkers = 4

// Service evaluates the configured deal registry against fetched schedules.
// Teams evaluate independently: one team's fetch failure surfaces as error
// statuses on its own deals and never blocks the others.
type Service struct {
	provider providers.ScheduleProvider
	registry []domaindeals.TeamConfig
	sources  map[string]string
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a Service. sources maps each registry source key to
// its upstream schedule URL.
func NewService(provider providers.ScheduleProvider, registry []domaindeals.TeamConfig, sources map[string]string, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		registry: registry,
		sources:  sources,
		logger:   logger,
		now:      time.Now,
	}
}

// Registry returns the configured teams.
func (s *Service) Registry() []domaindeals.TeamConfig {
	return s.registry
}

// TeamBySource looks up a team config by its schedule source key.
func (s *Service) TeamBySource(source string) (domaindeals.TeamConfig, bool) {
	for _, cfg := range s.registry {
		if cfg.Source == source {
			return cfg, true
		}
	}
	return domaindeals.TeamConfig{}, false
}

// EvaluateAll evaluates every configured team, fanning out across a worker
// pool. Reports come back in registry order. The returned error is non-nil
// only when every team's schedule fetch failed; partial failures are
// embedded in the affected team's report.
func (s *Service) EvaluateAll(ctx context.Context) ([]domaindeals.TeamReport, error) {
	reports := make([]domaindeals.TeamReport, len(s.registry))
	fetchErrs := make([]error, len(s.registry))

	workers := len(s.registry)
	if workers > maxWorkers {
		workers = maxWorkers
	}

	pool, poolErr := ants.NewPool(workers)
	if poolErr != nil {
		// Degraded path: evaluate sequentially.
		for i, cfg := range s.registry {
			reports[i], fetchErrs[i] = s.evaluateTeam(ctx, cfg)
		}
		return reports, s.collectFetchErrors(fetchErrs)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, cfg := range s.registry {
		i, cfg := i, cfg
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			reports[i], fetchErrs[i] = s.evaluateTeam(ctx, cfg)
		}); err != nil {
			wg.Done()
			reports[i], fetchErrs[i] = s.evaluateTeam(ctx, cfg)
		}
	}
	wg.Wait()

	return reports, s.collectFetchErrors(fetchErrs)
}

// EvaluateTeam evaluates a single team's deals against a fresh (or cached)
// schedule document.
func (s *Service) EvaluateTeam(ctx context.Context, source string) (domaindeals.TeamReport, error) {
	cfg, ok := s.TeamBySource(source)
	if !ok {
		return domaindeals.TeamReport{}, fmt.Errorf("unknown team source %q", source)
	}
	report, _ := s.evaluateTeam(ctx, cfg)
	return report, nil
}

// RawSchedule returns the unmodified upstream document for a source, for
// operator diagnostics.
func (s *Service) RawSchedule(ctx context.Context, source string) (json.RawMessage, error) {
	url, ok := s.sources[source]
	if !ok {
		return nil, fmt.Errorf("unknown team source %q", source)
	}
	doc, err := s.provider.FetchSchedule(ctx, url)
	if err != nil {
		return nil, err
	}
	return doc.Raw, nil
}

func (s *Service) evaluateTeam(ctx context.Context, cfg domaindeals.TeamConfig) (domaindeals.TeamReport, error) {
	now := s.now()
	report := domaindeals.TeamReport{
		Team:         cfg.Team,
		Abbreviation: cfg.Abbreviation,
		Source:       cfg.Source,
	}

	url, ok := s.sources[cfg.Source]
	if !ok {
		err := fmt.Errorf("no schedule URL configured for source %q", cfg.Source)
		s.fillErrorReport(&report, cfg, err)
		return report, err
	}

	doc, err := s.provider.FetchSchedule(ctx, url)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "team evaluation failed",
			slog.String(logging.FieldTeam, cfg.Team),
			slog.String(logging.FieldSource, cfg.Source),
			slog.Any("err", err),
		)
		s.fillErrorReport(&report, cfg, err)
		return report, err
	}

	season := schedule.DetectSeason(cfg.Abbreviation, doc.Events, now)
	report.Season = season
	report.Deals = make([]domaindeals.DealResult, 0, len(cfg.Deals))
	for _, deal := range cfg.Deals {
		status := domaindeals.Evaluate(deal.Rule, cfg.Abbreviation, doc.Events, season, now)
		report.Deals = append(report.Deals, domaindeals.DealResult{
			Name:         deal.Name,
			Condition:    deal.Condition,
			Status:       status,
			Instructions: deal.Instructions,
		})
		logging.Info(logging.FromContext(ctx, s.logger), "deal evaluated",
			slog.String(logging.FieldTeam, cfg.Team),
			slog.String(logging.FieldDeal, deal.Name),
			slog.String(logging.FieldStatus, string(status)),
		)
	}
	return report, nil
}

// fillErrorReport surfaces a fetch failure on every deal of the team; the
// error text is passed through, not interpreted.
func (s *Service) fillErrorReport(report *domaindeals.TeamReport, cfg domaindeals.TeamConfig, err error) {
	report.Season = schedule.SeasonStatus{
		State:   schedule.SeasonUnknown,
		Message: "Schedule unavailable: " + err.Error(),
	}
	report.Deals = make([]domaindeals.DealResult, 0, len(cfg.Deals))
	for _, deal := range cfg.Deals {
		report.Deals = append(report.Deals, domaindeals.DealResult{
			Name:         deal.Name,
			Condition:    deal.Condition,
			Status:       domaindeals.ErrorStatus(err),
			Instructions: deal.Instructions,
		})
	}
}

func (s *Service) collectFetchErrors(fetchErrs []error) error {
	failed := 0
	for _, err := range fetchErrs {
		if err != nil {
			failed++
		}
	}
	if failed == len(fetchErrs) && failed > 0 {
		return errors.Join(fetchErrs...)
	}
	return nil
}

package providers

import (
	"context"
	"log/slog"
	"time"

	"sports-deals-service/internal/domain/schedule"
	"sports-deals-service/internal/logging"
)

// loggingProvider wraps a ScheduleProvider with structured fetch logging.
type loggingProvider struct {
	inner  ScheduleProvider
	logger *slog.Logger
}

// NewLoggingProvider decorates a provider so every upstream fetch is logged
// with its source and latency.
func NewLoggingProvider(inner ScheduleProvider, logger *slog.Logger) ScheduleProvider {
	return &loggingProvider{inner: inner, logger: logger}
}

func (p *loggingProvider) FetchSchedule(ctx context.Context, url string) (schedule.Document, error) {
	start := time.Now()
	doc, err := p.inner.FetchSchedule(ctx, url)
	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		logging.Warn(logger, "schedule fetch failed",
			slog.String(logging.FieldSource, url),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
			slog.Any("err", err),
		)
		return schedule.Document{}, err
	}
	logging.Info(logger, "schedule fetched",
		slog.String(logging.FieldSource, url),
		slog.Int(logging.FieldCount, len(doc.Events)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return doc, nil
}

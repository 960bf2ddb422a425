package providers

import (
	"context"

	"sports-deals-service/internal/domain/schedule"
)

// ScheduleProvider defines how upstream team-schedule documents are fetched
// and normalized. The url identifies the source; it doubles as the cache key
// for caching decorators.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, url string) (schedule.Document, error)
}

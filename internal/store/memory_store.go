package store

import (
	"sync"
	"time"

	"sports-deals-service/internal/domain/deals"
)

// MemoryStore keeps a thread-safe snapshot of the latest deal evaluations in
// memory. Nothing persists across restarts.
type MemoryStore struct {
	mu        sync.RWMutex
	reports   []deals.TeamReport
	updatedAt time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Reports returns a copy of the current team reports.
func (s *MemoryStore) Reports() []deals.TeamReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]deals.TeamReport, len(s.reports))
	copy(result, s.reports)
	return result
}

// ReportBySource returns one team's report by its schedule source key.
func (s *MemoryStore) ReportBySource(source string) (deals.TeamReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reports {
		if r.Source == source {
			return r, true
		}
	}
	return deals.TeamReport{}, false
}

// SetReports replaces the stored reports with a new refresh-cycle snapshot.
func (s *MemoryStore) SetReports(reports []deals.TeamReport, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports = make([]deals.TeamReport, len(reports))
	copy(s.reports, reports)
	s.updatedAt = at
}

// UpdatedAt returns when the stored snapshot was produced; zero before the
// first refresh.
func (s *MemoryStore) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

package forecast

import (
	"context"
	"log/slog"
	"time"

	"sports-deals-service/internal/domain/schedule"
	"sports-deals-service/internal/logging"
	"sports-deals-service/internal/providers"
	"sports-deals-service/internal/timeutil"
)

// forecastDays is the length of the published outlook.
const forecastDays = 7

// Day is one slot of the pizza forecast. Chance is a percentage: 100 when
// the deal is (or will definitely be) live, 50 when a scheduled game could
// make it live, 0 otherwise.
type Day struct {
	Day    int    `json:"day"`
	Date   string `json:"date"`
	Chance int    `json:"chance"`
	Pizza  bool   `json:"pizza"`
}

// Forecast is the 7-day pizza outlook for one team.
type Forecast struct {
	Team        string    `json:"team"`
	GeneratedAt time.Time `json:"generatedAt"`
	Days        []Day     `json:"days"`
}

// Service builds pizza forecasts from a team's schedule.
type Service struct {
	provider providers.ScheduleProvider
	team     string
	abbr     string
	url      string
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a forecast Service for one team schedule source.
func NewService(provider providers.ScheduleProvider, team, abbr, url string, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		team:     team,
		abbr:     abbr,
		url:      url,
		logger:   logger,
		now:      time.Now,
	}
}

// Forecast fetches the team schedule and derives the 7-day outlook.
func (s *Service) Forecast(ctx context.Context) (Forecast, error) {
	doc, err := s.provider.FetchSchedule(ctx, s.url)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "forecast fetch failed",
			slog.String(logging.FieldTeam, s.team),
			slog.Any("err", err),
		)
		return Forecast{}, err
	}
	return buildForecast(s.team, s.abbr, doc.Events, s.now()), nil
}

// buildForecast derives the outlook from the schedule. Day 1 is certain only
// when the team already won yesterday; day 2 is certain when a game falls
// today; later days are a coin flip on whether a scheduled game is won.
func buildForecast(team, abbr string, events []schedule.GameEvent, now time.Time) Forecast {
	f := Forecast{
		Team:        team,
		GeneratedAt: now,
		Days:        make([]Day, 0, forecastDays),
	}
	today := timeutil.UTCDate(now)

	for day := 1; day <= forecastDays; day++ {
		slot := Day{Day: day, Date: timeutil.FormatDate(today.AddDate(0, 0, day-1))}
		switch day {
		case 1:
			if wonOnDate(abbr, events, today.AddDate(0, 0, -1)) {
				slot.Chance = 100
			}
		case 2:
			if gameOnDate(abbr, events, today) {
				slot.Chance = 100
			}
		default:
			if gameOnDate(abbr, events, today.AddDate(0, 0, day-2)) {
				slot.Chance = 50
			}
		}
		slot.Pizza = slot.Chance > 0
		f.Days = append(f.Days, slot)
	}
	return f
}

func gameOnDate(abbr string, events []schedule.GameEvent, date time.Time) bool {
	for _, g := range events {
		if _, ok := schedule.CompetitorFor(g, abbr); !ok {
			continue
		}
		if timeutil.SameUTCDate(g.StartTime, date) {
			return true
		}
	}
	return false
}

func wonOnDate(abbr string, events []schedule.GameEvent, date time.Time) bool {
	for _, g := range events {
		if !timeutil.SameUTCDate(g.StartTime, date) {
			continue
		}
		c, ok := schedule.CompetitorFor(g, abbr)
		if ok && c.IsWinner() {
			return true
		}
	}
	return false
}

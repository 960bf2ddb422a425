package deals

import (
	"context"
	"fmt"
	"time"

	domaindeals "sports-deals-service/internal/domain/deals"
	"sports-deals-service/internal/domain/schedule"
	"sports-deals-service/internal/timeutil"
)

// LastGameReport summarizes a team's most recent result for the score
// widget: whether they played yesterday, how it went, and when they play
// next.
type LastGameReport struct {
	Team            string     `json:"team"`
	PlayedYesterday bool       `json:"playedYesterday"`
	Outcome         string     `json:"outcome,omitempty"`
	TeamScore       float64    `json:"teamScore,omitempty"`
	OpponentScore   float64    `json:"opponentScore,omitempty"`
	Opponent        string     `json:"opponent,omitempty"`
	NextGame        *time.Time `json:"nextGame,omitempty"`
	Message         string     `json:"message"`
}

// LastGameReport builds the score summary for one team source.
func (s *Service) LastGameReport(ctx context.Context, source string) (LastGameReport, error) {
	cfg, ok := s.TeamBySource(source)
	if !ok {
		return LastGameReport{}, fmt.Errorf("unknown team source %q", source)
	}
	url := s.sources[cfg.Source]
	doc, err := s.provider.FetchSchedule(ctx, url)
	if err != nil {
		return LastGameReport{}, err
	}
	return buildLastGameReport(cfg, doc.Events, s.now()), nil
}

func buildLastGameReport(cfg domaindeals.TeamConfig, events []schedule.GameEvent, now time.Time) LastGameReport {
	report := LastGameReport{Team: cfg.Team}

	var last, next *schedule.GameEvent
	for i := range events {
		g := events[i]
		if _, ok := schedule.CompetitorFor(g, cfg.Abbreviation); !ok {
			continue
		}
		if g.StartTime.Before(now) {
			if last == nil || g.StartTime.After(last.StartTime) {
				last = &events[i]
			}
		} else {
			if next == nil || g.StartTime.Before(next.StartTime) {
				next = &events[i]
			}
		}
	}

	if last == nil {
		report.Message = "No recent game information available."
		return report
	}
	if next != nil {
		at := next.StartTime
		report.NextGame = &at
	}

	yesterday := timeutil.UTCDate(now).AddDate(0, 0, -1)
	if !timeutil.UTCDate(last.StartTime).Equal(yesterday) {
		report.Message = fmt.Sprintf("The %s did not play yesterday.", cfg.Team)
		return report
	}

	team, _ := schedule.CompetitorFor(*last, cfg.Abbreviation)
	opponent, _ := schedule.OpponentFor(*last, cfg.Abbreviation)

	report.PlayedYesterday = true
	report.Outcome = "lost"
	if team.IsWinner() {
		report.Outcome = "won"
	}
	report.TeamScore = schedule.ScoreOf(team)
	report.OpponentScore = schedule.ScoreOf(opponent)
	report.Opponent = opponent.TeamName
	report.Message = fmt.Sprintf("The %s %s against the %s yesterday! Final score: %.0f - %.0f.",
		cfg.Team, report.Outcome, report.Opponent, report.TeamScore, report.OpponentScore)
	return report
}

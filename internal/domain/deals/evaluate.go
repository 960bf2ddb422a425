package deals

import (
	"time"

	"sports-deals-service/internal/domain/schedule"
	"sports-deals-service/internal/timeutil"
)

// lookbackDays bounds how far back any rule scans, independent of the
// per-rule day limit.
const lookbackDays = 14

// Evaluate dispatches a rule against a team's schedule and derives the
// renderable status. The season status only refines the fallback label; it
// never overrides an active determination. now is threaded explicitly so
// evaluation stays a pure function of its inputs.
func Evaluate(rule Rule, teamAbbr string, events []schedule.GameEvent, season schedule.SeasonStatus, now time.Time) Status {
	switch rule.Kind {
	case KindScoringThreshold:
		out := EvaluateScoringDeal(teamAbbr, events, rule.MinScore, rule.DayLimit, rule.HomeOnly, now)
		return dayAfterStatus(out, season, now)
	case KindImmediateScoring:
		out := EvaluateScoringDeal(teamAbbr, events, rule.MinScore, rule.DayLimit, rule.HomeOnly, now)
		if out.Qualifying {
			return StatusActive
		}
		return fallbackStatus(season)
	case KindWin:
		out := EvaluateWinDeal(teamAbbr, events, rule.DayLimit, now)
		return dayAfterStatus(out, season, now)
	case KindStatThreshold:
		out := EvaluateStatDeal(teamAbbr, events, rule.Category, rule.Stat, rule.MinValue, rule.DayLimit, rule.HomeOnly, now)
		if out.Qualifying {
			return StatusActive
		}
		return fallbackStatus(season)
	default:
		return fallbackStatus(season)
	}
}

// EvaluateScoringDeal finds the most recent completed regular-season game
// within dayLimit days where the team scored at least minScore.
func EvaluateScoringDeal(teamAbbr string, events []schedule.GameEvent, minScore, dayLimit float64, homeOnly bool, now time.Time) Outcome {
	return scanRecent(teamAbbr, events, dayLimit, homeOnly, now, func(comp schedule.Competitor) (float64, bool) {
		score := schedule.ScoreOf(comp)
		return score, score >= minScore
	})
}

// EvaluateWinDeal finds the most recent completed regular-season win within
// dayLimit days.
func EvaluateWinDeal(teamAbbr string, events []schedule.GameEvent, dayLimit float64, now time.Time) Outcome {
	return scanRecent(teamAbbr, events, dayLimit, false, now, func(comp schedule.Competitor) (float64, bool) {
		return schedule.ScoreOf(comp), comp.IsWinner()
	})
}

// EvaluateStatDeal finds the most recent completed regular-season game within
// dayLimit days where a nested box-score statistic meets minValue.
func EvaluateStatDeal(teamAbbr string, events []schedule.GameEvent, category, stat string, minValue, dayLimit float64, homeOnly bool, now time.Time) Outcome {
	return scanRecent(teamAbbr, events, dayLimit, homeOnly, now, func(comp schedule.Competitor) (float64, bool) {
		value := schedule.StatValue(comp, category, stat)
		return value, value >= minValue
	})
}

// scanRecent applies the shared windowing discipline: fixed 14-day lookback,
// regular-season completed games only, optional home-only restriction, then
// the qualify predicate and per-rule day limit. The latest qualifying start
// time wins.
func scanRecent(teamAbbr string, events []schedule.GameEvent, dayLimit float64, homeOnly bool, now time.Time, qualify func(schedule.Competitor) (float64, bool)) Outcome {
	var best Outcome
	for i := range events {
		game := events[i]
		days := timeutil.DaysSince(now, game.StartTime)
		if days < 0 || days > lookbackDays {
			continue
		}
		if !schedule.IsRegularSeason(game) || !schedule.IsCompleted(game, now) {
			continue
		}
		comp, ok := schedule.CompetitorFor(game, teamAbbr)
		if !ok {
			continue
		}
		if homeOnly && !comp.IsHome() {
			continue
		}
		value, ok := qualify(comp)
		if !ok || days > dayLimit {
			continue
		}
		if !best.Qualifying || game.StartTime.After(best.GameTime) {
			best = Outcome{
				Qualifying: true,
				Game:       &events[i],
				GameTime:   game.StartTime,
				DaysSince:  days,
				Score:      value,
			}
		}
	}
	return best
}

// dayAfterStatus maps an outcome to the day-after activation pattern: active
// the UTC day after the qualifying game, a countdown while the game day is
// still in progress, otherwise the season-status fallback.
func dayAfterStatus(out Outcome, season schedule.SeasonStatus, now time.Time) Status {
	if !out.Qualifying {
		return fallbackStatus(season)
	}

	gameDay := timeutil.UTCDate(out.GameTime)
	today := timeutil.UTCDate(now)
	yesterday := today.AddDate(0, 0, -1)

	switch {
	case gameDay.Equal(yesterday):
		return StatusActive
	case gameDay.Equal(today):
		return CountdownStatus(timeutil.HoursUntilNextUTCMidnight(now))
	default:
		return fallbackStatus(season)
	}
}

func fallbackStatus(season schedule.SeasonStatus) Status {
	if season.InSeason() {
		return StatusNotActive
	}
	return StatusOffseason
}

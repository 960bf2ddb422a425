package schedule

import "time"

// IsCompleted reports whether a game has finished by now. Some feeds mark
// completion ambiguously, so a recorded score counts as a completion signal
// for games whose start time has passed.
func IsCompleted(game GameEvent, now time.Time) bool {
	if game.StartTime.After(now) {
		return false
	}
	if game.State == StatePost || game.StatusName == "STATUS_FINAL" || game.Completed {
		return true
	}
	for _, c := range game.Competitors {
		if c.HasScore() {
			return true
		}
	}
	return false
}

// IsRegularSeason reports whether the game belongs to the regular season.
func IsRegularSeason(game GameEvent) bool {
	return game.SeasonType == SeasonRegular
}

// CompetitorFor returns the competitor with the given team abbreviation.
func CompetitorFor(game GameEvent, teamAbbr string) (Competitor, bool) {
	for _, c := range game.Competitors {
		if c.TeamAbbreviation == teamAbbr {
			return c, true
		}
	}
	return Competitor{}, false
}

// OpponentFor returns the competitor whose abbreviation differs from teamAbbr.
// Team-sport games carry exactly two competitors.
func OpponentFor(game GameEvent, teamAbbr string) (Competitor, bool) {
	for _, c := range game.Competitors {
		if c.TeamAbbreviation != teamAbbr {
			return c, true
		}
	}
	return Competitor{}, false
}

// ScoreOf returns the competitor's score, defaulting to 0 when the feed has
// not recorded one.
func ScoreOf(c Competitor) float64 {
	if c.Score == nil {
		return 0
	}
	return *c.Score
}

// StatValue looks up a nested statistic (category -> stat name), returning 0
// when the feed carries no statistics for the competitor.
func StatValue(c Competitor, category, stat string) float64 {
	stats, ok := c.Statistics[category]
	if !ok {
		return 0
	}
	return stats[stat]
}

package espn

import (
	"time"

	"sports-deals-service/internal/domain/schedule"
)

// ESPN emits event dates without seconds ("2024-05-01T23:10Z"); full RFC3339
// appears in some feeds, so both layouts are accepted.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

func mapEvents(payload scheduleResponse) []schedule.GameEvent {
	events := make([]schedule.GameEvent, 0, len(payload.Events))
	for _, e := range payload.Events {
		events = append(events, mapEvent(e))
	}
	return events
}

func mapEvent(e event) schedule.GameEvent {
	game := schedule.GameEvent{
		ID:         e.ID,
		StartTime:  parseEventDate(e.Date),
		SeasonType: mapSeasonType(e),
	}

	status := e.Status
	if status == nil && len(e.Competitions) > 0 {
		status = e.Competitions[0].Status
	}
	if status != nil {
		game.State = schedule.GameState(status.Type.State)
		game.StatusName = status.Type.Name
		game.Completed = status.Type.Completed
	}

	if len(e.Competitions) > 0 {
		for _, c := range e.Competitions[0].Competitors {
			game.Competitors = append(game.Competitors, mapCompetitor(c))
		}
	}
	return game
}

// mapSeasonType prefers seasonType.type and falls back to season.type,
// mirroring the feed's two encodings.
func mapSeasonType(e event) schedule.SeasonType {
	if e.SeasonType != nil && e.SeasonType.Type != 0 {
		return schedule.SeasonType(e.SeasonType.Type)
	}
	if e.Season != nil {
		return schedule.SeasonType(e.Season.Type)
	}
	return 0
}

func mapCompetitor(c competitor) schedule.Competitor {
	mapped := schedule.Competitor{
		TeamAbbreviation: c.Team.Abbreviation,
		TeamName:         c.Team.DisplayName,
		HomeAway:         c.HomeAway,
		Winner:           c.Winner,
	}
	if c.Score != nil && c.Score.Recorded {
		value := c.Score.Value
		mapped.Score = &value
	}
	if len(c.Statistics) > 0 {
		mapped.Statistics = make(map[string]map[string]float64, len(c.Statistics))
		for _, group := range c.Statistics {
			stats := make(map[string]float64, len(group.Stats))
			for _, s := range group.Stats {
				stats[s.Name] = float64(s.Value)
			}
			mapped.Statistics[group.Name] = stats
		}
	}
	return mapped
}

func parseEventDate(raw string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

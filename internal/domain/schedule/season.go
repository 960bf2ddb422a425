package schedule

import (
	"fmt"
	"time"

	"sports-deals-service/internal/timeutil"
)

// seasonWindow bounds how far around "now" the detector looks for games.
const seasonWindow = 30 * 24 * time.Hour

// SeasonState classifies whether a team is currently playing.
type SeasonState string

const (
	SeasonInSeason  SeasonState = "in-season"
	SeasonOffSeason SeasonState = "off-season"
	SeasonUnknown   SeasonState = "unknown"
)

// SeasonStatus is a derived, advisory summary of a team's schedule around
// now. It refines "no qualifying game" messaging but never overrides an
// active deal.
type SeasonStatus struct {
	State         SeasonState `json:"state"`
	Message       string      `json:"message"`
	RecentGames   int         `json:"recentGames"`
	UpcomingGames int         `json:"upcomingGames"`
}

// InSeason reports whether the team is currently in its regular season.
func (s SeasonStatus) InSeason() bool {
	return s.State == SeasonInSeason
}

// DetectSeason derives a SeasonStatus from the games within 30 days either
// side of now. Recomputed per evaluation cycle, never persisted.
func DetectSeason(teamAbbr string, events []GameEvent, now time.Time) SeasonStatus {
	var windowed []GameEvent
	for _, g := range events {
		if _, ok := CompetitorFor(g, teamAbbr); !ok {
			continue
		}
		diff := g.StartTime.Sub(now)
		if diff < -seasonWindow || diff > seasonWindow {
			continue
		}
		windowed = append(windowed, g)
	}

	if len(windowed) == 0 {
		return SeasonStatus{
			State:   SeasonUnknown,
			Message: "No games found within 30 days of today.",
		}
	}

	var regular []GameEvent
	for _, g := range windowed {
		if IsRegularSeason(g) {
			regular = append(regular, g)
		}
	}
	if len(regular) == 0 {
		return SeasonStatus{
			State:   SeasonOffSeason,
			Message: "Off-season: no regular season games within 30 days.",
		}
	}

	var lastCompleted, nextFuture *GameEvent
	recent, upcoming := 0, 0
	for i := range regular {
		g := regular[i]
		if IsCompleted(g, now) {
			recent++
			if lastCompleted == nil || g.StartTime.After(lastCompleted.StartTime) {
				lastCompleted = &regular[i]
			}
		} else if g.StartTime.After(now) {
			upcoming++
			if nextFuture == nil || g.StartTime.Before(nextFuture.StartTime) {
				nextFuture = &regular[i]
			}
		}
	}

	return SeasonStatus{
		State:         SeasonInSeason,
		Message:       inSeasonMessage(lastCompleted, nextFuture, now),
		RecentGames:   recent,
		UpcomingGames: upcoming,
	}
}

func inSeasonMessage(lastCompleted, nextFuture *GameEvent, now time.Time) string {
	msg := "In season."
	if lastCompleted != nil {
		msg += " Last game " + describePastDay(now, lastCompleted.StartTime) + "."
	}
	if nextFuture != nil {
		msg += " Next game " + describeFutureDay(now, nextFuture.StartTime) + "."
	}
	return msg
}

func describePastDay(now, t time.Time) string {
	days := int(timeutil.UTCDate(now).Sub(timeutil.UTCDate(t)).Hours() / 24)
	switch days {
	case 0:
		return "today"
	case 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

func describeFutureDay(now, t time.Time) string {
	days := int(timeutil.UTCDate(t).Sub(timeutil.UTCDate(now)).Hours() / 24)
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}

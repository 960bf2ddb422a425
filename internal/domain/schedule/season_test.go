package schedule

import (
	"strings"
	"testing"
	"time"
)

func TestDetectSeasonNoGames(t *testing.T) {
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)
	status := DetectSeason("TB", nil, now)
	if status.State != SeasonUnknown {
		t.Fatalf("expected unknown, got %s", status.State)
	}
	if status.Message == "" {
		t.Fatal("expected explanatory message")
	}
}

func TestDetectSeasonIgnoresGamesOutsideWindow(t *testing.T) {
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)
	events := []GameEvent{
		completedGame(now.AddDate(0, 0, -45), "TB", 3),
		completedGame(now.AddDate(0, 0, 45), "TB", 3),
	}
	status := DetectSeason("TB", events, now)
	if status.State != SeasonUnknown {
		t.Fatalf("expected unknown when all games fall outside 30-day window, got %s", status.State)
	}
}

func TestDetectSeasonOffSeason(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	preseason := completedGame(now.AddDate(0, 0, -2), "TB", 3)
	preseason.SeasonType = SeasonPre
	status := DetectSeason("TB", []GameEvent{preseason}, now)
	if status.State != SeasonOffSeason {
		t.Fatalf("expected off-season, got %s", status.State)
	}
}

func TestDetectSeasonInSeasonMessage(t *testing.T) {
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	last := completedGame(now.AddDate(0, 0, -1), "TB", 6)
	next := GameEvent{
		StartTime:  now.AddDate(0, 0, 1),
		SeasonType: SeasonRegular,
		State:      StatePre,
		Competitors: []Competitor{
			{TeamAbbreviation: "TB", HomeAway: "away"},
			{TeamAbbreviation: "OPP", HomeAway: "home"},
		},
	}

	status := DetectSeason("TB", []GameEvent{last, next}, now)
	if status.State != SeasonInSeason {
		t.Fatalf("expected in-season, got %s", status.State)
	}
	if !strings.Contains(status.Message, "yesterday") {
		t.Fatalf("expected last-game summary, got %q", status.Message)
	}
	if !strings.Contains(status.Message, "Tomorrow") {
		t.Fatalf("expected next-game summary, got %q", status.Message)
	}
	if status.RecentGames != 1 || status.UpcomingGames != 1 {
		t.Fatalf("expected 1 recent and 1 upcoming, got %d/%d", status.RecentGames, status.UpcomingGames)
	}
}

func TestDetectSeasonSkipsOtherTeams(t *testing.T) {
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	other := completedGame(now.AddDate(0, 0, -1), "BOS", 4)
	status := DetectSeason("TB", []GameEvent{other}, now)
	if status.State != SeasonUnknown {
		t.Fatalf("expected unknown when no games involve the team, got %s", status.State)
	}
}

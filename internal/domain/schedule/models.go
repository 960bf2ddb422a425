package schedule

import (
	"encoding/json"
	"time"
)

// SeasonType mirrors the upstream numeric season codes.
type SeasonType int

const (
	SeasonPre     SeasonType = 1
	SeasonRegular SeasonType = 2
	SeasonPost    SeasonType = 3
)

// GameState captures the lifecycle of a contest.
type GameState string

const (
	StatePre  GameState = "pre"
	StateIn   GameState = "in"
	StatePost GameState = "post"
)

// Competitor is one team's participation record within a game.
// Score and Winner stay nil until the upstream feed reports them;
// partial data is expected for games that have not started.
type Competitor struct {
	TeamAbbreviation string                        `json:"teamAbbreviation"`
	TeamName         string                        `json:"teamName,omitempty"`
	HomeAway         string                        `json:"homeAway"`
	Score            *float64                      `json:"score,omitempty"`
	Winner           *bool                         `json:"winner,omitempty"`
	Statistics       map[string]map[string]float64 `json:"statistics,omitempty"`
}

// HasScore reports whether the feed has recorded a score for this competitor.
func (c Competitor) HasScore() bool {
	return c.Score != nil
}

// IsWinner reports whether the competitor is marked as the winner.
// False while the game is undecided.
func (c Competitor) IsWinner() bool {
	return c.Winner != nil && *c.Winner
}

// IsHome reports whether the competitor played at home.
func (c Competitor) IsHome() bool {
	return c.HomeAway == "home"
}

// GameEvent is one scheduled or played contest from a team schedule.
type GameEvent struct {
	ID          string       `json:"id"`
	StartTime   time.Time    `json:"startTime"`
	SeasonType  SeasonType   `json:"seasonType"`
	State       GameState    `json:"state"`
	StatusName  string       `json:"statusName,omitempty"`
	Completed   bool         `json:"completed"`
	Competitors []Competitor `json:"competitors"`
}

// Document is a fetched team-schedule: the normalized events plus the
// unmodified upstream payload for raw diagnostics.
type Document struct {
	Events []GameEvent     `json:"events"`
	Raw    json.RawMessage `json:"-"`
}

package deals

import (
	"fmt"
	"strings"
	"time"

	"sports-deals-service/internal/domain/schedule"
)

// Status is the renderable state of a deal. Beyond the fixed values it can
// carry a countdown string or an error string; the presentation layer treats
// it as opaque text.
type Status string

const (
	StatusActive    Status = "active"
	StatusNotActive Status = "not active"
	StatusOffseason Status = "offseason"
)

// CountdownStatus formats the hours remaining until a day-after deal
// activates at the next UTC midnight.
func CountdownStatus(hours float64) Status {
	return Status(fmt.Sprintf("Deal activates in %.1f hours", hours))
}

// ErrorStatus wraps a fetch or parse failure as a renderable status.
func ErrorStatus(err error) Status {
	return Status("Error: " + err.Error())
}

// IsError reports whether the status carries an error message.
func (s Status) IsError() bool {
	return strings.HasPrefix(string(s), "Error: ")
}

// RuleKind tags the evaluation strategy for a deal rule.
type RuleKind string

const (
	// KindScoringThreshold activates the day after the team scores at least
	// MinScore (Papa John's pattern).
	KindScoringThreshold RuleKind = "scoring_threshold"
	// KindImmediateScoring activates as soon as a qualifying game is found
	// (Checkers/Wendy's pattern).
	KindImmediateScoring RuleKind = "immediate_scoring"
	// KindWin activates the day after a win.
	KindWin RuleKind = "win"
	// KindStatThreshold activates on a nested box-score statistic, e.g.
	// 10+ pitching strikeouts.
	KindStatThreshold RuleKind = "stat_threshold"
	// KindUnimplemented is a placeholder for criteria the schedule summary
	// cannot answer (home runs, inning scoring, shutouts); a play-by-play
	// source would be needed.
	KindUnimplemented RuleKind = "unimplemented"
)

// Rule carries a rule's kind and its parameters. Rules are plain data;
// dispatch happens in Evaluate.
type Rule struct {
	Kind     RuleKind `json:"kind"`
	MinScore float64  `json:"minScore,omitempty"`
	DayLimit float64  `json:"dayLimit,omitempty"`
	HomeOnly bool     `json:"homeOnly,omitempty"`

	// Stat-threshold parameters.
	Category string  `json:"category,omitempty"`
	Stat     string  `json:"stat,omitempty"`
	MinValue float64 `json:"minValue,omitempty"`
}

// Deal is one configured promotion. Immutable once configured.
type Deal struct {
	Name         string `json:"name"`
	Condition    string `json:"condition"`
	Instructions string `json:"instructions"`
	Rule         Rule   `json:"rule"`
}

// TeamConfig binds a team to its schedule source and deal list.
type TeamConfig struct {
	Team         string `json:"team"`
	Abbreviation string `json:"abbreviation"`
	Source       string `json:"source"`
	Deals        []Deal `json:"deals"`
}

// Outcome is the result of scanning a schedule for a qualifying game.
type Outcome struct {
	Qualifying bool
	Game       *schedule.GameEvent
	GameTime   time.Time
	DaysSince  float64
	Score      float64
}

// DealResult pairs a deal's static text with its evaluated status.
type DealResult struct {
	Name         string `json:"name"`
	Condition    string `json:"condition"`
	Status       Status `json:"status"`
	Instructions string `json:"instructions"`
}

// TeamReport is the full evaluation output for one team.
type TeamReport struct {
	Team         string                `json:"team"`
	Abbreviation string                `json:"abbreviation"`
	Source       string                `json:"source"`
	Season       schedule.SeasonStatus `json:"season"`
	Deals        []DealResult          `json:"deals"`
}

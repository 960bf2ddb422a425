package espn

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Wire types for the ESPN site API team-schedule document. Only the fields
// the deal engine consumes are modeled; unknown fields are ignored.

type scheduleResponse struct {
	Events []event `json:"events"`
}

type event struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Season       *seasonRef    `json:"season,omitempty"`
	SeasonType   *seasonRef    `json:"seasonType,omitempty"`
	Status       *statusRef    `json:"status,omitempty"`
	Competitions []competition `json:"competitions"`
}

type seasonRef struct {
	Type flexInt `json:"type"`
}

type statusRef struct {
	Type statusType `json:"type"`
}

type statusType struct {
	Name      string `json:"name"`
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}

type competition struct {
	Status      *statusRef   `json:"status,omitempty"`
	Competitors []competitor `json:"competitors"`
}

type competitor struct {
	HomeAway   string      `json:"homeAway"`
	Winner     *bool       `json:"winner,omitempty"`
	Team       teamRef     `json:"team"`
	Score      *scoreValue `json:"score,omitempty"`
	Statistics []statGroup `json:"statistics,omitempty"`
}

type teamRef struct {
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}

type statGroup struct {
	Name  string      `json:"name"`
	Stats []statEntry `json:"stats"`
}

type statEntry struct {
	Name  string    `json:"name"`
	Value flexFloat `json:"value"`
}

// flexInt decodes season type codes that the feed encodes inconsistently as
// either a number or a string ("2" vs 2).
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

// flexFloat decodes stat values that appear as numbers or numeric strings.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// scoreValue decodes a competitor score that arrives either as an object
// ({"value": 6} and/or {"displayValue": "6"}) or as a bare string/number.
// Recorded reports whether the feed carried any score at all.
type scoreValue struct {
	Value    float64
	Recorded bool
}

func (s *scoreValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	switch data[0] {
	case '{':
		var obj struct {
			Value        *float64 `json:"value"`
			DisplayValue string   `json:"displayValue"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Value != nil {
			s.Value = *obj.Value
			s.Recorded = true
			return nil
		}
		if obj.DisplayValue != "" {
			if v, err := strconv.ParseFloat(strings.TrimSpace(obj.DisplayValue), 64); err == nil {
				s.Value = v
			}
			s.Recorded = true
		}
		return nil
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		if str == "" {
			return nil
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			s.Value = v
		}
		s.Recorded = true
		return nil
	default:
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		s.Value = v
		s.Recorded = true
		return nil
	}
}

package espn

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"sports-deals-service/internal/domain/schedule"
	"sports-deals-service/internal/providers"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(rt roundTripperFunc) *Client {
	return NewClient(Config{HTTPClient: &http.Client{Transport: rt}})
}

const scheduleFixture = `{
	"events": [
		{
			"id": "401568888",
			"date": "2024-05-01T23:10Z",
			"seasonType": {"type": 2},
			"status": {"type": {"name": "STATUS_FINAL", "state": "post", "completed": true}},
			"competitions": [{
				"competitors": [
					{
						"homeAway": "home",
						"winner": true,
						"team": {"abbreviation": "TB", "displayName": "Tampa Bay Rays"},
						"score": {"value": 6, "displayValue": "6"},
						"statistics": [{"name": "pitching", "stats": [{"name": "strikeouts", "value": "11"}]}]
					},
					{
						"homeAway": "away",
						"winner": false,
						"team": {"abbreviation": "BOS", "displayName": "Boston Red Sox"},
						"score": {"displayValue": "2"}
					}
				]
			}]
		},
		{
			"id": "401568889",
			"date": "2024-05-03T23:10:00Z",
			"season": {"type": "2"},
			"competitions": [{
				"status": {"type": {"name": "STATUS_SCHEDULED", "state": "pre", "completed": false}},
				"competitors": [
					{"homeAway": "away", "team": {"abbreviation": "TB", "displayName": "Tampa Bay Rays"}},
					{"homeAway": "home", "team": {"abbreviation": "NYY", "displayName": "New York Yankees"}}
				]
			}]
		}
	]
}`

func TestFetchScheduleMapsDocument(t *testing.T) {
	var capturedURL string
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		return jsonResponse(http.StatusOK, scheduleFixture), nil
	})

	doc, err := client.FetchSchedule(context.Background(), "http://example.com/mlb/teams/tb/schedule")
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}
	if capturedURL != "http://example.com/mlb/teams/tb/schedule" {
		t.Fatalf("unexpected URL %s", capturedURL)
	}
	if len(doc.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(doc.Events))
	}
	if len(doc.Raw) == 0 {
		t.Fatal("expected raw payload to be retained")
	}

	final := doc.Events[0]
	if final.SeasonType != schedule.SeasonRegular {
		t.Fatalf("expected regular season, got %d", final.SeasonType)
	}
	if final.State != schedule.StatePost || final.StatusName != "STATUS_FINAL" || !final.Completed {
		t.Fatalf("unexpected status mapping: %+v", final)
	}
	want := time.Date(2024, 5, 1, 23, 10, 0, 0, time.UTC)
	if !final.StartTime.Equal(want) {
		t.Fatalf("expected start %s, got %s", want, final.StartTime)
	}

	home, ok := schedule.CompetitorFor(final, "TB")
	if !ok {
		t.Fatal("expected TB competitor")
	}
	if schedule.ScoreOf(home) != 6 {
		t.Fatalf("expected score 6, got %v", schedule.ScoreOf(home))
	}
	if !home.IsWinner() || !home.IsHome() {
		t.Fatalf("expected winning home competitor, got %+v", home)
	}
	if got := schedule.StatValue(home, "pitching", "strikeouts"); got != 11 {
		t.Fatalf("expected 11 strikeouts from string-encoded stat, got %v", got)
	}

	away, _ := schedule.OpponentFor(final, "TB")
	if !away.HasScore() || schedule.ScoreOf(away) != 2 {
		t.Fatalf("expected displayValue score 2, got %+v", away)
	}
	if away.TeamName != "Boston Red Sox" {
		t.Fatalf("expected opponent display name, got %q", away.TeamName)
	}

	// Second event: string season code, competition-level status, no scores.
	upcoming := doc.Events[1]
	if upcoming.SeasonType != schedule.SeasonRegular {
		t.Fatalf("expected string season code to map, got %d", upcoming.SeasonType)
	}
	if upcoming.State != schedule.StatePre {
		t.Fatalf("expected pre state from competition status, got %q", upcoming.State)
	}
	tb, _ := schedule.CompetitorFor(upcoming, "TB")
	if tb.HasScore() {
		t.Fatal("expected no recorded score for unplayed game")
	}
}

func TestFetchScheduleMissingEventsDegrades(t *testing.T) {
	client := newTestClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"team": {"id": "30"}}`), nil
	})
	doc, err := client.FetchSchedule(context.Background(), "http://example.com/schedule")
	if err != nil {
		t.Fatalf("expected shape gap to degrade to empty schedule, got %v", err)
	}
	if len(doc.Events) != 0 {
		t.Fatalf("expected empty events, got %d", len(doc.Events))
	}
}

func TestFetchScheduleNon200(t *testing.T) {
	client := newTestClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "upstream sad"), nil
	})
	_, err := client.FetchSchedule(context.Background(), "http://example.com/schedule")
	fetchErr, ok := providers.AsFetchError(err)
	if !ok {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fetchErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", fetchErr.StatusCode)
	}
}

func TestFetchScheduleTransportError(t *testing.T) {
	netErr := errors.New("connection refused")
	client := newTestClient(func(*http.Request) (*http.Response, error) {
		return nil, netErr
	})
	_, err := client.FetchSchedule(context.Background(), "http://example.com/schedule")
	if _, ok := providers.AsFetchError(err); !ok {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if !errors.Is(err, netErr) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}

func TestFetchScheduleInvalidJSON(t *testing.T) {
	client := newTestClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "<html>not json</html>"), nil
	})
	_, err := client.FetchSchedule(context.Background(), "http://example.com/schedule")
	if _, ok := providers.AsFetchError(err); !ok {
		t.Fatalf("expected FetchError for non-JSON body, got %v", err)
	}
}

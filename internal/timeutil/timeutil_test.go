package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-05-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-05-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestUTCDateNormalizesAcrossZones(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	// 23:30 local on May 1 is already May 2 in UTC.
	value := time.Date(2024, 5, 1, 23, 30, 0, 0, loc)
	if got := UTCDate(value); !got.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected 2024-05-02 UTC, got %s", got)
	}
}

func TestSameUTCDate(t *testing.T) {
	a := time.Date(2024, 5, 2, 0, 5, 0, 0, time.UTC)
	b := time.Date(2024, 5, 2, 23, 59, 0, 0, time.UTC)
	c := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	if !SameUTCDate(a, b) {
		t.Fatalf("expected %s and %s to share a UTC date", a, b)
	}
	if SameUTCDate(a, c) {
		t.Fatalf("expected %s and %s to differ", a, c)
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)
	then := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	if got := DaysSince(now, then); got != 1.5 {
		t.Fatalf("expected 1.5 days, got %v", got)
	}
	if got := DaysSince(then, now); got != -1.5 {
		t.Fatalf("expected -1.5 days for future instant, got %v", got)
	}
}

func TestHoursUntilNextUTCMidnight(t *testing.T) {
	now := time.Date(2024, 5, 2, 20, 48, 0, 0, time.UTC)
	got := HoursUntilNextUTCMidnight(now)
	if got < 3.19 || got > 3.21 {
		t.Fatalf("expected ~3.2 hours, got %v", got)
	}
	if got := HoursUntilNextUTCMidnight(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)); got != 24 {
		t.Fatalf("expected 24 hours at midnight, got %v", got)
	}
}

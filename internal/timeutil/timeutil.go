package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// UTCDate truncates an instant to its UTC calendar date (midnight UTC).
// All day-boundary comparisons in the deal engine use UTC dates so local
// timezone drift cannot flip an activation across days.
func UTCDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameUTCDate reports whether two instants fall on the same UTC calendar date.
func SameUTCDate(a, b time.Time) bool {
	return UTCDate(a).Equal(UTCDate(b))
}

// DaysSince returns the fractional number of days elapsed from t to now.
// Negative values mean t lies in the future.
func DaysSince(now, t time.Time) float64 {
	return now.Sub(t).Hours() / 24
}

// HoursUntilNextUTCMidnight returns the hours remaining from now until the
// next UTC midnight.
func HoursUntilNextUTCMidnight(now time.Time) float64 {
	next := UTCDate(now).AddDate(0, 0, 1)
	return next.Sub(now).Hours()
}

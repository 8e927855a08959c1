package utils

import (
	"math"
	"strings"
	"time"
)

// ParseDate parses an ISO-8601 date or timestamp string. Records carry
// whatever the booking form produced, so this is deliberately forgiving:
// full RFC3339 timestamps and bare "2006-01-02" dates both parse; anything
// else reports ok=false and the caller treats the value as non-contributing.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", DateOnly(s)); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// DateOnly strips a timestamp down to its calendar-date part.
func DateOnly(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

// Nights returns ceil((checkOut - checkIn) / 1 day), or 0 when either date
// fails to parse or the range is not positive.
func Nights(checkIn, checkOut string) int {
	in, ok := ParseDate(checkIn)
	if !ok {
		return 0
	}
	out, ok := ParseDate(checkOut)
	if !ok {
		return 0
	}
	n := int(math.Ceil(out.Sub(in).Hours() / 24))
	if n < 0 {
		return 0
	}
	return n
}

// SameCalendarDay compares a stored date string against a point in time,
// ignoring time-of-day on both sides.
func SameCalendarDay(s string, t time.Time) bool {
	d := DateOnly(strings.TrimSpace(s))
	if d == "" {
		return false
	}
	return d == t.Format("2006-01-02")
}

// DaysUntil is the fractional number of days from now until the parsed
// date. The second return is false when the date does not parse.
func DaysUntil(s string, now time.Time) (float64, bool) {
	t, ok := ParseDate(s)
	if !ok {
		return 0, false
	}
	return t.Sub(now).Hours() / 24, true
}

package validation

import (
	"time"
)

// DateLayout is the calendar-date wire format fields use.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar-date string as local midnight. The second
// return value is false for empty or unparseable input, which makes every
// date predicate fail rather than error.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation(DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// Midnight truncates an instant to the start of its local day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsPastDate reports whether value names a day strictly before now's day.
func IsPastDate(value string, now time.Time) bool {
	parsed, ok := ParseDate(value)
	if !ok {
		return false
	}
	return parsed.Before(Midnight(now))
}

// IsTodayOrFuture reports whether value names now's day or a later one.
func IsTodayOrFuture(value string, now time.Time) bool {
	parsed, ok := ParseDate(value)
	if !ok {
		return false
	}
	return !parsed.Before(Midnight(now))
}

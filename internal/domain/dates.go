package domain

import "time"

// DateLayout is the wire format for all dates in the store and fixtures.
const DateLayout = "2006-01-02"

// MustDate parses a YYYY-MM-DD string and panics on malformed input.
// Intended for fixture data and tests only.
func MustDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic("domain: bad date literal " + s + ": " + err.Error())
	}
	return t
}

// DaysRemaining returns the number of whole days between now and due,
// comparing calendar dates (time-of-day is ignored). Negative when due
// is in the past.
func DaysRemaining(now, due time.Time) int {
	trunc := func(t time.Time) time.Time {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return int(trunc(due).Sub(trunc(now)).Hours() / 24)
}

// Overdue reports whether due falls strictly before today.
func Overdue(now, due time.Time) bool {
	return DaysRemaining(now, due) < 0
}

// Package timezone provides school-local time helpers. Every
// time-sensitive call in the engine takes the timezone explicitly so
// nothing reads it from ambient state.
package timezone

import "time"

// DefaultTimezone applies when a school has no timezone configured.
const DefaultTimezone = "Asia/Kolkata"

// Location resolves an IANA timezone name. Empty names resolve to the
// default; unparseable names fall back to UTC rather than failing.
func Location(tz string) *time.Location {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SchoolNow returns the current instant in the school's timezone.
func SchoolNow(tz string) time.Time {
	return time.Now().UTC().In(Location(tz))
}

// SchoolToday returns the school's current calendar day, normalized to
// midnight UTC. All attendance record dates use this normalization so
// (staff, date) comparisons are exact.
func SchoolToday(tz string) time.Time {
	return DateOf(SchoolNow(tz))
}

// DateOf normalizes an instant to its calendar day at midnight UTC,
// using the instant's own location for the day boundary.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsFutureDate reports whether date falls after the school's current
// local day. Both sides are day-normalized before comparing.
func IsFutureDate(date time.Time, tz string) bool {
	return DateOf(date).After(SchoolToday(tz))
}

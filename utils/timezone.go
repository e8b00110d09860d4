package utils

import (
	"time"
)

const (
	// DefaultTimezone is the zone the upstream feed reports its days in.
	DefaultTimezone = "Europe/Berlin"
	// DefaultDateFormat is the display format of day keys.
	DefaultDateFormat = "02.01.2006"

	dayFormat = "2006-01-02"
)

// GetLocation loads a time zone by name and falls back to UTC when the name is
// unknown.
func GetLocation(timezone string) *time.Location {
	if timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DisplayKey returns a function formatting a timestamp as the calendar date
// of loc using the given layout.
func DisplayKey(loc *time.Location, layout string) func(time.Time) string {
	if loc == nil {
		loc = time.UTC
	}
	if layout == "" {
		layout = DefaultDateFormat
	}
	return func(t time.Time) string {
		return t.In(loc).Format(layout)
	}
}

// DayKey returns a function mapping a timestamp to its ISO calendar date in
// loc, for comparing days independent of the display format.
func DayKey(loc *time.Location) func(time.Time) string {
	return DisplayKey(loc, dayFormat)
}

// StartOfDay truncates t to midnight of its calendar date in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

package utils

import (
	"fmt"
	"time"
)

const (
	TimeLayout = "15:04"
	DateLayout = "2006-01-02"
)

// ParseHM parses a "HH:MM" string and pins it onto the given date, in
// the date's location.
func ParseHM(date time.Time, hm string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, hm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected HH:MM", hm)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// ParseDate parses a "YYYY-MM-DD" string in the local timezone.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

// DateOnly truncates a timestamp to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

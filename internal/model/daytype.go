package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDayType = errors.New("model: invalid day type")

type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
)

func (d DayType) IsValid() bool {
	switch d {
	case DayTypeWeekday, DayTypeWeekend:
		return true
	default:
		return false
	}
}

func ParseDayType(s string) (DayType, error) {
	d := DayType(s)
	if !d.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDayType, s)
	}
	return d, nil
}

const dateKeyLayout = "2006-01-02"

// DateKey formats a date as the local calendar key used throughout the
// store (YYYY-MM-DD).
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key back into a local-midnight time.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("model: parse date key %q: %w", key, err)
	}
	return t, nil
}

// CalendarDayType maps a date onto the day type used by the stats windows:
// Saturday and Sunday count as the weekend, everything else as a weekday.
func CalendarDayType(t time.Time) DayType {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return DayTypeWeekend
	default:
		return DayTypeWeekday
	}
}

// AutoAssignedDayType resolves the day types that never need a prompt.
// Friday and Saturday are always the weekend; Sunday through Thursday are
// ambiguous (university may or may not be in session) and require an
// explicit per-date choice.
func AutoAssignedDayType(t time.Time) (DayType, bool) {
	switch t.Weekday() {
	case time.Friday, time.Saturday:
		return DayTypeWeekend, true
	default:
		return "", false
	}
}

package model

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidTimeRange = errors.New("model: invalid time range")

// timeRangePattern accepts the schedule's loose 12-hour range notation:
// "5:00 - 5:25 AM", "9:00 - 1:00 PM", "9 AM - 1 PM". Minutes and the start
// period marker are optional; the end period marker is mandatory.
var timeRangePattern = regexp.MustCompile(`(?i)^\s*(\d{1,2})(?::(\d{2}))?\s*(AM|PM)?\s*-\s*(\d{1,2})(?::(\d{2}))?\s*(AM|PM)\s*$`)

// TimeRange is a canonical clock interval in minutes since midnight.
// The interval is half-open: StartMinutes <= t < EndMinutes.
type TimeRange struct {
	StartMinutes int
	EndMinutes   int
}

// ParseTimeRange parses a human-readable range string into a TimeRange.
// When the start has no AM/PM marker it is inferred: a PM end with a start
// hour greater than the end hour means the range crosses noon and the start
// is AM; otherwise the start inherits the end period.
func ParseTimeRange(s string) (TimeRange, error) {
	match := timeRangePattern.FindStringSubmatch(s)
	if match == nil {
		return TimeRange{}, ErrInvalidTimeRange
	}

	startHour := mustAtoi(match[1])
	startMin := optAtoi(match[2])
	endHour := mustAtoi(match[4])
	endMin := optAtoi(match[5])
	endPeriod := strings.ToUpper(match[6])

	startPeriod := strings.ToUpper(match[3])
	if startPeriod == "" {
		if endPeriod == "PM" && startHour > endHour {
			startPeriod = "AM"
		} else {
			startPeriod = endPeriod
		}
	}

	if startHour < 1 || startHour > 12 || endHour < 1 || endHour > 12 {
		return TimeRange{}, ErrInvalidTimeRange
	}
	if startMin > 59 || endMin > 59 {
		return TimeRange{}, ErrInvalidTimeRange
	}

	return TimeRange{
		StartMinutes: to24Hour(startHour, startPeriod)*60 + startMin,
		EndMinutes:   to24Hour(endHour, endPeriod)*60 + endMin,
	}, nil
}

// Contains reports whether the instant falls inside the range, comparing
// minutes since midnight of the local day and ignoring the date.
func (r TimeRange) Contains(at time.Time) bool {
	minutes := at.Hour()*60 + at.Minute()
	return minutes >= r.StartMinutes && minutes < r.EndMinutes
}

// IsWithin reports whether the instant falls inside the range string.
// Strings that fail to parse are never current; this is a soft failure by
// contract, so single-instant entries like "10:00 PM" simply never match.
func IsWithin(timeRange string, at time.Time) bool {
	r, err := ParseTimeRange(timeRange)
	if err != nil {
		return false
	}
	return r.Contains(at)
}

func to24Hour(hour int, period string) int {
	if period == "PM" && hour != 12 {
		return hour + 12
	}
	if period == "AM" && hour == 12 {
		return 0
	}
	return hour
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func optAtoi(s string) int {
	if s == "" {
		return 0
	}
	return mustAtoi(s)
}

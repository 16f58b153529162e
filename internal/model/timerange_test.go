package model

import (
	"errors"
	"testing"
	"time"
)

func clock(hour, min int) time.Time {
	return time.Date(2024, 6, 10, hour, min, 0, 0, time.Local)
}

func TestParseTimeRangeExplicitPeriods(t *testing.T) {
	cases := []struct {
		in    string
		start int
		end   int
	}{
		{"5:00 - 5:25 AM", 5 * 60, 5*60 + 25},
		{"5:00 AM - 5:25 AM", 5 * 60, 5*60 + 25},
		{"11:30 AM - 1:00 PM", 11*60 + 30, 13 * 60},
		{"12:00 PM - 12:55 PM", 12 * 60, 12*60 + 55},
		{"12:00 AM - 1:00 AM", 0, 60},
		{"8:00 - 8:25 PM", 20 * 60, 20*60 + 25},
		{"9 AM - 5 PM", 9 * 60, 17 * 60},
		{"  7:30   -  7:55   am ", 7*60 + 30, 7*60 + 55},
	}
	for _, tc := range cases {
		r, err := ParseTimeRange(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if r.StartMinutes != tc.start || r.EndMinutes != tc.end {
			t.Fatalf("parse %q: got [%d, %d), want [%d, %d)", tc.in, r.StartMinutes, r.EndMinutes, tc.start, tc.end)
		}
	}
}

func TestParseTimeRangeInfersCrossNoonStart(t *testing.T) {
	r, err := ParseTimeRange("9:00 - 1:00 PM")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.StartMinutes != 9*60 || r.EndMinutes != 13*60 {
		t.Fatalf("expected 9:00-13:00, got [%d, %d)", r.StartMinutes, r.EndMinutes)
	}

	// Start hour not greater than end hour: start inherits the end period.
	r, err = ParseTimeRange("1:00 - 2:00 PM")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.StartMinutes != 13*60 || r.EndMinutes != 14*60 {
		t.Fatalf("expected 13:00-14:00, got [%d, %d)", r.StartMinutes, r.EndMinutes)
	}
}

func TestParseTimeRangeRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"garbage string",
		"10:00 PM",
		"5:00 - 5:25",
		"25:00 - 26:00 PM",
		"0:00 - 1:00 AM",
		"5:99 - 6:00 AM",
		"5:00 -- 6:00 AM",
	}
	for _, in := range cases {
		if _, err := ParseTimeRange(in); !errors.Is(err, ErrInvalidTimeRange) {
			t.Fatalf("parse %q: expected ErrInvalidTimeRange, got %v", in, err)
		}
	}
}

func TestIsWithinHalfOpenContainment(t *testing.T) {
	if !IsWithin("5:00 - 5:25 AM", clock(5, 0)) {
		t.Fatal("start boundary should be inside")
	}
	if IsWithin("5:00 - 5:25 AM", clock(5, 25)) {
		t.Fatal("end boundary should be outside")
	}
	if IsWithin("5:00 - 5:25 AM", clock(4, 59)) {
		t.Fatal("before start should be outside")
	}
}

func TestIsWithinCrossNoonInference(t *testing.T) {
	if !IsWithin("9:00 - 1:00 PM", clock(11, 30)) {
		t.Fatal("11:30 should be inside 9 AM - 1 PM")
	}
	if IsWithin("9:00 - 1:00 PM", clock(13, 30)) {
		t.Fatal("13:30 should be outside 9 AM - 1 PM")
	}
}

func TestIsWithinMalformedNeverCurrent(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		if IsWithin("garbage string", clock(hour, 30)) {
			t.Fatalf("garbage matched at hour %d", hour)
		}
		if IsWithin("10:00 PM", clock(hour, 0)) {
			t.Fatalf("single instant matched at hour %d", hour)
		}
	}
}

// Exhaustive agreement check: for explicit AM/PM ranges, IsWithin must agree
// with a direct 24-hour minute comparison at every minute of the day.
func TestIsWithinAgreesWithDirectComparison(t *testing.T) {
	ranges := []struct {
		in    string
		start int
		end   int
	}{
		{"6:30 AM - 6:55 AM", 6*60 + 30, 6*60 + 55},
		{"11:00 AM - 11:30 AM", 11 * 60, 11*60 + 30},
		{"12:00 PM - 12:55 PM", 12 * 60, 12*60 + 55},
		{"4:00 PM - 4:25 PM", 16 * 60, 16*60 + 25},
		{"12:00 AM - 12:30 AM", 0, 30},
	}
	for _, tc := range ranges {
		for minutes := 0; minutes < 24*60; minutes++ {
			at := clock(minutes/60, minutes%60)
			want := minutes >= tc.start && minutes < tc.end
			if got := IsWithin(tc.in, at); got != want {
				t.Fatalf("%q at %02d:%02d: got %v, want %v", tc.in, minutes/60, minutes%60, got, want)
			}
		}
	}
}

func TestEveryBaseScheduleRangeParsesOrIsTerminal(t *testing.T) {
	for _, day := range []DayType{DayTypeWeekday, DayTypeWeekend} {
		for _, session := range BaseSchedule(day) {
			for _, task := range session.Tasks {
				_, err := ParseTimeRange(task.Time)
				if err == nil {
					continue
				}
				// The two STOP entries are single instants, not ranges.
				if task.ID == "wd-stop" || task.ID == "we-stop" {
					continue
				}
				t.Fatalf("base task %s has unparseable range %q", task.ID, task.Time)
			}
		}
	}
}

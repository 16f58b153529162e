// Package stats derives completion summaries from the ledger and the
// effective schedule. Nothing here is stored; every report is recomputed
// on demand.
package stats

import (
	"context"
	"math"
	"time"

	"github.com/sandeepkv93/studyd/internal/ledger"
	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/schedule"
)

const (
	RollingWindowDays = 30
	LastDaysCount     = 7
	WeeklyBucketCount = 4
)

type Aggregator struct {
	ledger   *ledger.Ledger
	schedule *schedule.Service

	// rollingDays is the window length Gather uses for the roll-up.
	rollingDays int

	// legacyRollingTotal reproduces the source app's rolling denominator:
	// activeDays x (weekday count + weekend count), regardless of which day
	// types actually occurred. Off by default; the corrected denominator
	// sums the actual per-day totals like the 7-day and weekly windows do.
	legacyRollingTotal bool
}

func New(l *ledger.Ledger, s *schedule.Service) *Aggregator {
	return &Aggregator{ledger: l, schedule: s, rollingDays: RollingWindowDays}
}

// WithLegacyRollingTotal switches the rolling window to the source app's
// denominator for number-compatibility.
func (a *Aggregator) WithLegacyRollingTotal(enabled bool) *Aggregator {
	a.legacyRollingTotal = enabled
	return a
}

// WithWindow overrides the rolling window length in days. Values below one
// keep the default.
func (a *Aggregator) WithWindow(days int) *Aggregator {
	if days > 0 {
		a.rollingDays = days
	}
	return a
}

// RollingSummary is the N-day activity roll-up.
type RollingSummary struct {
	WindowDays    int
	ActiveDays    int
	TasksDone     int
	TotalPossible int
	AvgCompletion int
}

// DayStat is one day of the last-7 report.
type DayStat struct {
	Date       time.Time
	Label      string
	Completed  int
	Total      int
	Percentage int
}

// WeekStat is one Saturday-to-Friday bucket.
type WeekStat struct {
	Start      time.Time
	End        time.Time
	Label      string
	Completed  int
	Total      int
	Percentage int
}

// Rolling computes the rolling window ending today (inclusive, walking
// backward). A day is active when it has any habit or custom record; done
// counts both families.
func (a *Aggregator) Rolling(ctx context.Context, now time.Time, days int) RollingSummary {
	weekdayCount := a.schedule.TotalTaskCount(ctx, model.DayTypeWeekday)
	weekendCount := a.schedule.TotalTaskCount(ctx, model.DayTypeWeekend)

	today := midnight(now)
	summary := RollingSummary{WindowDays: days}
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, -i)
		dateKey := model.DateKey(date)
		if !a.ledger.HasRecord(ctx, dateKey) {
			continue
		}
		summary.ActiveDays++
		summary.TasksDone += len(a.ledger.CompletedByKind(ctx, dateKey, ledger.KindHabit))
		summary.TasksDone += len(a.ledger.CompletedByKind(ctx, dateKey, ledger.KindCustom))
		if !a.legacyRollingTotal {
			summary.TotalPossible += a.countFor(model.CalendarDayType(date), weekdayCount, weekendCount)
		}
	}
	if a.legacyRollingTotal {
		summary.TotalPossible = summary.ActiveDays * (weekdayCount + weekendCount)
	}
	summary.AvgCompletion = percentage(summary.TasksDone, summary.TotalPossible)
	return summary
}

// LastDays reports the trailing n days, today first. Only habit completions
// count here; the denominator is the calendar day type's task total.
func (a *Aggregator) LastDays(ctx context.Context, now time.Time, n int) []DayStat {
	weekdayCount := a.schedule.TotalTaskCount(ctx, model.DayTypeWeekday)
	weekendCount := a.schedule.TotalTaskCount(ctx, model.DayTypeWeekend)

	today := midnight(now)
	out := make([]DayStat, 0, n)
	for i := 0; i < n; i++ {
		date := today.AddDate(0, 0, -i)
		completed := len(a.ledger.Completed(ctx, model.DateKey(date)))
		total := a.countFor(model.CalendarDayType(date), weekdayCount, weekendCount)
		out = append(out, DayStat{
			Date:       date,
			Label:      date.Format("Mon, Jan 2"),
			Completed:  completed,
			Total:      total,
			Percentage: percentage(completed, total),
		})
	}
	return out
}

// WeeklyBuckets reports Saturday-to-Friday buckets, newest first. Bucket 0
// starts on the most recent Saturday on or before today.
func (a *Aggregator) WeeklyBuckets(ctx context.Context, now time.Time, weeks int) []WeekStat {
	weekdayCount := a.schedule.TotalTaskCount(ctx, model.DayTypeWeekday)
	weekendCount := a.schedule.TotalTaskCount(ctx, model.DayTypeWeekend)

	today := midnight(now)
	out := make([]WeekStat, 0, weeks)
	for weekNum := 0; weekNum < weeks; weekNum++ {
		start := today.AddDate(0, 0, -daysSinceSaturday(today)-7*weekNum)
		end := start.AddDate(0, 0, 6)

		bucket := WeekStat{
			Start: start,
			End:   end,
			Label: start.Format("Jan 2") + " - " + end.Format("Jan 2"),
		}
		for i := 0; i < 7; i++ {
			date := start.AddDate(0, 0, i)
			bucket.Completed += len(a.ledger.Completed(ctx, model.DateKey(date)))
			bucket.Total += a.countFor(model.CalendarDayType(date), weekdayCount, weekendCount)
		}
		bucket.Percentage = percentage(bucket.Completed, bucket.Total)
		out = append(out, bucket)
	}
	return out
}

func (a *Aggregator) countFor(day model.DayType, weekdayCount, weekendCount int) int {
	if day == model.DayTypeWeekend {
		return weekendCount
	}
	return weekdayCount
}

// daysSinceSaturday is 0 on Saturday, 1 on Sunday, ... 6 on Friday.
func daysSinceSaturday(t time.Time) int {
	return (int(t.Weekday()) + 1) % 7
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// percentage rounds to the nearest integer; a zero denominator is always 0,
// never an error.
func percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

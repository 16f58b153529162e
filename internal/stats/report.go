package stats

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// Report bundles the three windows so callers render one consistent
// snapshot instead of mixing windows computed at different instants.
type Report struct {
	Rolling RollingSummary
	Last7   []DayStat
	Weekly  []WeekStat
}

func (a *Aggregator) Gather(ctx context.Context, now time.Time) Report {
	return Report{
		Rolling: a.Rolling(ctx, now, a.rollingDays),
		Last7:   a.LastDays(ctx, now, LastDaysCount),
		Weekly:  a.WeeklyBuckets(ctx, now, WeeklyBucketCount),
	}
}

const reportBarWidth = 20

// WriteText renders the report as plain text for non-interactive use.
func (r Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Last %d Days\n", r.Rolling.WindowDays)
	fmt.Fprintf(&b, "  Active days:    %d\n", r.Rolling.ActiveDays)
	fmt.Fprintf(&b, "  Tasks done:     %d / %d\n", r.Rolling.TasksDone, r.Rolling.TotalPossible)
	fmt.Fprintf(&b, "  Avg completion: %d%% %s\n", r.Rolling.AvgCompletion, TextBar(r.Rolling.AvgCompletion, reportBarWidth))

	b.WriteString("\nLast 7 Days\n")
	for _, day := range r.Last7 {
		fmt.Fprintf(&b, "  %-12s %2d/%-2d %3d%% %s\n", day.Label, day.Completed, day.Total, day.Percentage, TextBar(day.Percentage, reportBarWidth))
	}

	b.WriteString("\nWeekly\n")
	for _, week := range r.Weekly {
		fmt.Fprintf(&b, "  %-15s %3d/%-3d %3d%% %s\n", week.Label, week.Completed, week.Total, week.Percentage, TextBar(week.Percentage, reportBarWidth))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// TextBar draws a fixed-width block bar for the given percentage.
func TextBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

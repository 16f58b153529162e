package views

import (
	"fmt"
	"strings"
)

type ScheduleRowData struct {
	TaskID      string
	Time        string
	Description string
	Session     string
	Custom      bool
	Category    string
	Done        bool
	Live        bool
}

type SchedulePanelData struct {
	Rows       []ScheduleRowData
	SelectedID string
	PromptOpen bool
}

// WeekStripDay is one cell of the week strip: the day the pane has
// selected is bracketed, days with any stored activity carry a dot.
type WeekStripDay struct {
	Label    string
	Selected bool
	Active   bool
}

type DayPaneData struct {
	DateLabel   string
	DayType     string
	Done        int
	Total       int
	ProgressBar string
	Week        []WeekStripDay
	HasOverlay  bool
	PromptOpen  bool
}

type StatLineData struct {
	Label      string
	Completed  int
	Total      int
	Percentage int
	Bar        string
}

type StatsPanelData struct {
	WindowDays    int
	ActiveDays    int
	TasksDone     int
	TotalPossible int
	AvgCompletion int
	AvgBar        string
	Days          []StatLineData
	Weeks         []StatLineData
}

type NotesPanelData struct {
	DateLabel  string
	Editing    bool
	EditorView string
	Note       string
}

type FocusPanelData struct {
	TaskTitle          string
	Phase              string
	Timer              string
	ProgressView       string
	ProgressPct        int
	CompletedPomodoros int
	ShowEndPrompt      bool
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderSchedulePanel(data SchedulePanelData) string {
	var b strings.Builder
	b.WriteString("schedule:\n")
	b.WriteString("actions: [j/k]move [space]done [h/l]day [t]today [a]add [e]edit\n")
	if data.PromptOpen {
		b.WriteString("prompt: is this a [w]eekday or a [W]eekend day?\n")
	}

	if len(data.Rows) == 0 {
		b.WriteString("(no tasks)")
		return b.String()
	}

	session := ""
	for _, row := range data.Rows {
		if row.Session != session {
			session = row.Session
			b.WriteString(fmt.Sprintf("\n%s:\n", session))
		}
		cursor := " "
		if data.SelectedID == row.TaskID {
			cursor = ">"
		}
		check := "[ ]"
		if row.Done {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s", cursor, check)
		if row.Time != "" {
			line += fmt.Sprintf(" %-18s", row.Time)
		}
		line += " " + row.Description
		if row.Custom && row.Category != "" {
			line += fmt.Sprintf(" (%s)", row.Category)
		}
		if row.Live {
			line += "  <- now"
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderDayPane(data DayPaneData) string {
	var b strings.Builder
	b.WriteString("day:\n")
	b.WriteString(fmt.Sprintf("date: %s\n", data.DateLabel))
	b.WriteString(fmt.Sprintf("type: %s\n", data.DayType))
	if data.PromptOpen {
		b.WriteString("type is provisional until the prompt is answered\n")
	}
	if len(data.Week) > 0 {
		b.WriteString("week: " + renderWeekStrip(data.Week) + "\n")
	}
	b.WriteString(fmt.Sprintf("progress: %d/%d\n", data.Done, data.Total))
	b.WriteString(data.ProgressBar + "\n")
	if data.HasOverlay {
		b.WriteString("schedule: customized (reset via /reset)\n")
	} else {
		b.WriteString("schedule: default\n")
	}
	return strings.TrimSpace(b.String())
}

// renderWeekStrip lays the seven cells out left to right, Sunday first,
// like "Su 9  Mo 10. [We 12]".
func renderWeekStrip(week []WeekStripDay) string {
	cells := make([]string, 0, len(week))
	for _, day := range week {
		cell := day.Label
		if day.Active {
			cell += "."
		}
		if day.Selected {
			cell = "[" + cell + "]"
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, "  ")
}

func RenderStatsPanel(data StatsPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("last %d days:\n", data.WindowDays))
	b.WriteString(fmt.Sprintf("active days: %d\n", data.ActiveDays))
	b.WriteString(fmt.Sprintf("tasks done: %d/%d\n", data.TasksDone, data.TotalPossible))
	b.WriteString(fmt.Sprintf("avg completion: %d%%\n", data.AvgCompletion))
	b.WriteString(data.AvgBar + "\n")

	b.WriteString("\nlast 7 days:\n")
	for _, day := range data.Days {
		b.WriteString(fmt.Sprintf("%-12s %2d/%-2d %3d%% %s\n", day.Label, day.Completed, day.Total, day.Percentage, day.Bar))
	}

	b.WriteString("\nweekly:\n")
	for _, week := range data.Weeks {
		b.WriteString(fmt.Sprintf("%-15s %3d/%-3d %3d%% %s\n", week.Label, week.Completed, week.Total, week.Percentage, week.Bar))
	}
	return strings.TrimSpace(b.String())
}

func RenderNotesPanel(data NotesPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("notes for %s:\n", data.DateLabel))
	if data.Editing {
		b.WriteString("editing ([esc] saves)\n")
		b.WriteString(data.EditorView)
		return strings.TrimSpace(b.String())
	}
	b.WriteString("actions: [enter]edit [d]clear\n")
	if strings.TrimSpace(data.Note) == "" {
		b.WriteString("(empty)")
	} else {
		b.WriteString(data.Note)
	}
	return strings.TrimSpace(b.String())
}

func RenderFocusPanel(data FocusPanelData) string {
	var b strings.Builder
	b.WriteString("focus:\n")
	if data.TaskTitle != "" {
		b.WriteString(fmt.Sprintf("task: %s\n", data.TaskTitle))
	} else {
		b.WriteString("task: (none selected)\n")
	}
	b.WriteString(fmt.Sprintf("phase: %s\n", strings.ToUpper(data.Phase)))
	b.WriteString(fmt.Sprintf("timer: %s\n", data.Timer))
	b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.ProgressPct))
	b.WriteString(fmt.Sprintf("pomodoros completed: %d\n", data.CompletedPomodoros))
	b.WriteString("actions: [space]start/pause [r]reset [n]next-phase\n")
	if data.ShowEndPrompt {
		b.WriteString("prompt: session ended, press [n] to continue")
	}
	return strings.TrimSpace(b.String())
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

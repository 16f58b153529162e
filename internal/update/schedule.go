package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/storage"
	"github.com/sandeepkv93/studyd/internal/views"
)

func (m Model) handleScheduleKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Schedule.Cursor > 0 {
			m.Schedule.Cursor--
		}
	case "down", "j":
		if m.Schedule.Cursor < len(m.Schedule.Rows)-1 {
			m.Schedule.Cursor++
		}
	case " ":
		return m.toggleCurrentRow()
	case "h", "left":
		m.ViewDate = m.ViewDate.AddDate(0, 0, -1)
		m.refreshDay()
	case "l", "right":
		m.ViewDate = m.ViewDate.AddDate(0, 0, 1)
		m.refreshDay()
	case "[":
		m.ViewDate = m.ViewDate.AddDate(0, 0, -7)
		m.refreshDay()
	case "]":
		m.ViewDate = m.ViewDate.AddDate(0, 0, 7)
		m.refreshDay()
	case "t":
		m.ViewDate = midnight(m.now())
		m.refreshDay()
		m.Status = StatusBar{Text: "back to today", IsError: false}
	case "a":
		m.Palette.Active = true
		m.commandInput.SetValue("add ")
		m.commandInput.Focus()
		m.Palette.Input = "add "
	case "e":
		if row, ok := m.currentRow(); ok && !row.Custom {
			prefill := fmt.Sprintf("edit %s desc %s", row.TaskID, row.Description)
			m.Palette.Active = true
			m.commandInput.SetValue(prefill)
			m.commandInput.Focus()
			m.Palette.Input = prefill
		}
	case "x":
		if row, ok := m.currentRow(); ok && row.Custom {
			return m.removeCustomRow(row.TaskID)
		}
	}
	return m
}

// toggleCurrentRow flips completion for the highlighted task. The in-memory
// set is only replaced once the ledger write succeeded; a failed write
// leaves the checkbox alone and reports the error.
func (m Model) toggleCurrentRow() Model {
	row, ok := m.currentRow()
	if !ok {
		return m
	}
	next, err := m.svc.Ledger.Toggle(m.ctx, model.DateKey(m.ViewDate), row.TaskID)
	if err != nil {
		if storage.IsWriteFailure(err) {
			m.Status = StatusBar{Text: "could not save completion, nothing was changed", IsError: true}
		} else {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
		m.LastError = err
		return m
	}
	m.completed = next
	return m
}

func (m Model) removeCustomRow(taskID string) Model {
	removed, err := m.svc.Ledger.RemoveCustomTask(m.ctx, model.DateKey(m.ViewDate), taskID)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.LastError = err
		return m
	}
	if !removed {
		m.Status = StatusBar{Text: "no such custom task", IsError: true}
		return m
	}
	m.refreshDay()
	m.Status = StatusBar{Text: "custom task removed", IsError: false}
	return m
}

// handleDayPromptKey answers the weekday/weekend question for the visible
// date. Other keys fall through to normal handling.
func (m Model) handleDayPromptKey(msg tea.KeyMsg) (Model, bool) {
	var day model.DayType
	switch msg.String() {
	case "w":
		day = model.DayTypeWeekday
	case "W":
		day = model.DayTypeWeekend
	default:
		return m, false
	}
	if err := m.svc.Ledger.SetDayAssignment(m.ctx, model.DateKey(m.ViewDate), day); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.LastError = err
		return m, true
	}
	m.refreshDay()
	m.Status = StatusBar{Text: fmt.Sprintf("day marked as %s", day), IsError: false}
	return m, true
}

func (m Model) renderScheduleView() string {
	rows := make([]views.ScheduleRowData, 0, len(m.Schedule.Rows))
	live := m.liveTaskID()
	for _, row := range m.Schedule.Rows {
		rows = append(rows, views.ScheduleRowData{
			TaskID:      row.TaskID,
			Time:        row.Time,
			Description: row.Description,
			Session:     row.Session,
			Custom:      row.Custom,
			Category:    string(row.Category),
			Done:        m.isDone(row.TaskID),
			Live:        live != "" && row.TaskID == live,
		})
	}
	selectedID := ""
	if row, ok := m.currentRow(); ok {
		selectedID = row.TaskID
	}
	return views.RenderSchedulePanel(views.SchedulePanelData{
		Rows:       rows,
		SelectedID: selectedID,
		PromptOpen: m.DayPrompt,
	})
}

func (m Model) renderDayPane() string {
	ratio := m.dayProgressRatio()
	bar := m.dayProgress.ViewAs(ratio)
	done := 0
	for _, row := range m.Schedule.Rows {
		if m.isDone(row.TaskID) {
			done++
		}
	}
	pane := views.RenderDayPane(views.DayPaneData{
		DateLabel:   m.ViewDate.Format("Monday, January 2"),
		DayType:     string(m.DayType),
		Done:        done,
		Total:       len(m.Schedule.Rows),
		ProgressBar: bar,
		Week:        m.weekStrip(),
		HasOverlay:  m.svc.Schedule.HasOverlay(m.ctx),
		PromptOpen:  m.DayPrompt,
	})
	return pane
}

// weekStrip covers the Sunday-start week around the selected date. A day is
// active when the ledger holds any record for it.
func (m Model) weekStrip() []views.WeekStripDay {
	start := m.ViewDate.AddDate(0, 0, -int(m.ViewDate.Weekday()))
	strip := make([]views.WeekStripDay, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		strip = append(strip, views.WeekStripDay{
			Label:    fmt.Sprintf("%s %d", date.Format("Mon")[:2], date.Day()),
			Selected: model.DateKey(date) == model.DateKey(m.ViewDate),
			Active:   m.svc.Ledger.HasRecord(m.ctx, model.DateKey(date)),
		})
	}
	return strip
}

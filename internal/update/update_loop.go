package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/scheduler"
	"github.com/sandeepkv93/studyd/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Clock != nil {
		return waitForClockCmd(m.Clock.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed), nil
		}
		if m.CurrentView == ViewNotes && m.notesEditing {
			return m.handleNotesKey(typed)
		}
		if m.DayPrompt && m.CurrentView == ViewSchedule {
			if next, handled := m.handleDayPromptKey(typed); handled {
				return next, nil
			}
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Schedule:
			m.CurrentView = ViewSchedule
			return m, nil
		case m.Keys.Stats:
			m.CurrentView = ViewStats
			m.refreshStatsViewport()
			return m, nil
		case m.Keys.Notes:
			m.CurrentView = ViewNotes
			return m, nil
		case m.Keys.Focus:
			m.CurrentView = ViewFocus
			m.bootstrapFocusTask()
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewSchedule:
			return m.handleScheduleKey(typed), nil
		case ViewStats:
			return m.handleStatsKey(typed), nil
		case ViewNotes:
			return m.handleNotesKey(typed)
		case ViewFocus:
			return m.handleFocusKey(typed)
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			if typed.View == ViewStats {
				m.refreshStatsViewport()
			}
			if typed.View == ViewFocus {
				m.bootstrapFocusTask()
			}
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case FocusTickMsg:
		return m.onFocusTick()
	case ClockMsg:
		next := m.onClockEvent(typed.Event)
		if next.Clock != nil {
			return next, waitForClockCmd(next.Clock.C())
		}
		return next, nil
	}

	return m, nil
}

// onClockEvent refreshes the live highlight on a tick and jumps to the new
// date on rollover, but only when the user is still looking at today.
func (m Model) onClockEvent(ev scheduler.ClockEvent) Model {
	switch ev.Kind {
	case scheduler.EventRollover:
		if m.viewingToday() {
			return m
		}
		if model.DateKey(m.ViewDate.AddDate(0, 0, 1)) == ev.DateKey {
			m.ViewDate = midnight(ev.At)
			m.refreshDay()
			m.Status = StatusBar{Text: "a new day started", IsError: false}
		}
	case scheduler.EventTick:
		// The view pulls the live task from the wall clock on render;
		// receiving the tick is enough to trigger a redraw.
	}
	return m
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewSchedule:
		leftPane = m.renderScheduleView()
		rightPane = m.renderDayPane() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewStats:
		leftPane = m.renderStatsView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewNotes:
		leftPane = m.renderNotesView()
		rightPane = m.renderNotesPreview() + m.renderHelpIfVisible()
	case ViewFocus:
		leftPane = m.renderFocusView()
		rightPane = m.renderHelpIfVisible()
	}

	return views.RenderApp(views.AppData{
		Header:        fmt.Sprintf("studyd | view: %s | %s (%s) | %s", m.CurrentView, m.ViewDate.Format("Mon, Jan 2"), m.DayType, m.now().Format("3:04 PM")),
		LeftPane:      leftPane,
		RightPane:     rightPane,
		StatusLine:    status,
		StatusIsError: m.Status.IsError,
		Footer:        fmt.Sprintf("keys: %s schedule | %s stats | %s notes | %s focus | / cmd | %s help | %s quit", m.Keys.Schedule, m.Keys.Stats, m.Keys.Notes, m.Keys.Focus, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewSchedule, ViewStats, ViewNotes, ViewFocus:
		return true
	default:
		return false
	}
}

func waitForClockCmd(ch <-chan scheduler.ClockEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ClockMsg{Event: ev}
	}
}

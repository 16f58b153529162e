// Package update holds the Bubble Tea model for the interactive app: the
// daily schedule, the stats report, the notes editor and the focus timer.
package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/studyd/internal/ledger"
	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/schedule"
	"github.com/sandeepkv93/studyd/internal/scheduler"
	"github.com/sandeepkv93/studyd/internal/stats"
)

type View string

const (
	ViewSchedule View = "Schedule"
	ViewStats    View = "Stats"
	ViewNotes    View = "Notes"
	ViewFocus    View = "Focus"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Schedule string
	Stats    string
	Notes    string
	Focus    string
	Help     string
	Quit     string
}

// Services groups the engines the UI drives. All reads and writes go
// through these; the model keeps only display state.
type Services struct {
	Ledger   *ledger.Ledger
	Schedule *schedule.Service
	Stats    *stats.Aggregator
}

// ScheduleRow is one selectable line of the schedule view. Custom rows
// come after every session.
type ScheduleRow struct {
	TaskID      string
	Time        string
	Description string
	Session     string
	Custom      bool
	Category    model.Category
}

type ScheduleState struct {
	Rows   []ScheduleRow
	Cursor int
}

type FocusPhase string

const (
	FocusPhaseWork  FocusPhase = "work"
	FocusPhaseBreak FocusPhase = "break"
)

type FocusState struct {
	TaskID             string
	TaskTitle          string
	WorkDurationSec    int
	BreakDurationSec   int
	RemainingSec       int
	Running            bool
	Phase              FocusPhase
	CompletedPomodoros int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentView View
	// ViewDate is the date whose record is on screen; navigation moves it
	// away from today.
	ViewDate time.Time
	// DayType is the resolved type for ViewDate. Provisional while the
	// day prompt is open.
	DayType   model.DayType
	DayPrompt bool

	Schedule    ScheduleState
	Focus       FocusState
	Palette     CommandPaletteState
	Status      StatusBar
	Keys        GlobalKeyMap
	HelpVisible bool
	Quitting    bool
	LastError   error

	Clock *scheduler.ClockEngine

	svc       Services
	ctx       context.Context
	now       func() time.Time
	completed map[string]struct{}
	custom    []model.CustomTask
	note      string

	// Bubble components used for rich TUI controls
	commandInput  textinput.Model
	notesArea     textarea.Model
	focusProgress progress.Model
	dayProgress   progress.Model
	helpModel     help.Model
	statsViewport viewport.Model
	notesEditing  bool
}

type ClockMsg struct {
	Event scheduler.ClockEvent
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type FocusTickMsg struct{}

func NewModel(svc Services) Model {
	m := Model{
		CurrentView: ViewSchedule,
		svc:         svc,
		ctx:         context.Background(),
		now:         time.Now,
		completed:   make(map[string]struct{}),
		Focus: FocusState{
			WorkDurationSec:  25 * 60,
			BreakDurationSec: 5 * 60,
			RemainingSec:     25 * 60,
			Phase:            FocusPhaseWork,
		},
		Keys: GlobalKeyMap{
			Schedule: "1",
			Stats:    "2",
			Notes:    "3",
			Focus:    "4",
			Help:     "?",
			Quit:     "q",
		},
	}
	m.initBubbleComponents()
	m.ViewDate = midnight(m.now())
	m.refreshDay()
	return m
}

func NewModelWithClock(svc Services, engine *scheduler.ClockEngine) Model {
	m := NewModel(svc)
	m.Clock = engine
	return m
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.notesArea = textarea.New()
	m.notesArea.SetWidth(54)
	m.notesArea.SetHeight(8)
	m.notesArea.ShowLineNumbers = false
	m.notesArea.Placeholder = "Notes for the day (markdown)"

	m.focusProgress = progress.New(progress.WithDefaultGradient())
	m.dayProgress = progress.New(progress.WithDefaultGradient())

	m.helpModel = help.New()
	m.statsViewport = viewport.New(54, 14)
}

// refreshDay reloads everything date-scoped: day type, rows, completion
// set, custom tasks and the note.
func (m *Model) refreshDay() {
	dateKey := model.DateKey(m.ViewDate)

	m.DayPrompt = false
	if stored, ok := m.svc.Ledger.DayAssignment(m.ctx, dateKey); ok {
		m.DayType = stored
	} else if auto, ok := model.AutoAssignedDayType(m.ViewDate); ok {
		m.DayType = auto
	} else {
		// Sunday through Thursday needs an explicit answer once.
		m.DayType = model.CalendarDayType(m.ViewDate)
		m.DayPrompt = true
	}

	m.completed = m.svc.Ledger.Completed(m.ctx, dateKey)
	m.custom = m.svc.Ledger.CustomTasks(m.ctx, dateKey)
	m.note = m.svc.Ledger.Note(m.ctx, dateKey)
	if !m.notesEditing {
		m.notesArea.SetValue(m.note)
	}

	m.rebuildRows()
	if m.Schedule.Cursor >= len(m.Schedule.Rows) {
		m.Schedule.Cursor = len(m.Schedule.Rows) - 1
	}
	if m.Schedule.Cursor < 0 {
		m.Schedule.Cursor = 0
	}
}

func (m *Model) rebuildRows() {
	sessions := m.svc.Schedule.Effective(m.ctx, m.DayType)
	rows := make([]ScheduleRow, 0, model.CountTasks(sessions)+len(m.custom))
	for _, session := range sessions {
		for _, task := range session.Tasks {
			rows = append(rows, ScheduleRow{
				TaskID:      task.ID,
				Time:        task.Time,
				Description: task.Description,
				Session:     session.Title,
			})
		}
	}
	for _, task := range m.custom {
		rows = append(rows, ScheduleRow{
			TaskID:      task.ID,
			Description: task.Description,
			Session:     "Custom Tasks",
			Custom:      true,
			Category:    task.Category,
		})
	}
	m.Schedule.Rows = rows
}

func (m Model) currentRow() (ScheduleRow, bool) {
	if len(m.Schedule.Rows) == 0 {
		return ScheduleRow{}, false
	}
	if m.Schedule.Cursor < 0 || m.Schedule.Cursor >= len(m.Schedule.Rows) {
		return ScheduleRow{}, false
	}
	return m.Schedule.Rows[m.Schedule.Cursor], true
}

func (m Model) isDone(taskID string) bool {
	_, ok := m.completed[taskID]
	return ok
}

// dayProgressRatio is completed rows over all rows for the visible date.
func (m Model) dayProgressRatio() float64 {
	if len(m.Schedule.Rows) == 0 {
		return 0
	}
	done := 0
	for _, row := range m.Schedule.Rows {
		if m.isDone(row.TaskID) {
			done++
		}
	}
	return float64(done) / float64(len(m.Schedule.Rows))
}

func (m Model) viewingToday() bool {
	return model.DateKey(m.ViewDate) == model.DateKey(m.now())
}

// liveTaskID is the schedule task whose range contains the current time,
// only meaningful while viewing today.
func (m Model) liveTaskID() string {
	if !m.viewingToday() {
		return ""
	}
	return model.LiveTaskID(m.svc.Schedule.Effective(m.ctx, m.DayType), m.now())
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

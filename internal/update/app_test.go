package update

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/ledger"
	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/schedule"
	"github.com/sandeepkv93/studyd/internal/scheduler"
	"github.com/sandeepkv93/studyd/internal/stats"
	"github.com/sandeepkv93/studyd/internal/storage"
)

// 2024-06-12 is a Wednesday: a prompt day with no stored assignment.
var fixedNow = time.Date(2024, time.June, 12, 11, 30, 0, 0, time.Local)

func newTestModel(t *testing.T) (Model, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	led := ledger.New(store, nil)
	svc := schedule.NewService(store, nil)
	m := NewModel(Services{
		Ledger:   led,
		Schedule: svc,
		Stats:    stats.New(led, svc),
	})
	m.now = func() time.Time { return fixedNow }
	m.ViewDate = midnight(fixedNow)
	m.refreshDay()
	return m, store
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelDefaults(t *testing.T) {
	m, _ := newTestModel(t)
	if m.CurrentView != ViewSchedule {
		t.Fatalf("expected default view %q, got %q", ViewSchedule, m.CurrentView)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
	if len(m.Schedule.Rows) != model.BaseTaskCount(model.DayTypeWeekday) {
		t.Fatalf("expected %d rows, got %d", model.BaseTaskCount(model.DayTypeWeekday), len(m.Schedule.Rows))
	}
	if !m.DayPrompt {
		t.Fatal("expected day prompt on an unassigned Wednesday")
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(keyMsg("2"))
	next := updated.(Model)
	if next.CurrentView != ViewStats {
		t.Fatalf("expected stats view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(keyMsg("4"))
	next = updated.(Model)
	if next.CurrentView != ViewFocus {
		t.Fatalf("expected focus view, got %q", next.CurrentView)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(SwitchViewMsg{View: ViewNotes})
	next := updated.(Model)
	if next.CurrentView != ViewNotes {
		t.Fatalf("expected notes view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(SwitchViewMsg{View: View("Unknown")})
	next = updated.(Model)
	if next.CurrentView != ViewNotes {
		t.Fatalf("expected view unchanged for unknown view, got %q", next.CurrentView)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(SetStatusMsg{Text: "ready", IsError: false})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	errMsg := errors.New("boom")
	updated, _ = next.Update(AppErrorMsg{Err: errMsg})
	next = updated.(Model)
	if next.LastError == nil || next.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", next.LastError)
	}
	if !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m, _ := newTestModel(t)
	updated, cmd := m.Update(keyMsg("q"))
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestDayPromptAnswerPersists(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(keyMsg("w"))
	next := updated.(Model)
	if next.DayPrompt {
		t.Fatal("expected prompt to close after answering")
	}
	if next.DayType != model.DayTypeWeekday {
		t.Fatalf("expected weekday, got %q", next.DayType)
	}

	stored, ok := next.svc.Ledger.DayAssignment(context.Background(), model.DateKey(fixedNow))
	if !ok || stored != model.DayTypeWeekday {
		t.Fatalf("expected persisted weekday assignment, got %q ok=%v", stored, ok)
	}
}

func TestWeekendDateNeedsNoPrompt(t *testing.T) {
	m, _ := newTestModel(t)
	// Four days back from Wednesday the 12th is Saturday the 8th.
	for i := 0; i < 4; i++ {
		updated, _ := m.Update(keyMsg("h"))
		m = updated.(Model)
	}
	if model.DateKey(m.ViewDate) != "2024-06-08" {
		t.Fatalf("expected to land on 2024-06-08, got %s", model.DateKey(m.ViewDate))
	}
	if m.DayPrompt {
		t.Fatal("Saturday must not prompt")
	}
	if m.DayType != model.DayTypeWeekend {
		t.Fatalf("expected weekend, got %q", m.DayType)
	}
	if len(m.Schedule.Rows) != model.BaseTaskCount(model.DayTypeWeekend) {
		t.Fatalf("expected weekend rows, got %d", len(m.Schedule.Rows))
	}
}

func TestToggleCompletionPersists(t *testing.T) {
	m, _ := newTestModel(t)
	// Close the prompt first so space reaches the schedule handler.
	updated, _ := m.Update(keyMsg("w"))
	m = updated.(Model)

	row := m.Schedule.Rows[0]
	updated, _ = m.Update(keyMsg(" "))
	m = updated.(Model)
	if !m.isDone(row.TaskID) {
		t.Fatalf("expected %s to be done", row.TaskID)
	}

	persisted := m.svc.Ledger.Completed(context.Background(), model.DateKey(fixedNow))
	if _, ok := persisted[row.TaskID]; !ok {
		t.Fatal("completion did not reach the ledger")
	}

	updated, _ = m.Update(keyMsg(" "))
	m = updated.(Model)
	if m.isDone(row.TaskID) {
		t.Fatal("second toggle should undo the completion")
	}
}

func TestToggleFailureLeavesStateUnchanged(t *testing.T) {
	store := storage.NewMemoryStore()
	led := ledger.New(failingStore{store}, nil)
	svc := schedule.NewService(store, nil)
	m := NewModel(Services{Ledger: led, Schedule: svc, Stats: stats.New(led, svc)})
	m.now = func() time.Time { return fixedNow }
	m.ViewDate = midnight(fixedNow)
	m.refreshDay()

	row := m.Schedule.Rows[0]
	next := m.toggleCurrentRow()
	if !next.Status.IsError {
		t.Fatalf("expected an error status, got %+v", next.Status)
	}
	if next.isDone(row.TaskID) {
		t.Fatal("failed write must not flip the checkbox")
	}
	if store.Len() != 0 {
		t.Fatalf("nothing should have been persisted, store has %d keys", store.Len())
	}
}

// failingStore rejects every write.
type failingStore struct {
	*storage.MemoryStore
}

func (s failingStore) Set(ctx context.Context, key, value string) error {
	return &storage.WriteError{Key: key, Err: errors.New("disk full")}
}

func TestPaletteAddsCustomTask(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(keyMsg("/"))
	m = updated.(Model)
	if !m.Palette.Active {
		t.Fatal("expected palette active")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("add solve practice set cat:examprep")})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.Palette.Active {
		t.Fatal("expected palette closed after execution")
	}
	if m.Status.IsError {
		t.Fatalf("unexpected error status: %+v", m.Status)
	}

	last := m.Schedule.Rows[len(m.Schedule.Rows)-1]
	if !last.Custom || last.Description != "solve practice set" || last.Category != model.CategoryExamPrep {
		t.Fatalf("unexpected custom row: %+v", last)
	}
}

func TestPaletteEditKeepsOtherField(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(keyMsg("/"))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("edit wd-uni-1 time 10:00 - 2:00 PM")})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.Status.IsError {
		t.Fatalf("unexpected error: %+v", m.Status)
	}
	task, ok := model.FindTask(m.svc.Schedule.Effective(context.Background(), model.DayTypeWeekday), "wd-uni-1")
	if !ok {
		t.Fatal("task vanished after edit")
	}
	if task.Time != "10:00 - 2:00 PM" {
		t.Fatalf("time not updated: %q", task.Time)
	}
	if !strings.Contains(task.Description, "University") {
		t.Fatalf("description should be unchanged, got %q", task.Description)
	}
}

func TestClockRolloverAdvancesToday(t *testing.T) {
	m, _ := newTestModel(t)
	nextDay := fixedNow.AddDate(0, 0, 1)
	m.now = func() time.Time { return nextDay }

	next := m.onClockEvent(scheduler.ClockEvent{
		Kind:    scheduler.EventRollover,
		At:      nextDay,
		DateKey: model.DateKey(nextDay),
	})
	if model.DateKey(next.ViewDate) != model.DateKey(nextDay) {
		t.Fatalf("expected view date to advance, got %s", model.DateKey(next.ViewDate))
	}
}

func TestClockRolloverLeavesPastDatesAlone(t *testing.T) {
	m, _ := newTestModel(t)
	past := fixedNow.AddDate(0, 0, -10)
	m.ViewDate = midnight(past)
	m.refreshDay()
	nextDay := fixedNow.AddDate(0, 0, 1)
	m.now = func() time.Time { return nextDay }

	next := m.onClockEvent(scheduler.ClockEvent{
		Kind:    scheduler.EventRollover,
		At:      nextDay,
		DateKey: model.DateKey(nextDay),
	})
	if model.DateKey(next.ViewDate) != model.DateKey(past) {
		t.Fatalf("expected view date untouched, got %s", model.DateKey(next.ViewDate))
	}
}

func TestViewContainsCoreState(t *testing.T) {
	m, _ := newTestModel(t)
	m.Status = StatusBar{Text: "all good"}
	out := m.View()
	if !strings.Contains(out, "view: Schedule") {
		t.Fatalf("expected view text in output: %q", out)
	}
	if !strings.Contains(out, "status: all good") {
		t.Fatalf("expected status in output: %q", out)
	}
	if !strings.Contains(out, "Jun 12") {
		t.Fatalf("expected date in header: %q", out)
	}
}

func TestLiveTaskHighlightOnlyToday(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(keyMsg("w"))
	m = updated.(Model)

	if got := m.liveTaskID(); got != "wd-uni-1" {
		t.Fatalf("expected wd-uni-1 live at 11:30, got %q", got)
	}

	updated, _ = m.Update(keyMsg("h"))
	m = updated.(Model)
	if got := m.liveTaskID(); got != "" {
		t.Fatalf("expected no live task on a past date, got %q", got)
	}
}

func TestFocusPhaseEndRecordsCompletion(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(keyMsg("w"))
	m = updated.(Model)

	updated, _ = m.Update(keyMsg("4"))
	m = updated.(Model)
	if m.Focus.TaskID == "" {
		t.Fatal("expected the focus view to pick up the selected task")
	}
	focused := m.Focus.TaskID

	updated, _ = m.Update(keyMsg("n"))
	m = updated.(Model)
	if m.Focus.Phase != FocusPhaseBreak {
		t.Fatalf("expected break phase after finishing work, got %s", m.Focus.Phase)
	}
	if !m.isDone(focused) {
		t.Fatalf("expected %s marked done after the work block", focused)
	}
	persisted := m.svc.Ledger.Completed(context.Background(), model.DateKey(fixedNow))
	if _, ok := persisted[focused]; !ok {
		t.Fatal("focus completion did not reach the ledger")
	}
}

func TestWeekStripShowsSelectionAndActivity(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(keyMsg("w"))
	m = updated.(Model)

	// Monday the 10th gets a record; Wednesday the 12th is selected.
	if _, err := m.svc.Ledger.Toggle(context.Background(), "2024-06-10", "wd-f-1"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	pane := m.renderDayPane()
	if !strings.Contains(pane, "[We 12]") {
		t.Fatalf("expected the selected day bracketed in the strip:\n%s", pane)
	}
	if !strings.Contains(pane, "Mo 10.") {
		t.Fatalf("expected an activity dot on Monday:\n%s", pane)
	}
	if !strings.Contains(pane, "Su 9") || !strings.Contains(pane, "Sa 15") {
		t.Fatalf("expected a Sunday-start week around the selection:\n%s", pane)
	}
}

func TestWeekKeysPageBySevenDays(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(keyMsg("w"))
	m = updated.(Model)

	updated, _ = m.Update(keyMsg("["))
	m = updated.(Model)
	if got := model.DateKey(m.ViewDate); got != "2024-06-05" {
		t.Fatalf("expected a week back, got %s", got)
	}

	updated, _ = m.Update(keyMsg("]"))
	m = updated.(Model)
	if got := model.DateKey(m.ViewDate); got != "2024-06-12" {
		t.Fatalf("expected a week forward again, got %s", got)
	}
}

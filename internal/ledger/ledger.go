// Package ledger keeps the per-date completion records, custom tasks,
// notes, and the cached day assignment, all on top of the durable
// key-value store.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/storage"
)

// Kind selects a completion record family for a date.
type Kind string

const (
	KindHabit  Kind = "habit"
	KindCustom Kind = "custom"
)

type Ledger struct {
	store  storage.Store
	logger *log.Logger
}

// New wraps the store. A nil logger discards diagnostics.
func New(store storage.Store, logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Ledger{store: store, logger: logger}
}

// Completed returns the habit completion set for the date. An absent record
// and an unreadable record both yield an empty set; decode problems are
// logged, never surfaced.
func (l *Ledger) Completed(ctx context.Context, dateKey string) map[string]struct{} {
	out := make(map[string]struct{})
	raw, err := l.store.Get(ctx, storage.HabitsKey(dateKey))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			l.logger.Warn("reading habit record", "date", dateKey, "err", err)
		}
		return out
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		l.logger.Warn("malformed habit record, treating as empty", "date", dateKey, "err", err)
		return out
	}
	for _, id := range ids {
		if strings.TrimSpace(id) != "" {
			out[id] = struct{}{}
		}
	}
	return out
}

// CompletedByKind implements the record lookup for both families: the habit
// set itself, or the ids of the date's custom tasks. Custom tasks count as
// done by being recorded for the day, matching how the stats windows read
// them.
func (l *Ledger) CompletedByKind(ctx context.Context, dateKey string, kind Kind) map[string]struct{} {
	if kind == KindCustom {
		out := make(map[string]struct{})
		for _, task := range l.CustomTasks(ctx, dateKey) {
			out[task.ID] = struct{}{}
		}
		return out
	}
	return l.Completed(ctx, dateKey)
}

// SetCompleted replaces the whole habit set for the date. The caller's
// in-memory state must not be considered durable until this returns nil.
func (l *Ledger) SetCompleted(ctx context.Context, dateKey string, ids map[string]struct{}) error {
	sorted := make([]string, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)
	payload, err := json.Marshal(sorted)
	if err != nil {
		return fmt.Errorf("ledger: encode habit record: %w", err)
	}
	if err := l.store.Set(ctx, storage.HabitsKey(dateKey), string(payload)); err != nil {
		return fmt.Errorf("ledger: persist habit record for %s: %w", dateKey, err)
	}
	return nil
}

// Toggle flips id's membership in the date's habit set and persists the
// result. The new set is returned only after the write succeeds; on failure
// the persisted record is unchanged and the caller should keep its previous
// state.
func (l *Ledger) Toggle(ctx context.Context, dateKey, id string) (map[string]struct{}, error) {
	ids := l.Completed(ctx, dateKey)
	if _, done := ids[id]; done {
		delete(ids, id)
	} else {
		ids[id] = struct{}{}
	}
	if err := l.SetCompleted(ctx, dateKey, ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// HasRecord reports whether the date has any habit or custom record at all,
// which is what makes a day "active" for the rolling stats window.
func (l *Ledger) HasRecord(ctx context.Context, dateKey string) bool {
	if _, err := l.store.Get(ctx, storage.HabitsKey(dateKey)); err == nil {
		return true
	}
	if _, err := l.store.Get(ctx, storage.CustomTasksKey(dateKey)); err == nil {
		return true
	}
	return false
}

// CustomTasks returns the date's user-added task definitions in insertion
// order. Read problems degrade to an empty list.
func (l *Ledger) CustomTasks(ctx context.Context, dateKey string) []model.CustomTask {
	raw, err := l.store.Get(ctx, storage.CustomTasksKey(dateKey))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			l.logger.Warn("reading custom tasks", "date", dateKey, "err", err)
		}
		return nil
	}
	var tasks []model.CustomTask
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		l.logger.Warn("malformed custom tasks, treating as empty", "date", dateKey, "err", err)
		return nil
	}
	return tasks
}

// SaveCustomTasks replaces the date's custom task list wholesale.
func (l *Ledger) SaveCustomTasks(ctx context.Context, dateKey string, tasks []model.CustomTask) error {
	payload, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("ledger: encode custom tasks: %w", err)
	}
	if err := l.store.Set(ctx, storage.CustomTasksKey(dateKey), string(payload)); err != nil {
		return fmt.Errorf("ledger: persist custom tasks for %s: %w", dateKey, err)
	}
	return nil
}

// AddCustomTask appends a new custom task for the date and persists the
// updated list.
func (l *Ledger) AddCustomTask(ctx context.Context, dateKey, description string, category model.Category) (model.CustomTask, error) {
	task := model.CustomTask{
		ID:          "custom-" + uuid.NewString(),
		Description: strings.TrimSpace(description),
		Category:    category,
	}
	if err := task.Validate(); err != nil {
		return model.CustomTask{}, err
	}
	tasks := append(l.CustomTasks(ctx, dateKey), task)
	if err := l.SaveCustomTasks(ctx, dateKey, tasks); err != nil {
		return model.CustomTask{}, err
	}
	return task, nil
}

// RemoveCustomTask deletes the task with the id from the date's list.
// Returns false when the id was not present; nothing is written in that
// case.
func (l *Ledger) RemoveCustomTask(ctx context.Context, dateKey, id string) (bool, error) {
	tasks := l.CustomTasks(ctx, dateKey)
	kept := tasks[:0]
	found := false
	for _, task := range tasks {
		if task.ID == id {
			found = true
			continue
		}
		kept = append(kept, task)
	}
	if !found {
		return false, nil
	}
	if err := l.SaveCustomTasks(ctx, dateKey, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Note returns the date's free-text note, or "" when absent.
func (l *Ledger) Note(ctx context.Context, dateKey string) string {
	raw, err := l.store.Get(ctx, storage.NotesKey(dateKey))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			l.logger.Warn("reading note", "date", dateKey, "err", err)
		}
		return ""
	}
	return raw
}

// SetNote stores the date's note; an empty note removes the record.
func (l *Ledger) SetNote(ctx context.Context, dateKey, text string) error {
	if strings.TrimSpace(text) == "" {
		if err := l.store.Remove(ctx, storage.NotesKey(dateKey)); err != nil {
			return fmt.Errorf("ledger: remove note for %s: %w", dateKey, err)
		}
		return nil
	}
	if err := l.store.Set(ctx, storage.NotesKey(dateKey), text); err != nil {
		return fmt.Errorf("ledger: persist note for %s: %w", dateKey, err)
	}
	return nil
}

// DayAssignment returns the cached day type chosen for the date, if any.
func (l *Ledger) DayAssignment(ctx context.Context, dateKey string) (model.DayType, bool) {
	raw, err := l.store.Get(ctx, storage.DayTypeKey(dateKey))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			l.logger.Warn("reading day assignment", "date", dateKey, "err", err)
		}
		return "", false
	}
	day, err := model.ParseDayType(raw)
	if err != nil {
		l.logger.Warn("malformed day assignment, ignoring", "date", dateKey, "err", err)
		return "", false
	}
	return day, true
}

// SetDayAssignment caches the chosen day type for the date. Once set, the
// choice is reused for that date across restarts.
func (l *Ledger) SetDayAssignment(ctx context.Context, dateKey string, day model.DayType) error {
	if !day.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidDayType, day)
	}
	if err := l.store.Set(ctx, storage.DayTypeKey(dateKey), string(day)); err != nil {
		return fmt.Errorf("ledger: persist day assignment for %s: %w", dateKey, err)
	}
	return nil
}

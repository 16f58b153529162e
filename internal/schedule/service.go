// Package schedule resolves the effective schedule (base plus user overlay)
// and applies validated overlay edits.
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/storage"
)

type Service struct {
	store  storage.Store
	logger *log.Logger
}

func NewService(store storage.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{store: store, logger: logger}
}

// Overlay loads the stored customization, if any. A malformed overlay reads
// as absent so a bad record can never hide the base schedule.
func (s *Service) Overlay(ctx context.Context) (model.Overlay, bool) {
	raw, err := s.store.Get(ctx, storage.KeySchedule)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("reading schedule overlay", "err", err)
		}
		return model.Overlay{}, false
	}
	var overlay model.Overlay
	if err := json.Unmarshal([]byte(raw), &overlay); err != nil {
		s.logger.Warn("malformed schedule overlay, using base schedule", "err", err)
		return model.Overlay{}, false
	}
	if len(overlay.Weekday) == 0 && len(overlay.Weekend) == 0 {
		return model.Overlay{}, false
	}
	return overlay, true
}

// HasOverlay reports whether a customization is active.
func (s *Service) HasOverlay(ctx context.Context) bool {
	_, ok := s.Overlay(ctx)
	return ok
}

// Effective returns the session list in force for the day type: the overlay
// when present, the base schedule otherwise. The result is always a deep
// copy; mutating it can never reach shared state.
func (s *Service) Effective(ctx context.Context, day model.DayType) []model.Session {
	if overlay, ok := s.Overlay(ctx); ok {
		return model.CopySessions(overlay.Sessions(day))
	}
	return model.BaseSchedule(day)
}

// TotalTaskCount is the completion-percentage denominator for the day type.
func (s *Service) TotalTaskCount(ctx context.Context, day model.DayType) int {
	return model.CountTasks(s.Effective(ctx, day))
}

// EditTask replaces the time and description of the first task matching
// taskID in the day type's effective schedule, then persists the result as
// the new overlay. The overlay is always a full two-day-type snapshot of
// whatever was in force, so a later reset restores everything at once.
// A missing taskID is a no-op: found is false and nothing is written.
func (s *Service) EditTask(ctx context.Context, day model.DayType, taskID, newTime, newDesc string) (bool, error) {
	if !day.IsValid() {
		return false, fmt.Errorf("%w: %q", model.ErrInvalidDayType, day)
	}

	next := model.Overlay{
		Weekday: s.Effective(ctx, model.DayTypeWeekday),
		Weekend: s.Effective(ctx, model.DayTypeWeekend),
	}

	sessions := next.Sessions(day)
	found := false
	for si := range sessions {
		for ti := range sessions[si].Tasks {
			if sessions[si].Tasks[ti].ID != taskID {
				continue
			}
			sessions[si].Tasks[ti].Time = newTime
			sessions[si].Tasks[ti].Description = newDesc
			if err := sessions[si].Tasks[ti].Validate(); err != nil {
				return false, err
			}
			found = true
			break
		}
		if found {
			break
		}
	}
	if !found {
		return false, nil
	}

	if err := s.saveOverlay(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// ResetToDefault discards the overlay for both day types. Destructive: the
// engine keeps no copy to recover from.
func (s *Service) ResetToDefault(ctx context.Context) error {
	if err := s.store.Remove(ctx, storage.KeySchedule); err != nil {
		return fmt.Errorf("schedule: discard overlay: %w", err)
	}
	return nil
}

func (s *Service) saveOverlay(ctx context.Context, overlay model.Overlay) error {
	payload, err := json.Marshal(overlay)
	if err != nil {
		return fmt.Errorf("schedule: encode overlay: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeySchedule, string(payload)); err != nil {
		return fmt.Errorf("schedule: persist overlay: %w", err)
	}
	return nil
}

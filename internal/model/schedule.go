package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Task is an atomic schedule entry. ID is stable across edits; Time and
// Description are the editable fields.
type Task struct {
	ID          string `json:"id"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("model: task %s: description is required", t.ID)
	}
	return nil
}

// Session is a named, ordered group of tasks. Ordering is significant:
// display and scroll-to-current both depend on it.
type Session struct {
	Title string `json:"title"`
	Tasks []Task `json:"tasks"`
}

// Overlay is a user-authored full replacement of the base session lists,
// always saved as a complete two-day-type snapshot.
type Overlay struct {
	Weekday []Session `json:"weekday"`
	Weekend []Session `json:"weekend"`
}

// Sessions returns the overlay's list for the day type.
func (o Overlay) Sessions(day DayType) []Session {
	if day == DayTypeWeekend {
		return o.Weekend
	}
	return o.Weekday
}

// CopySessions produces a structurally independent deep copy.
func CopySessions(sessions []Session) []Session {
	out := make([]Session, len(sessions))
	for i, session := range sessions {
		tasks := make([]Task, len(session.Tasks))
		copy(tasks, session.Tasks)
		out[i] = Session{Title: session.Title, Tasks: tasks}
	}
	return out
}

// CountTasks sums task counts over the session list.
func CountTasks(sessions []Session) int {
	total := 0
	for _, session := range sessions {
		total += len(session.Tasks)
	}
	return total
}

// FindTask returns the first task matching id in document order.
func FindTask(sessions []Session, id string) (Task, bool) {
	for _, session := range sessions {
		for _, task := range session.Tasks {
			if task.ID == id {
				return task, true
			}
		}
	}
	return Task{}, false
}

// LiveTaskID returns the id of the task whose time range contains the
// instant, or "" when nothing is live.
func LiveTaskID(sessions []Session, at time.Time) string {
	for _, session := range sessions {
		for _, task := range session.Tasks {
			if IsWithin(task.Time, at) {
				return task.ID
			}
		}
	}
	return ""
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("storage: not found")

// Store is the durable key-value contract the engine runs against. Values
// are opaque strings; the ledger and schedule layers own the encoding.
// Implementations must return ErrNotFound from Get for absent keys and
// surface write failures from Set and Remove.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Key prefixes, one per record family. Date-scoped keys append the local
// YYYY-MM-DD key; the schedule overlay lives under a single fixed key.
const (
	prefixHabits      = "studyHabits_"
	prefixCustomTasks = "customTasks_"
	prefixNotes       = "notes_"
	prefixDayType     = "dayType_"
	KeySchedule       = "customSchedule"
)

func HabitsKey(dateKey string) string      { return prefixHabits + dateKey }
func CustomTasksKey(dateKey string) string { return prefixCustomTasks + dateKey }
func NotesKey(dateKey string) string       { return prefixNotes + dateKey }
func DayTypeKey(dateKey string) string     { return prefixDayType + dateKey }

// WriteError marks a rejected write so callers can distinguish a failed
// persist from a read-side decode problem.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("storage: write %s: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// IsWriteFailure reports whether err came from a rejected store write.
func IsWriteFailure(err error) bool {
	var we *WriteError
	return errors.As(err, &we)
}

// used by sqlite timestamps; kept in one place so tests can rely on it.
const storedAtLayout = time.RFC3339Nano

package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "studyd-test.db")
	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreGetSetRemove(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if _, err := store.Get(ctx, HabitsKey("2024-06-10")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent key, got: %v", err)
	}

	if err := store.Set(ctx, HabitsKey("2024-06-10"), `["wd-f-1"]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.Get(ctx, HabitsKey("2024-06-10"))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `["wd-f-1"]` {
		t.Fatalf("unexpected value: %q", got)
	}

	// Second set replaces the value in place.
	if err := store.Set(ctx, HabitsKey("2024-06-10"), `["wd-f-1","wd-m-1"]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = store.Get(ctx, HabitsKey("2024-06-10"))
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if got != `["wd-f-1","wd-m-1"]` {
		t.Fatalf("unexpected value after overwrite: %q", got)
	}

	if err := store.Remove(ctx, HabitsKey("2024-06-10")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := store.Get(ctx, HabitsKey("2024-06-10")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got: %v", err)
	}

	// Removing an absent key is not an error.
	if err := store.Remove(ctx, "never-existed"); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
}

func TestSQLiteStoreKeysAreIndependent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, NotesKey("2024-06-10"), "review graphs"); err != nil {
		t.Fatalf("set notes: %v", err)
	}
	if err := store.Set(ctx, DayTypeKey("2024-06-10"), "weekday"); err != nil {
		t.Fatalf("set day type: %v", err)
	}
	if err := store.Set(ctx, KeySchedule, `{"weekday":[],"weekend":[]}`); err != nil {
		t.Fatalf("set schedule: %v", err)
	}

	note, err := store.Get(ctx, NotesKey("2024-06-10"))
	if err != nil || note != "review graphs" {
		t.Fatalf("notes round trip: %q, %v", note, err)
	}
	if _, err := store.Get(ctx, NotesKey("2024-06-11")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("different date must be absent, got: %v", err)
	}
}

func TestMemoryStoreMatchesContract(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.Get(ctx, "k")
	if err != nil || got != "v" {
		t.Fatalf("get: %q, %v", got, err)
	}
	if err := store.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d keys", store.Len())
	}
}

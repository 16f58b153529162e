package scheduler

import (
	"testing"
	"time"
)

func TestEngineEmitsTicks(t *testing.T) {
	engine := NewClockEngine(20*time.Millisecond, time.Hour, 8)
	engine.Start()
	defer engine.Stop()

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.Kind != EventTick || second.Kind != EventTick {
		t.Fatalf("unexpected kinds: first=%s second=%s", first.Kind, second.Kind)
	}
	if first.DateKey == "" {
		t.Fatalf("tick carries no date key")
	}
	if !second.At.After(first.At) {
		t.Fatalf("ticks out of order: %v then %v", first.At, second.At)
	}
}

func TestEngineEmitsRolloverWhenDateChanges(t *testing.T) {
	engine := NewClockEngine(time.Hour, 20*time.Millisecond, 8)
	// Pretend the engine started yesterday so the first rollover check
	// sees a date change.
	engine.now = func() time.Time { return time.Now().AddDate(0, 0, -1) }
	engine.Start()
	defer engine.Stop()

	ev := waitEvent(t, engine.C(), time.Second)
	if ev.Kind != EventRollover {
		t.Fatalf("expected rollover, got %s", ev.Kind)
	}
	if ev.DateKey != time.Now().Format("2006-01-02") {
		t.Fatalf("rollover carries %q, want today", ev.DateKey)
	}
}

func TestEngineRolloverFiresOncePerDateChange(t *testing.T) {
	engine := NewClockEngine(time.Hour, 10*time.Millisecond, 16)
	engine.now = func() time.Time { return time.Now().AddDate(0, 0, -1) }
	engine.Start()
	defer engine.Stop()

	waitEvent(t, engine.C(), time.Second)

	// The date is stable now; further rollover checks stay silent.
	select {
	case ev := <-engine.C():
		t.Fatalf("unexpected second event: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewClockEngine(5*time.Millisecond, time.Hour, 1)
	engine.Start()
	defer engine.Stop()

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", engine.Dropped())
	}
}

func TestEngineStopIsIdempotent(t *testing.T) {
	engine := NewClockEngine(10*time.Millisecond, time.Hour, 1)
	engine.Start()
	engine.Stop()
	engine.Stop()

	if _, ok := <-engine.C(); ok {
		// Drain anything buffered before the close.
		for range engine.C() {
		}
	}
}

func waitEvent(t *testing.T, ch <-chan ClockEvent, timeout time.Duration) ClockEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return ClockEvent{}
	}
}

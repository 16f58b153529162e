package scheduler

import (
	"sync"
	"testing"
	"time"
)

func TestEngineStressFastTicksWithActiveConsumer(t *testing.T) {
	engine := NewClockEngine(time.Millisecond, time.Hour, 4096)
	engine.Start()

	const want = 100
	received := 0
	deadline := time.After(5 * time.Second)
	for received < want {
		select {
		case <-deadline:
			t.Fatalf("timeout waiting ticks: received=%d dropped=%d", received, engine.Dropped())
		case _, ok := <-engine.C():
			if !ok {
				t.Fatalf("channel closed early: received=%d", received)
			}
			received++
		}
	}
	engine.Stop()

	if engine.Dropped() != 0 {
		t.Fatalf("expected zero drops with active consumer, got=%d", engine.Dropped())
	}
}

func TestEngineStressConcurrentStop(t *testing.T) {
	engine := NewClockEngine(time.Millisecond, time.Hour, 8)
	engine.Start()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			engine.Stop()
		}()
	}
	wg.Wait()

	// The output channel must be closed exactly once after Stop returns.
	for range engine.C() {
	}
}

// Package scheduler drives the passage of time for the UI: periodic
// refresh ticks for the live-task highlight and a rollover event when the
// local calendar date changes.
package scheduler

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sandeepkv93/studyd/internal/model"
)

type EventKind string

const (
	// EventTick asks the UI to re-evaluate the live task highlight.
	EventTick EventKind = "tick"
	// EventRollover fires once when the local date changes, carrying the
	// new date key.
	EventRollover EventKind = "rollover"
)

type ClockEvent struct {
	Kind    EventKind
	At      time.Time
	DateKey string
}

const (
	DefaultTickInterval     = 10 * time.Second
	DefaultRolloverInterval = time.Minute
)

// ClockEngine emits ClockEvents on two cadences. Consumers that fall
// behind lose events rather than blocking the clock; a slow UI catches up
// on the next tick anyway.
type ClockEngine struct {
	mu      sync.Mutex
	out     chan ClockEvent
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64

	tickEvery     time.Duration
	rolloverEvery time.Duration
	now           func() time.Time
}

func NewClockEngine(tickEvery, rolloverEvery time.Duration, bufferSize int) *ClockEngine {
	if tickEvery <= 0 {
		tickEvery = DefaultTickInterval
	}
	if rolloverEvery <= 0 {
		rolloverEvery = DefaultRolloverInterval
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &ClockEngine{
		out:           make(chan ClockEvent, bufferSize),
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
		tickEvery:     tickEvery,
		rolloverEvery: rolloverEvery,
		now:           time.Now,
	}
}

func (e *ClockEngine) C() <-chan ClockEvent {
	return e.out
}

func (e *ClockEngine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	go e.loop()
}

// Stop shuts the engine down and waits for the loop to exit. Safe to call
// more than once; a no-op if Start never ran.
func (e *ClockEngine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Dropped reports how many events were discarded because the consumer was
// not keeping up.
func (e *ClockEngine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *ClockEngine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	ticker := time.NewTicker(e.tickEvery)
	defer ticker.Stop()
	rollover := time.NewTicker(e.rolloverEvery)
	defer rollover.Stop()

	lastDate := model.DateKey(e.now())
	for {
		select {
		case at := <-ticker.C:
			e.emit(ClockEvent{Kind: EventTick, At: at, DateKey: model.DateKey(at)})
		case at := <-rollover.C:
			dateKey := model.DateKey(at)
			if dateKey == lastDate {
				continue
			}
			lastDate = dateKey
			e.emit(ClockEvent{Kind: EventRollover, At: at, DateKey: dateKey})
		case <-e.stopCh:
			return
		}
	}
}

func (e *ClockEngine) emit(ev ClockEvent) {
	select {
	case e.out <- ev:
	default:
		atomic.AddUint64(&e.dropped, 1)
	}
}

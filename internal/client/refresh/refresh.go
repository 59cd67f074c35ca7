// Package refresh maintains the live city-id to time-string mapping behind
// the clock display.
package refresh

import (
	"sync"
	"time"

	"github.com/aussiebroadwan/timeworld/internal/client/clock"
)

// Entry is one city the loop keeps time for.
type Entry struct {
	ID       int64
	Timezone string
}

// Snapshot is an immutable copy of the current time mapping.
type Snapshot map[int64]string

// Loop recomputes the full time mapping for its entries once per interval.
// Restart replaces the entry list, cancelling the previous worker before
// installing a new one so two tickers never race on the mapping.
type Loop struct {
	Interval time.Duration
	Now      func() time.Time // test hook; defaults to time.Now

	mu      sync.Mutex
	entries []Entry
	times   map[int64]string
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// NewLoop creates a stopped loop. Interval defaults to 1 second.
func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = 1 * time.Second
	}
	return &Loop{
		Interval: interval,
		Now:      time.Now,
		times:    make(map[int64]string),
	}
}

// Start begins ticking over the given entries. Starting a running loop
// restarts it.
func (l *Loop) Start(entries []Entry) {
	l.Stop()

	l.mu.Lock()
	l.entries = append([]Entry(nil), entries...)
	l.stopCh = make(chan struct{})
	l.doneCh = make(chan struct{})
	l.running = true
	stopCh, doneCh := l.stopCh, l.doneCh
	l.mu.Unlock()

	// First computation lands before the first tick so the display is
	// never empty for a whole interval.
	l.recompute()

	go l.run(stopCh, doneCh)
}

// Restart replaces the entry list. The previous worker is fully stopped
// before the new one starts.
func (l *Loop) Restart(entries []Entry) {
	l.Start(entries)
}

// Stop halts the worker, blocking until it has exited. Stopping a stopped
// loop is a no-op.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.running = false
	stopCh, doneCh := l.stopCh, l.doneCh
	l.mu.Unlock()

	close(stopCh)
	<-doneCh
}

// Times returns a copy of the current mapping, safe to read while the loop
// keeps ticking.
func (l *Loop) Times() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(Snapshot, len(l.times))
	for id, t := range l.times {
		out[id] = t
	}
	return out
}

func (l *Loop) run(stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.recompute()
		case <-stopCh:
			return
		}
	}
}

// recompute rebuilds the whole mapping; per-entry incremental updates are
// not worth the bookkeeping at one tick per second.
func (l *Loop) recompute() {
	now := l.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	times := make(map[int64]string, len(l.entries))
	for _, e := range l.entries {
		times[e.ID] = clock.Format(e.Timezone, now)
	}
	l.times = times
}

// Package ticker maintains the interval and refresh counters that drive
// dashboard recomputation. The interval counter advances on a fixed timer,
// the refresh counter on explicit user refreshes; together they seed the
// inventory simulation.
package ticker

import (
	"sync/atomic"
	"time"

	"app/models"
)

// Ticker is safe for concurrent use; each call to State observes the
// counters atomically. Counters only ever increase.
type Ticker struct {
	intervals atomic.Int64
	refreshes atomic.Int64
	stop      chan struct{}
}

// New returns a Ticker whose interval counter advances every interval.
// Call Stop to release the timer.
func New(interval time.Duration) *Ticker {
	t := &Ticker{stop: make(chan struct{})}
	go t.run(interval)
	return t
}

func (t *Ticker) run(interval time.Duration) {
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		select {
		case <-tick.C:
			t.intervals.Add(1)
		case <-t.stop:
			return
		}
	}
}

// Refresh records one manual refresh and returns the resulting state.
func (t *Ticker) Refresh() models.TickState {
	t.refreshes.Add(1)
	return t.State()
}

// State returns the current counters as a per-request TickState value.
func (t *Ticker) State() models.TickState {
	return models.TickState{
		IntervalCount: t.intervals.Load(),
		RefreshCount:  t.refreshes.Load(),
	}
}

// Stop halts the interval timer. The counters remain readable.
func (t *Ticker) Stop() {
	close(t.stop)
}

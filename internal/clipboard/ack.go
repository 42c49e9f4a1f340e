// Package clipboard copies code samples to the system clipboard
// and tracks the short-lived "copied" acknowledgement shown afterwards.
package clipboard

import (
	"sync"
	"time"
)

// DefaultAckDuration is how long a copy stays acknowledged.
const DefaultAckDuration = 2000 * time.Millisecond

// Ack is a transient acknowledged state.
//
// Trigger sets it, and it reverts on its own after Duration.
// Triggering again while acknowledged restarts the countdown.
// Close cancels any pending revert.
//
// The zero value is ready to use.
// An Ack is safe for concurrent use.
type Ack struct {
	// Duration is how long the acknowledgement lasts.
	// Defaults to DefaultAckDuration.
	Duration time.Duration

	// Notify, if set, is called with the new state
	// every time the acknowledgement is set or reverts.
	// It is called without any locks held,
	// possibly from a timer goroutine.
	Notify func(active bool)

	// afterFunc schedules f after d.
	// Defaults to time.AfterFunc.
	afterFunc func(d time.Duration, f func()) stopper

	mu     sync.Mutex
	active bool
	closed bool
	gen    uint64 // incremented every Trigger
	timer  stopper
}

type stopper interface{ Stop() bool }

// Trigger sets the acknowledgement and schedules its revert.
// A pending revert from an earlier Trigger is cancelled.
//
// Trigger is a no-op after Close.
func (a *Ack) Trigger() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}

	if a.timer != nil {
		a.timer.Stop()
	}
	a.gen++
	gen := a.gen
	a.active = true

	d := a.Duration
	if d <= 0 {
		d = DefaultAckDuration
	}
	after := a.afterFunc
	if after == nil {
		after = realAfterFunc
	}
	a.timer = after(d, func() { a.revert(gen) })
	notify := a.Notify
	a.mu.Unlock()

	if notify != nil {
		notify(true)
	}
}

func (a *Ack) revert(gen uint64) {
	a.mu.Lock()
	// A stale timer may fire after it was stopped and replaced.
	if a.closed || gen != a.gen || !a.active {
		a.mu.Unlock()
		return
	}
	a.active = false
	a.timer = nil
	notify := a.Notify
	a.mu.Unlock()

	if notify != nil {
		notify(false)
	}
}

// Active reports whether the acknowledgement is currently set.
func (a *Ack) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Close cancels the pending revert, if any,
// and clears the acknowledgement without notifying.
// Later calls to Trigger do nothing.
//
// Close is safe to call multiple times.
func (a *Ack) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.closed = true
	a.active = false
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func realAfterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

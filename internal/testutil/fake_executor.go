// Package testutil provides fakes shared by package tests.
package testutil

import (
	"sync"
	"time"
)

// FakeExecutor records executed actions instead of spawning processes.
type FakeExecutor struct {
	mu    sync.Mutex
	calls []string
	// Err is returned from every Execute call.
	Err error
	// Started receives each action as it is executed.
	Started chan string
}

// NewFakeExecutor returns a recording executor.
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{Started: make(chan string, 64)}
}

// Execute records the action.
func (f *FakeExecutor) Execute(action string) error {
	f.mu.Lock()
	f.calls = append(f.calls, action)
	f.mu.Unlock()
	select {
	case f.Started <- action:
	default:
	}
	return f.Err
}

// Calls returns the recorded actions in order.
func (f *FakeExecutor) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// ManualClock hands out timers that only fire when told to.
type ManualClock struct {
	mu      sync.Mutex
	pending []chan time.Time
	// Requested receives the duration of every After call.
	Requested chan time.Duration
}

// NewManualClock returns a clock with no pending timers.
func NewManualClock() *ManualClock {
	return &ManualClock{Requested: make(chan time.Duration, 64)}
}

// After registers a pending timer.
func (c *ManualClock) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	c.mu.Lock()
	c.pending = append(c.pending, ch)
	c.mu.Unlock()
	c.Requested <- d
	return ch
}

// Fire expires every pending timer and returns how many fired.
func (c *ManualClock) Fire() int {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()
	now := time.Now()
	for _, ch := range pending {
		ch <- now
	}
	return len(pending)
}

// WaitRequested blocks until After is called or the timeout passes.
func (c *ManualClock) WaitRequested(timeout time.Duration) (time.Duration, bool) {
	select {
	case d := <-c.Requested:
		return d, true
	case <-time.After(timeout):
		return 0, false
	}
}

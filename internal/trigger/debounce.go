package trigger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/frudas24/deskcorners/internal/corner"

	log "github.com/sirupsen/logrus"
)

// DefaultDelay is the dwell time used when none is configured.
const DefaultDelay = 500 * time.Millisecond

// Executor launches a corner action.
type Executor interface {
	Execute(action string) error
}

// Outcome is the terminal state of a trigger attempt.
type Outcome string

const (
	// OutcomeFired means the action was dispatched.
	OutcomeFired Outcome = "fired"
	// OutcomeAborted means the run lost re-validation.
	OutcomeAborted Outcome = "aborted"
	// OutcomeDropped means another run already held ownership.
	OutcomeDropped Outcome = "dropped"
)

// Event reports the outcome of one trigger attempt.
type Event struct {
	Outcome Outcome
	Corner  corner.Corner
	Reason  string
	Err     error
	At      time.Time
}

// Options tunes a Debouncer.
type Options struct {
	// Delay is the dwell time before re-validation.
	Delay time.Duration
	// After replaces time.After, mainly for tests.
	After func(time.Duration) <-chan time.Time
	// Observer receives every Event. It is called from the run goroutine
	// or, for drops, from the caller of Trigger, and must not block.
	Observer func(Event)
}

// Debouncer runs at most one corner dwell timer at a time.
type Debouncer struct {
	state    *State
	exec     Executor
	delay    time.Duration
	after    func(time.Duration) <-chan time.Time
	observer func(Event)
	wg       sync.WaitGroup
}

// New returns a Debouncer over the shared state.
func New(state *State, exec Executor, opts Options) *Debouncer {
	d := &Debouncer{
		state:    state,
		exec:     exec,
		delay:    opts.Delay,
		after:    opts.After,
		observer: opts.Observer,
	}
	if d.delay < 0 {
		d.delay = 0
	}
	if d.after == nil {
		d.after = time.After
	}
	return d
}

// Delay returns the configured dwell time.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger starts a debounce run for c. It returns false when a run is
// already in flight; the attempt is dropped, not queued.
func (d *Debouncer) Trigger(ctx context.Context, c corner.Corner) bool {
	id, ok := d.state.claim()
	if !ok {
		log.WithField("corner", c.Name).Debug("Corner entry dropped, trigger busy")
		d.emit(Event{Outcome: OutcomeDropped, Corner: c, Reason: ReasonBusy})
		return false
	}

	log.WithFields(log.Fields{
		"corner": c.Name,
		"run":    id,
		"delay":  d.delay,
	}).Debug("Corner entry, waiting")

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.emit(d.dwell(ctx, id, c))
	}()
	return true
}

// Wait blocks until no run is in flight.
func (d *Debouncer) Wait() {
	d.wg.Wait()
}

// dwell waits out the delay, re-validates and fires. Ownership is released
// on every return path.
func (d *Debouncer) dwell(ctx context.Context, id uint64, c corner.Corner) (ev Event) {
	ev = Event{Outcome: OutcomeAborted, Corner: c}
	defer d.state.release(id)
	defer func() {
		if r := recover(); r != nil {
			ev.Err = fmt.Errorf("corner action panicked: %v", r)
			log.WithField("corner", c.Name).Error(ev.Err)
		}
	}()

	select {
	case <-d.after(d.delay):
	case <-ctx.Done():
		ev.Reason = ReasonShutdown
		return ev
	}

	if reason, ok := d.state.confirm(id, c.Point()); !ok {
		ev.Reason = reason
		log.WithFields(log.Fields{
			"corner": c.Name,
			"reason": reason,
		}).Debug("Corner trigger aborted")
		return ev
	}

	ev.Outcome = OutcomeFired
	log.WithFields(log.Fields{
		"corner": c.Name,
		"action": c.Action,
	}).Info("Corner trigger fired")
	if err := d.exec.Execute(c.Action); err != nil {
		ev.Err = err
		log.WithField("corner", c.Name).WithError(err).Warn("Corner action failed to start")
	}
	return ev
}

// emit stamps and forwards an event to the observer.
func (d *Debouncer) emit(ev Event) {
	if d.observer == nil {
		return
	}
	ev.At = time.Now()
	d.observer(ev)
}

// Package tracker consumes pointer motion and starts corner triggers on entry.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/frudas24/deskcorners/internal/corner"
	"github.com/frudas24/deskcorners/internal/trigger"

	log "github.com/sirupsen/logrus"
)

// Source yields pointer positions in arrival order.
type Source interface {
	Next(ctx context.Context) (corner.Point, error)
}

// Triggerer starts a debounce run for a corner.
type Triggerer interface {
	Trigger(ctx context.Context, c corner.Corner) bool
}

// Stats counts processed motion.
type Stats struct {
	Events     uint64
	Duplicates uint64
	Entries    uint64
}

// Tracker is the single event-consuming loop.
type Tracker struct {
	corners *corner.Registry
	state   *trigger.State
	trigger Triggerer
	last    corner.Point
	seen    bool

	events     atomic.Uint64
	duplicates atomic.Uint64
	entries    atomic.Uint64
}

// New returns a tracker over a frozen corner table and the shared state.
func New(corners *corner.Registry, state *trigger.State, t Triggerer) *Tracker {
	return &Tracker{
		corners: corners,
		state:   state,
		trigger: t,
	}
}

// Run consumes src until ctx is done or the source fails.
func (t *Tracker) Run(ctx context.Context, src Source) error {
	for {
		p, err := src.Next(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return ctxErr
			}
			return fmt.Errorf("pointer source: %w", err)
		}
		t.Handle(ctx, p)
	}
}

// Handle processes one motion event. It must only be called from one
// goroutine.
func (t *Tracker) Handle(ctx context.Context, p corner.Point) {
	t.events.Add(1)
	if t.seen && p == t.last {
		t.duplicates.Add(1)
		return
	}
	t.seen = true
	t.last = p

	if !t.state.Move(p) {
		return
	}
	c, ok := t.corners.Lookup(p)
	if !ok || !c.HasAction() {
		return
	}

	t.entries.Add(1)
	log.WithFields(log.Fields{
		"corner": c.Name,
		"x":      p.X,
		"y":      p.Y,
	}).Debug("Corner entered")
	t.trigger.Trigger(ctx, c)
}

// Stats returns the motion counters.
func (t *Tracker) Stats() Stats {
	return Stats{
		Events:     t.events.Load(),
		Duplicates: t.duplicates.Load(),
		Entries:    t.entries.Load(),
	}
}

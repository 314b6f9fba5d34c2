// Package trigger implements the corner debounce: one timed run at a time,
// re-validated against the latest pointer position before the action fires.
package trigger

import (
	"sync"

	"github.com/frudas24/deskcorners/internal/corner"
)

// Abort reasons reported with OutcomeAborted and OutcomeDropped.
const (
	ReasonMoved       = "moved"
	ReasonInvalidated = "invalidated"
	ReasonShutdown    = "shutdown"
	ReasonBusy        = "busy"
)

// Snapshot is a read-only view of the shared pointer state.
type Snapshot struct {
	Position corner.Point
	Armed    bool
	Owned    bool
}

// State is the pointer record shared by the motion tracker and the debounce
// run. The ownership flag lives under the same lock so claim, re-validation
// and release are atomic with respect to position updates.
type State struct {
	mu     sync.Mutex
	pos    corner.Point
	armed  bool
	owner  uint64
	nextID uint64
}

// NewState returns an unarmed, unowned state positioned at the sentinel.
func NewState() *State {
	return &State{pos: corner.Sentinel}
}

// Move records a new pointer position. It reports whether the position is
// eligible for corner detection: a move while armed only clears the flag,
// which invalidates the run dispatched for the previous dwell.
func (s *State) Move(p corner.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = p
	if s.armed {
		s.armed = false
		return false
	}
	return true
}

// Position returns the latest recorded pointer position.
func (s *State) Position() corner.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// Snapshot returns the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Position: s.pos, Armed: s.armed, Owned: s.owner != 0}
}

// claim takes ownership for a new run. It fails without side effects when a
// run is already active.
func (s *State) claim() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner != 0 {
		return 0, false
	}
	s.nextID++
	s.owner = s.nextID
	s.armed = true
	return s.owner, true
}

// confirm re-validates run id against p after the delay. On success the
// position is consumed so a stale repeat cannot match a corner again.
func (s *State) confirm(id uint64, p corner.Point) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.owner != id:
		return ReasonInvalidated, false
	case s.pos != p:
		return ReasonMoved, false
	case !s.armed:
		return ReasonInvalidated, false
	}
	s.pos = corner.Sentinel
	return "", true
}

// release drops ownership if run id still holds it.
func (s *State) release(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner == id {
		s.owner = 0
		s.armed = false
	}
}

package corner

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrFrozen is returned by Set once the event loop owns the table.
	ErrFrozen = errors.New("corner table is frozen")
	// ErrUnknownCorner is returned for names outside the four corners.
	ErrUnknownCorner = errors.New("unknown corner")
)

// Source records which configuration layer last wrote a field.
type Source uint8

const (
	// SourceUnset means the field was never written.
	SourceUnset Source = iota
	// SourceGeometry is the screen-size derived default.
	SourceGeometry
	// SourceFile is the configuration file.
	SourceFile
	// SourceFlag is a command-line flag.
	SourceFlag
)

// String returns a human-readable source name.
func (s Source) String() string {
	switch s {
	case SourceUnset:
		return "unset"
	case SourceGeometry:
		return "geometry"
	case SourceFile:
		return "file"
	case SourceFlag:
		return "flag"
	default:
		return fmt.Sprintf("source(%d)", uint8(s))
	}
}

// Update is a partial corner change; nil fields are left untouched.
type Update struct {
	X      *int
	Y      *int
	Action *string
}

// Entry is a corner together with the sources of its fields.
type Entry struct {
	Corner
	PointSource  Source
	ActionSource Source
}

// Registry is the four-corner table. It is written during setup and read-only
// after Freeze.
type Registry struct {
	mu      sync.RWMutex
	frozen  bool
	entries [count]Entry
}

// NewRegistry returns a table of four corners at (0, 0) with no actions.
func NewRegistry() *Registry {
	r := &Registry{}
	for _, n := range Names() {
		r.entries[n].Name = n
	}
	return r
}

// FromGeometry returns a table with corner coordinates derived from the
// screen size.
func FromGeometry(width, height int) *Registry {
	r := NewRegistry()
	r.ApplyGeometry(width, height)
	return r
}

// FromBounds is FromGeometry for a screen whose origin is not (0, 0), as on
// Windows virtual desktops extending left of or above the primary monitor.
func FromBounds(x, y, width, height int) *Registry {
	r := NewRegistry()
	r.applyBounds(x, y, width, height)
	return r
}

// ApplyGeometry sets every corner coordinate from the screen size. Actions are
// not touched.
func (r *Registry) ApplyGeometry(width, height int) {
	r.applyBounds(0, 0, width, height)
}

// applyBounds places the corners on the edges of a rectangle.
func (r *Registry) applyBounds(x, y, width, height int) {
	left, top := x, y
	right, bottom := x+width-1, y+height-1
	_ = r.Set(TopLeft, Update{X: &left, Y: &top}, SourceGeometry)
	_ = r.Set(TopRight, Update{X: &right, Y: &top}, SourceGeometry)
	_ = r.Set(BottomLeft, Update{X: &left, Y: &bottom}, SourceGeometry)
	_ = r.Set(BottomRight, Update{X: &right, Y: &bottom}, SourceGeometry)
}

// Set applies a partial update to one corner. Last write wins per field.
func (r *Registry) Set(name Name, u Update, src Source) error {
	if name < 0 || int(name) >= count {
		return fmt.Errorf("%w: %v", ErrUnknownCorner, name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return ErrFrozen
	}

	e := &r.entries[name]
	if u.X != nil {
		e.X = *u.X
		e.PointSource = src
	}
	if u.Y != nil {
		e.Y = *u.Y
		e.PointSource = src
	}
	if u.Action != nil {
		e.Action = *u.Action
		e.ActionSource = src
	}
	return nil
}

// SetAction is Set with only the action provided.
func (r *Registry) SetAction(key string, action string, src Source) error {
	name, ok := ParseName(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCorner, key)
	}
	return r.Set(name, Update{Action: &action}, src)
}

// Freeze makes the table read-only.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether Freeze was called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Get returns a corner by name.
func (r *Registry) Get(name Name) (Corner, bool) {
	if name < 0 || int(name) >= count {
		return Corner{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[name].Corner, true
}

// Lookup returns the corner located exactly at p, if any. When corners share
// a coordinate (degenerate screens) the first one with an action wins.
func (r *Registry) Lookup(p Point) (Corner, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var (
		found Corner
		ok    bool
	)
	for _, e := range r.entries {
		if e.X != p.X || e.Y != p.Y {
			continue
		}
		if e.HasAction() {
			return e.Corner, true
		}
		if !ok {
			found, ok = e.Corner, true
		}
	}
	return found, ok
}

// HasActions reports whether any corner has an action configured.
func (r *Registry) HasActions() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.HasAction() {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the table in corner order.
func (r *Registry) Snapshot() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, count)
	copy(out, r.entries[:])
	return out
}

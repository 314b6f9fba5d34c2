// Package pointer connects to the display server for pointer motion and
// screen geometry.
package pointer

import (
	"context"
	"errors"

	"github.com/frudas24/deskcorners/internal/corner"
	"github.com/frudas24/deskcorners/internal/monitor"
)

// ErrUnsupported indicates no display backend exists for this platform.
var ErrUnsupported = errors.New("pointer tracking is not supported on this platform")

// Source is a display connection delivering root pointer positions.
type Source interface {
	// Next blocks until the pointer moves, ctx ends or the connection fails.
	Next(ctx context.Context) (corner.Point, error)
	// Screen returns the bounding rectangle of the display.
	Screen() monitor.Monitor
	Close() error
}

// Open connects to the platform display server.
func Open() (Source, error) {
	return open()
}

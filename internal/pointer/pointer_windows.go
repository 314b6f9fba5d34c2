//go:build windows

package pointer

import (
	"context"
	"time"

	"github.com/frudas24/deskcorners/internal/corner"
	"github.com/frudas24/deskcorners/internal/monitor"
	"github.com/lxn/win"

	log "github.com/sirupsen/logrus"
)

// pollInterval is how often the cursor position is sampled.
const pollInterval = 10 * time.Millisecond

// winSource samples GetCursorPos and reports changes.
type winSource struct {
	screen monitor.Monitor
	ticker *time.Ticker
	last   corner.Point
	seen   bool
}

// open resolves the virtual desktop bounds and starts sampling.
func open() (Source, error) {
	screen := monitor.VirtualScreen()
	if list, err := monitor.ListMonitors(); err != nil {
		log.WithError(err).Warn("Monitor enumeration failed, using virtual screen metrics")
	} else if b, ok := monitor.Bounds(list); ok {
		screen = b
	}
	log.WithField("screen", screen).Info("Tracking Windows cursor")

	return &winSource{
		screen: screen,
		ticker: time.NewTicker(pollInterval),
	}, nil
}

// Next blocks until the cursor position changes.
func (s *winSource) Next(ctx context.Context) (corner.Point, error) {
	for {
		select {
		case <-ctx.Done():
			return corner.Point{}, ctx.Err()
		case <-s.ticker.C:
		}

		var pt win.POINT
		if !win.GetCursorPos(&pt) {
			continue
		}
		p := corner.Point{X: int(pt.X), Y: int(pt.Y)}
		if s.seen && p == s.last {
			continue
		}
		s.seen = true
		s.last = p
		return p, nil
	}
}

// Screen returns the virtual desktop bounds.
func (s *winSource) Screen() monitor.Monitor {
	return s.screen
}

// Close stops sampling.
func (s *winSource) Close() error {
	s.ticker.Stop()
	return nil
}

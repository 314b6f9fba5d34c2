//go:build linux && !android

package pointer

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/frudas24/deskcorners/internal/corner"
	"github.com/frudas24/deskcorners/internal/monitor"

	log "github.com/sirupsen/logrus"
)

// xSource reads MotionNotify events selected on the root window.
type xSource struct {
	x      *xgbutil.XUtil
	screen monitor.Monitor
	motion chan corner.Point
	failed chan error
	done   chan struct{}
	once   sync.Once
}

// open connects to $DISPLAY and subscribes to root pointer motion.
func open() (Source, error) {
	display := os.Getenv("DISPLAY")
	x, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("unable to open X display %q: %w", display, err)
	}

	root := x.RootWin()
	err = xproto.ChangeWindowAttributesChecked(x.Conn(), root,
		xproto.CwEventMask, []uint32{xproto.EventMaskPointerMotion}).Check()
	if err != nil {
		x.Conn().Close()
		return nil, fmt.Errorf("select pointer motion on root window: %w", err)
	}

	scr := x.Screen()
	s := &xSource{
		x: x,
		screen: monitor.Monitor{
			Index:   1,
			W:       int(scr.WidthInPixels),
			H:       int(scr.HeightInPixels),
			Primary: true,
		},
		motion: make(chan corner.Point, 256),
		failed: make(chan error, 1),
		done:   make(chan struct{}),
	}
	log.WithFields(log.Fields{
		"display": display,
		"width":   s.screen.W,
		"height":  s.screen.H,
	}).Info("Connected to X server")

	go s.read()
	return s, nil
}

// read forwards motion events until the connection closes.
func (s *xSource) read() {
	conn := s.x.Conn()
	for {
		ev, err := conn.WaitForEvent()
		if ev == nil && err == nil {
			s.failed <- io.EOF
			return
		}
		if err != nil {
			log.Debug("X error: ", err)
			continue
		}
		m, ok := ev.(xproto.MotionNotifyEvent)
		if !ok {
			continue
		}
		select {
		case s.motion <- corner.Point{X: int(m.RootX), Y: int(m.RootY)}:
		case <-s.done:
			return
		}
	}
}

// Next returns the next root pointer position.
func (s *xSource) Next(ctx context.Context) (corner.Point, error) {
	select {
	case p := <-s.motion:
		return p, nil
	case err := <-s.failed:
		return corner.Point{}, fmt.Errorf("X connection closed: %w", err)
	case <-ctx.Done():
		return corner.Point{}, ctx.Err()
	}
}

// Screen returns the default screen size.
func (s *xSource) Screen() monitor.Monitor {
	return s.screen
}

// Close disconnects from the X server.
func (s *xSource) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.x.Conn().Close()
	})
	return nil
}

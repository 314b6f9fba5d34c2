// Package app wires the corner table, tracker, debouncer and event feed.
package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/frudas24/deskcorners/internal/config"
	"github.com/frudas24/deskcorners/internal/corner"
	"github.com/frudas24/deskcorners/internal/feed"
	"github.com/frudas24/deskcorners/internal/monitor"
	"github.com/frudas24/deskcorners/internal/tracker"
	"github.com/frudas24/deskcorners/internal/trigger"
	"github.com/hashicorp/go-multierror"

	log "github.com/sirupsen/logrus"
)

// Deps are the collaborators the App does not build itself.
type Deps struct {
	Executor trigger.Executor
	// After replaces time.After for the debounce wait.
	After func(time.Duration) <-chan time.Time
	// Observer receives every trigger outcome after the feed.
	Observer func(trigger.Event)
}

// App coordinates the corner table, motion tracking and the optional feed.
type App struct {
	cfg       config.Config
	corners   *corner.Registry
	state     *trigger.State
	debouncer *trigger.Debouncer
	tracker   *tracker.Tracker
	feed      *feed.Server
	observer  func(trigger.Event)
	listener  net.Listener
	server    *http.Server
}

// New builds the corner table for screen, applies the configuration on top
// of it and freezes it.
func New(cfg config.Config, screen monitor.Monitor, deps Deps) (*App, error) {
	if deps.Executor == nil {
		return nil, errors.New("executor is required")
	}
	if screen.Empty() {
		return nil, errors.New("screen size is unknown")
	}
	log.WithField("screen", screen).Debug("Deriving corners")

	a := &App{
		cfg:      cfg,
		corners:  corner.FromBounds(screen.X, screen.Y, screen.W, screen.H),
		state:    trigger.NewState(),
		observer: deps.Observer,
	}
	if err := cfg.Apply(a.corners); err != nil {
		logWarnings(err)
	}
	a.corners.Freeze()

	if cfg.ListenAddr != "" {
		a.feed = feed.NewServer(a.State)
	}
	a.debouncer = trigger.New(a.state, deps.Executor, trigger.Options{
		Delay:    cfg.Delay,
		After:    deps.After,
		Observer: a.publish,
	})
	a.tracker = tracker.New(a.corners, a.state, a.debouncer)

	logCorners(a.corners)
	if !a.corners.HasActions() {
		log.Warn("No corner actions configured")
	}
	return a, nil
}

// Corners returns the frozen corner table.
func (a *App) Corners() *corner.Registry {
	return a.corners
}

// Start begins serving the feed when a listen address is configured.
func (a *App) Start() error {
	if a.feed == nil {
		return nil
	}
	ln, err := net.Listen("tcp", a.cfg.ListenAddr)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	a.feed.RegisterRoutes(mux)
	a.listener = ln
	a.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Feed server stopped")
		}
	}()
	log.Info("Feed listening on ", ln.Addr())
	return nil
}

// Addr returns the feed listen address, or nil when the feed is disabled.
func (a *App) Addr() net.Addr {
	if a.listener == nil {
		return nil
	}
	return a.listener.Addr()
}

// Run consumes pointer motion until ctx ends or the source fails. In-flight
// debounce runs are aborted before Run returns.
func (a *App) Run(ctx context.Context, src tracker.Source) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	err := a.tracker.Run(runCtx, src)
	cancel()
	a.debouncer.Wait()
	return err
}

// Stop shuts the feed down.
func (a *App) Stop() error {
	if a.server == nil {
		return nil
	}
	a.feed.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.server.Shutdown(ctx)
}

// State returns a snapshot for the feed.
func (a *App) State() feed.State {
	snap := a.state.Snapshot()
	stats := a.tracker.Stats()
	out := feed.State{
		DelayMs: a.debouncer.Delay().Milliseconds(),
		Pointer: feed.PointerState{
			X:     snap.Position.X,
			Y:     snap.Position.Y,
			Armed: snap.Armed,
			Owned: snap.Owned,
		},
		Events:  stats.Events,
		Entries: stats.Entries,
	}
	for _, e := range a.corners.Snapshot() {
		out.Corners = append(out.Corners, feed.CornerState{
			Name:         e.Name.String(),
			X:            e.X,
			Y:            e.Y,
			Action:       e.Action,
			PointSource:  e.PointSource.String(),
			ActionSource: e.ActionSource.String(),
		})
	}
	return out
}

// publish forwards trigger outcomes to the feed and the observer.
func (a *App) publish(ev trigger.Event) {
	if a.feed != nil {
		a.feed.Publish(ev)
	}
	if a.observer != nil {
		a.observer(ev)
	}
}

// logWarnings reports non-fatal configuration problems one per line.
func logWarnings(err error) {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			log.Warn("Ignoring config entry: ", e)
		}
		return
	}
	log.Warn("Ignoring config entry: ", err)
}

// logCorners prints the effective corner table.
func logCorners(reg *corner.Registry) {
	for _, e := range reg.Snapshot() {
		log.WithFields(log.Fields{
			"x":      e.X,
			"y":      e.Y,
			"action": e.Action,
			"source": e.ActionSource,
		}).Info("Corner ", e.Name)
	}
}

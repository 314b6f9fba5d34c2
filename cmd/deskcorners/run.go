package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/frudas24/deskcorners/internal/action"
	"github.com/frudas24/deskcorners/internal/app"
	"github.com/frudas24/deskcorners/internal/config"
	"github.com/frudas24/deskcorners/internal/pointer"

	log "github.com/sirupsen/logrus"
)

// run wires the daemon and blocks until shutdown or display loss.
func run(ctx context.Context, opts config.Options) error {
	setupLogging(opts.Debug)

	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}

	src, err := pointer.Open()
	if err != nil {
		return fmt.Errorf("open display: %w", err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			log.Debug("Closing display: ", err)
		}
	}()

	executor := action.New()
	logStartup(cfg, executor.ShellPath())

	a, err := app.New(cfg, src.Screen(), app.Deps{Executor: executor})
	if err != nil {
		return err
	}
	if err := a.Start(); err != nil {
		return err
	}
	defer func() {
		if err := a.Stop(); err != nil {
			log.Warn("Shutdown: ", err)
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = a.Run(ctx, src)
	if errors.Is(err, context.Canceled) {
		log.Info("Stopped")
		return nil
	}
	return err
}

// setupLogging configures the logrus formatter and level.
func setupLogging(debug bool) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.Debug("Debug logging enabled")
	}
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Errorf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks.
func logStartup(cfg config.Config, shell string) {
	log.Info("deskcorners starting")
	if cfg.ConfigPath != "" {
		log.Info("Config: ", cfg.ConfigPath)
	} else {
		log.Info("Config: none")
	}
	log.Info("Delay: ", cfg.Delay)
	logShellStatus(shell)
}

// logShellStatus reports whether the action shell is discoverable.
func logShellStatus(path string) {
	resolved := path
	note := ""
	if filepath.IsAbs(path) {
		info, err := os.Stat(path)
		switch {
		case err != nil:
			note = err.Error()
		case info.IsDir():
			note = "path is a directory"
		}
	} else {
		found, err := exec.LookPath(path)
		switch {
		case err == nil:
			resolved = found
		case errors.Is(err, exec.ErrDot):
			note = "found relative to current dir; use absolute path"
		default:
			note = err.Error()
		}
	}
	if note != "" {
		log.Warn("Shell check: missing (", note, ")")
		return
	}
	log.Info("Shell check: ok (", resolved, ")")
}

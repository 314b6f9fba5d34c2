// Package config resolves the delay and corner actions from the config file
// and command-line options.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/frudas24/deskcorners/internal/corner"
	"github.com/hashicorp/go-multierror"

	log "github.com/sirupsen/logrus"
)

const (
	// DefaultFileName is the config file looked up in the home directory.
	DefaultFileName = ".hotcorners.conf"
	defaultDelay    = 500 * time.Millisecond
)

// MaxDelay is the largest dwell delay: 2^32-1 microseconds.
const MaxDelay = time.Duration(math.MaxUint32) * time.Microsecond

// ErrInvalidDelay is returned for delay values that are not plain numbers.
var ErrInvalidDelay = errors.New("invalid number")

var delayPattern = regexp.MustCompile(`^[0-9.]+$`)

// Options are the raw command-line inputs.
type Options struct {
	ConfigPath string // explicit config file, empty for the default
	Delay      string // seconds, empty when not given
	Corners    map[corner.Name]string
	Debug      bool
	ListenAddr string
}

// Config holds the resolved runtime configuration.
type Config struct {
	ConfigPath  string // file that was loaded, empty when none
	Delay       time.Duration
	FileEntries []Entry
	FlagActions map[corner.Name]string
	Debug       bool
	ListenAddr  string
}

// Load resolves the configuration. An explicit config path must be readable;
// a missing or unreadable default file is ignored.
func Load(opts Options) (Config, error) {
	cfg := Config{
		Delay:       defaultDelay,
		FlagActions: opts.Corners,
		Debug:       opts.Debug,
		ListenAddr:  opts.ListenAddr,
	}

	path := opts.ConfigPath
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err != nil && explicit:
			return Config{}, fmt.Errorf("cannot access %s: %w", path, err)
		case err != nil:
			log.WithField("path", path).Debug("Default config not loaded: ", err)
		default:
			f, err := Parse(path, data)
			if err != nil {
				return Config{}, err
			}
			cfg.ConfigPath = path
			cfg.FileEntries = f.Entries
			if f.Delay != nil {
				cfg.Delay = *f.Delay
			}
		}
	}

	if opts.Delay != "" {
		delay, err := ParseDelay(opts.Delay)
		if err != nil {
			return Config{}, err
		}
		cfg.Delay = delay
	}

	return cfg, nil
}

// Apply writes file actions and then flag actions into the corner table, so
// flags override the file. Unknown corners are collected and returned as a
// non-fatal warning.
func (c Config) Apply(reg *corner.Registry) error {
	var warnings *multierror.Error
	for _, e := range c.FileEntries {
		if err := reg.SetAction(e.Key, e.Value, corner.SourceFile); err != nil {
			where := c.ConfigPath
			if e.Line > 0 {
				where = fmt.Sprintf("%s:%d", where, e.Line)
			}
			warnings = multierror.Append(warnings, fmt.Errorf("%s: %w", where, err))
		}
	}
	for _, name := range corner.Names() {
		action, ok := c.FlagActions[name]
		if !ok {
			continue
		}
		if err := reg.Set(name, corner.Update{Action: &action}, corner.SourceFlag); err != nil {
			warnings = multierror.Append(warnings, fmt.Errorf("flag %s: %w", name, err))
		}
	}
	return warnings.ErrorOrNil()
}

// DefaultPath returns $HOME/.hotcorners.conf, or "" without a home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, DefaultFileName)
}

// ParseDelay parses a delay in seconds with an optional fraction. Values
// above MaxDelay are clamped.
func ParseDelay(s string) (time.Duration, error) {
	if !delayPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidDelay, s)
	}
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidDelay, s)
	}
	micros := sec * 1e6
	if micros > math.MaxUint32 {
		micros = math.MaxUint32
	}
	return time.Duration(micros) * time.Microsecond, nil
}

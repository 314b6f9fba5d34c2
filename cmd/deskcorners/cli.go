package main

import (
	"context"
	"fmt"

	"github.com/frudas24/deskcorners/internal/config"
	"github.com/frudas24/deskcorners/internal/corner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const longHelp = `Run shell commands by hovering the mouse pointer over a screen corner.

A command runs once the pointer has rested on the exact corner pixel for the
configured delay. Leaving the corner before the delay elapses cancels it.

Commands are read from $HOME/.hotcorners.conf unless --config is given. Each
line holds a corner name and a shell command separated by a colon:

  top_left: notify-send "top left"
  bottom_right: xset dpms force off

Lines starting with # are ignored. Files ending in .yaml or .yml may instead
set "delay" and a "corners" map. Command-line options override the file.`

// runFunc starts the daemon with the parsed options.
type runFunc func(ctx context.Context, opts config.Options) error

// cornerFlag binds one corner to its long and short flag names.
type cornerFlag struct {
	name  corner.Name
	long  string
	short string
}

var cornerFlags = []cornerFlag{
	{corner.TopLeft, "top-left", "l"},
	{corner.TopRight, "top-right", "r"},
	{corner.BottomLeft, "bottom-left", "L"},
	{corner.BottomRight, "bottom-right", "R"},
}

// newRootCommand builds the command line and hands parsed options to fn.
func newRootCommand(fn runFunc) *cobra.Command {
	var opts config.Options
	cmd := &cobra.Command{
		Use:           "deskcorners [OPTION]...",
		Short:         "Run shell commands from screen corners",
		Long:          longHelp,
		Args:          noPositional,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := cmd.Flags()
			if fs.Changed("delay") && opts.Delay == "" {
				_, err := config.ParseDelay(opts.Delay)
				return err
			}
			opts.Corners = collectCorners(fs)
			return fn(cmd.Context(), opts)
		},
	}

	fs := cmd.Flags()
	fs.SortFlags = false
	fs.StringVarP(&opts.ConfigPath, "config", "C", "", "load commands from `PATH` (default $HOME/.hotcorners.conf)")
	fs.StringVar(&opts.ConfigPath, "config-file", "", "alias for --config")
	_ = fs.MarkHidden("config-file")
	fs.StringVarP(&opts.Delay, "delay", "d", "", "wait `SECONDS` before running a command (default 0.5)")
	for _, cf := range cornerFlags {
		fs.StringP(cf.long, cf.short, "", fmt.Sprintf("run `COMMAND` at the %s corner", cornerLabel(cf.name)))
	}
	fs.BoolVar(&opts.Debug, "debug", false, "enable verbose debug logging")
	fs.StringVar(&opts.ListenAddr, "listen", "", "serve state and events on `ADDR`")
	return cmd
}

// noPositional rejects any non-option argument.
func noPositional(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument: %q", args[0])
	}
	return nil
}

// collectCorners returns the corner commands that were given on the command line.
func collectCorners(fs *pflag.FlagSet) map[corner.Name]string {
	out := make(map[corner.Name]string)
	for _, cf := range cornerFlags {
		if !fs.Changed(cf.long) {
			continue
		}
		v, err := fs.GetString(cf.long)
		if err != nil {
			continue
		}
		out[cf.name] = v
	}
	return out
}

// cornerLabel turns top_left into "top left".
func cornerLabel(n corner.Name) string {
	b := []byte(n.String())
	for i, c := range b {
		if c == '_' {
			b[i] = ' '
		}
	}
	return string(b)
}

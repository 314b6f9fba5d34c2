package main

import (
	"context"
	"io"
	"testing"

	"github.com/frudas24/deskcorners/internal/config"
	"github.com/frudas24/deskcorners/internal/corner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns the captured options.
func execute(t *testing.T, args ...string) (config.Options, bool, error) {
	t.Helper()
	var (
		got    config.Options
		called bool
	)
	cmd := newRootCommand(func(_ context.Context, opts config.Options) error {
		got, called = opts, true
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.ExecuteContext(context.Background())
	return got, called, err
}

// TestRoot_ParsesCornerFlags verifies short and long corner flags.
func TestRoot_ParsesCornerFlags(t *testing.T) {
	opts, called, err := execute(t, "-l", "notify-send hi", "--bottom-right", "echo br", "-d", "1.5", "-C", "/tmp/hc.conf")
	require.NoError(t, err)
	require.True(t, called)
	assert.Equal(t, map[corner.Name]string{
		corner.TopLeft:     "notify-send hi",
		corner.BottomRight: "echo br",
	}, opts.Corners)
	assert.Equal(t, "1.5", opts.Delay)
	assert.Equal(t, "/tmp/hc.conf", opts.ConfigPath)
}

// TestRoot_ConfigFileAlias verifies the hidden long alias.
func TestRoot_ConfigFileAlias(t *testing.T) {
	opts, _, err := execute(t, "--config-file", "hc.conf", "-R", "echo x", "-L", "echo y", "-r", "echo z")
	require.NoError(t, err)
	assert.Equal(t, "hc.conf", opts.ConfigPath)
	assert.Len(t, opts.Corners, 3)
	assert.Equal(t, "echo z", opts.Corners[corner.TopRight])
}

// TestRoot_RejectsPositional verifies stray arguments are fatal.
func TestRoot_RejectsPositional(t *testing.T) {
	_, called, err := execute(t, "-l", "echo a", "extra")
	require.Error(t, err)
	assert.False(t, called)
	assert.Equal(t, `unexpected argument: "extra"`, err.Error())
}

// TestRoot_EmptyDelayIsInvalid verifies -d with an empty value is rejected.
func TestRoot_EmptyDelayIsInvalid(t *testing.T) {
	_, called, err := execute(t, "-d", "")
	assert.ErrorIs(t, err, config.ErrInvalidDelay)
	assert.False(t, called)
}

// TestRoot_HelpDoesNotRun verifies -h prints usage without starting.
func TestRoot_HelpDoesNotRun(t *testing.T) {
	_, called, err := execute(t, "-h")
	require.NoError(t, err)
	assert.False(t, called)
}

// TestRoot_UnknownFlag verifies unknown options are errors.
func TestRoot_UnknownFlag(t *testing.T) {
	_, called, err := execute(t, "--centre", "echo")
	assert.Error(t, err)
	assert.False(t, called)
}

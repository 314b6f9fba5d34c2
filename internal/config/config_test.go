package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/frudas24/deskcorners/internal/corner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseDelay verifies accepted and rejected delay literals.
func TestParseDelay(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want time.Duration
	}{
		{"0.5", 500 * time.Millisecond},
		{".5", 500 * time.Millisecond},
		{"2", 2 * time.Second},
		{"1.25", 1250 * time.Millisecond},
		{"0", 0},
		{"5000", MaxDelay},
	} {
		got, err := ParseDelay(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, in := range []string{"", "abc", "1s", "-1", "1.2.3", ".", "1e3", " 1"} {
		_, err := ParseDelay(in)
		assert.True(t, errors.Is(err, ErrInvalidDelay), "%q: got %v", in, err)
	}
}

// TestParseDelay_ClampsHugeValues verifies oversized delays clamp instead of failing.
func TestParseDelay_ClampsHugeValues(t *testing.T) {
	got, err := ParseDelay("99999999")
	require.NoError(t, err)
	assert.Equal(t, MaxDelay, got)
	assert.Equal(t, time.Duration(4294967295)*time.Microsecond, MaxDelay)
}

// TestParseLines verifies the key/value row format.
func TestParseLines(t *testing.T) {
	data := "top_left: notify-send hi\n" +
		"\n" +
		"# bottom_left: ignored\n" +
		"no separator here\n" +
		"top_right:   echo a:b:c  \r\n" +
		"bottom_right:\n" +
		": orphan\n" +
		"middle: echo unknown\n"

	got := ParseLines(data)
	assert.Equal(t, []Entry{
		{Key: "top_left", Value: "notify-send hi", Line: 1},
		{Key: "top_right", Value: "echo a:b:c", Line: 5},
		{Key: "middle", Value: "echo unknown", Line: 8},
	}, got)
}

// TestParse_YAML verifies the structured format yields the same entries.
func TestParse_YAML(t *testing.T) {
	data := []byte("delay: 1.5\ncorners:\n  top_right: echo A\n  bottom_left: ''\n  top_left: notify-send hi\n")

	f, err := Parse("corners.yaml", data)
	require.NoError(t, err)
	require.NotNil(t, f.Delay)
	assert.Equal(t, 1500*time.Millisecond, *f.Delay)
	assert.Equal(t, []Entry{
		{Key: "top_left", Value: "notify-send hi"},
		{Key: "top_right", Value: "echo A"},
	}, f.Entries)
}

// TestParse_YAMLBadDelay verifies invalid YAML delays are reported.
func TestParse_YAMLBadDelay(t *testing.T) {
	_, err := Parse("c.yml", []byte("delay: soon\n"))
	assert.ErrorIs(t, err, ErrInvalidDelay)
}

// writeFile writes a config file into a temp dir.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestLoad_FlagOverridesFile covers command-line precedence over the config file.
func TestLoad_FlagOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hc.conf", "top_right: echo A\nbottom_left: echo C\n")

	cfg, err := Load(Options{
		ConfigPath: path,
		Corners:    map[corner.Name]string{corner.TopRight: "echo B"},
	})
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigPath)
	assert.Equal(t, defaultDelay, cfg.Delay)

	reg := corner.FromGeometry(1920, 1080)
	require.NoError(t, cfg.Apply(reg))

	tr, _ := reg.Get(corner.TopRight)
	assert.Equal(t, "echo B", tr.Action)
	bl, _ := reg.Get(corner.BottomLeft)
	assert.Equal(t, "echo C", bl.Action)
	assert.Equal(t, corner.Point{X: 1919, Y: 0}, tr.Point())
}

// TestLoad_DelayPrecedence verifies flag delay beats file delay beats the default.
func TestLoad_DelayPrecedence(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hc.yaml", "delay: 2\n")

	cfg, err := Load(Options{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Delay)

	cfg, err = Load(Options{ConfigPath: path, Delay: "0.25"})
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Delay)
}

// TestLoad_InvalidDelayIsFatal verifies bad delay flags are rejected.
func TestLoad_InvalidDelayIsFatal(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, err := Load(Options{Delay: "half"})
	assert.ErrorIs(t, err, ErrInvalidDelay)
}

// TestLoad_ExplicitMissingFileIsFatal verifies an explicit path must exist.
func TestLoad_ExplicitMissingFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.conf")
	_, err := Load(Options{ConfigPath: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot access "+path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoad_DefaultMissingFileIsIgnored verifies the default path may be absent.
func TestLoad_DefaultMissingFileIsIgnored(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load(Options{Corners: map[corner.Name]string{corner.TopLeft: "echo flag"}})
	require.NoError(t, err)
	assert.Empty(t, cfg.ConfigPath)
	assert.Empty(t, cfg.FileEntries)
	assert.Equal(t, "echo flag", cfg.FlagActions[corner.TopLeft])
}

// TestLoad_DefaultFileIsRead verifies $HOME/.hotcorners.conf is picked up.
func TestLoad_DefaultFileIsRead(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeFile(t, home, DefaultFileName, "bottom_right: echo home\n")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigPath)
	assert.Equal(t, []Entry{{Key: "bottom_right", Value: "echo home", Line: 1}}, cfg.FileEntries)
}

// TestApply_UnknownCornerIsWarning verifies unknown rows do not abort.
func TestApply_UnknownCornerIsWarning(t *testing.T) {
	cfg := Config{
		ConfigPath: "hc.conf",
		FileEntries: []Entry{
			{Key: "middle", Value: "echo ?", Line: 2},
			{Key: "top_left", Value: "echo tl", Line: 3},
		},
	}
	reg := corner.FromGeometry(640, 480)

	err := cfg.Apply(reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, corner.ErrUnknownCorner)
	assert.Contains(t, err.Error(), "hc.conf:2")

	tl, _ := reg.Get(corner.TopLeft)
	assert.Equal(t, "echo tl", tl.Action)
}

//go:build linux && !android

package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOpen_BadDisplay verifies an unreachable display is reported.
func TestOpen_BadDisplay(t *testing.T) {
	t.Setenv("DISPLAY", ":4093")
	src, err := Open()
	require.Error(t, err)
	assert.Nil(t, src)
	assert.Contains(t, err.Error(), `unable to open X display ":4093"`)
}

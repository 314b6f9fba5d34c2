package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBounds_SideBySide verifies two heads collapse into one rectangle.
func TestBounds_SideBySide(t *testing.T) {
	b, ok := Bounds([]Monitor{
		{Index: 1, W: 1920, H: 1080, Primary: true},
		{Index: 2, X: 1920, W: 1280, H: 1024},
	})
	require.True(t, ok)
	assert.Equal(t, Monitor{Index: 1, W: 3200, H: 1080, Primary: true}, b)
	assert.Equal(t, 3199, b.Right())
	assert.Equal(t, 1079, b.Bottom())
}

// TestBounds_NegativeOrigin verifies heads left of the primary shift the origin.
func TestBounds_NegativeOrigin(t *testing.T) {
	b, ok := Bounds([]Monitor{
		{Index: 1, W: 1920, H: 1080, Primary: true},
		{Index: 2, X: -1280, Y: -200, W: 1280, H: 1024},
	})
	require.True(t, ok)
	assert.Equal(t, -1280, b.X)
	assert.Equal(t, -200, b.Y)
	assert.Equal(t, 3200, b.W)
	assert.Equal(t, 1280, b.H)
	assert.Equal(t, "3200x1280-1280-200", b.String())
}

// TestBounds_SkipsEmpty verifies zero-sized entries are ignored.
func TestBounds_SkipsEmpty(t *testing.T) {
	_, ok := Bounds(nil)
	assert.False(t, ok)

	_, ok = Bounds([]Monitor{{Index: 1}})
	assert.False(t, ok)

	b, ok := Bounds([]Monitor{{Index: 1}, {Index: 2, X: 10, Y: 20, W: 800, H: 600}})
	require.True(t, ok)
	assert.Equal(t, "800x600+10+20", b.String())
}

// TestEmpty verifies degenerate rectangles.
func TestEmpty(t *testing.T) {
	assert.True(t, Monitor{W: 0, H: 10}.Empty())
	assert.True(t, Monitor{W: 10, H: -1}.Empty())
	assert.False(t, Monitor{W: 1, H: 1}.Empty())
}

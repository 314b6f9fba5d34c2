// Package monitor describes display geometry and its bounding rectangle.
package monitor

import "fmt"

// Monitor is a display rectangle in virtual-desktop pixels.
type Monitor struct {
	Index   int
	X       int
	Y       int
	W       int
	H       int
	Primary bool
}

// Empty reports whether the rectangle has no pixels.
func (m Monitor) Empty() bool {
	return m.W <= 0 || m.H <= 0
}

// Right returns the x coordinate of the last pixel column.
func (m Monitor) Right() int {
	return m.X + m.W - 1
}

// Bottom returns the y coordinate of the last pixel row.
func (m Monitor) Bottom() int {
	return m.Y + m.H - 1
}

// String formats the rectangle as WxH+X+Y.
func (m Monitor) String() string {
	return fmt.Sprintf("%dx%d%+d%+d", m.W, m.H, m.X, m.Y)
}

// Bounds returns the single rectangle enclosing every non-empty monitor.
func Bounds(list []Monitor) (Monitor, bool) {
	var (
		out   Monitor
		found bool
	)
	for _, m := range list {
		if m.Empty() {
			continue
		}
		if !found {
			out, found = m, true
			continue
		}
		right := max(out.X+out.W, m.X+m.W)
		bottom := max(out.Y+out.H, m.Y+m.H)
		out.X = min(out.X, m.X)
		out.Y = min(out.Y, m.Y)
		out.W = right - out.X
		out.H = bottom - out.Y
	}
	if !found {
		return Monitor{}, false
	}
	out.Index = 1
	out.Primary = true
	return out, true
}

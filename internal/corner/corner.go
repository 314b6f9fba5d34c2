// Package corner holds the table of screen corners and their actions.
package corner

import (
	"fmt"
	"strings"
)

// Name identifies one of the four screen corners.
type Name int

const (
	// TopLeft is the corner at (0, 0).
	TopLeft Name = iota
	// TopRight is the corner at (width-1, 0).
	TopRight
	// BottomLeft is the corner at (0, height-1).
	BottomLeft
	// BottomRight is the corner at (width-1, height-1).
	BottomRight
)

// count is the fixed number of corners.
const count = 4

var names = [count]string{"top_left", "top_right", "bottom_left", "bottom_right"}

// String returns the config key for the corner.
func (n Name) String() string {
	if n < 0 || int(n) >= count {
		return fmt.Sprintf("corner(%d)", int(n))
	}
	return names[n]
}

// Names returns all corners in table order.
func Names() []Name {
	return []Name{TopLeft, TopRight, BottomLeft, BottomRight}
}

// ParseName maps a config key or flag name to a corner.
func ParseName(s string) (Name, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, n := range names {
		if key == n {
			return Name(i), true
		}
	}
	return 0, false
}

// Point is an absolute screen-pixel position.
type Point struct {
	X int
	Y int
}

// Sentinel is a position no real corner can have.
var Sentinel = Point{X: -1, Y: -1}

// Corner is a trigger coordinate with an optional shell action.
type Corner struct {
	Name   Name
	X      int
	Y      int
	Action string
}

// Point returns the corner coordinate.
func (c Corner) Point() Point {
	return Point{X: c.X, Y: c.Y}
}

// HasAction reports whether the corner runs anything when triggered.
func (c Corner) HasAction() bool {
	return strings.TrimSpace(c.Action) != ""
}

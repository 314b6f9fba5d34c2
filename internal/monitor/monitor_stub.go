//go:build !windows

package monitor

import "errors"

// ErrNoEnumeration is returned where displays cannot be enumerated; the X11
// pointer source reads the screen size from its own connection.
var ErrNoEnumeration = errors.New("monitor enumeration is only supported on Windows")

// ListMonitors is unavailable on this platform.
func ListMonitors() ([]Monitor, error) {
	return nil, ErrNoEnumeration
}

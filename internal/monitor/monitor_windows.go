//go:build windows

package monitor

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// ListMonitors enumerates the attached displays in desktop coordinates.
func ListMonitors() ([]Monitor, error) {
	var list []Monitor
	collect := func(h win.HMONITOR, _ win.HDC, _ *win.RECT, _ uintptr) uintptr {
		info := win.MONITORINFO{}
		info.CbSize = uint32(unsafe.Sizeof(info))
		if win.GetMonitorInfo(h, &info) {
			rc := info.RcMonitor
			list = append(list, Monitor{
				Index:   len(list) + 1,
				X:       int(rc.Left),
				Y:       int(rc.Top),
				W:       int(rc.Right - rc.Left),
				H:       int(rc.Bottom - rc.Top),
				Primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
			})
		}
		return 1
	}

	if !win.EnumDisplayMonitors(0, nil, syscall.NewCallback(collect), 0) {
		return nil, fmt.Errorf("enumerate displays: %w", syscall.GetLastError())
	}
	if len(list) == 0 {
		return nil, errors.New("no displays attached")
	}
	return list, nil
}

// VirtualScreen returns the virtual desktop rectangle from system metrics.
func VirtualScreen() Monitor {
	return Monitor{
		Index:   1,
		X:       int(win.GetSystemMetrics(win.SM_XVIRTUALSCREEN)),
		Y:       int(win.GetSystemMetrics(win.SM_YVIRTUALSCREEN)),
		W:       int(win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN)),
		H:       int(win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN)),
		Primary: true,
	}
}

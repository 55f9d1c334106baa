package desktop

import "github.com/winshift/winshift/internal/geometry"

// RawMonitor is a display region as reported by the window system.
// Left-to-right order is not guaranteed.
type RawMonitor struct {
	Name   string
	Bounds geometry.Rect
}

// RawWindow is a visible, focusable top-level window as reported by the
// window system. At most one entry has Focused set.
type RawWindow struct {
	ID      uint32
	Title   string
	Class   string
	Bounds  geometry.Rect
	Focused bool
}

// Monitor is a display region with its left-to-right index assigned.
// Index 0 is the leftmost monitor.
type Monitor struct {
	Index  int
	Name   string
	Bounds geometry.Rect
}

// NoMonitor marks a window whose center lies on no known monitor
// (stale or off-screen geometry).
const NoMonitor = -1

// Window is a catalog entry: a raw window annotated with the index of the
// monitor containing its center point, or NoMonitor.
type Window struct {
	ID           uint32
	Title        string
	Class        string
	Bounds       geometry.Rect
	Focused      bool
	MonitorIndex int
}

// OnMonitor reports whether the window was mapped to a monitor.
// Unmapped windows stay in the catalog but are never selected.
func (w Window) OnMonitor() bool { return w.MonitorIndex != NoMonitor }

// MonitorSource queries the window system for active display regions.
type MonitorSource interface {
	Monitors() ([]RawMonitor, error)
}

// WindowSource queries the window system for visible top-level windows.
type WindowSource interface {
	Windows() ([]RawWindow, error)
}

// Activator asks the window system to focus a window, raising it if needed.
type Activator interface {
	Activate(id uint32) error
}

// Session bundles the three capabilities for a single query→decide→act
// cycle. Implementations hold no state worth keeping between invocations.
type Session interface {
	MonitorSource
	WindowSource
	Activator
	Close()
}

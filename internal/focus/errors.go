package focus

import (
	"errors"
	"fmt"
)

// ErrNoOtherWindows is returned when no window besides the focused one is
// mapped to a monitor: there is nothing to switch to.
var ErrNoOtherWindows = errors.New("no other windows to switch to")

// MonitorRangeError reports a requested monitor index outside the catalog.
type MonitorRangeError struct {
	Index int
	Count int
}

func (e *MonitorRangeError) Error() string {
	return fmt.Sprintf("monitor index %d out of range (valid indices: 0-%d)", e.Index, e.Count-1)
}

// NoWindowOnMonitorError reports that the target monitor has no mapped
// window.
type NoWindowOnMonitorError struct {
	Index int
}

func (e *NoWindowOnMonitorError) Error() string {
	return fmt.Sprintf("no window on monitor %d", e.Index)
}

package desktop

import (
	"errors"
	"sort"
)

// ErrNoMonitors is returned when the monitor query reports no active
// displays. There is no sensible fallback, so the whole invocation aborts.
var ErrNoMonitors = errors.New("no monitors detected")

// BuildMonitors orders raw monitors left to right and assigns indices.
// Ordering is by ascending x, ties broken by ascending y. Overlapping or
// ragged layouts are accepted as-is: mixed-resolution setups legitimately
// leave uneven edges, so nothing is snapped or repaired.
func BuildMonitors(raw []RawMonitor) ([]Monitor, error) {
	if len(raw) == 0 {
		return nil, ErrNoMonitors
	}

	sorted := make([]RawMonitor, len(raw))
	copy(sorted, raw)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Bounds.X != sorted[j].Bounds.X {
			return sorted[i].Bounds.X < sorted[j].Bounds.X
		}
		return sorted[i].Bounds.Y < sorted[j].Bounds.Y
	})

	monitors := make([]Monitor, len(sorted))
	for i, m := range sorted {
		monitors[i] = Monitor{Index: i, Name: m.Name, Bounds: m.Bounds}
	}
	return monitors, nil
}

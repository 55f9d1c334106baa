package desktop

import "errors"

// ErrNoWindows is returned when the window query reports no windows at all.
// Zero focused windows is a different, tolerated condition: the selector
// falls back to the leftmost window as its reference point.
var ErrNoWindows = errors.New("window query returned no windows")

// BuildWindows annotates each raw window with the index of the monitor
// containing its center point. Windows whose center lies on no monitor keep
// MonitorIndex == NoMonitor and stay in the catalog for listing, but are
// never selected.
func BuildWindows(raw []RawWindow, monitors []Monitor) ([]Window, error) {
	if len(raw) == 0 {
		return nil, ErrNoWindows
	}

	windows := make([]Window, len(raw))
	for i, w := range raw {
		idx := NoMonitor
		center := w.Bounds.Center()
		for _, m := range monitors {
			if m.Bounds.Contains(center) {
				idx = m.Index
				break
			}
		}
		windows[i] = Window{
			ID:           w.ID,
			Title:        w.Title,
			Class:        w.Class,
			Bounds:       w.Bounds,
			Focused:      w.Focused,
			MonitorIndex: idx,
		}
	}
	return windows, nil
}

package focus

import (
	"sort"

	"github.com/winshift/winshift/internal/desktop"
)

// Select computes the single window that should receive focus for the given
// command. It is pure and stateless: catalogs in, one window or an error
// out, nothing remembered between calls.
func Select(monitors []desktop.Monitor, windows []desktop.Window, cmd Command) (desktop.Window, error) {
	if cmd.ByMonitor {
		return selectOnMonitor(monitors, windows, cmd.Monitor)
	}
	return selectByDirection(windows, cmd.Direction)
}

func selectOnMonitor(monitors []desktop.Monitor, windows []desktop.Window, index int) (desktop.Window, error) {
	if index < 0 || index >= len(monitors) {
		return desktop.Window{}, &MonitorRangeError{Index: index, Count: len(monitors)}
	}

	var candidates []desktop.Window
	for _, w := range windows {
		if w.MonitorIndex == index {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return desktop.Window{}, &NoWindowOnMonitorError{Index: index}
	}

	// Re-focusing the already-focused window is a no-op the user did not
	// ask for, so any unfocused window on the monitor wins over it.
	// Among unfocused candidates the leftmost-on-monitor is picked.
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Focused != b.Focused {
			return !a.Focused
		}
		if a.Bounds.X != b.Bounds.X {
			return a.Bounds.X < b.Bounds.X
		}
		return a.Bounds.Y < b.Bounds.Y
	})
	return candidates[0], nil
}

func selectByDirection(windows []desktop.Window, dir Direction) (desktop.Window, error) {
	ref, ok := referenceWindow(windows)
	if !ok {
		return desktop.Window{}, ErrNoOtherWindows
	}

	// Candidates are every mapped window except the reference, measured by
	// the signed horizontal offset of their centers. Crossing monitor
	// boundaries needs no special case: center comparison alone orders the
	// whole layout.
	var directional, all []desktop.Window
	for _, w := range windows {
		if !w.OnMonitor() || w.ID == ref.ID {
			continue
		}
		all = append(all, w)
		delta := w.Bounds.CenterX() - ref.Bounds.CenterX()
		if (dir == Right && delta > 0) || (dir == Left && delta < 0) {
			directional = append(directional, w)
		}
	}
	if len(all) == 0 {
		return desktop.Window{}, ErrNoOtherWindows
	}

	if len(directional) > 0 {
		if dir == Right {
			return leftmost(directional), nil
		}
		return rightmost(directional), nil
	}

	// The focused window is already at the layout edge. Wrap to the far
	// side, the way alt-tab wraps instead of dead-ending.
	if dir == Right {
		return leftmost(all), nil
	}
	return rightmost(all), nil
}

// referenceWindow returns the window offsets are measured from: the focused
// window when one exists, otherwise the leftmost mapped window (focus can
// sit on a desktop element outside the catalog).
func referenceWindow(windows []desktop.Window) (desktop.Window, bool) {
	for _, w := range windows {
		if w.Focused {
			return w, true
		}
	}

	var mapped []desktop.Window
	for _, w := range windows {
		if w.OnMonitor() {
			mapped = append(mapped, w)
		}
	}
	if len(mapped) == 0 {
		return desktop.Window{}, false
	}
	return leftmost(mapped), true
}

// tieBefore breaks center-x ties deterministically: topmost first, then the
// lower window ID.
func tieBefore(a, b desktop.Window) bool {
	if ay, by := a.Bounds.CenterY(), b.Bounds.CenterY(); ay != by {
		return ay < by
	}
	return a.ID < b.ID
}

func leftmost(windows []desktop.Window) desktop.Window {
	best := windows[0]
	for _, w := range windows[1:] {
		if wx, bx := w.Bounds.CenterX(), best.Bounds.CenterX(); wx != bx {
			if wx < bx {
				best = w
			}
			continue
		}
		if tieBefore(w, best) {
			best = w
		}
	}
	return best
}

func rightmost(windows []desktop.Window) desktop.Window {
	best := windows[0]
	for _, w := range windows[1:] {
		if wx, bx := w.Bounds.CenterX(), best.Bounds.CenterX(); wx != bx {
			if wx > bx {
				best = w
			}
			continue
		}
		if tieBefore(w, best) {
			best = w
		}
	}
	return best
}

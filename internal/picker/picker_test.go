package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/winshift/winshift/internal/desktop"
	"github.com/winshift/winshift/internal/geometry"
)

func testModel() Model {
	monitors := []desktop.Monitor{
		{Index: 0, Name: "DP-1", Bounds: geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
		{Index: 1, Name: "DP-2", Bounds: geometry.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}},
	}
	windows := []desktop.Window{
		{ID: 2, Title: "browser", Bounds: geometry.Rect{X: 2000, Y: 100, Width: 800, Height: 600}, MonitorIndex: 1, Focused: true},
		{ID: 1, Title: "editor", Bounds: geometry.Rect{X: 100, Y: 100, Width: 800, Height: 600}, MonitorIndex: 0},
		{ID: 3, Title: "stale", Bounds: geometry.Rect{X: 9000, Y: 0, Width: 800, Height: 600}, MonitorIndex: desktop.NoMonitor},
	}
	return New(monitors, windows)
}

func keyPress(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestNewSortsAndStartsOnFocused(t *testing.T) {
	m := testModel()

	// Monitor order: editor (monitor 0), browser (monitor 1), stale last.
	wantIDs := []uint32{1, 2, 3}
	for i, want := range wantIDs {
		if m.windows[i].ID != want {
			t.Errorf("windows[%d].ID = %d, want %d", i, m.windows[i].ID, want)
		}
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (the focused window)", m.cursor)
	}
}

func TestUpdateCursorMovement(t *testing.T) {
	m := testModel()

	m = keyPress(m, "k")
	if m.cursor != 0 {
		t.Fatalf("cursor after k = %d, want 0", m.cursor)
	}
	m = keyPress(m, "k")
	if m.cursor != 0 {
		t.Fatalf("cursor moved past the top: %d", m.cursor)
	}
	m = keyPress(m, "down")
	m = keyPress(m, "down")
	if m.cursor != 2 {
		t.Fatalf("cursor after two downs = %d, want 2", m.cursor)
	}
	m = keyPress(m, "j")
	if m.cursor != 2 {
		t.Fatalf("cursor moved past the bottom: %d", m.cursor)
	}
}

func TestUpdateEnterChoosesWindow(t *testing.T) {
	m := testModel()
	m = keyPress(m, "k") // move to editor
	m = keyPress(m, "enter")

	chosen, ok := m.Choice()
	if !ok {
		t.Fatal("Choice() returned no window after enter")
	}
	if chosen.ID != 1 {
		t.Errorf("chosen window = %d, want 1", chosen.ID)
	}
}

func TestUpdateEnterIgnoredOnUnmappedWindow(t *testing.T) {
	m := testModel()
	m = keyPress(m, "j") // move to stale (unmapped, last)
	m = keyPress(m, "enter")

	if _, ok := m.Choice(); ok {
		t.Error("unmapped window was chosen")
	}
}

func TestUpdateAbort(t *testing.T) {
	for _, key := range []string{"q", "esc"} {
		m := testModel()
		m = keyPress(m, key)
		if !m.aborted {
			t.Errorf("%s did not abort the picker", key)
		}
		if _, ok := m.Choice(); ok {
			t.Errorf("Choice() after %s returned a window", key)
		}
	}
}

func TestViewMarksLines(t *testing.T) {
	view := testModel().View()

	for _, want := range []string{"editor", "browser", "stale", "> "} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

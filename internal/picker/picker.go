package picker

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/winshift/winshift/internal/desktop"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			MarginBottom(1)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62"))

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	unmappedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// Model is the bubbletea model for the interactive window picker. Windows
// are shown in monitor order, leftmost first; unmapped windows sort last
// and cannot be chosen.
type Model struct {
	monitors []desktop.Monitor
	windows  []desktop.Window
	cursor   int
	choice   *desktop.Window
	aborted  bool
}

// New creates a picker over the built catalogs. The cursor starts on the
// focused window when there is one.
func New(monitors []desktop.Monitor, windows []desktop.Window) Model {
	sorted := make([]desktop.Window, len(windows))
	copy(sorted, windows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.OnMonitor() != b.OnMonitor() {
			return a.OnMonitor()
		}
		if a.MonitorIndex != b.MonitorIndex {
			return a.MonitorIndex < b.MonitorIndex
		}
		if a.Bounds.X != b.Bounds.X {
			return a.Bounds.X < b.Bounds.X
		}
		if a.Bounds.Y != b.Bounds.Y {
			return a.Bounds.Y < b.Bounds.Y
		}
		return a.ID < b.ID
	})

	m := Model{monitors: monitors, windows: sorted}
	for i, w := range sorted {
		if w.Focused {
			m.cursor = i
			break
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch km.String() {
	case "ctrl+c", "q", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.windows)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.windows) > 0 && m.windows[m.cursor].OnMonitor() {
			choice := m.windows[m.cursor]
			m.choice = &choice
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Switch focus to:"))
	b.WriteString("\n")

	for i, w := range m.windows {
		line := m.windowLine(w)
		switch {
		case i == m.cursor:
			line = cursorStyle.Render("> " + line)
		case !w.OnMonitor():
			line = unmappedStyle.Render("  " + line)
		case w.Focused:
			line = focusedStyle.Render("  " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render("enter: focus • j/k: move • q: cancel"))
	return b.String()
}

func (m Model) windowLine(w desktop.Window) string {
	monitor := "-"
	if w.OnMonitor() {
		monitor = fmt.Sprintf("%d", w.MonitorIndex)
	}
	marker := " "
	if w.Focused {
		marker = "*"
	}
	title := w.Title
	if title == "" {
		title = w.Class
	}
	return fmt.Sprintf("[%s] %s%s", monitor, marker, title)
}

// Choice returns the chosen window, or false when the picker was aborted or
// nothing was chosen.
func (m Model) Choice() (desktop.Window, bool) {
	if m.aborted || m.choice == nil {
		return desktop.Window{}, false
	}
	return *m.choice, true
}

// Run shows the picker and blocks until the user chooses a window or
// cancels. ok is false on cancel.
func Run(monitors []desktop.Monitor, windows []desktop.Window) (chosen desktop.Window, ok bool, err error) {
	final, err := tea.NewProgram(New(monitors, windows)).Run()
	if err != nil {
		return desktop.Window{}, false, fmt.Errorf("picker failed: %w", err)
	}

	m, isModel := final.(Model)
	if !isModel {
		return desktop.Window{}, false, nil
	}
	chosen, ok = m.Choice()
	return chosen, ok, nil
}

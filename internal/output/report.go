package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/winshift/winshift/internal/desktop"
)

// Format represents the list output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported output format: %s (valid formats: text, json, yaml)", s)
}

// MonitorEntry is one monitor row of a Report.
type MonitorEntry struct {
	Index  int    `yaml:"index"  json:"index"`
	Name   string `yaml:"name"   json:"name"`
	X      int    `yaml:"x"      json:"x"`
	Y      int    `yaml:"y"      json:"y"`
	Width  int    `yaml:"width"  json:"width"`
	Height int    `yaml:"height" json:"height"`
}

// WindowEntry is one window row of a Report. Monitor is nil for windows
// whose center lies on no monitor.
type WindowEntry struct {
	ID      uint32 `yaml:"id"                json:"id"`
	Title   string `yaml:"title"             json:"title"`
	Class   string `yaml:"class,omitempty"   json:"class,omitempty"`
	X       int    `yaml:"x"                 json:"x"`
	Y       int    `yaml:"y"                 json:"y"`
	Width   int    `yaml:"width"             json:"width"`
	Height  int    `yaml:"height"            json:"height"`
	Monitor *int   `yaml:"monitor,omitempty" json:"monitor,omitempty"`
	Focused bool   `yaml:"focused"           json:"focused"`
}

// Report is the top-level output of the `list` command: the monitor catalog
// and the window catalog from one invocation, windows ordered left to right.
type Report struct {
	Monitors []MonitorEntry `yaml:"monitors" json:"monitors"`
	Windows  []WindowEntry  `yaml:"windows"  json:"windows"`
}

// NewReport builds a Report from the built catalogs. Windows are ordered by
// center x (ties by center y, then ID); unmapped windows sort last.
func NewReport(monitors []desktop.Monitor, windows []desktop.Window) Report {
	r := Report{
		Monitors: make([]MonitorEntry, 0, len(monitors)),
		Windows:  make([]WindowEntry, 0, len(windows)),
	}

	for _, m := range monitors {
		r.Monitors = append(r.Monitors, MonitorEntry{
			Index:  m.Index,
			Name:   m.Name,
			X:      m.Bounds.X,
			Y:      m.Bounds.Y,
			Width:  m.Bounds.Width,
			Height: m.Bounds.Height,
		})
	}

	sorted := make([]desktop.Window, len(windows))
	copy(sorted, windows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.OnMonitor() != b.OnMonitor() {
			return a.OnMonitor()
		}
		if ax, bx := a.Bounds.CenterX(), b.Bounds.CenterX(); ax != bx {
			return ax < bx
		}
		if ay, by := a.Bounds.CenterY(), b.Bounds.CenterY(); ay != by {
			return ay < by
		}
		return a.ID < b.ID
	})

	for _, w := range sorted {
		entry := WindowEntry{
			ID:      w.ID,
			Title:   w.Title,
			Class:   w.Class,
			X:       w.Bounds.X,
			Y:       w.Bounds.Y,
			Width:   w.Bounds.Width,
			Height:  w.Bounds.Height,
			Focused: w.Focused,
		}
		if w.OnMonitor() {
			idx := w.MonitorIndex
			entry.Monitor = &idx
		}
		r.Windows = append(r.Windows, entry)
	}

	return r
}

// Render writes the report to w in the given format.
func (r Report) Render(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	case FormatText:
		return r.renderText(w)
	}
	return fmt.Errorf("unsupported output format: %s", format)
}

func (r Report) renderText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "MONITOR\tNAME\tGEOMETRY")
	for _, m := range r.Monitors {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", m.Index, m.Name, geometrySpec(m.Width, m.Height, m.X, m.Y))
	}

	fmt.Fprintln(tw, "\t\t")
	fmt.Fprintln(tw, "WINDOW\tMONITOR\tGEOMETRY\tFOCUS\tTITLE")
	for _, win := range r.Windows {
		monitor := "-"
		if win.Monitor != nil {
			monitor = fmt.Sprintf("%d", *win.Monitor)
		}
		focus := ""
		if win.Focused {
			focus = "*"
		}
		fmt.Fprintf(tw, "0x%08x\t%s\t%s\t%s\t%s\n",
			win.ID, monitor, geometrySpec(win.Width, win.Height, win.X, win.Y), focus, win.Title)
	}

	return tw.Flush()
}

// geometrySpec formats bounds the way xrandr prints them: WxH+X+Y.
func geometrySpec(width, height, x, y int) string {
	return fmt.Sprintf("%dx%d%+d%+d", width, height, x, y)
}

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/winshift/winshift/internal/desktop"
	"github.com/winshift/winshift/internal/geometry"
)

func testReport() Report {
	monitors := []desktop.Monitor{
		{Index: 0, Name: "DP-1", Bounds: geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
		{Index: 1, Name: "DP-2", Bounds: geometry.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}},
	}
	windows := []desktop.Window{
		{ID: 2, Title: "browser", Class: "firefox", Bounds: geometry.Rect{X: 2000, Y: 100, Width: 800, Height: 600}, MonitorIndex: 1},
		{ID: 1, Title: "editor", Class: "code", Bounds: geometry.Rect{X: 100, Y: 100, Width: 800, Height: 600}, Focused: true, MonitorIndex: 0},
		{ID: 3, Title: "stale", Bounds: geometry.Rect{X: 9000, Y: 0, Width: 800, Height: 600}, MonitorIndex: desktop.NoMonitor},
	}
	return NewReport(monitors, windows)
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"text", "json", "yaml"} {
		if _, err := ParseFormat(valid); err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", valid, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(\"xml\") succeeded, want error")
	}
}

func TestNewReportOrdersWindows(t *testing.T) {
	r := testReport()

	if len(r.Windows) != 3 {
		t.Fatalf("got %d windows, want 3", len(r.Windows))
	}
	// Left to right by center, unmapped last.
	wantIDs := []uint32{1, 2, 3}
	for i, want := range wantIDs {
		if r.Windows[i].ID != want {
			t.Errorf("windows[%d].ID = %d, want %d", i, r.Windows[i].ID, want)
		}
	}
	if r.Windows[2].Monitor != nil {
		t.Error("unmapped window carries a monitor index")
	}
	if r.Windows[0].Monitor == nil || *r.Windows[0].Monitor != 0 {
		t.Error("mapped window lost its monitor index")
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := testReport().Render(&buf, FormatJSON); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Monitors) != 2 || len(decoded.Windows) != 3 {
		t.Errorf("decoded %d monitors / %d windows, want 2/3", len(decoded.Monitors), len(decoded.Windows))
	}
	// omitempty drops the monitor key for unmapped windows.
	if strings.Count(buf.String(), `"monitor"`) != 2 {
		t.Errorf("want exactly 2 monitor keys in JSON, got:\n%s", buf.String())
	}
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := testReport().Render(&buf, FormatYAML); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded Report
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded.Monitors) != 2 || len(decoded.Windows) != 3 {
		t.Errorf("decoded %d monitors / %d windows, want 2/3", len(decoded.Monitors), len(decoded.Windows))
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	if err := testReport().Render(&buf, FormatText); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"MONITOR", "WINDOW",
		"DP-1", "DP-2",
		"1920x1080+0+0", "1920x1080+1920+0",
		"0x00000001", "editor",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}

	// The focused window line carries the marker, others do not.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "editor") && !strings.Contains(line, "*") {
			t.Errorf("focused window line missing marker: %q", line)
		}
		if strings.Contains(line, "browser") && strings.Contains(line, "*") {
			t.Errorf("unfocused window line has marker: %q", line)
		}
	}

	// Unmapped window shows a dash in the monitor column.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "stale") && !strings.Contains(line, "-") {
			t.Errorf("unmapped window line missing dash: %q", line)
		}
	}
}

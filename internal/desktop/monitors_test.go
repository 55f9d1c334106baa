package desktop

import (
	"errors"
	"testing"

	"github.com/winshift/winshift/internal/geometry"
)

func TestBuildMonitorsOrdering(t *testing.T) {
	tests := []struct {
		name      string
		raw       []RawMonitor
		wantNames []string
	}{
		{
			name: "already ordered",
			raw: []RawMonitor{
				{Name: "DP-1", Bounds: geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
				{Name: "DP-2", Bounds: geometry.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}},
			},
			wantNames: []string{"DP-1", "DP-2"},
		},
		{
			name: "reported right to left",
			raw: []RawMonitor{
				{Name: "HDMI-1", Bounds: geometry.Rect{X: 3840, Y: 0, Width: 1920, Height: 1080}},
				{Name: "DP-2", Bounds: geometry.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}},
				{Name: "DP-1", Bounds: geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
			},
			wantNames: []string{"DP-1", "DP-2", "HDMI-1"},
		},
		{
			name: "same x ordered by y",
			raw: []RawMonitor{
				{Name: "lower", Bounds: geometry.Rect{X: 0, Y: 1080, Width: 1920, Height: 1080}},
				{Name: "upper", Bounds: geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
			},
			wantNames: []string{"upper", "lower"},
		},
		{
			name: "mixed resolutions with vertical offset",
			raw: []RawMonitor{
				{Name: "4k", Bounds: geometry.Rect{X: 1920, Y: -300, Width: 3840, Height: 2160}},
				{Name: "fhd", Bounds: geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
			},
			wantNames: []string{"fhd", "4k"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monitors, err := BuildMonitors(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(monitors) != len(tt.wantNames) {
				t.Fatalf("got %d monitors, want %d", len(monitors), len(tt.wantNames))
			}
			for i, m := range monitors {
				if m.Index != i {
					t.Errorf("monitors[%d].Index = %d, want %d", i, m.Index, i)
				}
				if m.Name != tt.wantNames[i] {
					t.Errorf("monitors[%d].Name = %q, want %q", i, m.Name, tt.wantNames[i])
				}
			}
		})
	}
}

func TestBuildMonitorsDeterministic(t *testing.T) {
	// The same physical layout reported in different orders must yield
	// identical indices.
	a := []RawMonitor{
		{Name: "DP-1", Bounds: geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
		{Name: "DP-2", Bounds: geometry.Rect{X: 1920, Y: 0, Width: 2560, Height: 1440}},
		{Name: "HDMI-1", Bounds: geometry.Rect{X: 4480, Y: 0, Width: 1920, Height: 1080}},
	}
	b := []RawMonitor{a[2], a[0], a[1]}

	ma, err := BuildMonitors(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mb, err := BuildMonitors(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range ma {
		if ma[i] != mb[i] {
			t.Errorf("monitors[%d] differ across input orders: %+v vs %+v", i, ma[i], mb[i])
		}
	}
}

func TestBuildMonitorsInputUntouched(t *testing.T) {
	raw := []RawMonitor{
		{Name: "right", Bounds: geometry.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}},
		{Name: "left", Bounds: geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}},
	}
	if _, err := BuildMonitors(raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw[0].Name != "right" {
		t.Error("BuildMonitors reordered its input slice")
	}
}

func TestBuildMonitorsEmpty(t *testing.T) {
	_, err := BuildMonitors(nil)
	if !errors.Is(err, ErrNoMonitors) {
		t.Fatalf("err = %v, want ErrNoMonitors", err)
	}
}

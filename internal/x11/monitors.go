package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"

	"github.com/winshift/winshift/internal/desktop"
	"github.com/winshift/winshift/internal/geometry"
)

// Monitors retrieves all active display regions using XRandR, one entry per
// enabled CRTC. Order is whatever the server reports; the catalog builder
// owns left-to-right indexing.
func (c *Connection) Monitors() ([]desktop.RawMonitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []desktop.RawMonitor

	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs.
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Monitor%d", i)
		if outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(outputInfo.Name)
		}

		monitors = append(monitors, desktop.RawMonitor{
			Name: name,
			Bounds: geometry.Rect{
				X:      int(crtcInfo.X),
				Y:      int(crtcInfo.Y),
				Width:  int(crtcInfo.Width),
				Height: int(crtcInfo.Height),
			},
		})
	}

	return monitors, nil
}

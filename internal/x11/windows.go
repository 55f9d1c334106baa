package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/winshift/winshift/internal/desktop"
	"github.com/winshift/winshift/internal/geometry"
)

// Windows lists visible, focusable top-level windows from the EWMH client
// list with their geometry in root-window coordinates. Desktop shells,
// docks, splash screens and notifications are filtered out; at most one
// entry has Focused set, from _NET_ACTIVE_WINDOW.
func (c *Connection) Windows() ([]desktop.RawWindow, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}

	// Tolerated failure: focus can sit on a desktop element the client
	// list does not track, and the selector has a fallback for that.
	active, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		active = 0
	}

	windows := make([]desktop.RawWindow, 0, len(clients))
	for _, id := range clients {
		if !c.isNormalWindow(id) {
			continue
		}

		bounds, ok := c.windowBounds(id)
		if !ok {
			continue
		}

		windows = append(windows, desktop.RawWindow{
			ID:      uint32(id),
			Title:   c.windowTitle(id),
			Class:   c.windowClass(id),
			Bounds:  bounds,
			Focused: id != 0 && id == active,
		})
	}

	return windows, nil
}

// isNormalWindow checks if a window is a normal application window.
func (c *Connection) isNormalWindow(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		// If we can't determine type, assume it's normal.
		return true
	}

	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_NORMAL" {
			return true
		}
		// Reject desktop, dock, splash, etc.
		if t == "_NET_WM_WINDOW_TYPE_DESKTOP" ||
			t == "_NET_WM_WINDOW_TYPE_DOCK" ||
			t == "_NET_WM_WINDOW_TYPE_SPLASH" ||
			t == "_NET_WM_WINDOW_TYPE_NOTIFICATION" {
			return false
		}
	}

	// If no specific type is set, assume it's normal.
	return len(types) == 0
}

// windowBounds returns the window geometry translated to root-window
// coordinates. GetGeometry alone reports coordinates relative to the WM
// frame, so the origin goes through TranslateCoordinates.
func (c *Connection) windowBounds(windowID xproto.Window) (geometry.Rect, bool) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return geometry.Rect{}, false
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return geometry.Rect{}, false
	}

	return geometry.Rect{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, true
}

func (c *Connection) windowTitle(windowID xproto.Window) string {
	title, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	return ""
}

func (c *Connection) windowClass(windowID xproto.Window) string {
	wmClass, err := icccm.WmClassGet(c.XUtil, windowID)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(wmClass.Class)
}

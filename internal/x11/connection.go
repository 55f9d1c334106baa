package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/winshift/winshift/internal/desktop"
)

// Connection manages the X11 connection and core X resources for a single
// query→decide→act cycle. It is opened at process start and closed on exit;
// nothing about it survives an invocation.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

var _ desktop.Session = (*Connection)(nil)

// Connect establishes a connection to the X11 server.
func Connect() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// Close disconnects from the X11 server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// Activate focuses and raises a window using _NET_ACTIVE_WINDOW.
// Sends a client message to the root window per EWMH spec. We build the
// message manually because the xgbutil ewmh helper panics on this library
// version (uint vs int type assertion).
func (c *Connection) Activate(id uint32) error {
	atomReply, err := xproto.InternAtom(c.XUtil.Conn(), false,
		uint16(len("_NET_ACTIVE_WINDOW")), "_NET_ACTIVE_WINDOW").Reply()
	if err != nil {
		return fmt.Errorf("failed to intern _NET_ACTIVE_WINDOW: %w", err)
	}

	const sourceIndication = 2 // pager/direct action
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(id),
		Type:   atomReply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{sourceIndication, 0, 0, 0, 0}),
	}

	err = xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
	if err != nil {
		return fmt.Errorf("failed to activate window 0x%x: %w", id, err)
	}
	return nil
}

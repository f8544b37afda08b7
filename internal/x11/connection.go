package x11

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/geom"
)

// Root window event mask held by the window manager
const rootEventMask = xproto.EventMaskSubstructureRedirect |
	xproto.EventMaskSubstructureNotify |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskKeyPress |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskFocusChange

const rootBackground = 0x3A6F9F

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	randrOnce sync.Once
	randrErr  error
}

// NewConnection connects to the given display, or $DISPLAY when empty
func NewConnection(display string) (*Connection, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("connect to X display: %w", err)
	}

	// Initialize keybind module (required for global hotkeys)
	keybind.Initialize(xu)

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// TakeOwnership selects substructure redirection on the root window. Only
// one client may hold it, so failure means another window manager runs.
func (c *Connection) TakeOwnership() error {
	conn := c.XUtil.Conn()
	err := xproto.ChangeWindowAttributesChecked(
		conn,
		c.Root,
		// Value list order follows the bit positions of the mask.
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{rootBackground, rootEventMask},
	).Check()
	if err != nil {
		return fmt.Errorf("another window manager is already running: %w", err)
	}
	xproto.ClearArea(conn, false, c.Root, 0, 0, 0, 0)
	return nil
}

// ScreenBounds returns the size of the root window
func (c *Connection) ScreenBounds() (geom.Rect, error) {
	g, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return geom.Rect{}, fmt.Errorf("root geometry: %w", err)
	}
	return geom.Rect{Width: int(g.Width), Height: int(g.Height)}, nil
}

// TopLevelWindows lists the current children of the root window in
// stacking order, bottom first.
func (c *Connection) TopLevelWindows() ([]client.WindowID, error) {
	tree, err := xproto.QueryTree(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("query tree: %w", err)
	}
	out := make([]client.WindowID, 0, len(tree.Children))
	for _, w := range tree.Children {
		out = append(out, client.WindowID(w))
	}
	return out, nil
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

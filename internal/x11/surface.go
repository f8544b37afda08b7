package x11

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/decor"
)

// WMName is advertised on the supporting window
const WMName = "aquawm"

// Hints the manager maintains or honors
var supported = []string{
	"_NET_SUPPORTED",
	"_NET_SUPPORTING_WM_CHECK",
	"_NET_CLIENT_LIST",
	"_NET_ACTIVE_WINDOW",
	"_NET_WORKAREA",
	"_NET_WM_NAME",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_WM_STATE_MAXIMIZED_HORZ",
	"_NET_WM_STATE_MAXIMIZED_VERT",
	"_NET_WM_STATE_ABOVE",
	"_NET_WM_STATE_BELOW",
	"_NET_WM_STATE_STAYS_ON_TOP",
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_WINDOW_TYPE_DOCK",
	"_NET_WM_STRUT",
	"_NET_WM_STRUT_PARTIAL",
}

var cursorGlyphs = map[decor.Cursor]uint16{
	decor.CursorNormal:      xcursor.LeftPtr,
	decor.CursorMove:        xcursor.Fleur,
	decor.CursorResizeH:     xcursor.SBHDoubleArrow,
	decor.CursorResizeV:     xcursor.SBVDoubleArrow,
	decor.CursorTopLeft:     xcursor.TopLeftCorner,
	decor.CursorTopRight:    xcursor.TopRightCorner,
	decor.CursorBottomLeft:  xcursor.BottomLeftCorner,
	decor.CursorBottomRight: xcursor.BottomRightCorner,
}

// Surface drives the X server on behalf of the window manager
type Surface struct {
	xu      *xgbutil.XUtil
	root    xproto.Window
	logger  *slog.Logger
	cursors map[decor.Cursor]xproto.Cursor
	check   *xwindow.Window
	pen     *pen
}

// NewSurface loads cursors and drawing resources and announces the manager
// through the EWMH supporting window.
func NewSurface(c *Connection, logger *slog.Logger) (*Surface, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Surface{
		xu:      c.XUtil,
		root:    c.Root,
		logger:  logger,
		cursors: make(map[decor.Cursor]xproto.Cursor, len(cursorGlyphs)),
	}

	for _, name := range decor.Cursors {
		cur, err := xcursor.CreateCursor(s.xu, cursorGlyphs[name])
		if err != nil {
			return nil, fmt.Errorf("create %s cursor: %w", name, err)
		}
		s.cursors[name] = cur
	}
	s.SetCursor(client.WindowID(s.root), decor.CursorNormal)

	p, err := newPen(s.xu, s.root)
	if err != nil {
		return nil, err
	}
	s.pen = p

	check, err := xwindow.Create(s.xu, s.root)
	if err != nil {
		return nil, fmt.Errorf("create supporting window: %w", err)
	}
	s.check = check
	if err := ewmh.SupportingWmCheckSet(s.xu, s.root, check.Id); err != nil {
		return nil, fmt.Errorf("set supporting window: %w", err)
	}
	if err := ewmh.SupportingWmCheckSet(s.xu, check.Id, check.Id); err != nil {
		return nil, fmt.Errorf("set supporting window: %w", err)
	}
	if err := ewmh.WmNameSet(s.xu, check.Id, WMName); err != nil {
		return nil, fmt.Errorf("set wm name: %w", err)
	}
	if err := ewmh.SupportedSet(s.xu, supported); err != nil {
		return nil, fmt.Errorf("set supported hints: %w", err)
	}
	return s, nil
}

// Close releases the resources created by NewSurface
func (s *Surface) Close() {
	if s.pen != nil {
		s.pen.free()
	}
	for _, cur := range s.cursors {
		xproto.FreeCursor(s.conn(), cur)
	}
	if s.check != nil {
		s.check.Destroy()
	}
}

func (s *Surface) conn() *xgb.Conn {
	return s.xu.Conn()
}

func xw(w client.WindowID) xproto.Window {
	return xproto.Window(w)
}

func (s *Surface) parentOrRoot(w client.WindowID) xproto.Window {
	if w == client.None {
		return s.root
	}
	return xw(w)
}

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/mousebind"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/decor"
	"github.com/1broseidon/aquawm/internal/geom"
	"github.com/1broseidon/aquawm/internal/wm"
)

const frameBackground = 0xE8E8E8

// Frames see their own pointer traffic and redirect requests made by the
// client they hold.
const frameEventMask = xproto.EventMaskExposure |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskSubstructureRedirect |
	xproto.EventMaskSubstructureNotify

// CreateFrame creates a frame window and reparents w into it
func (s *Surface) CreateFrame(w client.WindowID, frame geom.Rect) (client.WindowID, error) {
	win, err := xwindow.Generate(s.xu)
	if err != nil {
		return client.None, fmt.Errorf("allocate frame id: %w", err)
	}
	err = win.CreateChecked(s.root, frame.X, frame.Y, frame.Width, frame.Height,
		xproto.CwBackPixel|xproto.CwEventMask, frameBackground, frameEventMask)
	if err != nil {
		return client.None, fmt.Errorf("create frame: %w", err)
	}

	conn := s.conn()
	// Keep the client alive on the root if the manager dies.
	xproto.ChangeSaveSet(conn, xproto.SetModeInsert, xw(w))
	xproto.ConfigureWindow(conn, xw(w), xproto.ConfigWindowBorderWidth, []uint32{0})
	err = xproto.ReparentWindowChecked(conn, xw(w), win.Id,
		int16(geom.BorderWidth), int16(geom.TitlebarHeight)).Check()
	if err != nil {
		win.Destroy()
		return client.None, fmt.Errorf("reparent 0x%x: %w", uint32(w), err)
	}
	return client.WindowID(win.Id), nil
}

func (s *Surface) Destroy(w client.WindowID) {
	xproto.DestroyWindow(s.conn(), xw(w))
}

func (s *Surface) Map(w client.WindowID) {
	xproto.MapWindow(s.conn(), xw(w))
}

func (s *Surface) Unmap(w client.WindowID) {
	xproto.UnmapWindow(s.conn(), xw(w))
}

func (s *Surface) Move(w client.WindowID, x, y int) {
	xwindow.New(s.xu, xw(w)).Move(x, y)
}

func (s *Surface) Resize(w client.WindowID, width, height int) {
	xwindow.New(s.xu, xw(w)).Resize(width, height)
}

func (s *Surface) MoveResize(w client.WindowID, r geom.Rect) {
	xwindow.New(s.xu, xw(w)).MoveResize(r.X, r.Y, r.Width, r.Height)
}

func (s *Surface) Raise(w client.WindowID) {
	xwindow.New(s.xu, xw(w)).Stack(xproto.StackModeAbove)
}

func (s *Surface) Reparent(w, parent client.WindowID, x, y int) {
	xproto.ReparentWindow(s.conn(), xw(w), s.parentOrRoot(parent), int16(x), int16(y))
}

// Configure forwards a request for a window the manager does not frame
func (s *Surface) Configure(req wm.ConfigureRequest) {
	var mask uint16
	var values []uint32
	// Values must follow mask bit order.
	add := func(bit uint16, v uint32) {
		if req.ValueMask&bit != 0 {
			mask |= bit
			values = append(values, v)
		}
	}
	add(wm.ConfigX, uint32(int32(req.X)))
	add(wm.ConfigY, uint32(int32(req.Y)))
	add(wm.ConfigWidth, uint32(req.Width))
	add(wm.ConfigHeight, uint32(req.Height))
	add(wm.ConfigBorderWidth, uint32(req.BorderWidth))
	add(wm.ConfigSibling, uint32(req.Sibling))
	add(wm.ConfigStackMode, uint32(req.StackMode))
	if mask == 0 {
		return
	}
	xproto.ConfigureWindow(s.conn(), xw(req.Window), mask, values)
}

// Focus gives w the input focus when it is viewable. Clients that take
// part in WM_TAKE_FOCUS are told as well.
func (s *Surface) Focus(w client.WindowID) {
	attrs, err := xproto.GetWindowAttributes(s.conn(), xw(w)).Reply()
	if err != nil || attrs.MapState != xproto.MapStateViewable {
		return
	}
	xproto.SetInputFocus(s.conn(), xproto.InputFocusParent, xw(w), xproto.TimeCurrentTime)
	if s.supportsProtocol(w, "WM_TAKE_FOCUS") {
		if err := s.sendProtocol(w, "WM_TAKE_FOCUS"); err != nil {
			s.logger.Debug("take focus failed", "window", uint32(w), "error", err)
		}
	}
}

// GrabPointer routes all pointer events to w until UngrabPointer
func (s *Surface) GrabPointer(w client.WindowID, c decor.Cursor) error {
	ok, err := mousebind.GrabPointer(s.xu, xw(w), xproto.WindowNone, s.cursors[c])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("pointer grab on 0x%x refused", uint32(w))
	}
	return nil
}

func (s *Surface) UngrabPointer() {
	mousebind.UngrabPointer(s.xu)
}

func (s *Surface) SetCursor(w client.WindowID, c decor.Cursor) {
	cur, ok := s.cursors[c]
	if !ok {
		return
	}
	xproto.ChangeWindowAttributes(s.conn(), xw(w), xproto.CwCursor, []uint32{uint32(cur)})
}

func (s *Surface) supportsProtocol(w client.WindowID, name string) bool {
	protocols, err := icccm.WmProtocolsGet(s.xu, xw(w))
	if err != nil {
		return false
	}
	for _, p := range protocols {
		if p == name {
			return true
		}
	}
	return false
}

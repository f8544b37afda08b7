package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/geom"
	"github.com/1broseidon/aquawm/internal/wm"
)

// Attributes reads the geometry and map state of w
func (s *Surface) Attributes(w client.WindowID) (wm.Attributes, error) {
	attrs, err := xproto.GetWindowAttributes(s.conn(), xw(w)).Reply()
	if err != nil {
		return wm.Attributes{}, fmt.Errorf("window attributes 0x%x: %w", uint32(w), err)
	}
	g, err := xproto.GetGeometry(s.conn(), xproto.Drawable(w)).Reply()
	if err != nil {
		return wm.Attributes{}, fmt.Errorf("window geometry 0x%x: %w", uint32(w), err)
	}
	return wm.Attributes{
		Geometry: geom.Rect{
			X:      int(g.X),
			Y:      int(g.Y),
			Width:  int(g.Width),
			Height: int(g.Height),
		},
		OverrideRedirect: attrs.OverrideRedirect,
		Viewable:         attrs.MapState == xproto.MapStateViewable,
	}, nil
}

func (s *Surface) WindowTypes(w client.WindowID) []string {
	types, err := ewmh.WmWindowTypeGet(s.xu, xw(w))
	if err != nil {
		return nil
	}
	return types
}

func (s *Surface) WindowStates(w client.WindowID) []string {
	states, err := ewmh.WmStateGet(s.xu, xw(w))
	if err != nil {
		return nil
	}
	return states
}

// Title prefers _NET_WM_NAME and falls back to WM_NAME
func (s *Surface) Title(w client.WindowID) string {
	if name, err := ewmh.WmNameGet(s.xu, xw(w)); err == nil && strings.TrimSpace(name) != "" {
		return strings.TrimSpace(name)
	}
	if name, err := icccm.WmNameGet(s.xu, xw(w)); err == nil {
		return strings.TrimSpace(name)
	}
	return ""
}

// SetDockState keeps docks above normal windows for pagers that read
// _NET_WM_STATE.
func (s *Surface) SetDockState(w client.WindowID) {
	if err := ewmh.WmStateSet(s.xu, xw(w), []string{"_NET_WM_STATE_ABOVE", "_NET_WM_STATE_STAYS_ON_TOP"}); err != nil {
		s.logger.Debug("set dock state failed", "window", uint32(w), "error", err)
		return
	}
	prop, err := xprop.Atm(s.xu, "_NET_WM_STATE")
	if err != nil {
		return
	}
	below, err := xprop.Atm(s.xu, "_NET_WM_STATE_BELOW")
	if err != nil {
		return
	}
	buf := make([]byte, 4)
	xgb.Put32(buf, uint32(below))
	xproto.ChangeProperty(s.conn(), xproto.PropModeAppend, xw(w), prop,
		xproto.AtomAtom, 32, 1, buf)
}

// SetStrut publishes both the legacy and partial strut properties
func (s *Surface) SetStrut(w client.WindowID, st geom.Strut) {
	err := ewmh.WmStrutSet(s.xu, xw(w), &ewmh.WmStrut{
		Left:   uint(st.Left),
		Right:  uint(st.Right),
		Top:    uint(st.Top),
		Bottom: uint(st.Bottom),
	})
	if err != nil {
		s.logger.Debug("set strut failed", "window", uint32(w), "error", err)
	}
	err = ewmh.WmStrutPartialSet(s.xu, xw(w), &ewmh.WmStrutPartial{
		Left:         uint(st.Left),
		Right:        uint(st.Right),
		Top:          uint(st.Top),
		Bottom:       uint(st.Bottom),
		LeftStartY:   uint(st.LeftStartY),
		LeftEndY:     uint(st.LeftEndY),
		RightStartY:  uint(st.RightStartY),
		RightEndY:    uint(st.RightEndY),
		TopStartX:    uint(st.TopStartX),
		TopEndX:      uint(st.TopEndX),
		BottomStartX: uint(st.BottomStartX),
		BottomEndX:   uint(st.BottomEndX),
	})
	if err != nil {
		s.logger.Debug("set strut partial failed", "window", uint32(w), "error", err)
	}
}

// SetIconic records the ICCCM state of a client window
func (s *Surface) SetIconic(w client.WindowID, iconic bool) {
	state := uint(icccm.StateNormal)
	if iconic {
		state = icccm.StateIconic
	}
	if err := icccm.WmStateSet(s.xu, xw(w), &icccm.WmState{State: state}); err != nil {
		s.logger.Debug("set WM_STATE failed", "window", uint32(w), "error", err)
	}
}

func (s *Surface) PublishClients(ws []client.WindowID) {
	list := make([]xproto.Window, 0, len(ws))
	for _, w := range ws {
		list = append(list, xw(w))
	}
	if err := ewmh.ClientListSet(s.xu, list); err != nil {
		s.logger.Debug("set client list failed", "error", err)
	}
}

func (s *Surface) PublishActive(w client.WindowID) {
	if err := ewmh.ActiveWindowSet(s.xu, xw(w)); err != nil {
		s.logger.Debug("set active window failed", "error", err)
	}
}

func (s *Surface) PublishWorkarea(r geom.Rect) {
	err := ewmh.WorkareaSet(s.xu, []ewmh.Workarea{{
		X:      r.X,
		Y:      r.Y,
		Width:  uint(r.Width),
		Height: uint(r.Height),
	}})
	if err != nil {
		s.logger.Debug("set workarea failed", "error", err)
	}
}

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/geom"
)

// SendConfigure sends a synthetic ConfigureNotify so the client learns
// its root-relative position inside the frame.
func (s *Surface) SendConfigure(w client.WindowID, r geom.Rect) {
	ev := xproto.ConfigureNotifyEvent{
		Event:            xw(w),
		Window:           xw(w),
		AboveSibling:     xproto.WindowNone,
		X:                int16(r.X),
		Y:                int16(r.Y),
		Width:            uint16(r.Width),
		Height:           uint16(r.Height),
		BorderWidth:      0,
		OverrideRedirect: false,
	}
	xproto.SendEvent(s.conn(), false, xw(w), xproto.EventMaskStructureNotify, string(ev.Bytes()))
}

// SendDelete asks the window to close via WM_DELETE_WINDOW. Clients that do
// not speak the protocol are killed.
func (s *Surface) SendDelete(w client.WindowID) {
	if !s.supportsProtocol(w, "WM_DELETE_WINDOW") {
		s.logger.Debug("client lacks WM_DELETE_WINDOW, killing", "window", uint32(w))
		xproto.KillClient(s.conn(), uint32(w))
		return
	}
	if err := s.sendProtocol(w, "WM_DELETE_WINDOW"); err != nil {
		s.logger.Warn("close request failed", "window", uint32(w), "error", err)
	}
}

// sendProtocol delivers a WM_PROTOCOLS client message to w
func (s *Surface) sendProtocol(w client.WindowID, protocol string) error {
	protocols, err := xprop.Atm(s.xu, "WM_PROTOCOLS")
	if err != nil {
		return fmt.Errorf("failed to get WM_PROTOCOLS atom: %w", err)
	}
	atom, err := xprop.Atm(s.xu, protocol)
	if err != nil {
		return fmt.Errorf("failed to get %s atom: %w", protocol, err)
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xw(w),
		Type:   protocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(atom),
			uint32(xproto.TimeCurrentTime),
			0, 0, 0,
		}),
	}

	return xproto.SendEventChecked(
		s.conn(),
		false,
		xw(w),
		xproto.EventMaskNoEvent,
		string(ev.Bytes()),
	).Check()
}

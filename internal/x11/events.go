package x11

import (
	"context"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/wm"
)

// Events reads the X event stream on its own goroutine and translates it
// for the manager. The channel is closed when the connection goes away or
// ctx is cancelled.
func (c *Connection) Events(ctx context.Context, logger *slog.Logger) <-chan wm.Event {
	if logger == nil {
		logger = slog.Default()
	}
	out := make(chan wm.Event, 64)
	go func() {
		defer close(out)
		conn := c.XUtil.Conn()
		for {
			ev, xerr := conn.WaitForEvent()
			if ev == nil && xerr == nil {
				logger.Warn("X connection closed")
				return
			}
			if xerr != nil {
				// Errors from requests on windows that vanished are routine.
				logger.Debug("X error", "error", xerr)
				continue
			}
			translated, ok := c.translate(ev)
			if !ok {
				continue
			}
			select {
			case out <- translated:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func (c *Connection) translate(ev xgb.Event) (wm.Event, bool) {
	switch e := ev.(type) {
	case xproto.MapRequestEvent:
		return wm.MapRequest{Window: client.WindowID(e.Window)}, true
	case xproto.MapNotifyEvent:
		return wm.MapNotify{Window: client.WindowID(e.Window)}, true
	case xproto.UnmapNotifyEvent:
		return wm.UnmapNotify{Window: client.WindowID(e.Window)}, true
	case xproto.DestroyNotifyEvent:
		return wm.DestroyNotify{Window: client.WindowID(e.Window)}, true
	case xproto.ConfigureRequestEvent:
		return wm.ConfigureRequest{
			Window:      client.WindowID(e.Window),
			Parent:      client.WindowID(e.Parent),
			X:           int(e.X),
			Y:           int(e.Y),
			Width:       int(e.Width),
			Height:      int(e.Height),
			BorderWidth: int(e.BorderWidth),
			Sibling:     client.WindowID(e.Sibling),
			StackMode:   e.StackMode,
			ValueMask:   e.ValueMask,
		}, true
	case xproto.ButtonPressEvent:
		return wm.ButtonPress{
			Window: client.WindowID(e.Event),
			Button: byte(e.Detail),
			X:      int(e.EventX),
			Y:      int(e.EventY),
			RootX:  int(e.RootX),
			RootY:  int(e.RootY),
		}, true
	case xproto.ButtonReleaseEvent:
		return wm.ButtonRelease{
			Window: client.WindowID(e.Event),
			Button: byte(e.Detail),
			X:      int(e.EventX),
			Y:      int(e.EventY),
			RootX:  int(e.RootX),
			RootY:  int(e.RootY),
		}, true
	case xproto.MotionNotifyEvent:
		return wm.Motion{
			Window: client.WindowID(e.Event),
			X:      int(e.EventX),
			Y:      int(e.EventY),
			RootX:  int(e.RootX),
			RootY:  int(e.RootY),
		}, true
	case xproto.KeyPressEvent:
		return wm.KeyPress{Code: byte(e.Detail), State: e.State}, true
	case xproto.ClientMessageEvent:
		return c.clientMessage(e)
	case xproto.ExposeEvent:
		return wm.Expose{Window: client.WindowID(e.Window), Count: int(e.Count)}, true
	case xproto.EnterNotifyEvent:
		return wm.Enter{
			Window: client.WindowID(e.Event),
			X:      int(e.EventX),
			Y:      int(e.EventY),
		}, true
	case xproto.LeaveNotifyEvent:
		// Moving into the client window is not leaving the frame.
		if e.Detail == xproto.NotifyDetailInferior {
			return nil, false
		}
		return wm.Leave{Window: client.WindowID(e.Event)}, true
	case xproto.MappingNotifyEvent:
		if e.Request == xproto.MappingPointer {
			return nil, false
		}
		return wm.KeymapChange{}, true
	case randr.ScreenChangeNotifyEvent:
		return wm.ScreenChange{Width: int(e.Width), Height: int(e.Height)}, true
	}
	return nil, false
}

func (c *Connection) clientMessage(e xproto.ClientMessageEvent) (wm.Event, bool) {
	if e.Format != 32 {
		return nil, false
	}
	typ, err := xprop.AtomName(c.XUtil, e.Type)
	if err != nil {
		return nil, false
	}
	data := e.Data.Data32
	msg := wm.ClientMessage{Window: client.WindowID(e.Window), Type: typ}

	switch typ {
	case "WM_PROTOCOLS":
		msg.Atoms = c.atomNames(data[0])
	case "_NET_WM_STATE":
		msg.Action = data[0]
		msg.Atoms = c.atomNames(data[1], data[2])
	case "WM_CHANGE_STATE", "_NET_ACTIVE_WINDOW":
		msg.Action = data[0]
	default:
		return nil, false
	}
	return msg, true
}

func (c *Connection) atomNames(atoms ...uint32) []string {
	var names []string
	for _, a := range atoms {
		if a == 0 {
			continue
		}
		name, err := xprop.AtomName(c.XUtil, xproto.Atom(a))
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	return names
}

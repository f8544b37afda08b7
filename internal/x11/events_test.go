package x11

import (
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/wm"
)

func TestTranslateWindowEvents(t *testing.T) {
	c := &Connection{}

	tests := []struct {
		name string
		in   xgb.Event
		want wm.Event
	}{
		{
			name: "map request",
			in:   xproto.MapRequestEvent{Parent: 1, Window: 42},
			want: wm.MapRequest{Window: 42},
		},
		{
			name: "unmap notify",
			in:   xproto.UnmapNotifyEvent{Event: 7, Window: 42},
			want: wm.UnmapNotify{Window: 42},
		},
		{
			name: "destroy notify",
			in:   xproto.DestroyNotifyEvent{Event: 7, Window: 42},
			want: wm.DestroyNotify{Window: 42},
		},
		{
			name: "button press uses event window",
			in: xproto.ButtonPressEvent{
				Detail: 1, Event: 1001, Child: 42,
				EventX: 10, EventY: 5, RootX: 110, RootY: 105,
			},
			want: wm.ButtonPress{Window: 1001, Button: 1, X: 10, Y: 5, RootX: 110, RootY: 105},
		},
		{
			name: "motion",
			in:   xproto.MotionNotifyEvent{Event: 1001, EventX: 3, EventY: 4, RootX: 30, RootY: 40},
			want: wm.Motion{Window: 1001, X: 3, Y: 4, RootX: 30, RootY: 40},
		},
		{
			name: "key press",
			in:   xproto.KeyPressEvent{Detail: 23, State: xproto.ModMask4},
			want: wm.KeyPress{Code: 23, State: xproto.ModMask4},
		},
		{
			name: "expose",
			in:   xproto.ExposeEvent{Window: 1001, Count: 2},
			want: wm.Expose{Window: 1001, Count: 2},
		},
		{
			name: "leave",
			in:   xproto.LeaveNotifyEvent{Event: 1001, Detail: xproto.NotifyDetailNonlinear},
			want: wm.Leave{Window: 1001},
		},
		{
			name: "keyboard mapping",
			in:   xproto.MappingNotifyEvent{Request: xproto.MappingKeyboard, FirstKeycode: 8, Count: 248},
			want: wm.KeymapChange{},
		},
		{
			name: "modifier mapping",
			in:   xproto.MappingNotifyEvent{Request: xproto.MappingModifier},
			want: wm.KeymapChange{},
		},
		{
			name: "screen change",
			in:   randr.ScreenChangeNotifyEvent{Width: 2560, Height: 1440},
			want: wm.ScreenChange{Width: 2560, Height: 1440},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.translate(tt.in)
			if !ok {
				t.Fatalf("translate(%T) dropped the event", tt.in)
			}
			if got != tt.want {
				t.Fatalf("translate(%T) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTranslateConfigureRequest(t *testing.T) {
	c := &Connection{}
	got, ok := c.translate(xproto.ConfigureRequestEvent{
		Window:    42,
		Parent:    1001,
		X:         -5,
		Y:         10,
		Width:     300,
		Height:    200,
		ValueMask: xproto.ConfigWindowX | xproto.ConfigWindowWidth,
	})
	if !ok {
		t.Fatalf("configure request dropped")
	}
	req, ok := got.(wm.ConfigureRequest)
	if !ok {
		t.Fatalf("got %T, want wm.ConfigureRequest", got)
	}
	if req.Window != client.WindowID(42) || req.Parent != client.WindowID(1001) {
		t.Fatalf("windows = %d/%d, want 42/1001", req.Window, req.Parent)
	}
	if req.X != -5 || req.Width != 300 {
		t.Fatalf("geometry = %+v", req)
	}
	if req.ValueMask != wm.ConfigX|wm.ConfigWidth {
		t.Fatalf("value mask = %b, want %b", req.ValueMask, wm.ConfigX|wm.ConfigWidth)
	}
}

func TestTranslateIgnoresInferiorLeave(t *testing.T) {
	c := &Connection{}
	if _, ok := c.translate(xproto.LeaveNotifyEvent{Event: 1001, Detail: xproto.NotifyDetailInferior}); ok {
		t.Fatalf("leave into the client window should be dropped")
	}
}

func TestTranslateDropsUnknownEvents(t *testing.T) {
	c := &Connection{}
	if _, ok := c.translate(xproto.FocusInEvent{}); ok {
		t.Fatalf("focus-in should be dropped")
	}
}

func TestTranslateDropsPointerMapping(t *testing.T) {
	c := &Connection{}
	if _, ok := c.translate(xproto.MappingNotifyEvent{Request: xproto.MappingPointer}); ok {
		t.Fatalf("pointer button remaps do not affect key grabs")
	}
}

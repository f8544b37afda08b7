package wm

import (
	"testing"

	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/geom"
)

func TestDocks_ShrinkAndRestoreWorkarea(t *testing.T) {
	m, fs := newTestManager(t)
	addDock(fs, 10, geom.Rect{X: 0, Y: 0, Width: 1920, Height: 30})
	addDock(fs, 11, geom.Rect{X: 0, Y: 1040, Width: 1920, Height: 40})

	mapWindow(m, 10)
	if got, want := m.Workarea(), (geom.Rect{X: 0, Y: 30, Width: 1920, Height: 1050}); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	mapWindow(m, 11)
	want := geom.Rect{X: 0, Y: 30, Width: 1920, Height: 1010}
	if got := m.Workarea(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if fs.workarea != want {
		t.Fatalf("published workarea %+v, expected %+v", fs.workarea, want)
	}

	top := mustClient(t, m, 10)
	if !top.Dock || top.DockSide != geom.SideTop || top.Strut != 30 {
		t.Fatalf("unexpected top dock record %+v", top)
	}
	if s := fs.struts[11]; s.Bottom != 40 || s.BottomEndX != 1919 {
		t.Fatalf("unexpected bottom strut %+v", s)
	}

	m.Dispatch(UnmapNotify{Window: 11})
	if got, want := m.Workarea(), (geom.Rect{X: 0, Y: 30, Width: 1920, Height: 1050}); got != want {
		t.Fatalf("after unmapping bottom dock expected %+v, got %+v", want, got)
	}

	m.Dispatch(DestroyNotify{Window: 10})
	if got := m.Workarea(); got != testScreen {
		t.Fatalf("expected full screen workarea, got %+v", got)
	}
}

func TestDocks_NeverActiveAndAlwaysRaised(t *testing.T) {
	m, fs := newTestManager(t)
	addDock(fs, 10, geom.Rect{X: 0, Y: 0, Width: 1920, Height: 30})
	addWindow(fs, 1, 400, 300)
	mapWindow(m, 10)
	mapWindow(m, 1)

	if m.Active() != 1 {
		t.Fatalf("expected 1 active, got %d", m.Active())
	}
	before := fs.countRaised(10)
	m.Dispatch(Expose{Window: mustClient(t, m, 1).Frame})
	if fs.countRaised(10) <= before {
		t.Fatalf("dock was not re-raised after an event")
	}
	if fs.raised[len(fs.raised)-1] != 10 {
		t.Fatalf("dock must be raised last")
	}
}

func TestDocks_NewWindowsAvoidStruts(t *testing.T) {
	m, fs := newTestManager(t)
	addDock(fs, 10, geom.Rect{X: 0, Y: 0, Width: 1920, Height: 30})
	mapWindow(m, 10)

	addWindow(fs, 1, 1920, 1080)
	mapWindow(m, 1)

	frame := mustClient(t, m, 1).FrameRect()
	if frame.Y < 30 {
		t.Fatalf("frame %+v overlaps the dock", frame)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		info       WindowInfo
		heuristics bool
		want       Kind
	}{
		{name: "dock type", info: WindowInfo{Types: []string{"_NET_WM_WINDOW_TYPE_DOCK"}, Geometry: geom.Rect{X: 500, Y: 500, Width: 500, Height: 500}}, want: KindDock},
		{name: "desktop type", info: WindowInfo{Types: []string{"_NET_WM_WINDOW_TYPE_DESKTOP"}}, want: KindDock},
		{name: "above state", info: WindowInfo{States: []string{"_NET_WM_STATE_ABOVE"}}, want: KindDock},
		{name: "normal", info: WindowInfo{Types: []string{"_NET_WM_WINDOW_TYPE_NORMAL"}, Title: "xterm", Geometry: geom.Rect{X: 300, Y: 300, Width: 400, Height: 300}}, heuristics: true, want: KindNormal},
		{name: "panel title", info: WindowInfo{Title: "xfce4-panel", Geometry: geom.Rect{X: 300, Y: 300, Width: 400, Height: 300}}, heuristics: true, want: KindDock},
		{name: "panel title without heuristics", info: WindowInfo{Title: "polybar", Geometry: geom.Rect{X: 300, Y: 300, Width: 400, Height: 300}}, want: KindNormal},
		{name: "thin strip at top", info: WindowInfo{Geometry: geom.Rect{X: 0, Y: 0, Width: 1920, Height: 24}}, heuristics: true, want: KindDock},
		{name: "thin strip at right", info: WindowInfo{Geometry: geom.Rect{X: 1880, Y: 300, Width: 40, Height: 500}}, heuristics: true, want: KindDock},
		{name: "small centered window", info: WindowInfo{Geometry: geom.Rect{X: 900, Y: 500, Width: 200, Height: 90}}, heuristics: true, want: KindNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.info, testScreen, tt.heuristics); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestMaximize_RoundTripInsideDockedWorkarea(t *testing.T) {
	m, fs := newTestManager(t)
	addDock(fs, 10, geom.Rect{X: 0, Y: 0, Width: 1920, Height: 30})
	addDock(fs, 11, geom.Rect{X: 0, Y: 1040, Width: 1920, Height: 40})
	mapWindow(m, 10)
	mapWindow(m, 11)
	addWindow(fs, 1, 400, 300)
	mapWindow(m, 1)

	c := mustClient(t, m, 1)
	orig := c.Geom
	m.toggleMaximize(c)
	if c.FrameRect() != m.Workarea() {
		t.Fatalf("expected frame %+v, got %+v", m.Workarea(), c.FrameRect())
	}
	m.toggleMaximize(c)
	if c.Maximized || c.Geom != orig {
		t.Fatalf("expected %+v after restore, got %+v", orig, c.Geom)
	}
}

func TestFullscreen_KeyBindingReparentsToRoot(t *testing.T) {
	m, fs := newTestManager(t)
	addWindow(fs, 1, 400, 300)
	mapWindow(m, 1)
	c := mustClient(t, m, 1)
	orig := c.Geom

	m.Dispatch(KeyPress{Code: 3})
	if !c.Fullscreen || c.Geom != testScreen {
		t.Fatalf("expected fullscreen geometry %+v, got %+v", testScreen, c.Geom)
	}
	if fs.mapped[c.Frame] {
		t.Fatalf("frame should be hidden while fullscreen")
	}
	last := fs.reparented[len(fs.reparented)-1]
	if last.w != 1 || last.parent != client.None {
		t.Fatalf("expected window reparented to root, got %+v", last)
	}

	m.Dispatch(KeyPress{Code: 3})
	if c.Fullscreen || c.Geom != orig {
		t.Fatalf("expected %+v after leaving fullscreen, got %+v", orig, c.Geom)
	}
	last = fs.reparented[len(fs.reparented)-1]
	if last.parent != c.Frame || last.x != geom.BorderWidth || last.y != geom.TitlebarHeight {
		t.Fatalf("expected window back in its frame, got %+v", last)
	}
	if !fs.mapped[c.Frame] {
		t.Fatalf("frame should be shown again")
	}
}

func TestStateMessage_HonoursAction(t *testing.T) {
	m, fs := newTestManager(t)
	addWindow(fs, 1, 400, 300)
	mapWindow(m, 1)
	c := mustClient(t, m, 1)

	m.Dispatch(ClientMessage{Window: 1, Type: "_NET_WM_STATE", Action: StateRemove, Atoms: []string{"_NET_WM_STATE_FULLSCREEN", ""}})
	if c.Fullscreen {
		t.Fatalf("remove must not enter fullscreen")
	}
	m.Dispatch(ClientMessage{Window: 1, Type: "_NET_WM_STATE", Action: StateAdd, Atoms: []string{"_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_MAXIMIZED_HORZ"}})
	if !c.Maximized {
		t.Fatalf("expected maximized")
	}
	m.Dispatch(ClientMessage{Window: 1, Type: "_NET_WM_STATE", Action: StateAdd, Atoms: []string{"_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_MAXIMIZED_HORZ"}})
	if !c.Maximized {
		t.Fatalf("a second add must keep the client maximized")
	}
	m.Dispatch(ClientMessage{Window: 1, Type: "_NET_WM_STATE", Action: StateToggle, Atoms: []string{"", "_NET_WM_STATE_FULLSCREEN"}})
	if !c.Fullscreen || c.Maximized {
		t.Fatalf("expected fullscreen with maximized cleared")
	}
}

func TestConfigureRequest(t *testing.T) {
	m, fs := newTestManager(t)
	addWindow(fs, 1, 400, 300)
	mapWindow(m, 1)
	c := mustClient(t, m, 1)

	m.Dispatch(ConfigureRequest{Window: 42, Width: 10, ValueMask: ConfigWidth})
	if len(fs.passthrough) != 1 || fs.passthrough[0].Window != 42 {
		t.Fatalf("unknown window request should pass through unchanged")
	}

	m.Dispatch(ConfigureRequest{Window: 1, X: 100, Y: 100, Width: 50, Height: 600, ValueMask: ConfigX | ConfigY | ConfigWidth | ConfigHeight})
	want := geom.Rect{X: 100, Y: 100, Width: geom.MinWidth, Height: 600}
	if c.Geom != want {
		t.Fatalf("expected %+v, got %+v", want, c.Geom)
	}
	last := fs.configures[len(fs.configures)-1]
	if last.w != 1 || last.r != want {
		t.Fatalf("expected configure notify %+v, got %+v", want, last)
	}

	m.toggleMaximize(c)
	maxed := c.Geom
	m.Dispatch(ConfigureRequest{Window: 1, X: 5, Y: 5, Width: 300, Height: 300, ValueMask: ConfigX | ConfigY | ConfigWidth | ConfigHeight})
	if c.Geom != maxed {
		t.Fatalf("maximized client geometry changed to %+v", c.Geom)
	}
	if last := fs.configures[len(fs.configures)-1]; last.r != maxed {
		t.Fatalf("maximized client should be told its real geometry, got %+v", last.r)
	}
}

func TestMinimizeButtonHidesClient(t *testing.T) {
	m, fs := newTestManager(t)
	addWindow(fs, 1, 400, 300)
	mapWindow(m, 1)
	c := mustClient(t, m, 1)
	f := c.FrameRect()

	ctl := controlAt(t, f.Width, "minimize")
	m.Dispatch(ButtonPress{Window: c.Frame, Button: 1, X: ctl.X + 2, Y: ctl.Y + 2, RootX: f.X + ctl.X + 2, RootY: f.Y + ctl.Y + 2})

	if fs.mapped[c.Frame] || fs.mapped[c.Window] {
		t.Fatalf("expected frame and window unmapped")
	}
	if !fs.iconic[1] {
		t.Fatalf("expected WM_STATE iconic")
	}
	if m.Dragging() != nil {
		t.Fatalf("button press must not start a drag")
	}
}

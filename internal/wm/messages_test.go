package wm

import (
	"errors"
	"testing"

	"github.com/1broseidon/aquawm/internal/geom"
	"github.com/1broseidon/aquawm/internal/hotkeys"
)

func TestTakeFocusMessage(t *testing.T) {
	m, fs := newTestManager(t)
	addWindow(fs, 1, 400, 300)
	addWindow(fs, 2, 400, 300)
	mapWindow(m, 1)
	mapWindow(m, 2)
	if fs.focused != 1 {
		t.Fatalf("expected first client focused, got %d", fs.focused)
	}

	m.Dispatch(ClientMessage{Window: 2, Type: "WM_PROTOCOLS", Atoms: []string{"WM_TAKE_FOCUS"}})
	if fs.focused != 2 {
		t.Fatalf("expected focus on 2, got %d", fs.focused)
	}
	if _, ok := m.Client(2); !ok {
		t.Fatalf("take-focus must not unmanage the client")
	}
}

func TestActiveWindowMessage(t *testing.T) {
	m, fs := newTestManager(t)
	addWindow(fs, 1, 400, 300)
	addWindow(fs, 2, 400, 300)
	mapWindow(m, 1)
	mapWindow(m, 2)
	c1 := mustClient(t, m, 1)
	c2 := mustClient(t, m, 2)
	raisedBefore := fs.countRaised(c2.Frame)

	m.Dispatch(ClientMessage{Window: 2, Type: "_NET_ACTIVE_WINDOW", Action: 2})

	if m.Active() != 2 || !c2.Active || c1.Active {
		t.Fatalf("expected 2 to be the only active client, active=%d", m.Active())
	}
	if fs.countRaised(c2.Frame) != raisedBefore+1 {
		t.Fatalf("expected frame of 2 raised")
	}
	if fs.focused != 2 || fs.active != 2 {
		t.Fatalf("expected focus and _NET_ACTIVE_WINDOW on 2, got %d/%d", fs.focused, fs.active)
	}
}

func TestActiveWindowMessage_IgnoresDock(t *testing.T) {
	m, fs := newTestManager(t)
	addDock(fs, 10, geom.Rect{X: 0, Y: 0, Width: 1920, Height: 30})
	mapWindow(m, 10)
	addWindow(fs, 1, 400, 300)
	mapWindow(m, 1)

	m.Dispatch(ClientMessage{Window: 10, Type: "_NET_ACTIVE_WINDOW", Action: 2})
	if m.Active() != 1 {
		t.Fatalf("a dock must never become active, active=%d", m.Active())
	}
}

func TestChangeStateMessage(t *testing.T) {
	m, fs := newTestManager(t)
	addWindow(fs, 1, 400, 300)
	mapWindow(m, 1)
	c := mustClient(t, m, 1)

	// NormalState is not a request the manager acts on.
	m.Dispatch(ClientMessage{Window: 1, Type: "WM_CHANGE_STATE", Action: 1})
	if !fs.mapped[c.Frame] || c.Iconic {
		t.Fatalf("normal state request must leave the client shown")
	}

	m.Dispatch(ClientMessage{Window: 1, Type: "WM_CHANGE_STATE", Action: 3})
	if fs.mapped[c.Frame] || fs.mapped[c.Window] {
		t.Fatalf("expected frame and window unmapped")
	}
	if !fs.iconic[1] || !c.Iconic {
		t.Fatalf("expected client marked iconic")
	}
	if _, ok := m.Client(1); !ok {
		t.Fatalf("minimized client must stay managed")
	}
}

func TestActiveWindowMessage_RestoresMinimized(t *testing.T) {
	m, fs := newTestManager(t)
	addWindow(fs, 1, 400, 300)
	addWindow(fs, 2, 400, 300)
	mapWindow(m, 1)
	mapWindow(m, 2)
	c1 := mustClient(t, m, 1)

	m.Dispatch(ClientMessage{Window: 1, Type: "WM_CHANGE_STATE", Action: 3})
	// The server reports the unmap the minimize caused.
	m.Dispatch(UnmapNotify{Window: 1})
	if c1.Mapped || m.Active() != 2 {
		t.Fatalf("expected 1 unmapped and focus on 2, active=%d", m.Active())
	}

	m.Dispatch(ClientMessage{Window: 1, Type: "_NET_ACTIVE_WINDOW", Action: 2})
	if !fs.mapped[c1.Window] || !fs.mapped[c1.Frame] {
		t.Fatalf("expected window and frame mapped again")
	}
	if fs.iconic[1] || c1.Iconic {
		t.Fatalf("expected iconic state cleared")
	}
	if m.Active() != 1 || !c1.Active {
		t.Fatalf("expected restored client active, active=%d", m.Active())
	}
}

func TestMapRequest_ClearsIconic(t *testing.T) {
	m, fs := newTestManager(t)
	addWindow(fs, 1, 400, 300)
	mapWindow(m, 1)
	c := mustClient(t, m, 1)

	m.Dispatch(ClientMessage{Window: 1, Type: "WM_CHANGE_STATE", Action: 3})
	m.Dispatch(UnmapNotify{Window: 1})
	mapWindow(m, 1)

	if c.Iconic || fs.iconic[1] || !c.Mapped || !fs.mapped[c.Frame] {
		t.Fatalf("map request should show the client again: %+v", c.Snapshot())
	}
}

func TestScreenChange(t *testing.T) {
	m, fs := newTestManager(t)
	addWindow(fs, 1, 400, 300)
	addWindow(fs, 2, 400, 300)
	mapWindow(m, 1)
	mapWindow(m, 2)
	maxed := mustClient(t, m, 1)
	full := mustClient(t, m, 2)

	m.Dispatch(ClientMessage{Window: 1, Type: "_NET_WM_STATE", Action: StateAdd, Atoms: []string{"_NET_WM_STATE_MAXIMIZED_HORZ"}})
	m.Dispatch(ClientMessage{Window: 2, Type: "_NET_WM_STATE", Action: StateAdd, Atoms: []string{"_NET_WM_STATE_FULLSCREEN"}})

	m.Dispatch(ScreenChange{Width: 1280, Height: 720})

	screen := geom.Rect{Width: 1280, Height: 720}
	if m.Screen() != screen || m.Workarea() != screen {
		t.Fatalf("expected screen and workarea %+v, got %+v / %+v", screen, m.Screen(), m.Workarea())
	}
	if fs.workarea != screen {
		t.Fatalf("expected published workarea %+v, got %+v", screen, fs.workarea)
	}
	want := geom.Rect{X: geom.BorderWidth, Y: geom.TitlebarHeight, Width: 1280 - 2*geom.BorderWidth, Height: 720 - geom.TitlebarHeight - geom.BorderWidth}
	if maxed.Geom != want {
		t.Fatalf("expected maximized client at %+v, got %+v", want, maxed.Geom)
	}
	if full.Geom != screen {
		t.Fatalf("expected fullscreen client at %+v, got %+v", screen, full.Geom)
	}
	if last := fs.configures[len(fs.configures)-1]; last.w != 2 || last.r != screen {
		t.Fatalf("fullscreen client should be told its new size, got %+v", last)
	}

	m.Dispatch(ScreenChange{Width: 0, Height: 720})
	if m.Screen() != screen {
		t.Fatalf("an empty screen size must be ignored")
	}
}

func TestDrag_MaximizeMidMoveFreezesGeometry(t *testing.T) {
	m, fs := newTestManager(t)
	addWindow(fs, 1, 400, 300)
	mapWindow(m, 1)
	c := mustClient(t, m, 1)

	press(m, c, 200, 10)
	if m.Phase() != PhaseMoving {
		t.Fatalf("expected a move drag")
	}

	m.Dispatch(ClientMessage{Window: 1, Type: "_NET_WM_STATE", Action: StateAdd, Atoms: []string{"_NET_WM_STATE_MAXIMIZED_VERT"}})
	maxed := c.Geom
	if !c.Maximized {
		t.Fatalf("expected maximized")
	}

	m.Dispatch(Motion{Window: c.Frame, RootX: 900, RootY: 700})
	if c.Geom != maxed {
		t.Fatalf("motion moved a maximized client to %+v", c.Geom)
	}
	if len(fs.moves) != 0 {
		t.Fatalf("expected no moves, got %v", fs.moves)
	}

	m.Dispatch(ButtonRelease{Window: c.Frame, Button: 1})
	if m.Phase() != PhaseIdle || fs.ungrabs != 1 {
		t.Fatalf("release should end the drag and ungrab once")
	}
	if c.Geom != maxed || !c.Maximized {
		t.Fatalf("expected maximized geometry kept, got %+v", c.Geom)
	}
}

func TestDrag_StaleTargetResetsOnMotion(t *testing.T) {
	m, fs := newTestManager(t)
	addWindow(fs, 1, 400, 300)
	mapWindow(m, 1)
	c := mustClient(t, m, 1)

	press(m, c, 200, 10)
	// Drop the record behind the manager's back.
	if _, ok := m.clients.Remove(1); !ok {
		t.Fatalf("remove failed")
	}

	m.Dispatch(Motion{Window: c.Frame, RootX: 500, RootY: 500})
	if m.Phase() != PhaseIdle || m.Dragging() != nil {
		t.Fatalf("expected idle after stale drag, got %s", m.Phase())
	}
	if fs.ungrabs != 1 {
		t.Fatalf("expected the grab released, got %d ungrabs", fs.ungrabs)
	}

	m.Dispatch(ButtonRelease{Window: c.Frame, Button: 1})
	if fs.ungrabs != 1 {
		t.Fatalf("release after reset must not ungrab again")
	}
}

type rebindingKeys struct {
	fakeKeys
	rebinds int
	err     error
}

func (k *rebindingKeys) Rebind() error {
	k.rebinds++
	return k.err
}

func TestKeymapChangeRebinds(t *testing.T) {
	fs := newFakeSurface()
	keys := &rebindingKeys{fakeKeys: fakeKeys{1: hotkeys.ActionClose}}
	m := New(Config{Surface: fs, Keys: keys, Screen: testScreen})

	m.Dispatch(KeymapChange{})
	if keys.rebinds != 1 {
		t.Fatalf("expected one rebind, got %d", keys.rebinds)
	}

	keys.err = errors.New("grab failed")
	m.Dispatch(KeymapChange{})
	if keys.rebinds != 2 {
		t.Fatalf("expected a second rebind attempt, got %d", keys.rebinds)
	}
}

func TestKeymapChangeWithoutRebinder(t *testing.T) {
	for _, keys := range []KeyMatcher{nil, fakeKeys{}} {
		m := New(Config{Surface: newFakeSurface(), Keys: keys, Screen: testScreen})
		m.Dispatch(KeymapChange{})
	}
}

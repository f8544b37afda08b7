package wm

import (
	"errors"
	"testing"

	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/decor"
	"github.com/1broseidon/aquawm/internal/geom"
	"github.com/1broseidon/aquawm/internal/hotkeys"
)

type moveCall struct {
	w    client.WindowID
	x, y int
}

type reparentCall struct {
	w, parent client.WindowID
	x, y      int
}

type rectCall struct {
	w client.WindowID
	r geom.Rect
}

// fakeSurface records what the manager asks of the display server
type fakeSurface struct {
	attrs  map[client.WindowID]Attributes
	types  map[client.WindowID][]string
	states map[client.WindowID][]string
	titles map[client.WindowID]string

	nextFrame client.WindowID
	frameErr  error
	grabErr   error

	frames      map[client.WindowID]client.WindowID
	destroyed   []client.WindowID
	mapped      map[client.WindowID]bool
	moves       []moveCall
	moveResizes []rectCall
	resizes     []rectCall
	raised      []client.WindowID
	reparented  []reparentCall
	passthrough []ConfigureRequest
	focused     client.WindowID
	grabs       int
	ungrabs     int
	cursors     map[client.WindowID]decor.Cursor
	dockStates  []client.WindowID
	struts      map[client.WindowID]geom.Strut
	iconic      map[client.WindowID]bool
	clientList  []client.WindowID
	active      client.WindowID
	workarea    geom.Rect
	configures  []rectCall
	deletes     []client.WindowID
	paints      map[client.WindowID]int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		attrs:     make(map[client.WindowID]Attributes),
		types:     make(map[client.WindowID][]string),
		states:    make(map[client.WindowID][]string),
		titles:    make(map[client.WindowID]string),
		nextFrame: 1000,
		frames:    make(map[client.WindowID]client.WindowID),
		mapped:    make(map[client.WindowID]bool),
		cursors:   make(map[client.WindowID]decor.Cursor),
		struts:    make(map[client.WindowID]geom.Strut),
		iconic:    make(map[client.WindowID]bool),
		paints:    make(map[client.WindowID]int),
	}
}

func (f *fakeSurface) Attributes(w client.WindowID) (Attributes, error) {
	a, ok := f.attrs[w]
	if !ok {
		return Attributes{}, errors.New("bad window")
	}
	return a, nil
}

func (f *fakeSurface) WindowTypes(w client.WindowID) []string  { return f.types[w] }
func (f *fakeSurface) WindowStates(w client.WindowID) []string { return f.states[w] }
func (f *fakeSurface) Title(w client.WindowID) string          { return f.titles[w] }

func (f *fakeSurface) CreateFrame(w client.WindowID, frame geom.Rect) (client.WindowID, error) {
	if f.frameErr != nil {
		return client.None, f.frameErr
	}
	f.nextFrame++
	f.frames[f.nextFrame] = w
	f.moveResizes = append(f.moveResizes, rectCall{w: f.nextFrame, r: frame})
	return f.nextFrame, nil
}

func (f *fakeSurface) Destroy(w client.WindowID) {
	f.destroyed = append(f.destroyed, w)
	delete(f.mapped, w)
}

func (f *fakeSurface) Map(w client.WindowID)   { f.mapped[w] = true }
func (f *fakeSurface) Unmap(w client.WindowID) { f.mapped[w] = false }

func (f *fakeSurface) Move(w client.WindowID, x, y int) {
	f.moves = append(f.moves, moveCall{w: w, x: x, y: y})
}

func (f *fakeSurface) Resize(w client.WindowID, width, height int) {
	f.resizes = append(f.resizes, rectCall{w: w, r: geom.Rect{Width: width, Height: height}})
}

func (f *fakeSurface) MoveResize(w client.WindowID, r geom.Rect) {
	f.moveResizes = append(f.moveResizes, rectCall{w: w, r: r})
}

func (f *fakeSurface) Raise(w client.WindowID) { f.raised = append(f.raised, w) }

func (f *fakeSurface) Reparent(w, parent client.WindowID, x, y int) {
	f.reparented = append(f.reparented, reparentCall{w: w, parent: parent, x: x, y: y})
}

func (f *fakeSurface) Configure(req ConfigureRequest) { f.passthrough = append(f.passthrough, req) }

func (f *fakeSurface) Focus(w client.WindowID) { f.focused = w }

func (f *fakeSurface) GrabPointer(w client.WindowID, c decor.Cursor) error {
	if f.grabErr != nil {
		return f.grabErr
	}
	f.grabs++
	return nil
}

func (f *fakeSurface) UngrabPointer() { f.ungrabs++ }

func (f *fakeSurface) SetCursor(w client.WindowID, c decor.Cursor) { f.cursors[w] = c }

func (f *fakeSurface) SetDockState(w client.WindowID) { f.dockStates = append(f.dockStates, w) }

func (f *fakeSurface) SetStrut(w client.WindowID, s geom.Strut) { f.struts[w] = s }

func (f *fakeSurface) SetIconic(w client.WindowID, iconic bool) { f.iconic[w] = iconic }

func (f *fakeSurface) PublishClients(ws []client.WindowID) {
	f.clientList = append([]client.WindowID(nil), ws...)
}

func (f *fakeSurface) PublishActive(w client.WindowID) { f.active = w }

func (f *fakeSurface) PublishWorkarea(r geom.Rect) { f.workarea = r }

func (f *fakeSurface) SendConfigure(w client.WindowID, r geom.Rect) {
	f.configures = append(f.configures, rectCall{w: w, r: r})
}

func (f *fakeSurface) SendDelete(w client.WindowID) { f.deletes = append(f.deletes, w) }

func (f *fakeSurface) Paint(frame client.WindowID, ops []decor.Op) { f.paints[frame]++ }

func (f *fakeSurface) countRaised(w client.WindowID) int {
	n := 0
	for _, r := range f.raised {
		if r == w {
			n++
		}
	}
	return n
}

// fakeKeys maps key codes straight to actions
type fakeKeys map[uint8]hotkeys.Action

func (k fakeKeys) Match(state uint16, code uint8) hotkeys.Action { return k[code] }

var testScreen = geom.Rect{Width: 1920, Height: 1080}

func newTestManager(t *testing.T) (*Manager, *fakeSurface) {
	t.Helper()
	fs := newFakeSurface()
	m := New(Config{
		Surface:        fs,
		Keys:           fakeKeys{1: hotkeys.ActionClose, 2: hotkeys.ActionCycleFocus, 3: hotkeys.ActionFullscreen},
		Screen:         testScreen,
		DockHeuristics: true,
	})
	return m, fs
}

// addWindow makes a normal application window known to the fake server
func addWindow(fs *fakeSurface, w client.WindowID, width, height int) {
	fs.attrs[w] = Attributes{Geometry: geom.Rect{X: 0, Y: 0, Width: width, Height: height}}
	fs.titles[w] = "xterm"
}

func addDock(fs *fakeSurface, w client.WindowID, r geom.Rect) {
	fs.attrs[w] = Attributes{Geometry: r, Viewable: true}
	fs.types[w] = []string{"_NET_WM_WINDOW_TYPE_DOCK"}
	fs.titles[w] = "bar"
}

// mapWindow runs the request/notify pair a client causes when it maps
func mapWindow(m *Manager, w client.WindowID) {
	m.Dispatch(MapRequest{Window: w})
	m.Dispatch(MapNotify{Window: w})
}

func mustClient(t *testing.T, m *Manager, w client.WindowID) *client.Client {
	t.Helper()
	c, ok := m.Client(w)
	if !ok {
		t.Fatalf("window %d is not managed", w)
	}
	return c
}

// Package wm is the window-manager core: it owns the client registry,
// reacts to display events one at a time and drives a Surface.
package wm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/decor"
	"github.com/1broseidon/aquawm/internal/geom"
	"github.com/1broseidon/aquawm/internal/hotkeys"
)

var (
	// ErrStopped is returned by control requests once the loop has exited.
	ErrStopped = errors.New("window manager stopped")
	// ErrDisconnected is returned by Run when the event stream ends.
	ErrDisconnected = errors.New("display connection closed")
)

// KeyMatcher maps a key press to a bound action
type KeyMatcher interface {
	Match(state uint16, code uint8) hotkeys.Action
}

// rebinder is implemented by matchers that hold server-side key grabs and
// must redo them after a keyboard remap.
type rebinder interface {
	Rebind() error
}

// Config holds the manager's dependencies
type Config struct {
	Surface Surface
	Keys    KeyMatcher
	Logger  *slog.Logger
	Screen  geom.Rect
	// DockHeuristics enables title and geometry based dock detection
	// for windows that set no dock type or state.
	DockHeuristics bool
}

// Manager is the whole window-manager state. All methods except Run and
// the control requests must be called from the loop goroutine.
type Manager struct {
	surface    Surface
	keys       KeyMatcher
	logger     *slog.Logger
	heuristics bool

	screen   geom.Rect
	workarea geom.Rect
	clients  *client.Registry
	active   client.WindowID
	drag     *Drag
	cursors  map[client.WindowID]decor.Cursor

	commands chan command
	done     chan struct{}
	started  time.Time
}

// New creates a manager for a screen of the given size
func New(cfg Config) *Manager {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	screen := geom.Rect{Width: cfg.Screen.Width, Height: cfg.Screen.Height}
	return &Manager{
		surface:    cfg.Surface,
		keys:       cfg.Keys,
		logger:     logger,
		heuristics: cfg.DockHeuristics,
		screen:     screen,
		workarea:   geom.Workarea(screen, nil),
		clients:    client.NewRegistry(),
		cursors:    make(map[client.WindowID]decor.Cursor),
		commands:   make(chan command),
		done:       make(chan struct{}),
		started:    time.Now(),
	}
}

// Workarea returns the current workarea
func (m *Manager) Workarea() geom.Rect { return m.workarea }

// Screen returns the current screen bounds
func (m *Manager) Screen() geom.Rect { return m.screen }

// Active returns the focused client's window, or client.None
func (m *Manager) Active() client.WindowID { return m.active }

// Dragging returns the in-progress drag, or nil
func (m *Manager) Dragging() *Drag { return m.drag }

// Client looks up a managed client by its window
func (m *Manager) Client(w client.WindowID) (*client.Client, bool) {
	return m.clients.FindByWindow(w)
}

// Clients returns every managed client in registry order
func (m *Manager) Clients() []*client.Client {
	return m.clients.All()
}

// Run dispatches events and control requests until ctx is cancelled or
// the event stream closes. Exactly one event or request is handled at a
// time, in arrival order.
func (m *Manager) Run(ctx context.Context, events <-chan Event) error {
	defer close(m.done)

	m.logger.Info("window manager started",
		"screen", m.screen, "workarea", m.workarea, "clients", m.clients.Len())

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("window manager stopped")
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return ErrDisconnected
			}
			m.Dispatch(ev)
		case cmd := <-m.commands:
			m.execute(cmd)
		}
	}
}

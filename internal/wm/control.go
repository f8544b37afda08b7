package wm

import (
	"context"
	"errors"
	"time"

	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/geom"
)

// ErrNoActive is returned by control requests that need a focused client
var ErrNoActive = errors.New("no active window")

type command struct {
	fn   func() error
	done chan error
}

func (m *Manager) execute(cmd command) {
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("control request panic recovered", "error", r)
				err = errors.New("internal error")
			}
		}()
		err = cmd.fn()
	}()
	m.raiseDocks()
	cmd.done <- err
}

// do runs fn on the loop goroutine between two events
func (m *Manager) do(ctx context.Context, fn func() error) error {
	cmd := command{fn: fn, done: make(chan error, 1)}
	select {
	case m.commands <- cmd:
	case <-m.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Status is a snapshot of the manager for control clients
type Status struct {
	Clients  int             `json:"clients"`
	Docks    int             `json:"docks"`
	Active   client.WindowID `json:"active"`
	Phase    string          `json:"phase"`
	Screen   geom.Rect       `json:"screen"`
	Workarea geom.Rect       `json:"workarea"`
	Uptime   string          `json:"uptime"`
}

// Status returns a snapshot of the manager state
func (m *Manager) Status(ctx context.Context) (Status, error) {
	var st Status
	err := m.do(ctx, func() error {
		st = Status{
			Clients:  m.clients.Len(),
			Docks:    len(m.clients.Docks()),
			Active:   m.active,
			Phase:    m.Phase().String(),
			Screen:   m.screen,
			Workarea: m.workarea,
			Uptime:   time.Since(m.started).Truncate(time.Second).String(),
		}
		return nil
	})
	return st, err
}

// ListClients returns a snapshot of every managed client in registry order
func (m *Manager) ListClients(ctx context.Context) ([]client.Info, error) {
	var out []client.Info
	err := m.do(ctx, func() error {
		for _, c := range m.clients.All() {
			out = append(out, c.Snapshot())
		}
		return nil
	})
	return out, err
}

// FocusNext cycles focus as the cycle-focus key binding does
func (m *Manager) FocusNext(ctx context.Context) error {
	return m.do(ctx, func() error {
		m.cycleFocus()
		return nil
	})
}

// CloseActive asks the focused client to close
func (m *Manager) CloseActive(ctx context.Context) error {
	return m.do(ctx, func() error {
		if !m.closeActive() {
			return ErrNoActive
		}
		return nil
	})
}

// ToggleFullscreen flips fullscreen on the focused client
func (m *Manager) ToggleFullscreen(ctx context.Context) error {
	return m.do(ctx, func() error {
		c := m.activeClient()
		if c == nil || !c.Decorated {
			return ErrNoActive
		}
		m.toggleFullscreen(c)
		return nil
	})
}

// Prune unmanages every client whose window the server no longer knows.
// It catches destroys whose notification was lost, and returns how many
// clients were dropped.
func (m *Manager) Prune(ctx context.Context) (int, error) {
	var pruned int
	err := m.do(ctx, func() error {
		for _, c := range m.clients.All() {
			if _, err := m.surface.Attributes(c.Window); err == nil {
				continue
			}
			m.logger.Info("pruning vanished window", "window", c.Window, "title", c.Title)
			m.remove(c)
			pruned++
		}
		return nil
	})
	return pruned, err
}

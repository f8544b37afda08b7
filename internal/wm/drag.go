package wm

import (
	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/decor"
	"github.com/1broseidon/aquawm/internal/geom"
)

// DragMode is the kind of pointer drag in progress
type DragMode int

const (
	DragMove DragMode = iota
	DragResize
)

func (d DragMode) String() string {
	if d == DragResize {
		return "resize"
	}
	return "move"
}

// Drag is the state of an interactive move or resize. At most one exists.
// Window is a weak reference and is cleared when the client goes away.
type Drag struct {
	Window client.WindowID
	Mode   DragMode
	Button uint8
	Edges  geom.Edge

	// Root pointer position at the press.
	AnchorX, AnchorY int
	// Pointer offset from the frame origin, for moves.
	OffsetX, OffsetY int
	// Content rectangle at the press, for resizes.
	Start geom.Rect
	// Frame rectangle last sent to the server.
	Applied geom.Rect
}

// Phase names the interaction state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseMoving
	PhaseResizing
)

func (p Phase) String() string {
	switch p {
	case PhaseMoving:
		return "moving"
	case PhaseResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// Phase returns the current interaction state
func (m *Manager) Phase() Phase {
	switch {
	case m.drag == nil:
		return PhaseIdle
	case m.drag.Mode == DragResize:
		return PhaseResizing
	default:
		return PhaseMoving
	}
}

func (m *Manager) onButtonPress(e ButtonPress) {
	if m.drag != nil {
		return
	}

	c, ok := m.clients.FindByFrame(e.Window)
	if !ok {
		if d, ok := m.clients.FindByWindow(e.Window); ok && d.Dock {
			m.raiseDocks()
		}
		return
	}
	if c.Fullscreen {
		return
	}

	m.surface.Raise(c.Frame)
	if m.active != c.Window && c.Mapped {
		m.activate(c)
	}

	frame := c.FrameRect()
	if decor.InTitlebar(e.Y) {
		switch decor.HitButton(frame.Width, e.X, e.Y) {
		case decor.ButtonClose:
			m.surface.SendDelete(c.Window)
			return
		case decor.ButtonMaximize:
			m.toggleMaximize(c)
			return
		case decor.ButtonMinimize:
			m.minimize(c)
			return
		}
		if c.Maximized {
			return
		}
		m.beginDrag(c, e, DragMove, 0)
		return
	}

	if c.Maximized {
		return
	}
	if edges := decor.ResizeEdges(frame.Width, frame.Height, e.X, e.Y); edges != 0 {
		m.beginDrag(c, e, DragResize, edges)
	}
}

func (m *Manager) beginDrag(c *client.Client, e ButtonPress, mode DragMode, edges geom.Edge) {
	cursor := decor.CursorMove
	if mode == DragResize {
		cursor = decor.CursorForEdges(edges)
	}
	if err := m.surface.GrabPointer(c.Frame, cursor); err != nil {
		m.logger.Warn("pointer grab failed", "window", c.Window, "mode", mode, "error", err)
		return
	}

	frame := c.FrameRect()
	m.drag = &Drag{
		Window:  c.Window,
		Mode:    mode,
		Button:  e.Button,
		Edges:   edges,
		AnchorX: e.RootX,
		AnchorY: e.RootY,
		OffsetX: e.RootX - frame.X,
		OffsetY: e.RootY - frame.Y,
		Start:   c.Geom,
		Applied: frame,
	}
	m.logger.Debug("drag started", "window", c.Window, "mode", mode, "edges", edges)
}

func (m *Manager) onMotion(e Motion) {
	if m.drag == nil {
		if c, ok := m.clients.FindByFrame(e.Window); ok && !c.Fullscreen {
			f := c.FrameRect()
			m.setCursor(c, decor.CursorAt(f.Width, f.Height, e.X, e.Y))
		}
		return
	}

	c, ok := m.clients.FindByWindow(m.drag.Window)
	if !ok {
		m.logger.Warn("drag target vanished, resetting", "window", m.drag.Window)
		m.endDrag()
		return
	}
	if c.Dock || c.Fullscreen || c.Maximized || !c.Decorated {
		return
	}

	d := m.drag
	switch d.Mode {
	case DragMove:
		frame := c.FrameRect()
		x, y := geom.ClampOrigin(e.RootX-d.OffsetX, e.RootY-d.OffsetY, frame.Width, frame.Height, m.workarea)
		c.MoveFrame(x, y)
		next := c.FrameRect()
		if geom.Moved(d.Applied, next) {
			m.surface.Move(c.Frame, next.X, next.Y)
			m.surface.SendConfigure(c.Window, c.Geom)
			d.Applied = next
		}
	case DragResize:
		c.Geom = geom.Resize(d.Start, d.Edges, e.RootX-d.AnchorX, e.RootY-d.AnchorY, m.workarea)
		next := c.FrameRect()
		if geom.Resized(d.Applied, next) {
			m.applyLayout(c)
			m.surface.SendConfigure(c.Window, c.Geom)
			m.render(c)
			d.Applied = next
		}
	}
}

func (m *Manager) onButtonRelease(e ButtonRelease) {
	if m.drag == nil || e.Button != m.drag.Button {
		return
	}

	d := m.drag
	m.endDrag()

	c, ok := m.clients.FindByWindow(d.Window)
	if !ok {
		return
	}
	// Flush whatever the thresholds held back.
	if c.Decorated && !c.Fullscreen && c.FrameRect() != d.Applied {
		m.applyLayout(c)
		m.surface.SendConfigure(c.Window, c.Geom)
	}
	m.render(c)
	m.logger.Debug("drag finished", "window", c.Window, "mode", d.Mode, "geometry", c.Geom)
}

func (m *Manager) endDrag() {
	m.surface.UngrabPointer()
	m.drag = nil
}

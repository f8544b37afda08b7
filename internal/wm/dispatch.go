package wm

import (
	"fmt"

	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/decor"
	"github.com/1broseidon/aquawm/internal/geom"
	"github.com/1broseidon/aquawm/internal/hotkeys"
)

// Dispatch handles a single event and then restacks docks on top
func (m *Manager) Dispatch(ev Event) {
	defer func() {
		if err := recover(); err != nil {
			m.logger.Error("event handler panic recovered", "event", fmt.Sprintf("%T", ev), "error", err)
		}
	}()

	switch e := ev.(type) {
	case MapRequest:
		m.onMapRequest(e)
	case MapNotify:
		m.onMapNotify(e)
	case UnmapNotify:
		m.onUnmapNotify(e)
	case DestroyNotify:
		m.onDestroyNotify(e)
	case ConfigureRequest:
		m.onConfigureRequest(e)
	case ButtonPress:
		m.onButtonPress(e)
	case Motion:
		m.onMotion(e)
	case ButtonRelease:
		m.onButtonRelease(e)
	case KeyPress:
		m.onKeyPress(e)
	case ClientMessage:
		m.onClientMessage(e)
	case Expose:
		m.onExpose(e)
	case Enter:
		m.onEnter(e)
	case Leave:
		m.onLeave(e)
	case ScreenChange:
		m.onScreenChange(e)
	case KeymapChange:
		m.onKeymapChange()
	default:
		m.logger.Debug("unhandled event", "event", fmt.Sprintf("%T", ev))
	}

	m.raiseDocks()
}

func (m *Manager) onMapRequest(e MapRequest) {
	c, ok := m.clients.FindByWindow(e.Window)
	if !ok {
		m.manage(e.Window, false)
		return
	}

	if c.Dock {
		m.surface.Map(c.Window)
		m.surface.SetDockState(c.Window)
		c.Mapped = true
		return
	}
	m.deiconify(c)
}

func (m *Manager) onMapNotify(e MapNotify) {
	c, ok := m.clients.FindByWindow(e.Window)
	if !ok {
		return
	}
	c.Mapped = true
	c.IgnoreUnmap = false

	switch {
	case c.Dock:
		m.surface.SetDockState(c.Window)
		m.surface.Raise(c.Window)
		m.updateDocks()
	case !c.Decorated:
		m.surface.Raise(c.Window)
	default:
		if m.active == client.None {
			m.activate(c)
		}
		m.render(c)
	}
}

func (m *Manager) onUnmapNotify(e UnmapNotify) {
	c, ok := m.clients.FindByWindow(e.Window)
	if !ok {
		return
	}
	if c.IgnoreUnmap {
		c.IgnoreUnmap = false
		return
	}

	if c.Decorated && !c.Fullscreen {
		m.surface.Unmap(c.Frame)
	}
	c.Mapped = false

	if c.Dock {
		m.updateDocks()
	}
	if m.active == c.Window {
		m.replaceActive(c)
	}
}

func (m *Manager) onDestroyNotify(e DestroyNotify) {
	if c, ok := m.clients.FindByWindow(e.Window); ok {
		m.remove(c)
	}
}

func (m *Manager) onConfigureRequest(e ConfigureRequest) {
	c, ok := m.clients.FindByWindow(e.Window)
	if !ok || (!c.Decorated && !c.Dock) {
		m.surface.Configure(e)
		return
	}

	if c.Dock {
		m.surface.Configure(e)
		if e.ValueMask&ConfigX != 0 {
			c.Geom.X = e.X
		}
		if e.ValueMask&ConfigY != 0 {
			c.Geom.Y = e.Y
		}
		if e.ValueMask&ConfigWidth != 0 {
			c.Geom.Width = e.Width
		}
		if e.ValueMask&ConfigHeight != 0 {
			c.Geom.Height = e.Height
		}
		m.updateDocks()
		return
	}

	if c.Fullscreen {
		return
	}

	// A maximized or dragged client keeps its geometry; it is only told
	// where it really is.
	if !c.Maximized && m.drag == nil {
		if e.ValueMask&ConfigWidth != 0 {
			c.Geom.Width = max(e.Width, 1)
		}
		if e.ValueMask&ConfigHeight != 0 {
			c.Geom.Height = max(e.Height, 1)
		}
		c.Geom.Width, c.Geom.Height = geom.ClampSize(c.Geom.Width, c.Geom.Height)
		if e.ValueMask&ConfigX != 0 {
			c.Geom.X = e.X
		}
		if e.ValueMask&ConfigY != 0 {
			c.Geom.Y = e.Y
		}
		m.applyLayout(c)
		m.render(c)
	}
	m.surface.SendConfigure(c.Window, c.Geom)
}

func (m *Manager) onKeyPress(e KeyPress) {
	if m.keys == nil {
		return
	}
	action := m.keys.Match(e.State, e.Code)
	if action == hotkeys.ActionNone {
		return
	}
	m.logger.Debug("key binding", "action", action)

	switch action {
	case hotkeys.ActionClose:
		m.closeActive()
	case hotkeys.ActionCycleFocus:
		m.cycleFocus()
	case hotkeys.ActionFullscreen:
		if c := m.activeClient(); c != nil && c.Decorated {
			m.toggleFullscreen(c)
		}
	}
}

func (m *Manager) onClientMessage(e ClientMessage) {
	c, ok := m.clients.FindByWindow(e.Window)
	if !ok {
		return
	}

	switch e.Type {
	case "WM_PROTOCOLS":
		if len(e.Atoms) == 0 {
			return
		}
		switch e.Atoms[0] {
		case "WM_DELETE_WINDOW":
			c.IgnoreUnmap = true
			m.surface.Destroy(c.Window)
		case "WM_TAKE_FOCUS":
			m.surface.Focus(c.Window)
		}
	case "_NET_WM_STATE":
		if !c.Decorated {
			return
		}
		for _, atom := range e.Atoms {
			switch atom {
			case "_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT":
				if wantToggle(e.Action, c.Maximized) {
					m.toggleMaximize(c)
				}
				return
			case "_NET_WM_STATE_FULLSCREEN":
				if wantToggle(e.Action, c.Fullscreen) {
					m.toggleFullscreen(c)
				}
				return
			}
		}
	case "_NET_ACTIVE_WINDOW":
		// Pagers and taskbars restore minimized clients this way.
		if c.Iconic && c.Decorated && !c.Dock {
			m.deiconify(c)
		}
		if c.Eligible() {
			m.surface.Raise(c.Frame)
			m.activate(c)
		}
	case "WM_CHANGE_STATE":
		if e.Action == iconicState && c.Decorated {
			m.minimize(c)
		}
	}
}

// WM_STATE value a client asks for when it wants to be iconified
const iconicState = 3

// wantToggle reports whether a _NET_WM_STATE action changes a flag that
// is currently set to current.
func wantToggle(action uint32, current bool) bool {
	switch action {
	case StateRemove:
		return current
	case StateAdd:
		return !current
	default:
		return true
	}
}

func (m *Manager) onExpose(e Expose) {
	if e.Count > 0 {
		return
	}
	if c, ok := m.clients.FindByFrame(e.Window); ok {
		m.render(c)
	}
}

func (m *Manager) onEnter(e Enter) {
	c, ok := m.clients.FindByFrame(e.Window)
	if !ok || c.Fullscreen {
		return
	}
	f := c.FrameRect()
	m.setCursor(c, decor.CursorAt(f.Width, f.Height, e.X, e.Y))
	m.renderHover(c, decor.HitButton(f.Width, e.X, e.Y))
}

func (m *Manager) onLeave(e Leave) {
	c, ok := m.clients.FindByFrame(e.Window)
	if !ok || c.Fullscreen {
		return
	}
	m.setCursor(c, decor.CursorNormal)
	m.render(c)
}

func (m *Manager) onKeymapChange() {
	r, ok := m.keys.(rebinder)
	if !ok {
		return
	}
	if err := r.Rebind(); err != nil {
		m.logger.Warn("key bindings lost after keymap change", "error", err)
		return
	}
	m.logger.Debug("key bindings regrabbed after keymap change")
}

func (m *Manager) onScreenChange(e ScreenChange) {
	if e.Width <= 0 || e.Height <= 0 {
		return
	}
	m.screen.Width = e.Width
	m.screen.Height = e.Height
	m.logger.Info("screen changed", "width", e.Width, "height", e.Height)
	m.updateDocks()

	for _, c := range m.clients.All() {
		if c.Fullscreen {
			c.Geom.Width = e.Width
			c.Geom.Height = e.Height
			m.applyLayout(c)
			m.surface.SendConfigure(c.Window, c.Geom)
		}
	}
}

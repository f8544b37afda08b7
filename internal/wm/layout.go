package wm

import (
	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/geom"
)

// applyLayout pushes a client's recorded geometry to the server
func (m *Manager) applyLayout(c *client.Client) {
	switch {
	case c.Dock:
		return
	case !c.Decorated || c.Fullscreen:
		m.surface.MoveResize(c.Window, c.Geom)
	default:
		m.surface.MoveResize(c.Frame, c.FrameRect())
		m.surface.Resize(c.Window, c.Geom.Width, c.Geom.Height)
	}
}

func (m *Manager) toggleMaximize(c *client.Client) {
	if !c.ToggleMaximize(m.workarea) {
		return
	}
	m.logger.Debug("maximize", "window", c.Window, "maximized", c.Maximized)
	m.applyLayout(c)
	m.surface.SendConfigure(c.Window, c.Geom)
	m.render(c)
}

// toggleFullscreen moves a decorated client out of its frame onto the
// root window while fullscreen, and back again afterwards.
func (m *Manager) toggleFullscreen(c *client.Client) {
	if !c.ToggleFullscreen(m.screen) {
		return
	}
	m.logger.Debug("fullscreen", "window", c.Window, "fullscreen", c.Fullscreen)

	if c.Decorated {
		if c.Mapped {
			c.IgnoreUnmap = true
		}
		if c.Fullscreen {
			m.surface.Reparent(c.Window, client.None, c.Geom.X, c.Geom.Y)
			m.surface.Unmap(c.Frame)
		} else {
			m.surface.Reparent(c.Window, c.Frame, geom.BorderWidth, geom.TitlebarHeight)
			if c.Mapped {
				m.surface.Map(c.Frame)
			}
		}
	}

	m.applyLayout(c)
	if c.Fullscreen {
		m.surface.Raise(c.Window)
	} else if c.Decorated {
		m.surface.Raise(c.Frame)
	}
	m.surface.SendConfigure(c.Window, c.Geom)
	m.render(c)
	if c.Active {
		m.surface.Focus(c.Window)
	}
}

// minimize hides a client's frame and window; a later map request
// shows it again.
func (m *Manager) minimize(c *client.Client) {
	if c.Dock {
		return
	}
	if c.Decorated && !c.Fullscreen {
		m.surface.Unmap(c.Frame)
	}
	m.surface.Unmap(c.Window)
	m.surface.SetIconic(c.Window, true)
	c.Iconic = true
}

// deiconify shows a client's window, and its frame unless fullscreen
func (m *Manager) deiconify(c *client.Client) {
	m.surface.Map(c.Window)
	if c.Decorated && !c.Fullscreen {
		m.surface.Map(c.Frame)
	}
	m.surface.SetIconic(c.Window, false)
	c.Iconic = false
	c.Mapped = true
}

// updateDocks re-reads dock geometry, republishes their struts and
// recomputes the workarea from the mapped docks.
func (m *Manager) updateDocks() {
	docks := m.clients.Docks()
	rects := make([]geom.Rect, 0, len(docks))
	for _, d := range docks {
		if attrs, err := m.surface.Attributes(d.Window); err == nil {
			d.Geom = attrs.Geometry
		}
		d.DockSide, d.Strut = geom.DockSide(m.screen, d.Geom)
		m.surface.SetStrut(d.Window, geom.StrutFor(d.DockSide, d.Geom))
		rects = append(rects, d.Geom)
	}

	wa := geom.Workarea(m.screen, rects)
	if wa == m.workarea {
		return
	}
	m.workarea = wa
	m.logger.Debug("workarea changed", "workarea", wa)
	m.surface.PublishWorkarea(wa)

	for _, c := range m.clients.All() {
		if c.Maximized && !c.Fullscreen {
			c.Geom = geom.Maximized(wa)
			m.applyLayout(c)
			m.surface.SendConfigure(c.Window, c.Geom)
			m.render(c)
		}
	}
}

// raiseDocks keeps every mapped dock above normal windows
func (m *Manager) raiseDocks() {
	for _, d := range m.clients.Docks() {
		m.surface.Raise(d.Window)
	}
}

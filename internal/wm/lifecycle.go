package wm

import (
	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/decor"
	"github.com/1broseidon/aquawm/internal/geom"
)

// Adopt manages windows that were already on screen when the manager
// started. It must be called before Run.
func (m *Manager) Adopt(windows []client.WindowID) {
	for _, w := range windows {
		if _, ok := m.clients.FindByWindow(w); ok {
			continue
		}
		m.manage(w, true)
	}
}

// manage classifies a new window and registers it. The record is only
// registered once it is fully built, so a failure never leaves a half
// managed client behind.
func (m *Manager) manage(w client.WindowID, existing bool) {
	attrs, err := m.surface.Attributes(w)
	if err != nil {
		m.logger.Warn("window attributes unavailable, mapping unmanaged", "window", w, "error", err)
		if !existing {
			m.surface.Map(w)
		}
		return
	}
	if attrs.OverrideRedirect {
		if !existing {
			m.surface.Map(w)
		}
		return
	}
	if existing && !attrs.Viewable {
		return
	}

	info := WindowInfo{
		Types:    m.surface.WindowTypes(w),
		States:   m.surface.WindowStates(w),
		Title:    m.surface.Title(w),
		Geometry: attrs.Geometry,
	}
	kind := Classify(info, m.screen, m.heuristics)

	c := &client.Client{
		Window: w,
		Frame:  w,
		Title:  info.Title,
	}

	if kind == KindDock {
		c.Dock = true
		c.Geom = attrs.Geometry
		c.Mapped = true
		if err := m.clients.Register(c); err != nil {
			m.logger.Warn("register dock failed", "window", w, "error", err)
			return
		}
		m.surface.SetDockState(w)
		m.surface.Map(w)
		m.surface.Raise(w)
		m.logger.Info("managed dock", "window", w, "title", c.Title, "geometry", c.Geom)
		m.updateDocks()
		m.publishClients()
		return
	}

	c.Geom = geom.Place(attrs.Geometry.Width, attrs.Geometry.Height, m.workarea)
	c.Saved = c.Geom

	frame, err := m.surface.CreateFrame(w, c.FrameRect())
	if err != nil {
		m.logger.Warn("frame creation failed, mapping undecorated", "window", w, "error", err)
		if err := m.clients.Register(c); err != nil {
			m.logger.Warn("register failed", "window", w, "error", err)
			return
		}
		m.surface.MoveResize(w, c.Geom)
		m.surface.Map(w)
		m.publishClients()
		return
	}

	c.Frame = frame
	c.Decorated = true
	// Reparenting a viewable window unmaps it first.
	c.IgnoreUnmap = existing
	if err := m.clients.Register(c); err != nil {
		m.logger.Warn("register failed", "window", w, "error", err)
		m.surface.Reparent(w, client.None, attrs.Geometry.X, attrs.Geometry.Y)
		m.surface.Destroy(frame)
		return
	}

	m.surface.Resize(w, c.Geom.Width, c.Geom.Height)
	m.setCursor(c, decor.CursorNormal)
	m.surface.Map(frame)
	m.surface.Map(w)
	m.surface.SetIconic(w, false)
	m.surface.SendConfigure(w, c.Geom)

	m.logger.Info("managed window", "window", w, "frame", frame, "title", c.Title, "geometry", c.Geom)
	m.publishClients()
}

// remove forgets a client whose window is gone
func (m *Manager) remove(c *client.Client) {
	if m.drag != nil && m.drag.Window == c.Window {
		m.surface.UngrabPointer()
		m.drag = nil
	}

	if _, ok := m.clients.Remove(c.Window); !ok {
		return
	}
	if c.Decorated && c.Frame != c.Window {
		m.surface.Destroy(c.Frame)
	}
	delete(m.cursors, c.Frame)
	m.logger.Info("unmanaged window", "window", c.Window, "dock", c.Dock)

	if m.active == c.Window {
		m.replaceActive(c)
	}

	m.updateDocks()
	m.raiseDocks()
	m.publishClients()
}

func (m *Manager) publishClients() {
	all := m.clients.All()
	ws := make([]client.WindowID, 0, len(all))
	for _, c := range all {
		ws = append(ws, c.Window)
	}
	m.surface.PublishClients(ws)
}

package wm

import (
	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/decor"
)

func (m *Manager) render(c *client.Client) {
	m.renderHover(c, decor.ButtonNone)
}

func (m *Manager) renderHover(c *client.Client, hover decor.Button) {
	if !c.Decorated || c.Fullscreen || c.Dock {
		return
	}
	f := decor.FrameFor(c.Geom, c.Active, c.Title)
	f.Hover = hover
	m.surface.Paint(c.Frame, decor.Paint(f))
}

// setCursor changes a frame's cursor only when the shape differs
func (m *Manager) setCursor(c *client.Client, cur decor.Cursor) {
	if !c.Decorated {
		return
	}
	if prev, ok := m.cursors[c.Frame]; ok && prev == cur {
		return
	}
	m.cursors[c.Frame] = cur
	m.surface.SetCursor(c.Frame, cur)
}

// Package client holds the per-window record of a managed client and the
// registry that owns those records.
package client

import (
	"github.com/1broseidon/aquawm/internal/geom"
)

// WindowID identifies a window on the display server
type WindowID uint32

// None is the null window
const None WindowID = 0

// Client is the manager's record for one managed top-level window.
// Geom is the content rectangle in root coordinates; the frame origin is
// always derived from it.
type Client struct {
	Window WindowID
	// Frame equals Window for undecorated clients and docks.
	Frame WindowID
	Title string

	Geom  geom.Rect
	Saved geom.Rect

	Mapped      bool
	Decorated   bool
	Active      bool
	Maximized   bool
	Fullscreen  bool
	Dock        bool
	IgnoreUnmap bool
	// Iconic is set by a minimize and cleared when the client is shown again.
	Iconic bool

	DockSide geom.Side
	Strut    int

	seq uint64
}

// FrameRect returns the rectangle of the frame around the content
func (c *Client) FrameRect() geom.Rect {
	return geom.FrameRect(c.Geom)
}

// MoveFrame places the frame origin at (x, y) and updates the content
// position to match.
func (c *Client) MoveFrame(x, y int) {
	c.Geom = geom.ContentAt(x, y, c.Geom.Width, c.Geom.Height)
}

// Eligible reports whether the client may hold focus
func (c *Client) Eligible() bool {
	return c.Decorated && !c.Dock && c.Mapped
}

// ToggleMaximize flips the maximized state against the given workarea.
// It returns false when the client cannot be maximized.
func (c *Client) ToggleMaximize(workarea geom.Rect) bool {
	if c.Fullscreen || c.Dock {
		return false
	}
	if c.Maximized {
		c.Geom = c.Saved
		c.Maximized = false
		return true
	}
	c.Saved = c.Geom
	c.Geom = geom.Maximized(workarea)
	c.Maximized = true
	return true
}

// ToggleFullscreen flips the fullscreen state. Entering fullscreen from a
// maximized state keeps the geometry saved before maximizing, so leaving
// fullscreen restores the original size and clears both flags.
func (c *Client) ToggleFullscreen(screen geom.Rect) bool {
	if c.Dock {
		return false
	}
	if c.Fullscreen {
		c.Geom = c.Saved
		c.Fullscreen = false
		c.Maximized = false
		return true
	}
	if !c.Maximized {
		c.Saved = c.Geom
	}
	c.Geom = geom.Fullscreen(screen)
	c.Fullscreen = true
	c.Maximized = false
	return true
}

// Info is a read-only snapshot of a client
type Info struct {
	Window     WindowID  `json:"window"`
	Frame      WindowID  `json:"frame"`
	Title      string    `json:"title"`
	Geometry   geom.Rect `json:"geometry"`
	Mapped     bool      `json:"mapped"`
	Decorated  bool      `json:"decorated"`
	Active     bool      `json:"active"`
	Maximized  bool      `json:"maximized"`
	Fullscreen bool      `json:"fullscreen"`
	Dock       bool      `json:"dock"`
	Iconic     bool      `json:"iconic"`
	DockSide   string    `json:"dock_side,omitempty"`
}

// Snapshot copies the client into an Info
func (c *Client) Snapshot() Info {
	info := Info{
		Window:     c.Window,
		Frame:      c.Frame,
		Title:      c.Title,
		Geometry:   c.Geom,
		Mapped:     c.Mapped,
		Decorated:  c.Decorated,
		Active:     c.Active,
		Maximized:  c.Maximized,
		Fullscreen: c.Fullscreen,
		Dock:       c.Dock,
		Iconic:     c.Iconic,
	}
	if c.Dock {
		info.DockSide = c.DockSide.String()
	}
	return info
}

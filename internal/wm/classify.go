package wm

import (
	"strings"

	"github.com/1broseidon/aquawm/internal/geom"
)

// Kind is how a new window is managed
type Kind int

const (
	KindNormal Kind = iota
	KindDock
)

func (k Kind) String() string {
	if k == KindDock {
		return "dock"
	}
	return "normal"
}

// Titles that mark a window as a panel when it sets no dock hints.
var dockTitles = []string{
	"panel", "Panel", "xfce4-panel", "mate-panel", "gnome-panel",
	"tint2", "polybar", "aquabar", "aquapanel", "xmobar", "lemonbar",
	"vala-panel", "plank", "dock",
}

// WindowInfo is the input to Classify
type WindowInfo struct {
	Types    []string
	States   []string
	Title    string
	Geometry geom.Rect
}

// Classify decides whether a window is a dock. The checks run in order:
// the window type, then the window state, then (when heuristics are on)
// the title and an edge-hugging geometry. The last step is a best-effort
// guess for panels that set no hints.
func Classify(info WindowInfo, screen geom.Rect, heuristics bool) Kind {
	for _, t := range info.Types {
		if t == "_NET_WM_WINDOW_TYPE_DOCK" || t == "_NET_WM_WINDOW_TYPE_DESKTOP" {
			return KindDock
		}
	}
	for _, s := range info.States {
		if s == "_NET_WM_STATE_ABOVE" || s == "_NET_WM_STATE_STAYS_ON_TOP" {
			return KindDock
		}
	}
	if !heuristics {
		return KindNormal
	}

	for _, name := range dockTitles {
		if info.Title != "" && strings.Contains(info.Title, name) {
			return KindDock
		}
	}

	g := info.Geometry
	if g.Height < 100 && (g.Y < 10 || g.Y > screen.Height-g.Height-10) {
		return KindDock
	}
	if g.Width < 100 && (g.X < 10 || g.X > screen.Width-g.Width-10) {
		return KindDock
	}
	return KindNormal
}

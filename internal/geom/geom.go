// Package geom holds the pure geometry used for frame placement, docks and
// interactive move/resize. Nothing in here talks to the display server.
package geom

// Frame decoration and sizing constants
const (
	BorderWidth      = 2
	TitlebarHeight   = 22
	MinWidth         = 100
	MinHeight        = 80
	ResizeHandleSize = 8

	// Drag updates smaller than these are recorded but not pushed to the server.
	MoveThreshold   = 2
	ResizeThreshold = 4
)

// Rect represents a window position and size
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right returns the first column past the rectangle
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rectangle
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether other lies entirely inside r
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// ClampSize raises a requested content size to the minimum client size
func ClampSize(width, height int) (int, int) {
	return max(width, MinWidth), max(height, MinHeight)
}

// FrameRect returns the frame rectangle that wraps a content rectangle.
// The content sits BorderWidth in from the left and below the titlebar.
func FrameRect(content Rect) Rect {
	return Rect{
		X:      content.X - BorderWidth,
		Y:      content.Y - TitlebarHeight,
		Width:  content.Width + 2*BorderWidth,
		Height: content.Height + TitlebarHeight + BorderWidth,
	}
}

// ContentAt returns the content rectangle of the given size whose frame
// origin is (frameX, frameY).
func ContentAt(frameX, frameY, width, height int) Rect {
	return Rect{
		X:      frameX + BorderWidth,
		Y:      frameY + TitlebarHeight,
		Width:  width,
		Height: height,
	}
}

// Place centers a frame for a content of the given size inside the workarea
// and returns the resulting content rectangle. The size is clamped to the
// minimums first. A frame larger than the workarea is aligned to its top-left.
func Place(width, height int, workarea Rect) Rect {
	width, height = ClampSize(width, height)
	fw := width + 2*BorderWidth
	fh := height + TitlebarHeight + BorderWidth

	fx := workarea.X + (workarea.Width-fw)/2
	fy := workarea.Y + (workarea.Height-fh)/2
	fx, fy = ClampOrigin(fx, fy, fw, fh, workarea)

	return ContentAt(fx, fy, width, height)
}

// ClampOrigin keeps a frame of size fw x fh inside the workarea. The far
// edges are clamped first so an oversized frame ends up at the top-left.
func ClampOrigin(fx, fy, fw, fh int, workarea Rect) (int, int) {
	if fx+fw > workarea.Right() {
		fx = workarea.Right() - fw
	}
	if fy+fh > workarea.Bottom() {
		fy = workarea.Bottom() - fh
	}
	if fx < workarea.X {
		fx = workarea.X
	}
	if fy < workarea.Y {
		fy = workarea.Y
	}
	return fx, fy
}

// Maximized returns the content rectangle whose frame fills the workarea
func Maximized(workarea Rect) Rect {
	return ContentAt(workarea.X, workarea.Y,
		workarea.Width-2*BorderWidth,
		workarea.Height-TitlebarHeight-BorderWidth)
}

// Fullscreen returns the content rectangle covering the whole screen
func Fullscreen(screen Rect) Rect {
	return Rect{X: 0, Y: 0, Width: screen.Width, Height: screen.Height}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Package decor lays out and paints frame decorations. It is stateless:
// callers pass the frame size and flags, and get back hit-test results or
// an ordered list of drawing operations to replay on the frame.
package decor

import "github.com/1broseidon/aquawm/internal/geom"

const (
	ButtonSize    = 14
	ButtonSpacing = 6
)

// Button identifies a titlebar control
type Button int

const (
	ButtonNone Button = iota
	ButtonClose
	ButtonMaximize
	ButtonMinimize
)

func (b Button) String() string {
	switch b {
	case ButtonClose:
		return "close"
	case ButtonMaximize:
		return "maximize"
	case ButtonMinimize:
		return "minimize"
	default:
		return "none"
	}
}

// Control is a titlebar button placed in frame-local coordinates
type Control struct {
	Button Button
	X, Y   int
}

// Controls returns the titlebar buttons for a frame of the given width.
// Close sits at the left; maximize and minimize are packed to the right.
func Controls(frameWidth int) []Control {
	y := geom.BorderWidth + (geom.TitlebarHeight-ButtonSize)/2
	right := frameWidth - geom.BorderWidth - ButtonSpacing
	return []Control{
		{Button: ButtonClose, X: geom.BorderWidth + ButtonSpacing, Y: y},
		{Button: ButtonMaximize, X: right - 2*ButtonSize - 2*ButtonSpacing, Y: y},
		{Button: ButtonMinimize, X: right - ButtonSize - ButtonSpacing, Y: y},
	}
}

// HitButton returns the control under the frame-local point, if any.
// Hit boxes include their far edge.
func HitButton(frameWidth, x, y int) Button {
	for _, c := range Controls(frameWidth) {
		if x >= c.X && x <= c.X+ButtonSize && y >= c.Y && y <= c.Y+ButtonSize {
			return c.Button
		}
	}
	return ButtonNone
}

// InTitlebar reports whether a frame-local y coordinate is in the titlebar band
func InTitlebar(y int) bool {
	return y < geom.TitlebarHeight
}

// ResizeEdges returns the resize handles under a frame-local point. The top
// handle is the strip just below the titlebar band.
func ResizeEdges(frameWidth, frameHeight, x, y int) geom.Edge {
	var e geom.Edge
	if x < geom.ResizeHandleSize {
		e |= geom.EdgeLeft
	}
	if x > frameWidth-geom.ResizeHandleSize {
		e |= geom.EdgeRight
	}
	if y > geom.TitlebarHeight && y < geom.TitlebarHeight+geom.ResizeHandleSize {
		e |= geom.EdgeTop
	}
	if y > frameHeight-geom.ResizeHandleSize {
		e |= geom.EdgeBottom
	}
	return e
}

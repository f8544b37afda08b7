package geom

// Edge is a bitmask of frame edges grabbed for a resize
type Edge uint8

const (
	EdgeLeft Edge = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// Has reports whether all bits of other are set
func (e Edge) Has(other Edge) bool { return e&other == other && other != 0 }

func (e Edge) String() string {
	if e == 0 {
		return "none"
	}
	out := ""
	for _, n := range []struct {
		bit  Edge
		name string
	}{{EdgeTop, "top"}, {EdgeBottom, "bottom"}, {EdgeLeft, "left"}, {EdgeRight, "right"}} {
		if e&n.bit == 0 {
			continue
		}
		if out != "" {
			out += "-"
		}
		out += n.name
	}
	return out
}

// Resize computes the content rectangle produced by dragging the given
// edges of start by (dx, dy). Minimum sizes are enforced by holding the
// opposite edge fixed, and dragged edges stop at the workarea boundary.
func Resize(start Rect, edges Edge, dx, dy int, workarea Rect) Rect {
	r := start
	right := start.X + start.Width
	bottom := start.Y + start.Height

	if edges.Has(EdgeLeft) {
		r.X = start.X + dx
		r.Width = start.Width - dx
		if r.Width < MinWidth {
			r.Width = MinWidth
			r.X = right - MinWidth
		}
		if r.X < workarea.X+BorderWidth {
			r.X = workarea.X + BorderWidth
			r.Width = right - r.X
		}
	}
	if edges.Has(EdgeRight) {
		r.Width = start.Width + dx
		if limit := workarea.Right() - BorderWidth - r.X; r.Width > limit {
			r.Width = limit
		}
		r.Width = max(r.Width, MinWidth)
	}
	if edges.Has(EdgeTop) {
		r.Y = start.Y + dy
		r.Height = start.Height - dy
		if r.Height < MinHeight {
			r.Height = MinHeight
			r.Y = bottom - MinHeight
		}
		if r.Y < workarea.Y+TitlebarHeight {
			r.Y = workarea.Y + TitlebarHeight
			r.Height = bottom - r.Y
		}
	}
	if edges.Has(EdgeBottom) {
		r.Height = start.Height + dy
		if limit := workarea.Bottom() - BorderWidth - r.Y; r.Height > limit {
			r.Height = limit
		}
		r.Height = max(r.Height, MinHeight)
	}

	r.Width = max(r.Width, MinWidth)
	r.Height = max(r.Height, MinHeight)
	return r
}

// Moved reports whether a frame moved far enough from the last applied
// rectangle to be worth sending to the server.
func Moved(last, next Rect) bool {
	return abs(next.X-last.X) > MoveThreshold || abs(next.Y-last.Y) > MoveThreshold
}

// Resized reports whether a frame's size or position drifted past the drag
// thresholds since the last applied rectangle.
func Resized(last, next Rect) bool {
	return abs(next.Width-last.Width) > ResizeThreshold ||
		abs(next.Height-last.Height) > ResizeThreshold ||
		Moved(last, next)
}

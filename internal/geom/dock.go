package geom

// Side is the screen edge a dock is attached to
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// DockSide infers the edge a dock occupies from where it sits on screen
// and returns the strut thickness it reserves on that edge. Vertical
// placement wins: a dock in the top or bottom quarter is a horizontal bar
// regardless of its x position.
func DockSide(screen, dock Rect) (Side, int) {
	switch {
	case dock.Y < screen.Height/4:
		return SideTop, dock.Height
	case dock.Y > screen.Height*3/4:
		return SideBottom, dock.Height
	case dock.X < screen.Width/4:
		return SideLeft, dock.Width
	case dock.X > screen.Width*3/4:
		return SideRight, dock.Width
	default:
		return SideNone, 0
	}
}

// Workarea subtracts the strips reserved by docks from the screen. The
// result never shrinks below twice the minimum client size.
func Workarea(screen Rect, docks []Rect) Rect {
	wa := Rect{X: 0, Y: 0, Width: screen.Width, Height: screen.Height}

	for _, d := range docks {
		side, strut := DockSide(screen, d)
		switch side {
		case SideTop:
			wa.Y += strut
			wa.Height -= strut
		case SideBottom:
			wa.Height -= strut
		case SideLeft:
			wa.X += strut
			wa.Width -= strut
		case SideRight:
			wa.Width -= strut
		}
	}

	wa.Width = max(wa.Width, 2*MinWidth)
	wa.Height = max(wa.Height, 2*MinHeight)
	return wa
}

// Strut mirrors the twelve cardinals of _NET_WM_STRUT_PARTIAL. The first
// four are also the legacy _NET_WM_STRUT value.
type Strut struct {
	Left, Right, Top, Bottom int

	LeftStartY, LeftEndY     int
	RightStartY, RightEndY   int
	TopStartX, TopEndX       int
	BottomStartX, BottomEndX int
}

// IsZero reports whether the strut reserves nothing
func (s Strut) IsZero() bool {
	return s.Left == 0 && s.Right == 0 && s.Top == 0 && s.Bottom == 0
}

// StrutFor builds the reservation a dock publishes for its inferred side
func StrutFor(side Side, dock Rect) Strut {
	var s Strut
	switch side {
	case SideTop:
		s.Top = dock.Height
		s.TopStartX = dock.X
		s.TopEndX = dock.X + dock.Width - 1
	case SideBottom:
		s.Bottom = dock.Height
		s.BottomStartX = dock.X
		s.BottomEndX = dock.X + dock.Width - 1
	case SideLeft:
		s.Left = dock.Width
		s.LeftStartY = dock.Y
		s.LeftEndY = dock.Y + dock.Height - 1
	case SideRight:
		s.Right = dock.Width
		s.RightStartY = dock.Y
		s.RightEndY = dock.Y + dock.Height - 1
	}
	return s
}

package decor

import "github.com/1broseidon/aquawm/internal/geom"

// OpKind is the kind of a drawing operation
type OpKind int

const (
	OpFill OpKind = iota
	OpStroke
	OpLine
	OpText
)

// Op is one drawing operation in frame-local coordinates. Fill and Stroke
// use the rectangle; Line uses (X,Y)-(X2,Y2); Text draws Text with its
// baseline at (X,Y) over Background.
type Op struct {
	Kind       OpKind
	Color      uint32
	Background uint32
	X, Y       int
	Width      int
	Height     int
	X2, Y2     int
	Text       string
}

// Frame is the input to Paint
type Frame struct {
	Width  int
	Height int
	Active bool
	Title  string
	Hover  Button
}

// FrameFor builds the paint input for a content rectangle
func FrameFor(content geom.Rect, active bool, title string) Frame {
	f := geom.FrameRect(content)
	return Frame{Width: f.Width, Height: f.Height, Active: active, Title: title}
}

type palette struct {
	bodyFrom, bodyTo     uint32
	border, highlight    uint32
	titleTop, titleBot   uint32
	titleEdge, separator uint32
	separatorLight       uint32
	text                 uint32
	buttonTop, buttonBot uint32
	buttonLight          uint32
	buttonDark           uint32
}

var (
	activePalette = palette{
		bodyFrom: 0x2A4DA9, bodyTo: 0xE8E8E8,
		border: 0x2A4DA9, highlight: 0x8CA8FF,
		titleTop: 0x3A6DD8, titleBot: 0x2A4DA8,
		titleEdge: 0x1A3D88, separator: 0x2A4DA9,
		separatorLight: 0x8CA8FF,
		text:           0xFFFFFF,
		buttonTop:      0x4B6DD8, buttonBot: 0x3B5DC8,
		buttonLight: 0x5B7DE8, buttonDark: 0x2B4DA8,
	}
	inactivePalette = palette{
		bodyFrom: 0xE8E8E8, bodyTo: 0x000000,
		border: 0x333333, highlight: 0xAAAAAA,
		titleTop: 0xCCCCCC, titleBot: 0xAAAAAA,
		titleEdge: 0x888888, separator: 0x666666,
		separatorLight: 0xFFFFFF,
		text:           0x333333,
		buttonTop:      0xAAAAAA, buttonBot: 0x888888,
		buttonLight: 0xBBBBBB, buttonDark: 0x666666,
	}
)

const (
	bodySteps  = 16
	titleSteps = 8
	// Fixed-font advance used to keep the title clear of the right buttons.
	glyphWidth = 6
)

// Paint returns the drawing operations for a frame, back to front
func Paint(f Frame) []Op {
	p := inactivePalette
	if f.Active {
		p = activePalette
	}
	var ops []Op

	for i := 0; i < bodySteps; i++ {
		x1 := i * f.Width / bodySteps
		x2 := (i + 1) * f.Width / bodySteps
		ops = append(ops, Op{
			Kind:  OpFill,
			Color: blend(p.bodyFrom, p.bodyTo, i, bodySteps),
			X:     x1, Y: 0, Width: x2 - x1 + 1, Height: f.Height,
		})
	}

	ops = append(ops,
		Op{Kind: OpStroke, Color: p.border, X: 0, Y: 0, Width: f.Width - 1, Height: f.Height - 1},
		Op{Kind: OpLine, Color: p.highlight, X: 1, Y: 1, X2: f.Width - 2, Y2: 1},
		Op{Kind: OpLine, Color: p.highlight, X: 1, Y: 1, X2: 1, Y2: f.Height - 2},
	)

	band := geom.TitlebarHeight - geom.BorderWidth
	for i := 0; i < titleSteps; i++ {
		y1 := geom.BorderWidth + i*band/titleSteps
		y2 := geom.BorderWidth + (i+1)*band/titleSteps
		ops = append(ops, Op{
			Kind:  OpFill,
			Color: blend(p.titleTop, p.titleBot, i, titleSteps),
			X:     geom.BorderWidth, Y: y1,
			Width: f.Width - 2*geom.BorderWidth, Height: y2 - y1 + 1,
		})
	}

	ops = append(ops,
		Op{Kind: OpStroke, Color: p.titleEdge, X: geom.BorderWidth, Y: geom.BorderWidth,
			Width: f.Width - 2*geom.BorderWidth - 1, Height: band},
		Op{Kind: OpLine, Color: p.separator, X: 0, Y: geom.TitlebarHeight, X2: f.Width, Y2: geom.TitlebarHeight},
		Op{Kind: OpLine, Color: p.separatorLight, X: 0, Y: geom.TitlebarHeight + 1, X2: f.Width, Y2: geom.TitlebarHeight + 1},
	)

	controls := Controls(f.Width)
	if title := fitTitle(f.Title, controls); title != "" {
		ops = append(ops, Op{
			Kind:       OpText,
			Color:      p.text,
			Background: blend(p.titleTop, p.titleBot, titleSteps/2, titleSteps),
			X:          controls[0].X + ButtonSize + 2*ButtonSpacing,
			Y:          geom.BorderWidth + band/2 + 4,
			Text:       title,
		})
	}

	for _, c := range controls {
		ops = append(ops, paintButton(p, c, f.Hover == c.Button)...)
	}
	return ops
}

func paintButton(p palette, c Control, hover bool) []Op {
	top, bot := p.buttonTop, p.buttonBot
	if hover {
		top, bot = p.buttonLight, p.buttonTop
	}

	var ops []Op
	for i := 0; i < ButtonSize; i++ {
		ops = append(ops, Op{
			Kind:  OpLine,
			Color: blend(top, bot, i, ButtonSize),
			X:     c.X, Y: c.Y + i, X2: c.X + ButtonSize - 1, Y2: c.Y + i,
		})
	}

	last := ButtonSize - 1
	ops = append(ops,
		Op{Kind: OpLine, Color: p.buttonLight, X: c.X, Y: c.Y, X2: c.X + last, Y2: c.Y},
		Op{Kind: OpLine, Color: p.buttonLight, X: c.X, Y: c.Y, X2: c.X, Y2: c.Y + last},
		Op{Kind: OpLine, Color: p.buttonDark, X: c.X, Y: c.Y + last, X2: c.X + last, Y2: c.Y + last},
		Op{Kind: OpLine, Color: p.buttonDark, X: c.X + last, Y: c.Y, X2: c.X + last, Y2: c.Y + last},
	)

	glyph := uint32(0x404040)
	if hover {
		glyph = 0xFFFFFF
	}
	switch c.Button {
	case ButtonClose:
		ops = append(ops,
			Op{Kind: OpLine, Color: glyph, X: c.X + 4, Y: c.Y + 4, X2: c.X + ButtonSize - 4, Y2: c.Y + ButtonSize - 4},
			Op{Kind: OpLine, Color: glyph, X: c.X + ButtonSize - 4, Y: c.Y + 4, X2: c.X + 4, Y2: c.Y + ButtonSize - 4},
		)
	case ButtonMaximize:
		ops = append(ops, Op{Kind: OpStroke, Color: glyph, X: c.X + 3, Y: c.Y + 3, Width: ButtonSize - 6, Height: ButtonSize - 6})
	case ButtonMinimize:
		ops = append(ops, Op{Kind: OpLine, Color: glyph, X: c.X + 4, Y: c.Y + ButtonSize - 6, X2: c.X + ButtonSize - 4, Y2: c.Y + ButtonSize - 6})
	}
	return ops
}

// fitTitle trims the title to the space between the close button and the
// right-hand controls.
func fitTitle(title string, controls []Control) string {
	if title == "" || len(controls) < 2 {
		return ""
	}
	start := controls[0].X + ButtonSize + 2*ButtonSpacing
	room := (controls[1].X - ButtonSpacing - start) / glyphWidth
	if room <= 0 {
		return ""
	}
	runes := []rune(title)
	if len(runes) > room {
		if room <= 3 {
			return string(runes[:room])
		}
		return string(runes[:room-3]) + "..."
	}
	return title
}

// blend interpolates between two 0xRRGGBB colours at step i of n
func blend(from, to uint32, i, n int) uint32 {
	if n <= 1 {
		return from
	}
	mix := func(shift uint) uint32 {
		a := int(from>>shift) & 0xFF
		b := int(to>>shift) & 0xFF
		return uint32(a+(b-a)*i/(n-1)) & 0xFF
	}
	return mix(16)<<16 | mix(8)<<8 | mix(0)
}

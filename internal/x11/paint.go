package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/1broseidon/aquawm/internal/client"
	"github.com/1broseidon/aquawm/internal/decor"
)

var titleFonts = []string{"fixed", "9x15", "8x13", "6x13"}

// pen is the graphics context and core font used for frame decorations
type pen struct {
	xu   *xgbutil.XUtil
	gc   xproto.Gcontext
	font xproto.Font
}

func newPen(xu *xgbutil.XUtil, root xproto.Window) (*pen, error) {
	conn := xu.Conn()

	font, err := xproto.NewFontId(conn)
	if err != nil {
		return nil, fmt.Errorf("allocate font id: %w", err)
	}
	opened := false
	for _, name := range titleFonts {
		err = xproto.OpenFontChecked(conn, font, uint16(len(name)), name).Check()
		if err == nil {
			opened = true
			break
		}
	}
	if !opened {
		return nil, fmt.Errorf("no core font available (tried %v)", titleFonts)
	}

	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		xproto.CloseFont(conn, font)
		return nil, fmt.Errorf("allocate gc id: %w", err)
	}
	err = xproto.CreateGCChecked(
		conn,
		gc,
		xproto.Drawable(root),
		xproto.GcForeground|xproto.GcBackground|xproto.GcFont|xproto.GcGraphicsExposures,
		[]uint32{
			0x000000,     // foreground
			0xFFFFFF,     // background
			uint32(font), // font
			0,            // graphics_exposures=false
		},
	).Check()
	if err != nil {
		xproto.CloseFont(conn, font)
		return nil, fmt.Errorf("create gc: %w", err)
	}

	return &pen{xu: xu, gc: gc, font: font}, nil
}

func (p *pen) free() {
	xproto.FreeGC(p.xu.Conn(), p.gc)
	xproto.CloseFont(p.xu.Conn(), p.font)
}

func (p *pen) draw(d xproto.Drawable, op decor.Op) {
	conn := p.xu.Conn()
	switch op.Kind {
	case decor.OpFill:
		xproto.ChangeGC(conn, p.gc, xproto.GcForeground, []uint32{op.Color})
		xproto.PolyFillRectangle(conn, d, p.gc, []xproto.Rectangle{rect(op)})
	case decor.OpStroke:
		xproto.ChangeGC(conn, p.gc, xproto.GcForeground, []uint32{op.Color})
		xproto.PolyRectangle(conn, d, p.gc, []xproto.Rectangle{rect(op)})
	case decor.OpLine:
		xproto.ChangeGC(conn, p.gc, xproto.GcForeground, []uint32{op.Color})
		xproto.PolySegment(conn, d, p.gc, []xproto.Segment{{
			X1: int16(op.X), Y1: int16(op.Y),
			X2: int16(op.X2), Y2: int16(op.Y2),
		}})
	case decor.OpText:
		text := op.Text
		if len(text) > 255 {
			text = text[:255]
		}
		if text == "" {
			return
		}
		xproto.ChangeGC(conn, p.gc, xproto.GcForeground|xproto.GcBackground,
			[]uint32{op.Color, op.Background})
		xproto.ImageText8(conn, byte(len(text)), d, p.gc, int16(op.X), int16(op.Y), text)
	}
}

func rect(op decor.Op) xproto.Rectangle {
	return xproto.Rectangle{
		X:      int16(op.X),
		Y:      int16(op.Y),
		Width:  uint16(max(op.Width, 0)),
		Height: uint16(max(op.Height, 0)),
	}
}

// Paint replays ops onto the frame window
func (s *Surface) Paint(frame client.WindowID, ops []decor.Op) {
	d := xproto.Drawable(frame)
	for _, op := range ops {
		s.pen.draw(d, op)
	}
}

package decor

import "github.com/1broseidon/aquawm/internal/geom"

// Cursor is a pointer shape shown over a frame
type Cursor int

const (
	CursorNormal Cursor = iota
	CursorMove
	CursorResizeH
	CursorResizeV
	CursorTopLeft
	CursorTopRight
	CursorBottomLeft
	CursorBottomRight
)

// Cursors lists every shape so adapters can preload them
var Cursors = []Cursor{
	CursorNormal, CursorMove, CursorResizeH, CursorResizeV,
	CursorTopLeft, CursorTopRight, CursorBottomLeft, CursorBottomRight,
}

func (c Cursor) String() string {
	switch c {
	case CursorMove:
		return "move"
	case CursorResizeH:
		return "resize-h"
	case CursorResizeV:
		return "resize-v"
	case CursorTopLeft:
		return "top-left"
	case CursorTopRight:
		return "top-right"
	case CursorBottomLeft:
		return "bottom-left"
	case CursorBottomRight:
		return "bottom-right"
	default:
		return "normal"
	}
}

// CursorForEdges picks the resize cursor for an edge mask
func CursorForEdges(e geom.Edge) Cursor {
	switch e {
	case geom.EdgeLeft, geom.EdgeRight:
		return CursorResizeH
	case geom.EdgeTop, geom.EdgeBottom:
		return CursorResizeV
	case geom.EdgeLeft | geom.EdgeTop:
		return CursorTopLeft
	case geom.EdgeRight | geom.EdgeTop:
		return CursorTopRight
	case geom.EdgeLeft | geom.EdgeBottom:
		return CursorBottomLeft
	case geom.EdgeRight | geom.EdgeBottom:
		return CursorBottomRight
	default:
		return CursorNormal
	}
}

// CursorAt picks the cursor for a frame-local pointer position
func CursorAt(frameWidth, frameHeight, x, y int) Cursor {
	if HitButton(frameWidth, x, y) != ButtonNone {
		return CursorNormal
	}
	if InTitlebar(y) {
		return CursorMove
	}
	return CursorForEdges(ResizeEdges(frameWidth, frameHeight, x, y))
}

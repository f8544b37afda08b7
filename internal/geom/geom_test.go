package geom

import "testing"

var fullHD = Rect{X: 0, Y: 0, Width: 1920, Height: 1080}

func TestPlace_CentersFrameInWorkarea(t *testing.T) {
	got := Place(400, 300, fullHD)

	frame := FrameRect(got)
	if frame.Width != 404 {
		t.Fatalf("expected frame width 404, got %d", frame.Width)
	}
	if frame.Height != 300+TitlebarHeight+BorderWidth {
		t.Fatalf("unexpected frame height %d", frame.Height)
	}
	// (1920-404)/2 = 758, (1080-324)/2 = 378
	if frame.X != 758 || frame.Y != 378 {
		t.Fatalf("expected frame origin (758,378), got (%d,%d)", frame.X, frame.Y)
	}
	if got.X != frame.X+BorderWidth || got.Y != frame.Y+TitlebarHeight {
		t.Fatalf("content not inset inside frame: %+v vs %+v", got, frame)
	}
	if !fullHD.Contains(frame) {
		t.Fatalf("frame %+v escapes the workarea", frame)
	}
}

func TestPlace_ClampsToMinimumSize(t *testing.T) {
	got := Place(10, 10, fullHD)
	if got.Width != MinWidth || got.Height != MinHeight {
		t.Fatalf("expected %dx%d, got %dx%d", MinWidth, MinHeight, got.Width, got.Height)
	}
}

func TestPlace_OversizedAlignsTopLeft(t *testing.T) {
	wa := Rect{X: 0, Y: 30, Width: 1920, Height: 1050}
	got := Place(3000, 2000, wa)
	frame := FrameRect(got)
	if frame.X != wa.X || frame.Y != wa.Y {
		t.Fatalf("expected frame at workarea origin, got (%d,%d)", frame.X, frame.Y)
	}
}

func TestPlace_AlwaysInsideWorkarea(t *testing.T) {
	workareas := []Rect{
		fullHD,
		{X: 0, Y: 30, Width: 1920, Height: 1010},
		{X: 48, Y: 0, Width: 1872, Height: 1080},
		{X: 0, Y: 0, Width: 640, Height: 480},
	}
	sizes := [][2]int{{1, 1}, {100, 80}, {400, 300}, {639 - 2*BorderWidth, 479 - TitlebarHeight - BorderWidth}}

	for _, wa := range workareas {
		for _, s := range sizes {
			frame := FrameRect(Place(s[0], s[1], wa))
			if !wa.Contains(frame) {
				t.Fatalf("size %v in %+v: frame %+v escapes workarea", s, wa, frame)
			}
		}
	}
}

func TestMaximized_FillsWorkarea(t *testing.T) {
	wa := Rect{X: 0, Y: 30, Width: 1920, Height: 1010}
	frame := FrameRect(Maximized(wa))
	if frame != wa {
		t.Fatalf("expected maximized frame %+v, got %+v", wa, frame)
	}
}

func TestClampOrigin(t *testing.T) {
	wa := Rect{X: 0, Y: 30, Width: 1920, Height: 1010}
	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{name: "inside", x: 100, y: 100, wantX: 100, wantY: 100},
		{name: "above workarea", x: 100, y: 0, wantX: 100, wantY: 30},
		{name: "left of screen", x: -50, y: 100, wantX: 0, wantY: 100},
		{name: "past bottom right", x: 1900, y: 1030, wantX: 1920 - 404, wantY: 1040 - 324},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ClampOrigin(tt.x, tt.y, 404, 324, wa)
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("expected (%d,%d), got (%d,%d)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

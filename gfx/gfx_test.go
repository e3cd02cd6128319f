package gfx_test

import (
	"image/color"
	"testing"

	"ember/framebuf"
	"ember/gfx"

	"tinygo.org/x/tinyfont/proggy"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		a, b gfx.Rectangle
		want gfx.Rectangle
	}{
		{gfx.Rect(0, 0, 4, 4), gfx.Rect(2, 2, 4, 4), gfx.Rect(2, 2, 2, 2)},
		{gfx.Rect(1, 0, 6, 3), gfx.Rect(2, 1, 4, 3), gfx.Rect(2, 1, 4, 2)},
		{gfx.Rect(0, 0, 2, 2), gfx.Rect(2, 0, 2, 2), gfx.Rectangle{}},
		{gfx.Rect(-5, -5, 20, 20), gfx.Rect(0, 0, 3, 3), gfx.Rect(0, 0, 3, 3)},
		{gfx.Rect(0, 0, 0, 5), gfx.Rect(0, 0, 5, 5), gfx.Rectangle{}},
		{gfx.Rect(0, 0, 5, -1), gfx.Rect(0, 0, 5, 5), gfx.Rectangle{}},
	}
	for _, tt := range tests {
		if got := tt.a.Intersect(tt.b); got != tt.want {
			t.Fatalf("%v.Intersect(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Intersect(tt.a); got != tt.want {
			t.Fatalf("%v.Intersect(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestContains(t *testing.T) {
	r := gfx.Rect(1, 1, 2, 2)
	for _, p := range []gfx.Point{gfx.Pt(1, 1), gfx.Pt(2, 2)} {
		if !r.Contains(p) {
			t.Fatalf("%v.Contains(%v) = false", r, p)
		}
	}
	for _, p := range []gfx.Point{gfx.Pt(0, 1), gfx.Pt(3, 2), gfx.Pt(2, 3)} {
		if r.Contains(p) {
			t.Fatalf("%v.Contains(%v) = true", r, p)
		}
	}
}

type recorder struct {
	gfx.DrawTarget[uint8]
	pts []gfx.Point
}

func (r *recorder) DrawPixels(px gfx.Pixels[uint8]) error {
	for {
		p, ok := px.Next()
		if !ok {
			return nil
		}
		r.pts = append(r.pts, p.Point)
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		from, to gfx.Point
		want     []gfx.Point
	}{
		{gfx.Pt(0, 0), gfx.Pt(2, 2), []gfx.Point{{0, 0}, {1, 1}, {2, 2}}},
		{gfx.Pt(3, 1), gfx.Pt(0, 1), []gfx.Point{{3, 1}, {2, 1}, {1, 1}, {0, 1}}},
		{gfx.Pt(0, 0), gfx.Pt(0, 0), []gfx.Point{{0, 0}}},
		{gfx.Pt(0, 2), gfx.Pt(1, 0), []gfx.Point{{0, 2}, {1, 1}, {1, 0}}},
	}
	for _, tt := range tests {
		var r recorder
		_ = gfx.Line[uint8]{From: tt.from, To: tt.to, Color: 1}.Draw(&r)
		if len(r.pts) != len(tt.want) {
			t.Fatalf("line %v-%v = %v, want %v", tt.from, tt.to, r.pts, tt.want)
		}
		for i := range r.pts {
			if r.pts[i] != tt.want[i] {
				t.Fatalf("line %v-%v = %v, want %v", tt.from, tt.to, r.pts, tt.want)
			}
		}
	}
}

func TestOutlineRect(t *testing.T) {
	buf := make([]uint8, 25)
	b := framebuf.New(buf, gfx.Sz(5, 5), gfx.Pt(0, 0))
	_ = gfx.OutlineRect[uint8]{Area: gfx.Rect(0, 0, 5, 5), Width: 1, Color: 1}.Draw(&b)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := uint8(0)
			if x == 0 || y == 0 || x == 4 || y == 4 {
				want = 1
			}
			if got := buf[y*5+x]; got != want {
				t.Fatalf("cell (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestRGB565Target(t *testing.T) {
	const w, h = 4, 3
	tgt := &gfx.RGB565Target{Buf: make([]byte, w*h*2), Stride: w * 2, W: w, H: h}
	red := color.RGBA{R: 255, A: 255}

	_ = tgt.FillSolid(gfx.Rect(-1, -1, 2, 2), red)
	if got := tgt.At(0, 0); got != red {
		t.Fatalf("At(0,0) = %v, want %v", got, red)
	}
	if got := tgt.At(1, 0); got != (color.RGBA{A: 255}) {
		t.Fatalf("At(1,0) = %v, want black", got)
	}

	colors := gfx.ColorsOf([]color.RGBA{red, red, red, red})
	_ = tgt.FillContiguous(gfx.Rect(3, 2, 2, 2), colors)
	if colors.Consumed() != 4 {
		t.Fatalf("consumed %d, want 4", colors.Consumed())
	}
	if got := tgt.At(3, 2); got != red {
		t.Fatalf("At(3,2) = %v, want %v", got, red)
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{
		{A: 255},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	} {
		if got := gfx.RGBA565(gfx.RGB565(c)); got != c {
			t.Fatalf("RGBA565(RGB565(%v)) = %v", c, got)
		}
	}
}

func TestTextClipped(t *testing.T) {
	// The buffer stops above the baseline, cutting off the glyphs' feet.
	buf := make([]color.RGBA, 40*6)
	b := framebuf.New(buf, gfx.Sz(40, 6), gfx.Pt(10, 10))
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	txt := gfx.Text{Font: &proggy.TinySZ8pt7b, Pos: gfx.Pt(10, 18), Str: "HI", Color: white}
	if err := txt.Draw(&b); err != nil {
		t.Fatalf("Draw() err = %v", err)
	}

	lit := 0
	for _, c := range buf {
		if c == white {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("no glyph pixels landed in the buffer")
	}
	if gfx.TextWidth(&proggy.TinySZ8pt7b, "HI") <= 0 {
		t.Fatal("TextWidth() <= 0")
	}
}

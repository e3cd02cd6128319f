package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// DisplayAdapter exposes a DrawTarget as a drivers.Displayer so that code
// written against TinyGo drivers (tinyfont in particular) can render into it.
type DisplayAdapter struct {
	dst DrawTarget[color.RGBA]
	px  onePixel
	err error
}

var _ drivers.Displayer = (*DisplayAdapter)(nil)

func NewDisplayAdapter(dst DrawTarget[color.RGBA]) *DisplayAdapter {
	return &DisplayAdapter{dst: dst}
}

// Size reports the far corner of the target's bounds, so positioned targets
// accept their parent-space coordinates.
func (d *DisplayAdapter) Size() (x, y int16) {
	m := d.dst.Bounds().Max()
	return int16(m.X), int16(m.Y)
}

func (d *DisplayAdapter) SetPixel(x, y int16, c color.RGBA) {
	d.px = onePixel{p: Pixel[color.RGBA]{Point: Point{X: int(x), Y: int(y)}, Color: c}}
	if err := d.dst.DrawPixels(&d.px); err != nil && d.err == nil {
		d.err = err
	}
}

func (d *DisplayAdapter) Display() error { return nil }

// Err returns the first error reported by the wrapped target.
func (d *DisplayAdapter) Err() error { return d.err }

type onePixel struct {
	p    Pixel[color.RGBA]
	used bool
}

func (o *onePixel) Next() (Pixel[color.RGBA], bool) {
	if o.used {
		return Pixel[color.RGBA]{}, false
	}
	o.used = true
	return o.p, true
}

// Text is a single line of text. Pos is the left end of the baseline.
type Text struct {
	Font  tinyfont.Fonter
	Pos   Point
	Str   string
	Color color.RGBA
}

func (t Text) Draw(dst DrawTarget[color.RGBA]) error {
	d := NewDisplayAdapter(dst)
	tinyfont.WriteLine(d, t.Font, int16(t.Pos.X), int16(t.Pos.Y), t.Str, t.Color)
	return d.Err()
}

// TextWidth returns the advance width of s in font.
func TextWidth(font tinyfont.Fonter, s string) int {
	_, outbox := tinyfont.LineWidth(font, s)
	return int(outbox)
}

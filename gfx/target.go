package gfx

// Pixel is a single colored point.
type Pixel[C any] struct {
	Point Point
	Color C
}

// Colors is a pull source of colors. Next reports false once exhausted.
type Colors[C any] interface {
	Next() (C, bool)
}

// Pixels is a pull source of pixels.
type Pixels[C any] interface {
	Next() (Pixel[C], bool)
}

// DrawTarget is anything pixels can be drawn onto.
//
// Implementations clip: geometry outside Bounds is discarded, never an error.
// Errors are reserved for transport failures of the underlying device.
type DrawTarget[C any] interface {
	Bounds() Rectangle
	DrawPixels(px Pixels[C]) error
	// FillContiguous fills area row-major from colors. Targets that clip
	// still consume one color per pixel of the unclipped area.
	FillContiguous(area Rectangle, colors Colors[C]) error
	FillSolid(area Rectangle, c C) error
	Clear(c C) error
}

// Drawable draws itself onto a target.
type Drawable[C any] interface {
	Draw(dst DrawTarget[C]) error
}

// SliceColors yields the elements of a slice in order.
type SliceColors[C any] struct {
	s []C
	i int
}

func ColorsOf[C any](s []C) *SliceColors[C] {
	return &SliceColors[C]{s: s}
}

func (c *SliceColors[C]) Next() (C, bool) {
	if c.i >= len(c.s) {
		var zero C
		return zero, false
	}
	v := c.s[c.i]
	c.i++
	return v, true
}

// Consumed returns how many colors have been pulled so far.
func (c *SliceColors[C]) Consumed() int { return c.i }

// Repeat yields c exactly n times.
type Repeat[C any] struct {
	C C
	N int
}

func (r *Repeat[C]) Next() (C, bool) {
	if r.N <= 0 {
		var zero C
		return zero, false
	}
	r.N--
	return r.C, true
}

// SlicePixels yields the elements of a pixel slice in order.
type SlicePixels[C any] struct {
	s []Pixel[C]
	i int
}

func PixelsOf[C any](s []Pixel[C]) *SlicePixels[C] {
	return &SlicePixels[C]{s: s}
}

func (p *SlicePixels[C]) Next() (Pixel[C], bool) {
	if p.i >= len(p.s) {
		return Pixel[C]{}, false
	}
	v := p.s[p.i]
	p.i++
	return v, true
}

package gfx

// Line is a 1px stroke between two points, both ends inclusive.
type Line[C any] struct {
	From, To Point
	Color    C
}

func (l Line[C]) Draw(dst DrawTarget[C]) error {
	it := newLineIter(l.From, l.To, l.Color)
	return dst.DrawPixels(&it)
}

type lineIter[C any] struct {
	x, y   int
	x1, y1 int
	dx, dy int
	sx, sy int
	err    int
	done   bool
	c      C
}

func newLineIter[C any](from, to Point, c C) lineIter[C] {
	it := lineIter[C]{x: from.X, y: from.Y, x1: to.X, y1: to.Y, c: c, sx: 1, sy: 1}
	it.dx = to.X - from.X
	if it.dx < 0 {
		it.dx = -it.dx
		it.sx = -1
	}
	it.dy = to.Y - from.Y
	if it.dy > 0 {
		it.dy = -it.dy
	} else {
		it.sy = -1
	}
	it.err = it.dx + it.dy
	return it
}

func (it *lineIter[C]) Next() (Pixel[C], bool) {
	if it.done {
		return Pixel[C]{}, false
	}
	p := Pixel[C]{Point: Point{X: it.x, Y: it.y}, Color: it.c}
	if it.x == it.x1 && it.y == it.y1 {
		it.done = true
		return p, true
	}
	e2 := 2 * it.err
	if e2 >= it.dy {
		it.err += it.dy
		it.x += it.sx
	}
	if e2 <= it.dx {
		it.err += it.dx
		it.y += it.sy
	}
	return p, true
}

// FilledRect fills Area with a single color.
type FilledRect[C any] struct {
	Area  Rectangle
	Color C
}

func (r FilledRect[C]) Draw(dst DrawTarget[C]) error {
	return dst.FillSolid(r.Area, r.Color)
}

// OutlineRect strokes the inside border of Area with Width pixels.
type OutlineRect[C any] struct {
	Area  Rectangle
	Width int
	Color C
}

func (r OutlineRect[C]) Draw(dst DrawTarget[C]) error {
	if r.Area.Empty() || r.Width <= 0 {
		return nil
	}
	w := r.Width
	a := r.Area
	if 2*w >= a.Size.Width || 2*w >= a.Size.Height {
		return dst.FillSolid(a, r.Color)
	}
	edges := [4]Rectangle{
		Rect(a.Min.X, a.Min.Y, a.Size.Width, w),
		Rect(a.Min.X, a.Min.Y+a.Size.Height-w, a.Size.Width, w),
		Rect(a.Min.X, a.Min.Y+w, w, a.Size.Height-2*w),
		Rect(a.Min.X+a.Size.Width-w, a.Min.Y+w, w, a.Size.Height-2*w),
	}
	for _, e := range edges {
		if err := dst.FillSolid(e, r.Color); err != nil {
			return err
		}
	}
	return nil
}

// Styled is a filled rectangle with an optional border, the common widget
// background.
type Styled[C any] struct {
	Area        Rectangle
	Fill        C
	Border      C
	BorderWidth int
}

func (s Styled[C]) Draw(dst DrawTarget[C]) error {
	if err := dst.FillSolid(s.Area, s.Fill); err != nil {
		return err
	}
	return OutlineRect[C]{Area: s.Area, Width: s.BorderWidth, Color: s.Border}.Draw(dst)
}

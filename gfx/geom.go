package gfx

// Point is a position in a parent coordinate space.
type Point struct {
	X, Y int
}

func Pt(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Size is a pixel extent. Negative dimensions are treated as zero.
type Size struct {
	Width, Height int
}

func Sz(w, h int) Size { return Size{Width: w, Height: h} }

// Area returns Width*Height, or 0 if either dimension is not positive.
func (s Size) Area() int {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	return s.Width * s.Height
}

// Rectangle is the region starting at Min with extent Size.
type Rectangle struct {
	Min  Point
	Size Size
}

func Rect(x, y, w, h int) Rectangle {
	return Rectangle{Min: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Max returns the first point past the bottom-right corner.
func (r Rectangle) Max() Point {
	return Point{X: r.Min.X + r.Size.Width, Y: r.Min.Y + r.Size.Height}
}

// Empty reports whether r covers no pixels.
func (r Rectangle) Empty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

func (r Rectangle) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	m := r.Max()
	return p.X >= r.Min.X && p.X < m.X && p.Y >= r.Min.Y && p.Y < m.Y
}

// Intersect returns the overlap of r and o. Disjoint rectangles yield a
// zero-sized rectangle.
func (r Rectangle) Intersect(o Rectangle) Rectangle {
	if r.Empty() || o.Empty() {
		return Rectangle{}
	}
	rm, om := r.Max(), o.Max()
	x0 := max(r.Min.X, o.Min.X)
	y0 := max(r.Min.Y, o.Min.Y)
	x1 := min(rm.X, om.X)
	y1 := min(rm.Y, om.Y)
	if x0 >= x1 || y0 >= y1 {
		return Rectangle{}
	}
	return Rect(x0, y0, x1-x0, y1-y0)
}

// Translate returns r moved by d.
func (r Rectangle) Translate(d Point) Rectangle {
	return Rectangle{Min: r.Min.Add(d), Size: r.Size}
}

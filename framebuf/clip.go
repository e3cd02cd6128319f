// Package framebuf provides position-aware pixel buffers over fixed memory.
//
// A ClipBuffer is a window into a larger coordinate space. Draw calls are
// addressed in that parent space and clipped to the buffer, so writes never
// land outside the backing slice no matter what geometry is requested. Once
// composited, a ClipBuffer blits itself into its parent with Draw.
//
// A ClipBuffer is the only writer of its backing slice for as long as it is
// in use. Nothing here allocates.
package framebuf

import "ember/gfx"

// ClipBuffer is a clipped draw target over externally owned storage.
type ClipBuffer[C any] struct {
	buf  []C
	size gfx.Size
	pos  gfx.Point
	len  int
}

var _ gfx.DrawTarget[uint8] = (*ClipBuffer[uint8])(nil)

// New returns a ClipBuffer of size at pos backed by buf.
//
// It panics if buf holds fewer than size.Width*size.Height elements; use
// TryNew when the size is only known at runtime.
func New[C any](buf []C, size gfx.Size, pos gfx.Point) ClipBuffer[C] {
	b, ok := TryNew(buf, size, pos)
	if !ok {
		panic("framebuf: buf too small for framebuffer")
	}
	return b
}

// TryNew is like New but reports false instead of panicking.
func TryNew[C any](buf []C, size gfx.Size, pos gfx.Point) (ClipBuffer[C], bool) {
	if size.Width < 0 || size.Height < 0 {
		return ClipBuffer[C]{}, false
	}
	n := size.Width * size.Height
	if n > len(buf) {
		return ClipBuffer[C]{}, false
	}
	return ClipBuffer[C]{buf: buf, size: size, pos: pos, len: n}, true
}

func (b *ClipBuffer[C]) Position() gfx.Point { return b.pos }
func (b *ClipBuffer[C]) Size() gfx.Size      { return b.size }

// Len is the number of owned cells, Width*Height.
func (b *ClipBuffer[C]) Len() int { return b.len }

// Pixels returns the owned cells in row-major order.
func (b *ClipBuffer[C]) Pixels() []C { return b.buf[:b.len] }

// Bounds is the buffer's footprint in the parent coordinate space.
func (b *ClipBuffer[C]) Bounds() gfx.Rectangle {
	return gfx.Rectangle{Min: b.pos, Size: b.size}
}

// At returns the cell at local coordinates (x, y).
func (b *ClipBuffer[C]) At(x, y int) (C, bool) {
	if x < 0 || y < 0 || x >= b.size.Width || y >= b.size.Height {
		var zero C
		return zero, false
	}
	return b.buf[y*b.size.Width+x], true
}

// DrawPixels writes each pixel whose row-major index, relative to the
// buffer's position, falls within the owned cells. Everything else is dropped.
func (b *ClipBuffer[C]) DrawPixels(px gfx.Pixels[C]) error {
	for {
		p, ok := px.Next()
		if !ok {
			return nil
		}
		pt := p.Point.Sub(b.pos)
		i := pt.Y*b.size.Width + pt.X
		if i < 0 || i >= b.len {
			continue
		}
		b.buf[i] = p.Color
	}
}

// FillContiguous fills area from colors in row-major order.
//
// If area misses the buffer nothing is consumed. Otherwise exactly one color
// is pulled for every pixel of the unclipped area, and only those landing
// inside the buffer are written, keeping the source in step with the area's
// shape. An exhausted source stops the fill early.
func (b *ClipBuffer[C]) FillContiguous(area gfx.Rectangle, colors gfx.Colors[C]) error {
	clip := area.Intersect(b.Bounds())
	if clip.Empty() {
		return nil
	}

	topSkip := clip.Min.Y - area.Min.Y
	leftSkip := clip.Min.X - area.Min.X
	rightSkip := area.Size.Width - (leftSkip + clip.Size.Width)

	drain(colors, topSkip*area.Size.Width)

	w := b.size.Width
	for y := clip.Min.Y - b.pos.Y; y < clip.Min.Y-b.pos.Y+clip.Size.Height; y++ {
		drain(colors, leftSkip)
		row := y*w + clip.Min.X - b.pos.X
		for i := row; i < row+clip.Size.Width; i++ {
			c, ok := colors.Next()
			if !ok {
				return nil
			}
			b.buf[i] = c
		}
		drain(colors, rightSkip)
	}

	bottomSkip := area.Size.Height - (topSkip + clip.Size.Height)
	drain(colors, bottomSkip*area.Size.Width)
	return nil
}

// drain pulls and discards up to n colors.
func drain[C any](colors gfx.Colors[C], n int) {
	for ; n > 0; n-- {
		if _, ok := colors.Next(); !ok {
			return
		}
	}
}

// FillSolid writes c into every cell of area that lies inside the buffer.
func (b *ClipBuffer[C]) FillSolid(area gfx.Rectangle, c C) error {
	clip := area.Intersect(b.Bounds())
	if clip.Empty() {
		return nil
	}
	w := b.size.Width
	x0 := clip.Min.X - b.pos.X
	for y := clip.Min.Y - b.pos.Y; y < clip.Min.Y-b.pos.Y+clip.Size.Height; y++ {
		row := b.buf[y*w+x0 : y*w+x0+clip.Size.Width]
		for i := range row {
			row[i] = c
		}
	}
	return nil
}

// Clear fills the whole buffer with c. It works in local space and ignores
// the position.
func (b *ClipBuffer[C]) Clear(c C) error {
	cells := b.buf[:b.len]
	for i := range cells {
		cells[i] = c
	}
	return nil
}

// Draw blits the buffer into dst at its position with a single
// FillContiguous call.
func (b *ClipBuffer[C]) Draw(dst gfx.DrawTarget[C]) error {
	src := cellColors[C]{cells: b.buf[:b.len]}
	return dst.FillContiguous(b.Bounds(), &src)
}

type cellColors[C any] struct {
	cells []C
	i     int
}

func (s *cellColors[C]) Next() (C, bool) {
	if s.i >= len(s.cells) {
		var zero C
		return zero, false
	}
	c := s.cells[s.i]
	s.i++
	return c, true
}

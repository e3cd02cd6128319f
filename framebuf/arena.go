package framebuf

import "ember/gfx"

// View records where a ClipBuffer's cells live inside an Arena block.
type View struct {
	Offset int
	Width  int
	Height int
}

func (v View) Len() int { return v.Width * v.Height }

// Arena owns one contiguous block of cells and hands out disjoint
// ClipBuffers over it. Views are capped at their own length, so no buffer can
// reach a neighbour's cells. Reset reclaims every view at once, typically at
// the end of a frame.
type Arena[C any] struct {
	block []C
	used  int
	views int
}

// NewArena allocates a block of n cells. Call it once at startup.
func NewArena[C any](n int) *Arena[C] {
	return &Arena[C]{block: make([]C, n)}
}

// ArenaOver uses block as backing storage without copying it.
func ArenaOver[C any](block []C) *Arena[C] {
	return &Arena[C]{block: block}
}

func (a *Arena[C]) Cap() int   { return len(a.block) }
func (a *Arena[C]) Used() int  { return a.used }
func (a *Arena[C]) Free() int  { return len(a.block) - a.used }
func (a *Arena[C]) Views() int { return a.views }

// Alloc carves a size buffer positioned at pos out of the remaining block.
// It reports false if the arena cannot fit it.
func (a *Arena[C]) Alloc(size gfx.Size, pos gfx.Point) (ClipBuffer[C], View, bool) {
	if size.Width < 0 || size.Height < 0 {
		return ClipBuffer[C]{}, View{}, false
	}
	n := size.Width * size.Height
	if n > a.Free() {
		return ClipBuffer[C]{}, View{}, false
	}
	v := View{Offset: a.used, Width: size.Width, Height: size.Height}
	b, ok := TryNew(a.block[v.Offset:v.Offset+n:v.Offset+n], size, pos)
	if !ok {
		return ClipBuffer[C]{}, View{}, false
	}
	a.used += n
	a.views++
	return b, v, true
}

// MustAlloc is like Alloc but panics when the arena is exhausted.
func (a *Arena[C]) MustAlloc(size gfx.Size, pos gfx.Point) ClipBuffer[C] {
	b, _, ok := a.Alloc(size, pos)
	if !ok {
		panic("framebuf: arena exhausted")
	}
	return b
}

// Reset releases every view. Buffers handed out before Reset must not be used
// afterwards.
func (a *Arena[C]) Reset() {
	a.used = 0
	a.views = 0
}

// Cells returns the cells backing v.
func (a *Arena[C]) Cells(v View) []C {
	return a.block[v.Offset : v.Offset+v.Len() : v.Offset+v.Len()]
}

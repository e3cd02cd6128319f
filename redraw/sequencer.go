package redraw

import "fmt"

// Sequencer hands out Cells in traversal order.
//
// Call Restart once at the start of every frame, then have each widget pull
// its cells with Next. Cells are returned by pointer so that what a widget
// writes this frame is what it compares against next frame.
//
// Slots are matched to widgets purely by position. The caller must visit the
// same widgets, in the same order, calling Next the same number of times,
// every frame. A widget that is drawn in one frame and absent in the next
// shifts every later widget onto a neighbour's slot. Widgets that are
// sometimes hidden should Skip their slots instead of disappearing, and a
// layout change that reorders widgets should be followed by InvalidateAll.
//
// Misuse (running out of cells, reading before Next, out of range indexes)
// panics: a substituted cell would silently corrupt redraw decisions.
type Sequencer struct {
	cells []Cell
	pos   int
}

// NewSequencer allocates n empty cells. Do this once for the lifetime of the
// UI.
func NewSequencer(n int) *Sequencer {
	if n < 0 {
		panic("redraw: negative sequencer size")
	}
	return &Sequencer{cells: make([]Cell, n)}
}

// NewSequencerWith uses cells as storage; its length is the capacity. The
// cells are reset to empty.
func NewSequencerWith(cells []Cell) *Sequencer {
	for i := range cells {
		cells[i] = Cell{}
	}
	return &Sequencer{cells: cells}
}

// Restart moves the cursor back to the first cell.
func (s *Sequencer) Restart() { s.pos = 0 }

// Cap returns the number of cells.
func (s *Sequencer) Cap() int { return len(s.cells) }

// Pos returns the cursor.
func (s *Sequencer) Pos() int { return s.pos }

// Next returns the cell at the cursor and advances it.
func (s *Sequencer) Next() *Cell {
	if s.pos >= len(s.cells) {
		panic(fmt.Sprintf("redraw: sequencer exhausted at %d cells; increase its size", len(s.cells)))
	}
	c := &s.cells[s.pos]
	s.pos++
	return c
}

// Current returns the cell most recently returned by Next.
func (s *Sequencer) Current() *Cell {
	return s.at(s.pos-1, "Current called before Next")
}

// Previous returns the cell returned by Next two calls ago.
func (s *Sequencer) Previous() *Cell {
	return s.at(s.pos-2, "Previous called before two calls to Next")
}

// Peek returns the cell at the cursor without advancing.
func (s *Sequencer) Peek() *Cell {
	return s.at(s.pos, "Peek at capacity")
}

// Relative returns the cell at cursor+offset without advancing. Relative(0)
// is Peek and Relative(-2) is Previous.
func (s *Sequencer) Relative(offset int) *Cell {
	return s.at(s.pos+offset, "Relative index out of range")
}

// Absolute returns the cell at index i, ignoring the cursor.
func (s *Sequencer) Absolute(i int) *Cell {
	return s.at(i, "Absolute index out of range")
}

func (s *Sequencer) at(i int, what string) *Cell {
	if i < 0 || i >= len(s.cells) {
		panic(fmt.Sprintf("redraw: %s (index %d, size %d)", what, i, len(s.cells)))
	}
	return &s.cells[i]
}

// Skip advances the cursor by n without touching any cell. A widget that
// does not track state still skips its slot so later indexes stay stable.
func (s *Sequencer) Skip(n int) {
	if n < 0 || s.pos+n > len(s.cells) {
		panic(fmt.Sprintf("redraw: Skip(%d) from %d exceeds size %d", n, s.pos, len(s.cells)))
	}
	s.pos += n
}

func (s *Sequencer) SkipOne() { s.Skip(1) }

// InvalidateAll forces every cell to report a change.
func (s *Sequencer) InvalidateAll() {
	for i := range s.cells {
		s.cells[i].Invalidate()
	}
}

// InvalidateFrom invalidates cells from absolute index i to the end.
func (s *Sequencer) InvalidateFrom(i int) {
	s.InvalidateRange(i, len(s.cells))
}

// InvalidateRange invalidates cells in [lo, hi).
func (s *Sequencer) InvalidateRange(lo, hi int) {
	if lo < 0 || hi > len(s.cells) || lo > hi {
		panic(fmt.Sprintf("redraw: invalid range [%d, %d) for size %d", lo, hi, len(s.cells)))
	}
	for i := lo; i < hi; i++ {
		s.cells[i].Invalidate()
	}
}

// InvalidateRangeRelative invalidates [cursor+lo, cursor+hi).
func (s *Sequencer) InvalidateRangeRelative(lo, hi int) {
	s.InvalidateRange(s.pos+lo, s.pos+hi)
}

// InvalidateRemaining invalidates the cell at the cursor and every cell after
// it. Use it when a change in one widget alters the look of the widgets that
// follow.
func (s *Sequencer) InvalidateRemaining() {
	s.InvalidateFromOffset(0)
}

// InvalidateFromOffset invalidates from cursor+offset to the end.
func (s *Sequencer) InvalidateFromOffset(offset int) {
	s.InvalidateRange(s.pos+offset, len(s.cells))
}

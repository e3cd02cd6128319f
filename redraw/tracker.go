package redraw

// Tracker lets a widget opt in to redraw tracking.
//
// The zero Tracker is disabled: Set and Modify do nothing and every
// comparison reports a change, so an untracked widget always draws. Track
// enables it with a handle to a sequencer cell.
type Tracker struct {
	cell *Cell
}

// Track returns a Tracker writing to c. A nil c yields a disabled Tracker.
func Track(c *Cell) Tracker { return Tracker{cell: c} }

func (t Tracker) Enabled() bool { return t.cell != nil }

// Snapshot returns a copy of the tracked cell. ok is false when disabled.
func (t Tracker) Snapshot() (c Cell, ok bool) {
	if t.cell == nil {
		return Cell{}, false
	}
	return *t.cell, true
}

// Set tags the tracked cell with id.
func (t Tracker) Set(id uint32) {
	if t.cell != nil {
		t.cell.Set(id)
	}
}

// Modify applies fn to the tracked cell.
func (t Tracker) Modify(fn func(*Cell)) {
	if t.cell != nil {
		fn(t.cell)
	}
}

// Equal compares the tracked cell with o. Disabled trackers never compare
// equal.
func (t Tracker) Equal(o Cell) bool {
	return t.cell != nil && t.cell.Equal(o)
}

// Unchanged compares against a Snapshot taken earlier. It is the usual
// redraw check:
//
//	prev, ok := tr.Snapshot()
//	tr.Set(variant)
//	if tr.Unchanged(prev, ok) {
//		return // skip drawing
//	}
func (t Tracker) Unchanged(prev Cell, ok bool) bool {
	return ok && t.Equal(prev)
}

// Invalidate forces the tracked cell to report a change next time.
func (t Tracker) Invalidate() {
	if t.cell != nil {
		t.cell.Invalidate()
	}
}

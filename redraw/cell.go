// Package redraw decides whether a widget needs to be drawn again.
//
// Each widget records which visual variant it drew last frame in a Cell.
// Next frame it computes its variant again and compares: if the cell still
// holds the same id the widget skips drawing. Cells are handed out by a
// Sequencer in traversal order, so no widget needs an identity or a key.
package redraw

// Cell is a tiny fingerprint of the state behind a widget's last redraw.
//
// A Cell that is not Valid never equals anything, itself included: an unknown
// state always forces a redraw.
type Cell struct {
	ID    uint32
	Valid bool
}

// Empty returns an unknown cell.
func Empty() Cell { return Cell{} }

// State returns a valid cell tagged with id.
func State(id uint32) Cell { return Cell{ID: id, Valid: true} }

// Equal reports whether both cells are valid and hold the same id.
func (c Cell) Equal(o Cell) bool {
	return c.Valid && o.Valid && c.ID == o.ID
}

// Set tags the cell with id and marks it valid.
func (c *Cell) Set(id uint32) {
	c.ID = id
	c.Valid = true
}

func (c Cell) IsEmpty() bool { return !c.Valid }

// Is reports whether the cell is valid and tagged with id.
func (c Cell) Is(id uint32) bool { return c.Valid && c.ID == id }

// Invalidate marks the cell unknown, keeping its id, so the next comparison
// reports a change.
func (c *Cell) Invalidate() { c.Valid = false }

// Package ui ties a draw target and a redraw.Sequencer into a per-frame
// context for immediate-mode widgets.
package ui

import (
	"ember/framebuf"
	"ember/gfx"
	"ember/redraw"
)

// FrameStats counts what happened during one frame.
type FrameStats struct {
	Frame   uint64
	Slots   int // sequencer cells consumed
	Drawn   int
	Skipped int
	Errors  int
}

// Context is owned by the render loop for the lifetime of the UI. It is not
// safe for concurrent use.
type Context[C any] struct {
	target gfx.DrawTarget[C]
	seq    *redraw.Sequencer
	in     Interaction

	frame uint64
	stats FrameStats
}

func NewContext[C any](target gfx.DrawTarget[C], seq *redraw.Sequencer) *Context[C] {
	return &Context[C]{target: target, seq: seq}
}

func (c *Context[C]) Target() gfx.DrawTarget[C]    { return c.target }
func (c *Context[C]) Sequencer() *redraw.Sequencer { return c.seq }
func (c *Context[C]) Interaction() Interaction     { return c.in }

// Begin starts a frame: it restarts the sequencer and records the frame's
// input.
func (c *Context[C]) Begin(in Interaction) {
	c.seq.Restart()
	c.in = in
	c.frame++
	c.stats = FrameStats{Frame: c.frame}
}

// End finishes the frame and returns its statistics.
func (c *Context[C]) End() FrameStats {
	c.stats.Slots = c.seq.Pos()
	return c.stats
}

// Track pulls the next sequencer cell as an enabled tracker.
func (c *Context[C]) Track() redraw.Tracker {
	return redraw.Track(c.seq.Next())
}

// Report records a widget response in the frame statistics.
func (c *Context[C]) Report(r Response) Response {
	switch {
	case r.Err != nil:
		c.stats.Errors++
	case r.Redraw:
		c.stats.Drawn++
	default:
		c.stats.Skipped++
	}
	return r
}

// ForceRedraw invalidates every cell. Call it after anything that repaints
// behind the widgets, such as clearing the target.
func (c *Context[C]) ForceRedraw() {
	c.seq.InvalidateAll()
}

// Clear fills the target and forces every widget to redraw.
func (c *Context[C]) Clear(col C) error {
	c.ForceRedraw()
	return drawErr(c.target.Clear(col))
}

// Draw draws d directly onto the target.
func (c *Context[C]) Draw(d gfx.Drawable[C]) error {
	return drawErr(d.Draw(c.target))
}

// Composite renders fn into a ClipBuffer covering area, backed by buf, and
// blits the result to the target in one FillContiguous call. Drawing that
// strays outside area is clipped away.
func (c *Context[C]) Composite(area gfx.Rectangle, buf []C, fn func(dst gfx.DrawTarget[C]) error) error {
	if area.Size.Width < 0 || area.Size.Height < 0 {
		return ErrBounds
	}
	fb, ok := framebuf.TryNew(buf, area.Size, area.Min)
	if !ok {
		return ErrBufferTooSmall
	}
	if err := fn(&fb); err != nil {
		return drawErr(err)
	}
	return drawErr(fb.Draw(c.target))
}

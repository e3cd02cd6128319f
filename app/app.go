// Package app is the demo panel: a fixed set of widgets drawn through a
// ui.Context so that only widgets whose state changed touch the panel.
package app

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"ember/framebuf"
	"ember/gfx"
	"ember/hal"
	"ember/redraw"
	"ember/ui"
)

// App owns the render loop state for one HAL.
type App struct {
	h   hal.HAL
	cfg Config
	fb  hal.Framebuffer
	ctx *ui.Context[color.RGBA]
	p   *panel

	ptr  <-chan hal.PointerEvent
	in   ui.Interaction
	down bool

	last   ui.FrameStats
	halted error
}

// New builds the panel on h's framebuffer. It panics if h has no
// framebuffer.
func New(h hal.HAL, cfg Config) *App {
	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		panic("app: no framebuffer")
	}

	target := hal.Target(fb)
	if target == nil {
		panic("app: unsupported framebuffer format")
	}
	ctx := ui.NewContext[color.RGBA](target, redraw.NewSequencer(cfg.Slots))

	a := &App{
		h:   h,
		cfg: cfg,
		fb:  fb,
		ctx: ctx,
		p:   newPanel(ctx, cfg, gfx.Sz(fb.Width(), fb.Height())),
	}
	if in := h.Input(); in != nil {
		if p := in.Pointer(); p != nil {
			a.ptr = p.Events()
		}
	}
	return a
}

// NewStep adapts New to the host runners.
func NewStep(cfg Config) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		return New(h, cfg).Step
	}
}

// Run drives the panel forever at roughly 60 frames per second
// (TinyGo entrypoint).
func Run(h hal.HAL, cfg Config) {
	a := New(h, cfg)
	for {
		if err := a.Step(); err != nil {
			a.logf("step: %v", err)
		}
		time.Sleep(16 * time.Millisecond)
	}
}

// Step runs one frame and presents what it redrew. After a panic the panel
// stays on the panic screen and Step does nothing.
func (a *App) Step() error {
	if a.halted != nil {
		return nil
	}
	defer func() {
		if v := recover(); v != nil {
			a.halted = fmt.Errorf("app: panic: %v", v)
			a.showPanic(v)
		}
	}()

	a.pollPointer()
	a.ctx.Begin(a.in)
	a.p.frame()
	a.last = a.ctx.End()

	if every := a.cfg.StatsEvery; every > 0 && a.last.Frame%uint64(every) == 0 {
		a.logf("frame %d: slots=%d drawn=%d skipped=%d errors=%d scratch=%d",
			a.last.Frame, a.last.Slots, a.last.Drawn, a.last.Skipped, a.last.Errors, a.p.composited)
	}

	dirty := a.p.takeDirty()
	if perr := a.p.takeErr(); perr != nil {
		a.logf("draw: %v", perr)
	}
	if dirty.Empty() {
		return nil
	}
	return a.fb.PresentRect(dirty)
}

// Stats returns the statistics of the last completed frame.
func (a *App) Stats() ui.FrameStats { return a.last }

// Scratch returns how many arena cells the last frame composited through.
func (a *App) Scratch() int { return a.p.composited }

// Counter returns the value the buttons have accumulated.
func (a *App) Counter() int { return a.p.count }

// Halted reports the panic that stopped the panel, if any.
func (a *App) Halted() error { return a.halted }

// pollPointer takes at most one pointer sample per frame so that a press
// and its release land in different frames.
func (a *App) pollPointer() {
	var ev hal.PointerEvent
	select {
	case ev = <-a.ptr:
	default:
		// No news: a click becomes a drag and a release becomes a hover so
		// they fire once.
		switch a.in.Kind {
		case ui.InteractionClick:
			a.in = ui.Drag(a.in.At)
		case ui.InteractionRelease:
			a.in = ui.Hover(a.in.At)
		}
		return
	}

	at := gfx.Pt(ev.X, ev.Y)
	switch {
	case ev.Down && !a.down:
		a.in = ui.Click(at)
	case ev.Down:
		a.in = ui.Drag(at)
	case a.down:
		a.in = ui.Release(at)
	default:
		a.in = ui.Hover(at)
	}
	a.down = ev.Down
}

func (a *App) logf(format string, args ...any) {
	if l := a.h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(format, args...))
	}
}

func toImage(r gfx.Rectangle) image.Rectangle {
	m := r.Max()
	return image.Rect(r.Min.X, r.Min.Y, m.X, m.Y)
}

// scratchArena sizes the per-frame arena for the widest composited row.
func scratchArena(screen gfx.Size) *framebuf.Arena[color.RGBA] {
	return framebuf.NewArena[color.RGBA](screen.Width * rowHeight * 2)
}

//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal presenter.
type TerminalConfig struct {
	Hz int
}

// RunTerminal renders the framebuffer into the terminal with half-block
// characters, two pixel rows per cell, and forwards the mouse as pointer
// input. Escape, Ctrl-C or q quits.
func RunTerminal(ctx context.Context, h HAL, newApp func(HAL) func() error, cfg TerminalConfig) error {
	hh, ok := h.(*hostHAL)
	if !ok {
		return ErrNotImplemented
	}
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid terminal hz: %d", cfg.Hz)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	step := newApp(h)
	tp := &termPresenter{fb: hh.fb, screen: screen}
	tp.resize()

	t := time.NewTicker(d)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				tp.resize()
			case *tcell.EventMouse:
				x, y := ev.Position()
				px, py := tp.toPixel(x, y)
				hh.ptr.emit(PointerEvent{X: px, Y: py, Down: ev.Buttons()&tcell.Button1 != 0})
			}
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tp.draw()
		}
	}
}

type termPresenter struct {
	fb      *hostFramebuffer
	screen  tcell.Screen
	scratch []byte
	step    int // framebuffer pixels per terminal column
	full    bool
}

func (p *termPresenter) resize() {
	cols, rows := p.screen.Size()
	if cols <= 0 || rows <= 0 {
		p.step = 1
		return
	}
	sx := (p.fb.width + cols - 1) / cols
	sy := (p.fb.height + 2*rows - 1) / (2 * rows)
	p.step = max(sx, sy, 1)
	p.full = true
}

func (p *termPresenter) toPixel(col, row int) (int, int) {
	return col * p.step, row * 2 * p.step
}

func (p *termPresenter) draw() {
	dirty := p.fb.takeDirty()
	if p.full {
		dirty = p.fb.bounds()
		p.full = false
		p.screen.Clear()
	}
	if dirty.Empty() {
		return
	}
	if len(p.scratch) != len(p.fb.buf) {
		p.scratch = make([]byte, len(p.fb.buf))
	}
	p.fb.snapshotRGB565(p.scratch)

	s := p.step
	c0, c1 := dirty.Min.X/s, (dirty.Max.X+s-1)/s
	r0, r1 := dirty.Min.Y/(2*s), (dirty.Max.Y+2*s-1)/(2*s)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			top := p.sample(col*s, 2*row*s)
			bottom := p.sample(col*s, (2*row+1)*s)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			p.screen.SetContent(col, row, '▀', nil, style)
		}
	}
	p.screen.Show()
}

func (p *termPresenter) sample(x, y int) tcell.Color {
	if x >= p.fb.width || y >= p.fb.height {
		return tcell.ColorBlack
	}
	i := y*p.fb.stride + x*2
	c := rgbaAt(p.scratch, i)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

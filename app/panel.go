package app

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"ember/framebuf"
	"ember/gfx"
	"ember/redraw"
	"ember/ui"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	margin    = 8
	gap       = 6
	rowHeight = 24
	// capHeight approximates the glyph height of the panel font, used to
	// center text vertically.
	capHeight = 7
	textInset = 6
)

const (
	stateDrawn uint32 = iota + 1
	stateHidden
)

// slotsFor returns how many sequencer cells one frame uses with n buttons:
// background, header, two per button, two for the toggle, details, counter.
func slotsFor(n int) int { return 6 + 2*n }

// panel is the caller side of the sequencer: every frame walks the same
// widgets in the same order.
type panel struct {
	ctx   *ui.Context[color.RGBA]
	cfg   Config
	theme Theme
	font  tinyfont.Fonter

	arena   *framebuf.Arena[color.RGBA]
	scratch []color.RGBA
	// composited counts the arena cells handed out this frame.
	composited int

	screen      gfx.Rectangle
	header      gfx.Rectangle
	buttons     []gfx.Rectangle
	toggleArea  gfx.Rectangle
	detailsArea gfx.Rectangle
	counterArea gfx.Rectangle

	accent bool
	count  int

	dirty image.Rectangle
	err   error
}

func newPanel(ctx *ui.Context[color.RGBA], cfg Config, screen gfx.Size) *panel {
	p := &panel{
		ctx:    ctx,
		cfg:    cfg,
		theme:  cfg.Palette(),
		font:   &proggy.TinySZ8pt7b,
		arena:  scratchArena(screen),
		screen: gfx.Rectangle{Size: screen},
	}

	w := screen.Width - 2*margin
	y := margin
	row := func(h int) gfx.Rectangle {
		r := gfx.Rect(margin, y, w, h)
		y += h + gap
		return r
	}

	p.header = row(rowHeight)
	br := row(rowHeight)
	n := len(cfg.Buttons)
	bw := (w - (n-1)*gap) / n
	for i := range n {
		p.buttons = append(p.buttons, gfx.Rect(br.Min.X+i*(bw+gap), br.Min.Y, bw, rowHeight))
	}
	p.toggleArea = row(rowHeight)
	p.detailsArea = row(rowHeight)
	p.counterArea = row(2 * rowHeight)
	p.scratch = make([]color.RGBA, p.counterArea.Size.Area())
	return p
}

func (p *panel) frame() {
	p.arena.Reset()
	p.composited = 0

	p.background()
	if p.reserve(p.header, 1) {
		p.label(p.header, p.cfg.Title)
	}
	for i, label := range p.cfg.Buttons {
		if p.reserve(p.buttons[i], 2) && p.button(p.buttons[i], label).Clicked {
			p.apply(label)
		}
	}
	if p.reserve(p.toggleArea, 2) && p.toggle(p.toggleArea, "Alternate accent", &p.accent).Changed {
		// Everything below the toggle uses the accent color.
		p.ctx.Sequencer().InvalidateRemaining()
	}
	if p.reserve(p.detailsArea, 1) {
		p.details(p.detailsArea, p.accent)
	}
	if p.reserve(p.counterArea, 1) {
		p.counter(p.counterArea)
	}
}

// reserve reports whether area fits on the panel. A widget that does not
// fit skips its n slots and reports ErrNoSpaceLeft instead of drawing.
func (p *panel) reserve(area gfx.Rectangle, n int) bool {
	if !area.Empty() && area.Intersect(p.screen) == area {
		return true
	}
	p.ctx.Sequencer().Skip(n)
	p.ctx.Report(ui.NewResponse(area, p.ctx.Interaction()).WithErr(ui.ErrNoSpaceLeft))
	return false
}

func (p *panel) apply(label string) {
	if n, err := strconv.Atoi(label); err == nil {
		p.count += n
		return
	}
	if strings.EqualFold(label, "reset") {
		p.count = 0
	}
}

// track hands out the next cell. Untracked panels still reserve the slot so
// the layout of the sequencer does not depend on the setting.
func (p *panel) track() redraw.Tracker {
	if p.cfg.Untracked {
		p.ctx.Sequencer().SkipOne()
		return redraw.Tracker{}
	}
	return p.ctx.Track()
}

// pair hands out two adjacent cells.
func (p *panel) pair() (first, second redraw.Tracker) {
	seq := p.ctx.Sequencer()
	if p.cfg.Untracked {
		seq.Skip(2)
		return redraw.Tracker{}, redraw.Tracker{}
	}
	seq.Next()
	seq.Next()
	return redraw.Track(seq.Previous()), redraw.Track(seq.Current())
}

// update tags t with id and reports whether that differs from last frame.
func update(t redraw.Tracker, id uint32) bool {
	prev, ok := t.Snapshot()
	t.Set(id)
	return !t.Unchanged(prev, ok)
}

func boolID(b bool) uint32 {
	if b {
		return 2
	}
	return 1
}

func (p *panel) background() ui.Response {
	resp := ui.NewResponse(p.screen, p.ctx.Interaction())
	t := p.track()
	if prev, ok := t.Snapshot(); ok && prev.Is(stateDrawn) {
		return p.ctx.Report(resp.WithRedraw(false))
	}
	// Clear invalidates every cell, this one included.
	err := p.ctx.Clear(p.theme.Background)
	t.Set(stateDrawn)
	return p.finish(resp, err)
}

func (p *panel) label(area gfx.Rectangle, s string) ui.Response {
	resp := ui.NewResponse(area, p.ctx.Interaction())
	if !update(p.track(), stateDrawn) {
		return p.ctx.Report(resp.WithRedraw(false))
	}
	err := p.ctx.Draw(gfx.FilledRect[color.RGBA]{Area: area, Color: p.theme.Background})
	if err == nil {
		err = p.ctx.Draw(p.text(area, s, p.theme.Text, false))
	}
	return p.finish(resp, err)
}

func (p *panel) button(area gfx.Rectangle, label string) ui.Response {
	in := p.ctx.Interaction()
	hover := in.Within(area)
	pressed := hover && (in.Kind == ui.InteractionClick || in.Kind == ui.InteractionDrag)
	clicked := hover && in.Kind == ui.InteractionRelease
	resp := ui.NewResponse(area, in).WithClicked(clicked).WithDown(pressed)

	hoverCell, pressCell := p.pair()
	changed := update(hoverCell, boolID(hover))
	changed = update(pressCell, boolID(pressed)) || changed
	if !changed {
		return p.ctx.Report(resp.WithRedraw(false))
	}

	fill := p.theme.Surface
	switch {
	case pressed:
		fill = p.theme.Pressed
	case hover:
		fill = p.theme.Hover
	}
	err := p.composite(area, func(dst gfx.DrawTarget[color.RGBA]) error {
		bg := gfx.Styled[color.RGBA]{Area: area, Fill: fill, Border: p.theme.Border, BorderWidth: 1}
		if err := bg.Draw(dst); err != nil {
			return err
		}
		return p.text(area, label, p.theme.Text, true).Draw(dst)
	})
	return p.finish(resp, err)
}

func (p *panel) toggle(area gfx.Rectangle, label string, on *bool) ui.Response {
	in := p.ctx.Interaction()
	hover := in.Within(area)
	clicked := hover && in.Kind == ui.InteractionRelease
	if clicked {
		*on = !*on
	}
	resp := ui.NewResponse(area, in).WithClicked(clicked).WithChanged(clicked)

	hoverCell, valueCell := p.pair()
	changed := update(hoverCell, boolID(hover))
	changed = update(valueCell, boolID(*on)) || changed
	if !changed {
		return p.ctx.Report(resp.WithRedraw(false))
	}

	fill := p.theme.Background
	if hover {
		fill = p.theme.Surface
	}
	box := gfx.Rect(area.Min.X+textInset, area.Min.Y+(area.Size.Height-12)/2, 12, 12)
	mark := p.theme.Background
	if *on {
		mark = p.accentColor()
	}
	err := p.composite(area, func(dst gfx.DrawTarget[color.RGBA]) error {
		if err := dst.FillSolid(area, fill); err != nil {
			return err
		}
		b := gfx.Styled[color.RGBA]{Area: box, Fill: mark, Border: p.theme.Border, BorderWidth: 1}
		if err := b.Draw(dst); err != nil {
			return err
		}
		txt := p.text(area, label, p.theme.Text, false)
		txt.Pos.X = box.Max().X + textInset
		return txt.Draw(dst)
	})
	return p.finish(resp, err)
}

// details is only visible while the toggle is on. Once erased, a hidden
// details widget skips its slot until it shows again.
func (p *panel) details(area gfx.Rectangle, visible bool) ui.Response {
	resp := ui.NewResponse(area, p.ctx.Interaction())
	seq := p.ctx.Sequencer()

	if !visible {
		switch {
		case p.cfg.Untracked:
			seq.SkipOne()
		case seq.Peek().Is(stateHidden):
			seq.SkipOne()
			return p.ctx.Report(resp.WithRedraw(false))
		default:
			seq.Next().Set(stateHidden)
		}
		err := p.ctx.Draw(gfx.FilledRect[color.RGBA]{Area: area, Color: p.theme.Background})
		return p.finish(resp, err)
	}

	if !update(p.track(), stateDrawn) {
		return p.ctx.Report(resp.WithRedraw(false))
	}
	err := p.ctx.Draw(gfx.FilledRect[color.RGBA]{Area: area, Color: p.theme.Background})
	if err == nil {
		line := gfx.Line[color.RGBA]{
			From:  gfx.Pt(area.Min.X, area.Max().Y-1),
			To:    gfx.Pt(area.Max().X-1, area.Max().Y-1),
			Color: p.accentColor(),
		}
		err = p.ctx.Draw(line)
	}
	if err == nil {
		err = p.ctx.Draw(p.text(area, "slots "+strconv.Itoa(seq.Cap()), p.theme.Text, false))
	}
	return p.finish(resp, err)
}

func (p *panel) counter(area gfx.Rectangle) ui.Response {
	resp := ui.NewResponse(area, p.ctx.Interaction())
	if !update(p.track(), uint32(int32(p.count))) {
		return p.ctx.Report(resp.WithRedraw(false))
	}
	s := strconv.Itoa(p.count)
	err := p.ctx.Composite(area, p.scratch, func(dst gfx.DrawTarget[color.RGBA]) error {
		bg := gfx.Styled[color.RGBA]{Area: area, Fill: p.theme.Surface, Border: p.accentColor(), BorderWidth: 2}
		if err := bg.Draw(dst); err != nil {
			return err
		}
		return p.text(area, s, p.theme.Text, true).Draw(dst)
	})
	return p.finish(resp, err)
}

func (p *panel) accentColor() color.RGBA {
	if p.accent {
		return p.theme.AccentAlt
	}
	return p.theme.Accent
}

func (p *panel) text(area gfx.Rectangle, s string, c color.RGBA, centered bool) gfx.Text {
	x := area.Min.X + textInset
	if centered {
		x = area.Min.X + (area.Size.Width-gfx.TextWidth(p.font, s))/2
	}
	baseline := area.Min.Y + (area.Size.Height+capHeight)/2
	return gfx.Text{Font: p.font, Pos: gfx.Pt(x, baseline), Str: s, Color: c}
}

// composite draws fn into a buffer from the frame arena and blits it in one
// go. When the arena runs dry fn draws straight onto the panel.
func (p *panel) composite(area gfx.Rectangle, fn func(dst gfx.DrawTarget[color.RGBA]) error) error {
	buf, v, ok := p.arena.Alloc(area.Size, area.Min)
	if !ok {
		if err := fn(p.ctx.Target()); err != nil {
			return &ui.DrawError{Err: err}
		}
		return nil
	}
	p.composited += v.Len()
	if err := fn(&buf); err != nil {
		return &ui.DrawError{Err: err}
	}
	return p.ctx.Draw(&buf)
}

func (p *panel) finish(r ui.Response, err error) ui.Response {
	p.dirty = p.dirty.Union(toImage(r.Area))
	if err != nil {
		if p.err == nil {
			p.err = err
		}
		r = r.WithErr(err)
	}
	return p.ctx.Report(r)
}

func (p *panel) takeDirty() image.Rectangle {
	r := p.dirty
	p.dirty = image.Rectangle{}
	return r
}

func (p *panel) takeErr() error {
	err := p.err
	p.err = nil
	return err
}

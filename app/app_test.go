package app

import (
	"image/color"
	"strings"
	"testing"

	"ember/gfx"
	"ember/hal"
	"ember/ui"
)

type testHAL struct {
	hal.HAL
	events chan hal.PointerEvent
	lines  []string
}

func newTestHAL(w, h int) *testHAL {
	return &testHAL{HAL: hal.NewWithSize(w, h), events: make(chan hal.PointerEvent, 16)}
}

func (h *testHAL) Logger() hal.Logger              { return h }
func (h *testHAL) Input() hal.Input                { return h }
func (h *testHAL) Pointer() hal.Pointer            { return h }
func (h *testHAL) Events() <-chan hal.PointerEvent { return h.events }
func (h *testHAL) WriteLineString(s string)        { h.lines = append(h.lines, s) }
func (h *testHAL) WriteLineBytes(b []byte)         { h.lines = append(h.lines, string(b)) }

func (h *testHAL) press(p gfx.Point, down bool) {
	h.events <- hal.PointerEvent{X: p.X, Y: p.Y, Down: down}
}

func (h *testHAL) pixel(x, y int) color.RGBA {
	return hal.Snapshot(h.Display().Framebuffer()).RGBAAt(x, y)
}

func (h *testHAL) logged(sub string) bool {
	return strings.Contains(strings.Join(h.lines, "\n"), sub)
}

func quantize(c color.RGBA) color.RGBA { return gfx.RGBA565(gfx.RGB565(c)) }

func center(r gfx.Rectangle) gfx.Point {
	return r.Min.Add(gfx.Pt(r.Size.Width/2, r.Size.Height/2))
}

// inside returns a point just within r's one pixel border.
func inside(r gfx.Rectangle) (int, int) { return r.Min.X + 2, r.Min.Y + 2 }

func step(t *testing.T, a *App) ui.FrameStats {
	t.Helper()
	if err := a.Step(); err != nil {
		t.Fatalf("Step() err = %v", err)
	}
	if err := a.Halted(); err != nil {
		t.Fatalf("panel halted: %v", err)
	}
	return a.Stats()
}

func TestFirstFrameDrawsEverything(t *testing.T) {
	h := newTestHAL(240, 240)
	cfg := DefaultConfig()
	a := New(h, cfg)

	st := step(t, a)
	want := slotsFor(len(cfg.Buttons))
	if st.Slots != want || st.Drawn != 8 || st.Skipped != 0 || st.Errors != 0 {
		t.Fatalf("frame 1 stats = %+v, want %d slots and 8 drawn", st, want)
	}

	theme := cfg.Palette()
	if got := h.pixel(1, 1); got != quantize(theme.Background) {
		t.Fatalf("background pixel = %v, want %v", got, quantize(theme.Background))
	}
	if got := h.pixel(inside(a.p.buttons[0])); got != quantize(theme.Surface) {
		t.Fatalf("button pixel = %v, want %v", got, quantize(theme.Surface))
	}

	st = step(t, a)
	if st.Drawn != 0 || st.Skipped != 8 {
		t.Fatalf("idle frame stats = %+v, want nothing drawn", st)
	}
}

func TestScratchFootprint(t *testing.T) {
	h := newTestHAL(240, 240)
	a := New(h, DefaultConfig())
	step(t, a)

	// Buttons and the toggle composite through the arena.
	want := a.p.toggleArea.Size.Area()
	for _, b := range a.p.buttons {
		want += b.Size.Area()
	}
	if got := a.Scratch(); got != want {
		t.Fatalf("Scratch() = %d, want %d", got, want)
	}
	if got := a.p.arena.Used(); got != want {
		t.Fatalf("arena Used() = %d, want %d", got, want)
	}

	plus := a.p.buttons[1]
	h.press(center(plus), true)
	step(t, a)
	if got := a.Scratch(); got != plus.Size.Area() {
		t.Fatalf("Scratch() after press = %d, want %d", got, plus.Size.Area())
	}

	h.press(gfx.Pt(0, 0), false)
	step(t, a)
	step(t, a)
	if got := a.Scratch(); got != 0 {
		t.Fatalf("idle Scratch() = %d, want 0", got)
	}
}

func TestButtonClick(t *testing.T) {
	h := newTestHAL(240, 240)
	a := New(h, DefaultConfig())
	step(t, a)
	theme := a.cfg.Palette()

	plus := a.p.buttons[1]
	h.press(center(plus), true)
	if st := step(t, a); st.Drawn != 1 {
		t.Fatalf("press stats = %+v, want only the button drawn", st)
	}
	if got := h.pixel(inside(plus)); got != quantize(theme.Pressed) {
		t.Fatalf("pressed pixel = %v, want %v", got, quantize(theme.Pressed))
	}

	// Holding still changes nothing.
	if st := step(t, a); st.Drawn != 0 {
		t.Fatalf("hold stats = %+v, want nothing drawn", st)
	}

	h.press(center(plus), false)
	st := step(t, a)
	if a.Counter() != 1 {
		t.Fatalf("Counter() = %d, want 1", a.Counter())
	}
	// Button back to hover, plus the counter.
	if st.Drawn != 2 {
		t.Fatalf("release stats = %+v, want 2 drawn", st)
	}
	if got := h.pixel(inside(plus)); got != quantize(theme.Hover) {
		t.Fatalf("hover pixel = %v, want %v", got, quantize(theme.Hover))
	}

	// The release fires once.
	step(t, a)
	if a.Counter() != 1 {
		t.Fatalf("Counter() = %d after idle frame, want 1", a.Counter())
	}

	reset := a.p.buttons[0]
	h.press(center(reset), true)
	step(t, a)
	h.press(center(reset), false)
	step(t, a)
	if a.Counter() != 0 {
		t.Fatalf("Counter() = %d after reset, want 0", a.Counter())
	}
}

func TestToggleRedrawsRemaining(t *testing.T) {
	h := newTestHAL(240, 240)
	a := New(h, DefaultConfig())
	step(t, a)
	theme := a.cfg.Palette()

	click := func() ui.FrameStats {
		h.press(center(a.p.toggleArea), true)
		step(t, a)
		h.press(center(a.p.toggleArea), false)
		return step(t, a)
	}

	// toggle, details and counter
	if st := click(); st.Drawn != 3 {
		t.Fatalf("toggle on stats = %+v, want 3 drawn", st)
	}
	if !a.p.accent {
		t.Fatal("toggle did not switch on")
	}
	x, y := a.p.counterArea.Min.X, a.p.counterArea.Min.Y
	if got := h.pixel(x, y); got != quantize(theme.AccentAlt) {
		t.Fatalf("counter border = %v, want %v", got, quantize(theme.AccentAlt))
	}

	// Hiding the details erases them once.
	if st := click(); st.Drawn != 3 {
		t.Fatalf("toggle off stats = %+v, want 3 drawn", st)
	}
	d := a.p.detailsArea
	if got := h.pixel(d.Min.X, d.Max().Y-1); got != quantize(theme.Background) {
		t.Fatalf("details not erased: %v", got)
	}
	if got := h.pixel(x, y); got != quantize(theme.Accent) {
		t.Fatalf("counter border = %v, want %v", got, quantize(theme.Accent))
	}

	h.press(gfx.Pt(0, 0), false)
	if st := step(t, a); st.Drawn != 1 {
		t.Fatalf("leave stats = %+v, want only the toggle drawn", st)
	}
	if st := step(t, a); st.Drawn != 0 {
		t.Fatalf("idle stats = %+v", st)
	}
}

func TestLayoutOverflow(t *testing.T) {
	// Too short for the details row and the counter.
	h := newTestHAL(240, 100)
	cfg := DefaultConfig()
	a := New(h, cfg)

	st := step(t, a)
	if st.Slots != slotsFor(len(cfg.Buttons)) || st.Drawn != 6 || st.Errors != 2 {
		t.Fatalf("stats = %+v, want 6 drawn and 2 errors", st)
	}
	if st := step(t, a); st.Drawn != 0 || st.Skipped != 6 || st.Errors != 2 {
		t.Fatalf("idle stats = %+v", st)
	}
}

func TestUntrackedDrawsEveryFrame(t *testing.T) {
	h := newTestHAL(240, 240)
	cfg := DefaultConfig()
	cfg.Untracked = true
	a := New(h, cfg)

	for range 3 {
		st := step(t, a)
		if st.Slots != slotsFor(len(cfg.Buttons)) || st.Drawn != 8 || st.Skipped != 0 {
			t.Fatalf("untracked stats = %+v", st)
		}
	}
}

func TestStatsLogging(t *testing.T) {
	h := newTestHAL(240, 240)
	cfg := DefaultConfig()
	cfg.StatsEvery = 2
	a := New(h, cfg)
	step(t, a)
	if len(h.lines) != 0 {
		t.Fatalf("logged %q on frame 1", h.lines)
	}
	step(t, a)
	if !h.logged("frame 2: slots=12 drawn=0 skipped=8 errors=0 scratch=0") {
		t.Fatalf("log = %q", h.lines)
	}
}

func TestPanicHaltsPanel(t *testing.T) {
	h := newTestHAL(240, 240)
	cfg := DefaultConfig()
	cfg.Slots = 4
	a := New(h, cfg)

	if err := a.Step(); err != nil {
		t.Fatalf("Step() err = %v", err)
	}
	if a.Halted() == nil {
		t.Fatal("undersized sequencer did not halt the panel")
	}
	if !h.logged("Ember Panic:") || !h.logged("sequencer exhausted") {
		t.Fatalf("log = %q", h.lines)
	}

	n := len(h.lines)
	if err := a.Step(); err != nil || len(h.lines) != n {
		t.Fatalf("halted Step() err = %v, logged %d more lines", err, len(h.lines)-n)
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		s          string
		n          int
		head, tail string
	}{
		{"hello", 10, "hello", ""},
		{"hello", 2, "he", "llo"},
		{"héllo", 2, "hé", "llo"},
		{"", 3, "", ""},
		{"abc", 0, "", "abc"},
	}
	for _, tt := range tests {
		head, tail := takeRunes(tt.s, tt.n)
		if head != tt.head || tail != tt.tail {
			t.Fatalf("takeRunes(%q, %d) = %q, %q, want %q, %q", tt.s, tt.n, head, tail, tt.head, tt.tail)
		}
	}
}

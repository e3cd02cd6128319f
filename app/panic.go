package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"ember/gfx"
	"ember/hal"

	"tinygo.org/x/tinyfont"
)

// showPanic logs v with the stack and paints it over the whole panel.
func (a *App) showPanic(v any) {
	stack := debug.Stack()

	lines := []string{
		"Ember Panic:",
		fmt.Sprintf("frame: %d", a.last.Frame+1),
		fmt.Sprintf("panic: %v", v),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}
	for _, line := range lines {
		a.logf("%s", line)
	}

	drawPanic(a.fb, a.p.font, lines)
	_ = a.fb.Present()
}

func drawPanic(fb hal.Framebuffer, font tinyfont.Fonter, lines []string) {
	fb.ClearRGB(255, 255, 255)

	fontWidth := gfx.TextWidth(font, "0")
	fontHeight, fontOffset := 11, 8
	if fontWidth <= 0 {
		return
	}

	target := hal.Target(fb)
	if target == nil {
		return
	}
	fg := color.RGBA{A: 255}
	cols := max(fb.Width()/fontWidth, 1)

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > fb.Height() {
				return
			}
			chunk, rest := takeRunes(line, cols)
			_ = gfx.Text{Font: font, Pos: gfx.Pt(0, y+fontOffset), Str: chunk, Color: fg}.Draw(target)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}

//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// poll samples the mouse. Coordinates are already in framebuffer space
// because the game layout matches the framebuffer size.
func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	p.emit(PointerEvent{
		X:    x,
		Y:    y,
		Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	})
}

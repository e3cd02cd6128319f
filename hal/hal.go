package hal

import (
	"errors"
	"image"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a pixel buffer plus "present" hooks.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	// Present pushes the whole buffer to the panel.
	Present() error
	// PresentRect pushes only r, clipped to the buffer. Panels without
	// partial updates may push everything.
	PresentRect(r image.Rectangle) error
}

// PointerEvent is a mouse or touch sample in framebuffer coordinates.
type PointerEvent struct {
	X, Y int
	Down bool
}

// Pointer provides pointer events (best-effort on each platform).
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Pointer() Pointer
}

// HAL provides the only contact point between the UI and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

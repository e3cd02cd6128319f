//go:build tinygo && baremetal

package hal

import "image"

// stubFramebuffer keeps a real buffer so the UI can render without a panel.
// Presenting is a no-op.
type stubFramebuffer struct {
	w   int
	h   int
	buf []byte
}

func newStubFramebuffer(w, h int) *stubFramebuffer {
	return &stubFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *stubFramebuffer) Width() int          { return f.w }
func (f *stubFramebuffer) Height() int         { return f.h }
func (f *stubFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *stubFramebuffer) StrideBytes() int    { return f.w * 2 }
func (f *stubFramebuffer) Buffer() []byte      { return f.buf }

func (f *stubFramebuffer) ClearRGB(r, g, b uint8) {
	fillRGB565(f.buf, r, g, b)
}

func (f *stubFramebuffer) Present() error                      { return nil }
func (f *stubFramebuffer) PresentRect(_ image.Rectangle) error { return nil }

type stubPointer struct{}

func (p stubPointer) Events() <-chan PointerEvent { return nil }

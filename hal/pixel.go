package hal

import (
	"image/color"

	"ember/gfx"
)

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Target returns a clipped draw target over fb. It returns nil for formats
// other than RGB565.
func Target(fb Framebuffer) *gfx.RGB565Target {
	if fb == nil || fb.Format() != PixelFormatRGB565 || fb.Buffer() == nil {
		return nil
	}
	return &gfx.RGB565Target{
		Buf:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		W:      fb.Width(),
		H:      fb.Height(),
	}
}

// rgbaAt decodes the little-endian RGB565 pixel starting at byte i.
func rgbaAt(buf []byte, i int) color.RGBA {
	if i < 0 || i+1 >= len(buf) {
		return color.RGBA{A: 0xFF}
	}
	return gfx.RGBA565(uint16(buf[i]) | uint16(buf[i+1])<<8)
}

func fillRGB565(buf []byte, r, g, b uint8) {
	pixel := gfx.RGB565(rgba(r, g, b))
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] = lo
		buf[i+1] = hi
	}
}

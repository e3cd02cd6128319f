package gfx

import "image/color"

// RGB565Target draws into an RGB565 little-endian framebuffer.
//
// Callers provide the backing buffer and layout (stride); the target clips to
// W x H.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Bounds() Rectangle { return Rect(0, 0, t.W, t.H) }

func (t *RGB565Target) set(x, y int, p uint16) {
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

func (t *RGB565Target) DrawPixels(px Pixels[color.RGBA]) error {
	for {
		p, ok := px.Next()
		if !ok {
			return nil
		}
		if p.Point.X < 0 || p.Point.Y < 0 || p.Point.X >= t.W || p.Point.Y >= t.H {
			continue
		}
		t.set(p.Point.X, p.Point.Y, RGB565(p.Color))
	}
}

func (t *RGB565Target) FillContiguous(area Rectangle, colors Colors[color.RGBA]) error {
	if area.Intersect(t.Bounds()).Empty() {
		return nil
	}
	m := area.Max()
	for y := area.Min.Y; y < m.Y; y++ {
		for x := area.Min.X; x < m.X; x++ {
			c, ok := colors.Next()
			if !ok {
				return nil
			}
			if x < 0 || y < 0 || x >= t.W || y >= t.H {
				continue
			}
			t.set(x, y, RGB565(c))
		}
	}
	return nil
}

func (t *RGB565Target) FillSolid(area Rectangle, c color.RGBA) error {
	r := area.Intersect(t.Bounds())
	if r.Empty() {
		return nil
	}
	p := RGB565(c)
	m := r.Max()
	for y := r.Min.Y; y < m.Y; y++ {
		for x := r.Min.X; x < m.X; x++ {
			t.set(x, y, p)
		}
	}
	return nil
}

func (t *RGB565Target) Clear(c color.RGBA) error {
	return t.FillSolid(t.Bounds(), c)
}

// At decodes the pixel at (x, y). Out-of-range reads return transparent black.
func (t *RGB565Target) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return color.RGBA{}
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return color.RGBA{}
	}
	return RGBA565(uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8)
}

// RGB565 packs c as rrrrrggggggbbbbb. Alpha is ignored.
func RGB565(c color.RGBA) uint16 {
	return uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
}

// RGBA565 expands an RGB565 pixel to opaque RGBA.
func RGBA565(p uint16) color.RGBA {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F
	return color.RGBA{
		R: uint8((rr * 255) / 31),
		G: uint8((gg * 255) / 63),
		B: uint8((bb * 255) / 31),
		A: 0xFF,
	}
}

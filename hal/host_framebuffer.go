//go:build !tinygo

package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte

	// dirty accumulates presented regions until a presenter takes them.
	dirty    image.Rectangle
	presents uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

func (f *hostFramebuffer) Present() error {
	return f.PresentRect(f.bounds())
}

func (f *hostFramebuffer) PresentRect(r image.Rectangle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r = r.Intersect(f.bounds())
	if r.Empty() {
		return nil
	}
	f.dirty = f.dirty.Union(r)
	f.presents++
	return nil
}

// takeDirty returns and resets the region presented since the last call.
func (f *hostFramebuffer) takeDirty() image.Rectangle {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.dirty
	f.dirty = image.Rectangle{}
	return r
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fillRGB565(f.buf, r, g, b)
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// Snapshot decodes the framebuffer into an RGBA image.
func Snapshot(fb Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	src := fb.Buffer()
	if hf, ok := fb.(*hostFramebuffer); ok {
		src = make([]byte, len(hf.buf))
		hf.snapshotRGB565(src)
	}
	decodeRGB565(img.Pix, src, fb.Width(), fb.Height(), fb.StrideBytes())
	return img
}

func decodeRGB565(dst, src []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*stride + x*2
			j := (y*w + x) * 4
			if i+1 >= len(src) || j+3 >= len(dst) {
				return
			}
			c := rgbaAt(src, i)
			dst[j+0] = c.R
			dst[j+1] = c.G
			dst[j+2] = c.B
			dst[j+3] = 0xFF
		}
	}
}

//go:build tinygo && baremetal && picocalc

package hal

import "image"

type picoCalcHAL struct {
	logger *uartLogger
	fb     Framebuffer
}

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	var fb Framebuffer
	if disp, err := newPicoCalcDisplay(); err == nil {
		fb = disp
	} else {
		fb = newStubFramebuffer(picoCalcWidth, picoCalcHeight)
	}
	return &picoCalcHAL{
		logger: newUARTLogger(),
		fb:     fb,
	}
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *picoCalcHAL) Input() Input     { return tinyGoInput{ptr: stubPointer{}} }

const (
	picoCalcWidth  = 320
	picoCalcHeight = 320
)

type picoCalcFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd *ili9488
}

func (f *picoCalcFramebuffer) Width() int          { return f.w }
func (f *picoCalcFramebuffer) Height() int         { return f.h }
func (f *picoCalcFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *picoCalcFramebuffer) StrideBytes() int    { return f.stride }
func (f *picoCalcFramebuffer) Buffer() []byte      { return f.buf }

func (f *picoCalcFramebuffer) ClearRGB(r, g, b uint8) {
	fillRGB565(f.buf, r, g, b)
}

func (f *picoCalcFramebuffer) Present() error {
	return f.PresentRect(image.Rect(0, 0, f.w, f.h))
}

func (f *picoCalcFramebuffer) PresentRect(r image.Rectangle) error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	r = r.Intersect(image.Rect(0, 0, f.w, f.h))
	if r.Empty() {
		return nil
	}
	return f.lcd.blitRect(f.buf, f.stride, r)
}

func newPicoCalcDisplay() (*picoCalcFramebuffer, error) {
	lcd, err := initILI9488()
	if err != nil {
		return nil, err
	}
	return &picoCalcFramebuffer{
		w:      picoCalcWidth,
		h:      picoCalcHeight,
		stride: picoCalcWidth * 2,
		buf:    make([]byte, picoCalcWidth*picoCalcHeight*2),
		lcd:    lcd,
	}, nil
}

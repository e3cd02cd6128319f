//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	ptr    *hostPointer
}

// New returns a host HAL implementation with a 320x320 panel.
func New() HAL {
	return NewWithSize(320, 320)
}

// NewWithSize returns a host HAL with a w x h panel.
func NewWithSize(w, h int) HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(w, h),
		ptr:    newHostPointer(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{ptr: h.ptr} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	ptr *hostPointer
}

func (in hostInput) Pointer() Pointer { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostPointer buffers pointer samples; the presenters feed it.
type hostPointer struct {
	ch   chan PointerEvent
	last PointerEvent
	seen bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

// emit queues ev if it differs from the previous sample.
func (p *hostPointer) emit(ev PointerEvent) {
	if p.seen && ev == p.last {
		return
	}
	p.seen = true
	p.last = ev
	select {
	case p.ch <- ev:
	default:
	}
}

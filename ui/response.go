package ui

import (
	"errors"

	"ember/gfx"
)

var (
	// ErrNoSpaceLeft means a widget does not fit the space it was given.
	ErrNoSpaceLeft = errors.New("ui: no space left")
	// ErrBounds means a region has a negative size.
	ErrBounds = errors.New("ui: bounds out of range")
	// ErrBufferTooSmall means composite storage cannot hold the area.
	ErrBufferTooSmall = errors.New("ui: buffer too small for area")
)

// DrawError wraps an error returned by a draw target.
type DrawError struct {
	Err error
}

func (e *DrawError) Error() string { return "ui: draw: " + e.Err.Error() }
func (e *DrawError) Unwrap() error { return e.Err }

func drawErr(err error) error {
	if err == nil {
		return nil
	}
	var de *DrawError
	if errors.As(err, &de) {
		return err
	}
	return &DrawError{Err: err}
}

// InteractionKind classifies pointer input.
type InteractionKind uint8

const (
	InteractionNone InteractionKind = iota
	// InteractionClick is a press (mouse down, touch start).
	InteractionClick
	// InteractionDrag is movement while pressed.
	InteractionDrag
	// InteractionRelease is the end of a press.
	InteractionRelease
	// InteractionHover is movement while not pressed.
	InteractionHover
)

func (k InteractionKind) String() string {
	switch k {
	case InteractionClick:
		return "click"
	case InteractionDrag:
		return "drag"
	case InteractionRelease:
		return "release"
	case InteractionHover:
		return "hover"
	default:
		return "none"
	}
}

// Interaction is the pointer input for one frame.
type Interaction struct {
	Kind InteractionKind
	At   gfx.Point
}

func Click(p gfx.Point) Interaction   { return Interaction{Kind: InteractionClick, At: p} }
func Drag(p gfx.Point) Interaction    { return Interaction{Kind: InteractionDrag, At: p} }
func Release(p gfx.Point) Interaction { return Interaction{Kind: InteractionRelease, At: p} }
func Hover(p gfx.Point) Interaction   { return Interaction{Kind: InteractionHover, At: p} }

// Point returns the interaction position, if any.
func (i Interaction) Point() (gfx.Point, bool) {
	if i.Kind == InteractionNone {
		return gfx.Point{}, false
	}
	return i.At, true
}

// Within reports whether the interaction happened inside r.
func (i Interaction) Within(r gfx.Rectangle) bool {
	p, ok := i.Point()
	return ok && r.Contains(p)
}

// Response is what a widget reports after a frame.
type Response struct {
	Area        gfx.Rectangle
	Interaction Interaction

	// Clicked is set when the widget was successfully activated.
	Clicked bool
	// Down is set while the widget is held.
	Down bool
	// Redraw is set when the widget drew this frame. Widgets without change
	// detection always draw, hence NewResponse defaults it to true.
	Redraw bool
	// Changed is set when the widget modified the caller's data.
	Changed bool
	Err     error
}

func NewResponse(area gfx.Rectangle, in Interaction) Response {
	return Response{Area: area, Interaction: in, Redraw: true}
}

// ErrorResponse reports err with an empty area.
func ErrorResponse(err error) Response {
	return Response{Redraw: true, Err: err}
}

func (r Response) WithClicked(v bool) Response { r.Clicked = v; return r }
func (r Response) WithDown(v bool) Response    { r.Down = v; return r }
func (r Response) WithRedraw(v bool) Response  { r.Redraw = v; return r }
func (r Response) WithChanged(v bool) Response { r.Changed = v; return r }
func (r Response) WithErr(err error) Response  { r.Err = err; return r }

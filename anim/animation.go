package anim

import (
	"time"

	"github.com/matt-g-everett/animatic/canvas"
)

// An EmitFunc receives each rendered frame in sequence order. Returning an
// error aborts the sequence.
type EmitFunc func(index int, c *canvas.Canvas) error

// An Animation produces rendered frames in strict sequence order.
type Animation interface {
	// Figure returns the figure the animation draws on.
	Figure() *canvas.Figure

	// FrameCount returns the number of frames in one pass.
	FrameCount() int

	// Interval returns the display delay between frames. It has no effect
	// on saving, which runs at an independently configured fps.
	Interval() time.Duration

	// Sequence renders every frame in order, forwarding each one to emit
	// before advancing to the next.
	Sequence(emit EmitFunc) error

	// Repeat reports whether playback should loop when the sequence ends.
	Repeat() bool
}

// A Sink receives rendered frames for display.
type Sink interface {
	SendFrame(c *canvas.Canvas) error
}

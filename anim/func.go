package anim

import (
	"fmt"
	"time"

	"github.com/matt-g-everett/animatic/canvas"
)

// An UpdateFunc mutates the figure's artists to produce frame i. Updates are
// expected to be incremental, extending or modifying previously drawn state;
// the engine itself does not enforce that.
type UpdateFunc func(i int) error

// A FuncAnimation generates frames by calling an update procedure once per
// frame index and rendering the figure after each call.
type FuncAnimation struct {
	fig      *canvas.Figure
	update   UpdateFunc
	frames   int
	interval time.Duration
}

// NewFuncAnimation creates a FuncAnimation over frames 0..frames-1 with the
// given display interval.
func NewFuncAnimation(fig *canvas.Figure, update UpdateFunc, frames int, interval time.Duration) *FuncAnimation {
	a := new(FuncAnimation)
	a.fig = fig
	a.update = update
	a.frames = frames
	a.interval = interval
	return a
}

// Figure returns the animated figure.
func (a *FuncAnimation) Figure() *canvas.Figure {
	return a.fig
}

// FrameCount returns the number of frames.
func (a *FuncAnimation) FrameCount() int {
	return a.frames
}

// Interval returns the display delay between frames.
func (a *FuncAnimation) Interval() time.Duration {
	return a.interval
}

// Repeat always reports false: the update procedure owns its state and
// cannot be rewound.
func (a *FuncAnimation) Repeat() bool {
	return false
}

// Sequence invokes the update procedure for every index in strictly
// increasing order, exactly once each, rendering and forwarding each frame
// before advancing.
func (a *FuncAnimation) Sequence(emit EmitFunc) error {
	for i := 0; i < a.frames; i++ {
		if err := a.update(i); err != nil {
			return fmt.Errorf("update frame %d: %w", i, err)
		}
		if err := emit(i, a.fig.Render()); err != nil {
			return err
		}
	}
	return nil
}

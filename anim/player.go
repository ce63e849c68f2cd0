package anim

import (
	"context"
	"time"

	"github.com/matt-g-everett/animatic/canvas"
)

// A Player paces an animation's frames at its display interval and forwards
// them to a Sink, strictly one at a time.
type Player struct {
	sink Sink
}

// NewPlayer creates a Player that sends frames to the given sink.
func NewPlayer(sink Sink) *Player {
	p := new(Player)
	p.sink = sink
	return p
}

// Play runs the animation once, or until the context is cancelled. Artist
// animations with the repeat flag loop until cancelled.
func (p *Player) Play(ctx context.Context, a Animation) error {
	interval := a.Interval()
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	emit := func(i int, c *canvas.Canvas) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		return p.sink.SendFrame(c)
	}

	for {
		if err := a.Sequence(emit); err != nil {
			return err
		}
		if !a.Repeat() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

// PlayAll plays the animations back to back, once each, cross-fading the
// first fadeFrames frames of every animation from the final frame of the one
// before it. The fade is skipped between figures of different sizes.
func (p *Player) PlayAll(ctx context.Context, animations []Animation, fadeFrames int) error {
	var last *canvas.Canvas
	for _, a := range animations {
		interval := a.Interval()
		if interval <= 0 {
			interval = time.Millisecond
		}
		ticker := time.NewTicker(interval)
		hold := last

		err := a.Sequence(func(i int, c *canvas.Canvas) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
			if hold != nil && i < fadeFrames && sameSize(hold, c) {
				transition := float64(i+1) / float64(fadeFrames+1)
				c = hold.Interpolate(c, transition)
			}
			last = c
			return p.sink.SendFrame(c)
		})
		ticker.Stop()
		if err != nil {
			return err
		}
	}
	return nil
}

func sameSize(a, b *canvas.Canvas) bool {
	return a.Width() == b.Width() && a.Height() == b.Height()
}

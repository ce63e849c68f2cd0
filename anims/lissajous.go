// Package anims contains the built-in animations referenced by scene files.
package anims

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/animatic/anim"
	"github.com/matt-g-everett/animatic/canvas"
)

// LissajousParams shape the lissajous trail.
type LissajousParams struct {
	A     float64 `yaml:"a"`
	B     float64 `yaml:"b"`
	Delta float64 `yaml:"delta"`
}

// Lissajous builds a function-mode animation that extends a scatter trail
// along a lissajous curve, one point per frame.
func Lissajous(fig *canvas.Figure, frames int, interval time.Duration, p LissajousParams) *anim.FuncAnimation {
	if p.A == 0 {
		p.A = 3
	}
	if p.B == 0 {
		p.B = 2
	}

	fig.SetXLim(-1.5, 1.5)
	fig.SetYLim(-1.5, 1.5)

	colour, _ := colorful.Hex("#4080ff")
	scat := canvas.NewScatter(colour, 3)
	fig.Add(scat)

	ts := make([]float64, frames)
	for i := range ts {
		ts[i] = -math.Pi + 2*math.Pi*float64(i)/float64(frames)
	}

	// Each update carries the trail forward: offsets from the first point up
	// to the current frame.
	update := func(i int) error {
		offsets := make([]canvas.Point, 0, i+1)
		for _, t := range ts[:i+1] {
			offsets = append(offsets, canvas.Point{
				X: math.Sin(p.A*t + p.Delta),
				Y: math.Sin(p.B * t),
			})
		}
		scat.SetOffsets(offsets)
		return nil
	}

	return anim.NewFuncAnimation(fig, update, frames, interval)
}

package anims

import (
	"math"
	"time"

	"github.com/matt-g-everett/animatic/anim"
	"github.com/matt-g-everett/animatic/canvas"
)

// TrailParams shape the gradient trail.
type TrailParams struct {
	Stripes     int     `yaml:"stripes"`
	TrailLength int     `yaml:"trailLength"`
	Speed       float64 `yaml:"speed"`
}

// GradientTrail builds a function-mode animation that cycles a hue gradient
// along a strip of stripes.
func GradientTrail(fig *canvas.Figure, frames int, interval time.Duration, p TrailParams) *anim.FuncAnimation {
	if p.Stripes == 0 {
		p.Stripes = 100
	}
	if p.TrailLength == 0 {
		p.TrailLength = 50
	}
	if p.Speed == 0 {
		p.Speed = 2.0
	}

	stripes := canvas.NewStripes(p.Stripes)
	fig.Add(stripes)

	gradient := canvas.Rainbow
	current := 0.0
	saturation := 1.0
	luminance := 0.5

	update := func(i int) error {
		n := stripes.Len()
		for s := 0; s < n; s++ {
			t := math.Mod(float64(s+n)-current, float64(p.TrailLength)) / float64(p.TrailLength)
			stripes.SetColour(s, gradient.GetColor(t, saturation, luminance))
		}
		current = math.Mod(current+p.Speed, float64(p.TrailLength))
		return nil
	}

	return anim.NewFuncAnimation(fig, update, frames, interval)
}

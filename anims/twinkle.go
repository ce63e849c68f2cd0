package anims

import (
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/animatic/anim"
	"github.com/matt-g-everett/animatic/canvas"
	"github.com/matt-g-everett/animatic/util"
)

// TwinkleParams shape the twinkle.
type TwinkleParams struct {
	Stripes    int    `yaml:"stripes"`
	Chance     int32  `yaml:"chance"`
	Background string `yaml:"background"`
}

type twinkleParticle struct {
	lut     []float64
	current int
	running bool
	colour  colorful.Color
}

func newTwinkleParticle(colour colorful.Color, memoizer util.Memoizer) *twinkleParticle {
	p := new(twinkleParticle)
	p.colour = colour
	p.lut = util.GenerateLutMemoized((rand.Intn(18)+6)*2, memoizer)
	p.current = 0
	p.running = false
	return p
}

func (p *twinkleParticle) scintillate() {
	p.running = true
}

func (p *twinkleParticle) increment(memoizer util.Memoizer) {
	if p.running {
		p.current++
		if p.current == len(p.lut)-1 {
			p.current = 0
			p.running = false

			// Pick a new LUT every time we finish a scintillation
			p.lut = util.GenerateLutMemoized((rand.Intn(18)+6)*2, memoizer)
		}
	}
}

func (p *twinkleParticle) currentColour() colorful.Color {
	if !p.running {
		return p.colour
	}
	gain := p.lut[p.current]
	h, c, l := p.colour.Hcl()

	// Lift the luminance towards the max we want
	lumDiff := 0.6 - l
	return colorful.Hcl(h, c*util.RandomiseSaturation(0.9, 1.0), l+(lumDiff*gain))
}

// Twinkle builds a function-mode animation of randomly scintillating
// stripes with an eased luminance curve.
func Twinkle(fig *canvas.Figure, frames int, interval time.Duration, p TwinkleParams) *anim.FuncAnimation {
	if p.Stripes == 0 {
		p.Stripes = 100
	}
	if p.Chance == 0 {
		p.Chance = 40
	}
	backColour, err := colorful.Hex(p.Background)
	if err != nil {
		backColour, _ = colorful.Hex("#100510")
	}

	stripes := canvas.NewStripes(p.Stripes)
	fig.Add(stripes)

	memoizer := util.Memoizer{}
	particles := make([]*twinkleParticle, p.Stripes)
	for i := range particles {
		particles[i] = newTwinkleParticle(backColour, memoizer)
	}

	update := func(i int) error {
		for s, particle := range particles {
			if rand.Int31n(p.Chance) == 0 {
				particle.scintillate()
			}

			// Always increment, it only affects scintillating particles
			particle.increment(memoizer)
			stripes.SetColour(s, particle.currentColour())
		}
		return nil
	}

	return anim.NewFuncAnimation(fig, update, frames, interval)
}

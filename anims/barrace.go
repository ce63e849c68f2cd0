package anims

import (
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/animatic/anim"
	"github.com/matt-g-everett/animatic/canvas"
)

// BarRaceParams shape the bar race.
type BarRaceParams struct {
	Bars int   `yaml:"bars"`
	Seed int64 `yaml:"seed"`
}

// BarRace builds an artist-list animation: every frame is a pre-computed
// snapshot of horizontal bars whose widths grow by a random step.
func BarRace(fig *canvas.Figure, frames int, interval time.Duration, repeat bool, p BarRaceParams) *anim.ArtistAnimation {
	if p.Bars == 0 {
		p.Bars = 4
	}

	rng := rand.New(rand.NewSource(p.Seed))

	fig.SetXLim(0, float64(frames*10+20))
	fig.SetYLim(0, float64(p.Bars+1))

	colours := make([]colorful.Color, p.Bars)
	for i := range colours {
		colours[i] = colorful.Hsv(float64(i)*360.0/float64(p.Bars), 0.7, 0.9)
	}

	ys := make([]float64, p.Bars)
	widths := make([]float64, p.Bars)
	for i := range ys {
		ys[i] = float64(i + 1)
		widths[i] = 20
	}

	snapshots := make([][]canvas.Artist, 0, frames)
	for f := 0; f < frames; f++ {
		for i := range widths {
			widths[i] += float64(rng.Intn(10))
		}
		bars := canvas.NewBars(ys, 0.6, colours)
		bars.SetWidths(append([]float64(nil), widths...))
		snapshots = append(snapshots, []canvas.Artist{bars})
	}

	return anim.NewArtistAnimation(fig, snapshots, interval, repeat)
}

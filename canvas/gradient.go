package canvas

import (
	"github.com/lucasb-eyer/go-colorful"
)

// GradientTable is a colormap: hue keypoints at positions in [0,1].
// Keypoints must be sorted by position.
type GradientTable []struct {
	Hue float64
	Pos float64
}

// GetColor looks up the colour at position t with the given saturation and
// luminance. The hue is interpolated linearly between the surrounding
// keypoints; positions outside the table clamp to its ends. An empty table
// yields black.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	if len(g) == 0 {
		return colorful.Color{}
	}
	if t <= g[0].Pos {
		return colorful.Hcl(g[0].Hue, s, l)
	}

	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if t > c2.Pos {
			continue
		}
		span := c2.Pos - c1.Pos
		if span <= 0 {
			return colorful.Hcl(c2.Hue, s, l)
		}
		frac := (t - c1.Pos) / span
		return colorful.Hcl(c1.Hue+frac*(c2.Hue-c1.Hue), s, l)
	}

	return colorful.Hcl(g[len(g)-1].Hue, s, l)
}

// Rainbow sweeps the full hue circle at even spacing.
var Rainbow = GradientTable{
	{0.0, 0.0},
	{60.0, 1.0 / 6},
	{120.0, 2.0 / 6},
	{180.0, 3.0 / 6},
	{240.0, 4.0 / 6},
	{300.0, 5.0 / 6},
	{360.0, 1.0},
}

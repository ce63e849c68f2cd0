package canvas

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func rgbEqual(a, b colorful.Color) bool {
	ar, ag, ab := a.Clamped().RGB255()
	br, bg, bb := b.Clamped().RGB255()
	return ar == br && ag == bg && ab == bb
}

func TestPixelOfMapsCorners(t *testing.T) {
	c := NewCanvas(100, 50, -1, 1, -2, 2)

	px, py := c.PixelOf(-1, 2)
	if px != 0 || py != 0 {
		t.Errorf("Expected top-left (0,0), got (%d,%d)", px, py)
	}

	px, py = c.PixelOf(1, -2)
	if px != 99 || py != 49 {
		t.Errorf("Expected bottom-right (99,49), got (%d,%d)", px, py)
	}
}

func TestSetDropsOutOfRange(t *testing.T) {
	c := NewCanvas(4, 4, 0, 1, 0, 1)
	red := colorful.Color{R: 1}

	// Should not panic
	c.Set(-1, 0, red)
	c.Set(0, -1, red)
	c.Set(4, 0, red)
	c.Set(0, 4, red)
}

func TestFigureRenderBackground(t *testing.T) {
	fig := NewFigure(8, 8)
	back, _ := colorful.Hex("#102030")
	fig.Background = back

	c := fig.Render()
	if !rgbEqual(c.At(0, 0), back) {
		t.Errorf("Expected background colour at (0,0)")
	}
	if !rgbEqual(c.At(7, 7), back) {
		t.Errorf("Expected background colour at (7,7)")
	}
}

func TestScatterDraws(t *testing.T) {
	fig := NewFigure(10, 10)
	fig.SetXLim(0, 1)
	fig.SetYLim(0, 1)

	red := colorful.Color{R: 1}
	s := NewScatter(red, 1)
	s.SetOffsets([]Point{{X: 0, Y: 1}})
	fig.Add(s)

	c := fig.Render()
	if !rgbEqual(c.At(0, 0), red) {
		t.Errorf("Expected a red point at the top-left")
	}
}

func TestBarsDrawFromZero(t *testing.T) {
	fig := NewFigure(10, 10)
	fig.SetXLim(0, 10)
	fig.SetYLim(0, 2)

	green := colorful.Color{G: 1}
	b := NewBars([]float64{1}, 1.0, []colorful.Color{green})
	b.SetWidths([]float64{10})
	fig.Add(b)

	c := fig.Render()
	px, py := c.PixelOf(5, 1)
	if !rgbEqual(c.At(px, py), green) {
		t.Errorf("Expected the bar to cover its midpoint")
	}
}

func TestStripesCoverCanvas(t *testing.T) {
	s := NewStripes(2)
	red := colorful.Color{R: 1}
	blue := colorful.Color{B: 1}
	s.SetColour(0, red)
	s.SetColour(1, blue)

	c := NewCanvas(10, 4, 0, 1, 0, 1)
	s.Draw(c)

	if !rgbEqual(c.At(0, 0), red) {
		t.Errorf("Expected the left half to be red")
	}
	if !rgbEqual(c.At(9, 3), blue) {
		t.Errorf("Expected the right half to be blue")
	}
}

func TestGradientTableInterpolates(t *testing.T) {
	g := GradientTable{
		{0.0, 0.0},
		{180.0, 1.0},
	}

	mid := g.GetColor(0.5, 1.0, 0.5)
	want := colorful.Hcl(90.0, 1.0, 0.5)
	if !rgbEqual(mid, want) {
		t.Errorf("Expected the midpoint hue to interpolate to 90")
	}
}

func TestGradientTableClampsToEnds(t *testing.T) {
	g := GradientTable{
		{60.0, 0.2},
		{180.0, 0.8},
	}

	below := g.GetColor(0.0, 1.0, 0.5)
	if !rgbEqual(below, colorful.Hcl(60.0, 1.0, 0.5)) {
		t.Errorf("Expected positions below the first keypoint to clamp to it")
	}
	above := g.GetColor(1.0, 1.0, 0.5)
	if !rgbEqual(above, colorful.Hcl(180.0, 1.0, 0.5)) {
		t.Errorf("Expected positions above the last keypoint to clamp to it")
	}
}

func TestGradientTableEmpty(t *testing.T) {
	var g GradientTable

	// Should not panic
	c := g.GetColor(0.5, 1.0, 0.5)
	if !rgbEqual(c, colorful.Color{}) {
		t.Errorf("Expected black from an empty table, got %v", c)
	}
}

func TestBarsDrawNoColours(t *testing.T) {
	b := NewBars([]float64{1, 2}, 1.0, nil)
	b.SetWidths([]float64{1, 1})

	c := NewCanvas(4, 4, 0, 4, 0, 4)
	// Should not panic
	b.Draw(c)
}

func TestPalettedPreservesBounds(t *testing.T) {
	c := NewCanvas(6, 3, 0, 1, 0, 1)
	c.Fill(colorful.Color{R: 1})

	p := Paletted(c.RGBA())
	if p.Bounds().Dx() != 6 || p.Bounds().Dy() != 3 {
		t.Errorf("Expected 6x3 bounds, got %v", p.Bounds())
	}
	got, _ := colorful.MakeColor(p.At(0, 0))
	if !rgbEqual(got, colorful.Color{R: 1}) {
		t.Errorf("Expected the palette to keep red")
	}
}

func TestInterpolateBlends(t *testing.T) {
	a := NewCanvas(2, 2, 0, 1, 0, 1)
	b := NewCanvas(2, 2, 0, 1, 0, 1)
	red := colorful.Color{R: 1}
	a.Fill(red)
	b.Fill(red)

	out := a.Interpolate(b, 0.5)
	if !rgbEqual(out.At(0, 0), red) {
		t.Errorf("Expected blending identical canvases to be a no-op")
	}
}

package canvas

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// An Artist is a drawable plot element. Artists are mutated in place between
// frames by function-mode animations, or collected into per-frame snapshots
// by artist-list animations.
type Artist interface {
	Draw(c *Canvas)
}

// Point is a location in data space.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// A Scatter draws a set of points as squares of the given pixel size.
type Scatter struct {
	Colour colorful.Color
	Size   int

	offsets []Point
}

// NewScatter creates a Scatter with no points.
func NewScatter(colour colorful.Color, size int) *Scatter {
	s := new(Scatter)
	s.Colour = colour
	s.Size = size
	return s
}

// SetOffsets replaces the point set for the entire collection.
func (s *Scatter) SetOffsets(offsets []Point) {
	s.offsets = offsets
}

// Offsets returns the current point set.
func (s *Scatter) Offsets() []Point {
	return s.offsets
}

func (s *Scatter) Draw(c *Canvas) {
	half := s.Size / 2
	for _, p := range s.offsets {
		px, py := c.PixelOf(p.X, p.Y)
		for dy := -half; dy <= half; dy++ {
			for dx := -half; dx <= half; dx++ {
				c.Set(px+dx, py+dy, s.Colour)
			}
		}
	}
}

// A Line draws straight segments through its data points in order.
type Line struct {
	Colour colorful.Color

	xs []float64
	ys []float64
}

// NewLine creates a Line with no data.
func NewLine(colour colorful.Color) *Line {
	l := new(Line)
	l.Colour = colour
	return l
}

// SetData replaces the line's points. xs and ys must be the same length.
func (l *Line) SetData(xs, ys []float64) {
	l.xs = xs
	l.ys = ys
}

func (l *Line) Draw(c *Canvas) {
	for i := 0; i+1 < len(l.xs) && i+1 < len(l.ys); i++ {
		x0, y0 := c.PixelOf(l.xs[i], l.ys[i])
		x1, y1 := c.PixelOf(l.xs[i+1], l.ys[i+1])
		drawSegment(c, x0, y0, x1, y1, l.Colour)
	}
}

func drawSegment(c *Canvas, x0, y0, x1, y1 int, colour colorful.Color) {
	steps := int(math.Max(math.Abs(float64(x1-x0)), math.Abs(float64(y1-y0))))
	if steps == 0 {
		c.Set(x0, y0, colour)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := x0 + int(math.Round(t*float64(x1-x0)))
		py := y0 + int(math.Round(t*float64(y1-y0)))
		c.Set(px, py, colour)
	}
}

// Bars draws horizontal bars anchored at x=0, one per y position.
type Bars struct {
	Colours []colorful.Color
	Height  float64

	ys     []float64
	widths []float64
}

// NewBars creates a bar set at the given y positions.
func NewBars(ys []float64, height float64, colours []colorful.Color) *Bars {
	b := new(Bars)
	b.ys = ys
	b.Height = height
	b.Colours = colours
	b.widths = make([]float64, len(ys))
	return b
}

// SetWidths replaces the bar lengths.
func (b *Bars) SetWidths(widths []float64) {
	b.widths = widths
}

// Widths returns the current bar lengths.
func (b *Bars) Widths() []float64 {
	return b.widths
}

func (b *Bars) Draw(c *Canvas) {
	if len(b.Colours) == 0 {
		return
	}
	for i, y := range b.ys {
		if i >= len(b.widths) {
			break
		}
		colour := b.Colours[i%len(b.Colours)]
		c.FillRect(0, y-b.Height/2, b.widths[i], y+b.Height/2, colour)
	}
}

// Stripes draws vertical full-height stripes, one colour per column slot.
// It maps a one-dimensional strip of values onto the canvas.
type Stripes struct {
	colours []colorful.Color
}

// NewStripes creates a strip of n stripes.
func NewStripes(n int) *Stripes {
	s := new(Stripes)
	s.colours = make([]colorful.Color, n)
	return s
}

// Len returns the number of stripes.
func (s *Stripes) Len() int {
	return len(s.colours)
}

// SetColour sets the colour of one stripe.
func (s *Stripes) SetColour(i int, colour colorful.Color) {
	s.colours[i] = colour
}

// Colour returns the colour of one stripe.
func (s *Stripes) Colour(i int) colorful.Color {
	return s.colours[i]
}

func (s *Stripes) Draw(c *Canvas) {
	n := len(s.colours)
	if n == 0 {
		return
	}
	for px := 0; px < c.Width(); px++ {
		colour := s.colours[px*n/c.Width()]
		for py := 0; py < c.Height(); py++ {
			c.Set(px, py, colour)
		}
	}
}

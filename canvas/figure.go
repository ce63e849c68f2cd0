package canvas

import (
	"github.com/lucasb-eyer/go-colorful"
)

// A Figure holds the persistent drawable state of an animation: a canvas
// size, a view onto data space and an ordered list of artists.
type Figure struct {
	Width      int
	Height     int
	Background colorful.Color

	xMin float64
	xMax float64
	yMin float64
	yMax float64

	artists []Artist
}

// NewFigure creates a Figure with a unit view.
func NewFigure(width, height int) *Figure {
	f := new(Figure)
	f.Width = width
	f.Height = height
	f.Background = colorful.Color{R: 0, G: 0, B: 0}
	f.xMin, f.xMax = 0, 1
	f.yMin, f.yMax = 0, 1
	return f
}

// SetXLim sets the horizontal data-space extent of the view.
func (f *Figure) SetXLim(min, max float64) {
	f.xMin, f.xMax = min, max
}

// SetYLim sets the vertical data-space extent of the view.
func (f *Figure) SetYLim(min, max float64) {
	f.yMin, f.yMax = min, max
}

// Add appends an artist to the figure. Artists draw in the order they were
// added.
func (f *Figure) Add(a Artist) {
	f.artists = append(f.artists, a)
}

// Artists returns the figure's artist list.
func (f *Figure) Artists() []Artist {
	return f.artists
}

// Render draws the background and the figure's own artists onto a fresh
// canvas.
func (f *Figure) Render() *Canvas {
	return f.RenderArtists(f.artists)
}

// RenderArtists draws the background and the given artists, ignoring the
// figure's own list. Used for snapshot playback.
func (f *Figure) RenderArtists(artists []Artist) *Canvas {
	c := NewCanvas(f.Width, f.Height, f.xMin, f.xMax, f.yMin, f.yMax)
	c.Fill(f.Background)
	for _, a := range artists {
		a.Draw(c)
	}
	return c
}

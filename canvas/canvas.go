package canvas

import (
	"image"
	"image/color/palette"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"
)

// A Canvas is a grid of pixels with a data-space view transform. Artists draw
// onto it in data coordinates; writers consume it as an image.
type Canvas struct {
	width  int
	height int
	xMin   float64
	xMax   float64
	yMin   float64
	yMax   float64
	pixels []colorful.Color
}

// NewCanvas creates a Canvas of the given size with a view spanning
// [xMin,xMax] by [yMin,yMax] in data space.
func NewCanvas(width, height int, xMin, xMax, yMin, yMax float64) *Canvas {
	c := new(Canvas)
	c.width = width
	c.height = height
	c.xMin = xMin
	c.xMax = xMax
	c.yMin = yMin
	c.yMax = yMax
	c.pixels = make([]colorful.Color, width*height)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Fill sets every pixel to the given colour.
func (c *Canvas) Fill(colour colorful.Color) {
	for i := range c.pixels {
		c.pixels[i] = colour
	}
}

// Set writes a pixel at raster coordinates. Out-of-range writes are dropped.
func (c *Canvas) Set(px, py int, colour colorful.Color) {
	if px < 0 || px >= c.width || py < 0 || py >= c.height {
		return
	}
	c.pixels[py*c.width+px] = colour
}

// At reads a pixel at raster coordinates.
func (c *Canvas) At(px, py int) colorful.Color {
	return c.pixels[py*c.width+px]
}

// PixelOf maps data coordinates to raster coordinates. The y axis points up
// in data space and down in raster space.
func (c *Canvas) PixelOf(x, y float64) (int, int) {
	px := int((x - c.xMin) / (c.xMax - c.xMin) * float64(c.width-1))
	py := int((c.yMax - y) / (c.yMax - c.yMin) * float64(c.height-1))
	return px, py
}

// FillRect fills a rectangle given in data coordinates.
func (c *Canvas) FillRect(x0, y0, x1, y1 float64, colour colorful.Color) {
	px0, py0 := c.PixelOf(x0, y1)
	px1, py1 := c.PixelOf(x1, y0)
	for py := py0; py <= py1; py++ {
		for px := px0; px <= px1; px++ {
			c.Set(px, py, colour)
		}
	}
}

// Interpolate merges two canvases of the same size.
func (c *Canvas) Interpolate(c2 *Canvas, transitionPoint float64) *Canvas {
	out := NewCanvas(c.width, c.height, c.xMin, c.xMax, c.yMin, c.yMax)
	for i := range c.pixels {
		out.pixels[i] = c.pixels[i].BlendHcl(c2.pixels[i], transitionPoint)
	}
	return out
}

// RGBA converts the canvas to an RGBA image for writers.
func (c *Canvas) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for i, p := range c.pixels {
		r, g, b := p.Clamped().RGB255()
		o := i * 4
		img.Pix[o] = r
		img.Pix[o+1] = g
		img.Pix[o+2] = b
		img.Pix[o+3] = 0xff
	}
	return img
}

// Paletted converts an image to a paletted image with dithering, for
// palette-based formats.
func Paletted(src image.Image) *image.Paletted {
	dst := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(dst, src.Bounds(), src, image.Point{})
	return dst
}

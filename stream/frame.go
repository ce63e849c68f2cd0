package stream

import (
	"encoding/binary"

	"github.com/matt-g-everett/animatic/canvas"
)

// MarshalFrame converts a rendered canvas into the binary wire format
// consumed by display devices: little-endian uint16 width and height
// followed by row-major RGB bytes.
func MarshalFrame(c *canvas.Canvas) []byte {
	w, h := c.Width(), c.Height()
	data := make([]byte, 4, w*h*3+4)
	binary.LittleEndian.PutUint16(data, uint16(w))
	binary.LittleEndian.PutUint16(data[2:], uint16(h))
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			r, g, b := c.At(px, py).Clamped().RGB255()
			data = append(data, r, g, b)
		}
	}
	return data
}

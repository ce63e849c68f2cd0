package stream

import (
	"encoding/binary"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/animatic/canvas"
)

func TestMarshalFrame(t *testing.T) {
	c := canvas.NewCanvas(3, 2, 0, 1, 0, 1)
	red := colorful.Color{R: 1}
	c.Fill(red)

	data := MarshalFrame(c)

	if want := 4 + 3*2*3; len(data) != want {
		t.Fatalf("Expected %d bytes, got %d", want, len(data))
	}
	if w := binary.LittleEndian.Uint16(data); w != 3 {
		t.Errorf("Expected width 3, got %d", w)
	}
	if h := binary.LittleEndian.Uint16(data[2:]); h != 2 {
		t.Errorf("Expected height 2, got %d", h)
	}
	if data[4] != 0xff || data[5] != 0x00 || data[6] != 0x00 {
		t.Errorf("Expected the first pixel to be red, got % x", data[4:7])
	}
}

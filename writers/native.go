package writers

import (
	"fmt"
	"image"
	"image/gif"
	"os"
	"path/filepath"

	"github.com/kettek/apng"

	"github.com/matt-g-everett/animatic/canvas"
)

func init() {
	Register("native", func() Writer { return &NativeWriter{} })
}

// A NativeWriter encodes the animation in-process with no external encoder,
// as an animated gif or apng. Frames are buffered in memory and written out
// on Finish.
type NativeWriter struct {
	outPath string
	ext     string
	fps     int
	frames  []*image.RGBA
}

// Formats returns the supported filename extensions.
func (w *NativeWriter) Formats() []string {
	return []string{".gif", ".apng"}
}

// Setup records the output parameters.
func (w *NativeWriter) Setup(path string, width, height, fps int, extra []string) error {
	w.outPath = path
	w.ext = filepath.Ext(path)
	w.fps = clampFps(fps)
	w.frames = nil
	return nil
}

// WriteFrame buffers one frame.
func (w *NativeWriter) WriteFrame(img *image.RGBA) error {
	w.frames = append(w.frames, img)
	return nil
}

// Finish encodes the buffered frames. A failed encode removes the partial
// output file.
func (w *NativeWriter) Finish() error {
	if len(w.frames) == 0 {
		return fmt.Errorf("no frames written")
	}

	f, err := os.Create(w.outPath)
	if err != nil {
		return err
	}

	switch w.ext {
	case ".gif":
		err = w.encodeGif(f)
	case ".apng":
		err = w.encodeApng(f)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, w.ext)
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(w.outPath)
	}
	return err
}

// Abort discards buffered frames and removes any partial output file.
func (w *NativeWriter) Abort() {
	w.frames = nil
	if w.outPath != "" {
		os.Remove(w.outPath)
	}
}

func (w *NativeWriter) encodeGif(f *os.File) error {
	g := &gif.GIF{LoopCount: 0}
	delay := centiDelay(w.fps)
	for _, frame := range w.frames {
		g.Image = append(g.Image, canvas.Paletted(frame))
		g.Delay = append(g.Delay, delay)
	}
	return gif.EncodeAll(f, g)
}

func (w *NativeWriter) encodeApng(f *os.File) error {
	a := apng.APNG{Frames: make([]apng.Frame, 0, len(w.frames))}
	for _, frame := range w.frames {
		a.Frames = append(a.Frames, apng.Frame{
			Image:            frame,
			DelayNumerator:   1,
			DelayDenominator: uint16(w.fps),
		})
	}
	return apng.Encode(f, a)
}

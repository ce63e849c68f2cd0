package anim

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matt-g-everett/animatic/canvas"
	"github.com/matt-g-everett/animatic/writers"
)

// SaveOptions configure a save run. FPS is the frame rate of the saved file;
// it is independent of the animation's display interval.
type SaveOptions struct {
	FPS       int
	ExtraArgs []string
}

// DefaultFPS is used when SaveOptions.FPS is unset.
const DefaultFPS = 25

// Save encodes the animation to filename using a writer chosen by name from
// the registry. The filename extension is validated against the writer's
// supported formats before any encoder is started. Errors are fatal; no
// partial output is left behind.
func Save(a Animation, filename, writerName string, opts SaveOptions) error {
	w, err := writers.New(writerName)
	if err != nil {
		return err
	}
	return SaveWith(a, filename, w, opts)
}

// SaveWith encodes the animation to filename using the given writer.
func SaveWith(a Animation, filename string, w writers.Writer, opts SaveOptions) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !formatSupported(w, ext) {
		return fmt.Errorf("%w: %q not in %v", writers.ErrUnsupportedFormat, ext, w.Formats())
	}

	fps := opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}

	fig := a.Figure()
	if err := w.Setup(filename, fig.Width, fig.Height, fps, opts.ExtraArgs); err != nil {
		return fmt.Errorf("writer setup: %w", err)
	}

	err := a.Sequence(func(i int, c *canvas.Canvas) error {
		return w.WriteFrame(c.RGBA())
	})
	if err != nil {
		w.Abort()
		return fmt.Errorf("render frames: %w", err)
	}

	if err := w.Finish(); err != nil {
		return fmt.Errorf("finish %s: %w", filename, err)
	}
	return nil
}

func formatSupported(w writers.Writer, ext string) bool {
	for _, f := range w.Formats() {
		if f == ext {
			return true
		}
	}
	return false
}

// Package writers contains the output backends that serialize an animation's
// frame sequence to a media file. Pipe and file based writers hand the frames
// to an external encoder program; the native and html writers encode
// in-process.
package writers

import (
	"errors"
	"fmt"
	"image"
	"sort"
)

var (
	// ErrUnknownWriter is returned when no writer is registered under the
	// requested name.
	ErrUnknownWriter = errors.New("unknown writer")

	// ErrUnsupportedFormat is returned when a filename extension is outside
	// the chosen writer's supported set. It is raised before any encoder
	// subprocess is spawned.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrEncoderMissing is returned when the external encoder executable
	// cannot be found.
	ErrEncoderMissing = errors.New("encoder executable not found")
)

// A Writer serializes a sequence of rendered frames to a media file.
// Setup is called once before the first frame, WriteFrame once per frame in
// sequence order, and Finish once after the last frame. Abort discards any
// partial state after a failure; a failed save never leaves a partial file.
type Writer interface {
	Formats() []string
	Setup(path string, width, height, fps int, extra []string) error
	WriteFrame(img *image.RGBA) error
	Finish() error
	Abort()
}

// Factory creates a fresh writer instance.
type Factory func() Writer

var registry = map[string]Factory{}

// Register makes a writer available under the given name.
func Register(name string, f Factory) {
	registry[name] = f
}

// New creates a writer by registered name.
func New(name string) (Writer, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownWriter, name, Names())
	}
	return f(), nil
}

// clampFps brings a frame rate into the usable range. Zero or negative
// rates become 1.
func clampFps(fps int) int {
	if fps < 1 {
		return 1
	}
	return fps
}

// centiDelay converts a frame rate to a per-frame delay in 1/100s ticks,
// the unit gif and imagemagick use. Never less than one tick, so rates
// above 100fps saturate.
func centiDelay(fps int) int {
	d := 100 / clampFps(fps)
	if d < 1 {
		return 1
	}
	return d
}

// milliDelay converts a frame rate to a per-frame delay in milliseconds.
func milliDelay(fps int) int {
	d := 1000 / clampFps(fps)
	if d < 1 {
		return 1
	}
	return d
}

// Names lists the registered writer names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

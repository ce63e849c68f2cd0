package writers

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

func init() {
	Register("imagemagick", func() Writer { return &ImageMagickWriter{Path: "magick"} })
	Register("imagemagick_file", func() Writer { return &ImageMagickFileWriter{Path: "magick"} })
}

var imagemagickFormats = []string{".gif", ".webp", ".apng", ".png", ".bmp"}

// An ImageMagickWriter pipes PNG frames to a magick process which stitches
// them into the output file.
type ImageMagickWriter struct {
	// Path is the magick executable name or path.
	Path string

	outPath string
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stderr  bytes.Buffer
}

// Formats returns the supported filename extensions.
func (w *ImageMagickWriter) Formats() []string {
	return imagemagickFormats
}

// Setup locates the encoder and starts it reading PNG frames from stdin.
// The frame delay is given in ticks of 1/100s, so effective rates are
// rounded to the nearest centisecond.
func (w *ImageMagickWriter) Setup(path string, width, height, fps int, extra []string) error {
	if _, err := exec.LookPath(w.Path); err != nil {
		return fmt.Errorf("%w: %s", ErrEncoderMissing, w.Path)
	}

	w.outPath = path
	args := []string{
		"-delay", strconv.Itoa(centiDelay(fps)),
		"-loop", "0",
	}
	args = append(args, extra...)
	args = append(args, "png:-", path)

	w.cmd = exec.Command(w.Path, args...)
	w.cmd.Stderr = &w.stderr

	stdin, err := w.cmd.StdinPipe()
	if err != nil {
		return err
	}
	w.stdin = stdin

	if err := w.cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", w.Path, err)
	}
	return nil
}

// WriteFrame streams one frame into the encoder as PNG.
func (w *ImageMagickWriter) WriteFrame(img *image.RGBA) error {
	return png.Encode(w.stdin, img)
}

// Finish closes the pipe and waits for the encoder. A nonzero exit removes
// the partial output file.
func (w *ImageMagickWriter) Finish() error {
	if err := w.stdin.Close(); err != nil {
		w.Abort()
		return err
	}
	if err := w.cmd.Wait(); err != nil {
		os.Remove(w.outPath)
		return fmt.Errorf("%s exited: %w\n%s", w.Path, err, tail(w.stderr.Bytes()))
	}
	return nil
}

// Abort kills the encoder and removes the partial output file.
func (w *ImageMagickWriter) Abort() {
	if w.stdin != nil {
		w.stdin.Close()
	}
	if w.cmd != nil && w.cmd.Process != nil {
		w.cmd.Process.Kill()
		w.cmd.Wait()
	}
	if w.outPath != "" {
		os.Remove(w.outPath)
	}
}

// An ImageMagickFileWriter saves each frame as a PNG file before a single
// magick run stitches them together.
type ImageMagickFileWriter struct {
	// Path is the magick executable name or path.
	Path string

	outPath  string
	frameDir string
	fps      int
	count    int
}

// Formats returns the supported filename extensions.
func (w *ImageMagickFileWriter) Formats() []string {
	return imagemagickFormats
}

// Setup locates the encoder and creates the frame directory.
func (w *ImageMagickFileWriter) Setup(path string, width, height, fps int, extra []string) error {
	if _, err := exec.LookPath(w.Path); err != nil {
		return fmt.Errorf("%w: %s", ErrEncoderMissing, w.Path)
	}

	dir, err := os.MkdirTemp("", "animatic-frames-")
	if err != nil {
		return err
	}

	w.outPath = path
	w.frameDir = dir
	w.fps = clampFps(fps)
	w.count = 0
	return nil
}

// WriteFrame saves one frame as a numbered PNG.
func (w *ImageMagickFileWriter) WriteFrame(img *image.RGBA) error {
	f, err := os.Create(filepath.Join(w.frameDir, fmt.Sprintf("%06d.png", w.count)))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return err
	}
	w.count++
	return nil
}

// Finish runs the encoder over the saved frames, then removes the frame
// directory. A nonzero exit removes the partial output file.
func (w *ImageMagickFileWriter) Finish() error {
	defer os.RemoveAll(w.frameDir)

	if w.count == 0 {
		return fmt.Errorf("no frames written")
	}

	args := []string{
		"-delay", strconv.Itoa(centiDelay(w.fps)),
		"-loop", "0",
	}
	for i := 0; i < w.count; i++ {
		args = append(args, filepath.Join(w.frameDir, fmt.Sprintf("%06d.png", i)))
	}
	args = append(args, w.outPath)

	var stderr bytes.Buffer
	cmd := exec.Command(w.Path, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		os.Remove(w.outPath)
		return fmt.Errorf("%s exited: %w\n%s", w.Path, err, tail(stderr.Bytes()))
	}
	return nil
}

// Abort removes the frame directory and the partial output file.
func (w *ImageMagickFileWriter) Abort() {
	if w.frameDir != "" {
		os.RemoveAll(w.frameDir)
	}
	if w.outPath != "" {
		os.Remove(w.outPath)
	}
}

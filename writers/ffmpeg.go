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
	Register("ffmpeg", func() Writer { return &FFmpegWriter{Path: "ffmpeg"} })
	Register("ffmpeg_file", func() Writer { return &FFmpegFileWriter{Path: "ffmpeg"} })
}

var ffmpegFormats = []string{".mp4", ".mkv", ".mov", ".avi", ".webm", ".gif", ".apng", ".webp", ".mjpeg"}

// An FFmpegWriter pipes raw RGBA frames to an ffmpeg process which muxes
// them into the output file. The pipe gives FIFO ordering with backpressure;
// frames are produced and consumed one at a time.
type FFmpegWriter struct {
	// Path is the ffmpeg executable name or path.
	Path string

	outPath string
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stderr  bytes.Buffer
	width   int
	height  int
}

// Formats returns the supported filename extensions.
func (w *FFmpegWriter) Formats() []string {
	return ffmpegFormats
}

// Setup locates the encoder and starts it reading rawvideo from stdin.
func (w *FFmpegWriter) Setup(path string, width, height, fps int, extra []string) error {
	if _, err := exec.LookPath(w.Path); err != nil {
		return fmt.Errorf("%w: %s", ErrEncoderMissing, w.Path)
	}

	w.outPath = path
	w.width = width
	w.height = height

	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", strconv.Itoa(clampFps(fps)),
		"-i", "pipe:0",
	}
	args = append(args, ffmpegOutputFlags(filepath.Ext(path))...)
	args = append(args, extra...)
	args = append(args, path)

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

// WriteFrame streams one frame into the encoder.
func (w *FFmpegWriter) WriteFrame(img *image.RGBA) error {
	if img.Rect.Dx() != w.width || img.Rect.Dy() != w.height {
		return fmt.Errorf("frame size %dx%d does not match setup %dx%d",
			img.Rect.Dx(), img.Rect.Dy(), w.width, w.height)
	}
	_, err := w.stdin.Write(img.Pix)
	return err
}

// Finish closes the pipe and waits for the encoder. A nonzero exit removes
// the partial output file.
func (w *FFmpegWriter) Finish() error {
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
func (w *FFmpegWriter) Abort() {
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

// ffmpegOutputFlags maps an output extension to encoder flags.
func ffmpegOutputFlags(ext string) []string {
	switch ext {
	case ".mp4", ".mkv", ".mov", ".avi":
		return []string{
			"-c:v", "libx264",
			"-pix_fmt", "yuv420p",
			"-vf", "pad=ceil(iw/2)*2:ceil(ih/2)*2", // pad the video to be even
			"-vsync", "passthrough", // prevents frame dropping
		}
	case ".webm":
		return []string{
			"-c:v", "libvpx-vp9",
			"-pix_fmt", "yuv420p",
			"-vsync", "passthrough",
		}
	case ".gif":
		// Generate and apply a palette in a single pass for better quality.
		return []string{
			"-loop", "0",
			"-filter_complex", "split[a][b];[a]palettegen[p];[b][p]paletteuse",
		}
	case ".apng":
		return []string{
			"-plays", "0",
			"-f", "apng",
		}
	case ".webp":
		return []string{
			"-loop", "0",
			"-pix_fmt", "yuv420p",
			"-vsync", "passthrough",
		}
	default:
		return nil
	}
}

func tail(b []byte) []byte {
	const max = 2048
	if len(b) > max {
		return b[len(b)-max:]
	}
	return b
}

// An FFmpegFileWriter saves each frame as a PNG file before stitching them
// together with a single encoder run. Slower than the pipe writer but the
// intermediate frames can be inspected when debugging.
type FFmpegFileWriter struct {
	// Path is the ffmpeg executable name or path.
	Path string

	outPath  string
	frameDir string
	fps      int
	count    int
}

// Formats returns the supported filename extensions.
func (w *FFmpegFileWriter) Formats() []string {
	return ffmpegFormats
}

// Setup locates the encoder and creates the frame directory.
func (w *FFmpegFileWriter) Setup(path string, width, height, fps int, extra []string) error {
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
func (w *FFmpegFileWriter) WriteFrame(img *image.RGBA) error {
	f, err := os.Create(w.framePath(w.count))
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

// Finish writes the concat list and runs the encoder over it, then removes
// the frame directory. A nonzero exit removes the partial output file.
func (w *FFmpegFileWriter) Finish() error {
	defer os.RemoveAll(w.frameDir)

	if w.count == 0 {
		return fmt.Errorf("no frames written")
	}

	listPath := filepath.Join(w.frameDir, "frames.txt")
	if err := os.WriteFile(listPath, []byte(w.concatList()), 0644); err != nil {
		return err
	}

	var stderr bytes.Buffer
	cmd := exec.Command(w.Path,
		"-y",
		"-f", "concat",
		"-safe", "0", // allow absolute paths in the concat file
		"-i", listPath,
	)
	cmd.Args = append(cmd.Args, ffmpegOutputFlags(filepath.Ext(w.outPath))...)
	cmd.Args = append(cmd.Args, w.outPath)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(w.outPath)
		return fmt.Errorf("%s exited: %w\n%s", w.Path, err, tail(stderr.Bytes()))
	}
	return nil
}

// Abort removes the frame directory and the partial output file.
func (w *FFmpegFileWriter) Abort() {
	if w.frameDir != "" {
		os.RemoveAll(w.frameDir)
	}
	if w.outPath != "" {
		os.Remove(w.outPath)
	}
}

func (w *FFmpegFileWriter) framePath(i int) string {
	return filepath.Join(w.frameDir, fmt.Sprintf("%06d.png", i))
}

// concatList builds an ffconcat file giving every frame a duration of 1/fps.
// The last frame is repeated so the encoder does not drop it.
func (w *FFmpegFileWriter) concatList() string {
	duration := 1.0 / float64(w.fps)
	var b bytes.Buffer
	b.WriteString("ffconcat version 1.0\n")
	for i := 0; i < w.count; i++ {
		fmt.Fprintf(&b, "file '%s'\nduration %f\n", w.framePath(i), duration)
	}
	fmt.Fprintf(&b, "file '%s'\nduration %f\n", w.framePath(w.count-1), 0.001)
	return b.String()
}

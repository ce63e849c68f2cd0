package writers

import (
	"errors"
	"image"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegistryLookup(t *testing.T) {
	for _, name := range []string{"native", "html", "ffmpeg", "ffmpeg_file", "imagemagick", "imagemagick_file"} {
		w, err := New(name)
		if err != nil {
			t.Errorf("Expected writer %q to be registered, got %v", name, err)
			continue
		}
		if len(w.Formats()) == 0 {
			t.Errorf("Expected writer %q to declare formats", name)
		}
	}

	if _, err := New("no-such-writer"); !errors.Is(err, ErrUnknownWriter) {
		t.Errorf("Expected ErrUnknownWriter, got %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Expected sorted names, got %v", names)
		}
	}
}

func TestFFmpegOutputFlags(t *testing.T) {
	mp4 := strings.Join(ffmpegOutputFlags(".mp4"), " ")
	if !strings.Contains(mp4, "libx264") {
		t.Errorf("Expected mp4 flags to pick libx264, got %q", mp4)
	}
	if !strings.Contains(mp4, "yuv420p") {
		t.Errorf("Expected mp4 flags to set yuv420p, got %q", mp4)
	}

	webm := strings.Join(ffmpegOutputFlags(".webm"), " ")
	if !strings.Contains(webm, "libvpx-vp9") {
		t.Errorf("Expected webm flags to pick vp9, got %q", webm)
	}

	g := strings.Join(ffmpegOutputFlags(".gif"), " ")
	if !strings.Contains(g, "palettegen") || !strings.Contains(g, "paletteuse") {
		t.Errorf("Expected gif flags to build and use a palette, got %q", g)
	}
}

func TestFFmpegMissingEncoder(t *testing.T) {
	w := &FFmpegWriter{Path: "animatic-no-such-encoder"}
	err := w.Setup("out.mp4", 8, 8, 25, nil)
	if !errors.Is(err, ErrEncoderMissing) {
		t.Errorf("Expected ErrEncoderMissing, got %v", err)
	}
}

func TestImageMagickMissingEncoder(t *testing.T) {
	w := &ImageMagickWriter{Path: "animatic-no-such-encoder"}
	err := w.Setup("out.gif", 8, 8, 25, nil)
	if !errors.Is(err, ErrEncoderMissing) {
		t.Errorf("Expected ErrEncoderMissing, got %v", err)
	}
}

func TestConcatList(t *testing.T) {
	w := &FFmpegFileWriter{frameDir: "/tmp/frames", fps: 20, count: 3}
	list := w.concatList()

	if !strings.HasPrefix(list, "ffconcat version 1.0\n") {
		t.Errorf("Expected ffconcat header, got %q", list)
	}
	// one entry per frame plus the repeated last frame
	if got := strings.Count(list, "file '"); got != 4 {
		t.Errorf("Expected 4 file entries, got %d", got)
	}
	if got := strings.Count(list, "duration 0.050000"); got != 3 {
		t.Errorf("Expected 3 frames of duration 1/20s, got %d in %q", got, list)
	}
	if !strings.Contains(list, "duration 0.001000") {
		t.Errorf("Expected the trailing frame to hold for 0.001s, got %q", list)
	}
}

func testFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

func TestNativeWriterGif(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	w := &NativeWriter{}
	if err := w.Setup(path, 8, 8, 25, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := w.WriteFrame(testFrame(8, 8)); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Expected output file, got %v", err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("Expected a valid gif, got %v", err)
	}
	if len(g.Image) != 3 {
		t.Errorf("Expected 3 frames, got %d", len(g.Image))
	}
	for i, d := range g.Delay {
		if d != 4 { // 100/25 ticks
			t.Errorf("Expected frame %d delay 4, got %d", i, d)
		}
	}
}

func TestDelayClamping(t *testing.T) {
	cases := []struct {
		fps   int
		centi int
		milli int
	}{
		{0, 100, 1000}, // fps 0 falls back to 1fps rather than dividing by zero
		{-5, 100, 1000},
		{25, 4, 40},
		{200, 1, 5}, // centisecond delay never rounds down to zero
		{2000, 1, 1},
	}
	for _, c := range cases {
		if got := centiDelay(c.fps); got != c.centi {
			t.Errorf("Expected centiDelay(%d) = %d, got %d", c.fps, c.centi, got)
		}
		if got := milliDelay(c.fps); got != c.milli {
			t.Errorf("Expected milliDelay(%d) = %d, got %d", c.fps, c.milli, got)
		}
	}
}

func TestNativeWriterHighFpsDelay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	w := &NativeWriter{}
	if err := w.Setup(path, 8, 8, 200, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := w.WriteFrame(testFrame(8, 8)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Expected output file, got %v", err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("Expected a valid gif, got %v", err)
	}
	if len(g.Delay) != 1 || g.Delay[0] != 1 {
		t.Errorf("Expected the delay floored at 1 tick, got %v", g.Delay)
	}
}

func TestNativeWriterNoFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	w := &NativeWriter{}
	w.Setup(path, 8, 8, 25, nil)
	if err := w.Finish(); err == nil {
		t.Error("Expected an error for an empty sequence")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no output file to be left behind")
	}
}

func TestHTMLWriterEmbedsFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	w := &HTMLWriter{}
	if err := w.Setup(path, 8, 8, 10, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := w.WriteFrame(testFrame(8, 8)); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	page, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected output file, got %v", err)
	}
	if got := strings.Count(string(page), "data:image/png;base64"); got != 2 {
		t.Errorf("Expected 2 embedded frames, got %d", got)
	}
	if !strings.Contains(string(page), "100") { // 1000/10 ms delay
		t.Errorf("Expected the page to carry the frame delay")
	}
}

func TestHTMLWriterPngFrameDump(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	w := &HTMLWriter{}
	if err := w.Setup(path, 8, 8, 10, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := w.WriteFrame(testFrame(8, 8)); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for i := 0; i < 3; i++ {
		frame := filepath.Join(dir, "out"+frameSuffix(i))
		if _, err := os.Stat(frame); err != nil {
			t.Errorf("Expected frame file %s, got %v", frame, err)
		}
	}
}

func frameSuffix(i int) string {
	return filepath.Base((&HTMLWriter{outPath: "out.png", ext: ".png"}).pngFramePath(i))
}

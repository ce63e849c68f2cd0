package writers

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

func init() {
	Register("html", func() Writer { return &HTMLWriter{} })
}

// An HTMLWriter produces a standalone JavaScript-driven animation: a single
// .htm/.html page with every frame embedded as a base64 PNG, or a numbered
// PNG frame dump when the output extension is .png.
type HTMLWriter struct {
	outPath string
	ext     string
	fps     int
	width   int
	height  int
	frames  []string
	count   int
}

// Formats returns the supported filename extensions.
func (w *HTMLWriter) Formats() []string {
	return []string{".htm", ".html", ".png"}
}

// Setup records the output parameters.
func (w *HTMLWriter) Setup(path string, width, height, fps int, extra []string) error {
	w.outPath = path
	w.ext = filepath.Ext(path)
	w.fps = clampFps(fps)
	w.width = width
	w.height = height
	w.frames = nil
	w.count = 0
	return nil
}

// WriteFrame encodes one frame as PNG; embedded for html output, written as
// a numbered file for png output.
func (w *HTMLWriter) WriteFrame(img *image.RGBA) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	if w.ext == ".png" {
		path := w.pngFramePath(w.count)
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return err
		}
	} else {
		w.frames = append(w.frames, base64.StdEncoding.EncodeToString(buf.Bytes()))
	}
	w.count++
	return nil
}

// Finish writes the player page. The png variant has already written its
// frames and only checks that some exist.
func (w *HTMLWriter) Finish() error {
	if w.count == 0 {
		return fmt.Errorf("no frames written")
	}
	if w.ext == ".png" {
		return nil
	}

	f, err := os.Create(w.outPath)
	if err != nil {
		return err
	}
	err = playerPage.Execute(f, map[string]interface{}{
		"Width":  w.width,
		"Height": w.height,
		"Delay":  milliDelay(w.fps),
		"Frames": w.frames,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(w.outPath)
	}
	return err
}

// Abort removes any partial output.
func (w *HTMLWriter) Abort() {
	if w.ext == ".png" {
		for i := 0; i < w.count; i++ {
			os.Remove(w.pngFramePath(i))
		}
		return
	}
	w.frames = nil
	if w.outPath != "" {
		os.Remove(w.outPath)
	}
}

func (w *HTMLWriter) pngFramePath(i int) string {
	base := strings.TrimSuffix(w.outPath, ".png")
	return fmt.Sprintf("%s%06d.png", base, i)
}

var playerPage = template.Must(template.New("player").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>animation</title></head>
<body>
<img id="frame" width="{{.Width}}" height="{{.Height}}">
<script>
var frames = [{{range .Frames}}"data:image/png;base64,{{.}}",{{end}}];
var i = 0;
var img = document.getElementById("frame");
setInterval(function() {
    img.src = frames[i];
    i = (i + 1) % frames.length;
}, {{.Delay}});
</script>
</body>
</html>
`))

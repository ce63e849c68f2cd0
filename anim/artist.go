package anim

import (
	"time"

	"github.com/matt-g-everett/animatic/canvas"
)

// An ArtistAnimation replays a pre-built ordered list of artist snapshots,
// one snapshot visible per frame. All frames are computed before playback
// starts; no update callback is involved.
type ArtistAnimation struct {
	fig      *canvas.Figure
	frames   [][]canvas.Artist
	interval time.Duration
	repeat   bool
}

// NewArtistAnimation creates an ArtistAnimation over the given snapshots.
func NewArtistAnimation(fig *canvas.Figure, frames [][]canvas.Artist, interval time.Duration, repeat bool) *ArtistAnimation {
	a := new(ArtistAnimation)
	a.fig = fig
	a.frames = frames
	a.interval = interval
	a.repeat = repeat
	return a
}

// Figure returns the animated figure.
func (a *ArtistAnimation) Figure() *canvas.Figure {
	return a.fig
}

// FrameCount returns the snapshot count.
func (a *ArtistAnimation) FrameCount() int {
	return len(a.frames)
}

// Interval returns the display delay between frames.
func (a *ArtistAnimation) Interval() time.Duration {
	return a.interval
}

// Repeat reports whether playback loops.
func (a *ArtistAnimation) Repeat() bool {
	return a.repeat
}

// Sequence renders every snapshot in list order, forwarding each frame
// before advancing.
func (a *ArtistAnimation) Sequence(emit EmitFunc) error {
	for i, artists := range a.frames {
		if err := emit(i, a.fig.RenderArtists(artists)); err != nil {
			return err
		}
	}
	return nil
}

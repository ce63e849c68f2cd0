// Package scene loads yaml scene files describing an animation to build.
package scene

import (
	"fmt"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/animatic/anim"
	"github.com/matt-g-everett/animatic/anims"
	"github.com/matt-g-everett/animatic/canvas"
)

// A Scene describes a figure and the animation to run on it.
type Scene struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`

	Animation  string `yaml:"animation"`
	Frames     int    `yaml:"frames"`
	IntervalMs int    `yaml:"interval"`
	Repeat     bool   `yaml:"repeat"`

	Lissajous anims.LissajousParams `yaml:"lissajous"`
	BarRace   anims.BarRaceParams   `yaml:"barrace"`
	Trail     anims.TrailParams     `yaml:"trail"`
	Twinkle   anims.TwinkleParams   `yaml:"twinkle"`
}

// Load reads a Scene from a yaml file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := new(Scene)
	if err := yaml.NewDecoder(f).Decode(s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if s.Width <= 0 {
		s.Width = 320
	}
	if s.Height <= 0 {
		s.Height = 240
	}
	if s.Frames <= 0 {
		s.Frames = 100
	}
	if s.IntervalMs <= 0 {
		s.IntervalMs = 30
	}
	return s, nil
}

// Build creates the described animation on a fresh figure.
func (s *Scene) Build() (anim.Animation, error) {
	fig := canvas.NewFigure(s.Width, s.Height)
	if s.Background != "" {
		colour, err := colorful.Hex(s.Background)
		if err != nil {
			return nil, fmt.Errorf("background colour %q: %w", s.Background, err)
		}
		fig.Background = colour
	}

	interval := time.Duration(s.IntervalMs) * time.Millisecond
	switch s.Animation {
	case "lissajous":
		return anims.Lissajous(fig, s.Frames, interval, s.Lissajous), nil
	case "barrace":
		return anims.BarRace(fig, s.Frames, interval, s.Repeat, s.BarRace), nil
	case "trail":
		return anims.GradientTrail(fig, s.Frames, interval, s.Trail), nil
	case "twinkle":
		return anims.Twinkle(fig, s.Frames, interval, s.Twinkle), nil
	default:
		return nil, fmt.Errorf("unknown animation %q", s.Animation)
	}
}

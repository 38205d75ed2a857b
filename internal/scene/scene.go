package scene

import (
	"github.com/iburimskiy/hyperdemo/internal/band"
	"github.com/iburimskiy/hyperdemo/internal/clock"
	"github.com/iburimskiy/hyperdemo/internal/config"
	"github.com/iburimskiy/hyperdemo/internal/hyper"
	"github.com/iburimskiy/hyperdemo/internal/starfield"
	"github.com/iburimskiy/hyperdemo/internal/textmotion"
)

// Rand is the single random source the scene draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

type Options struct {
	Width, Height int
	Message       string
	Title         string
	StarCount     int
}

// DefaultOptions mirrors the stock demo.
func DefaultOptions() Options {
	return Options{
		Width:     config.ViewportWidth,
		Height:    config.ViewportHeight,
		Message:   config.DefaultMessage,
		Title:     config.DefaultTitle,
		StarCount: config.StarCount,
	}
}

// Scene owns all simulation state and turns clock readings into frames.
type Scene struct {
	opts   Options
	rng    Rand
	clock  *clock.Clock
	stars  *starfield.Field
	band   *band.Shader
	hyper  *hyper.Engine
	scroll *textmotion.Scroller
	title  *textmotion.Title
	flash  *Flash
}

// New builds every component. startMs is the clock reading the demo starts at.
func New(opts Options, rng Rand, metrics textmotion.Metrics, startMs int64) *Scene {
	if opts.StarCount <= 0 {
		opts.StarCount = config.StarCount
	}
	return &Scene{
		opts:   opts,
		rng:    rng,
		clock:  clock.New(startMs),
		stars:  starfield.New(opts.Width, opts.Height, opts.StarCount, rng),
		band:   band.New(opts.Height),
		hyper:  hyper.New(),
		scroll: textmotion.NewScroller(opts.Message, metrics, opts.Width, opts.Height),
		title:  textmotion.NewTitle(opts.Title, metrics, opts.Width),
		flash:  NewFlash(startMs),
	}
}

func (s *Scene) Options() Options { return s.opts }

func (s *Scene) Hyper() *hyper.Engine { return s.hyper }

func (s *Scene) Stars() *starfield.Field { return s.stars }

func (s *Scene) Scroller() *textmotion.Scroller { return s.scroll }

func (s *Scene) Flash() *Flash { return s.flash }

// Tick advances every component in a fixed order and returns the new frame.
func (s *Scene) Tick(nowMs int64) *Frame {
	dt, elapsed := s.clock.Tick(nowMs)

	f := &Frame{
		Width:      s.opts.Width,
		Height:     s.opts.Height,
		DeltaSec:   dt,
		ElapsedSec: elapsed,
	}

	f.Stars = s.stars.Advance(dt)

	s.band.Advance(dt)
	f.Band = s.band.Rows(s.opts.Width, elapsed)

	s.hyper.Advance(dt)
	f.Hyper = s.hyper.Project(s.opts.Width, s.opts.Height, elapsed)

	s.scroll.Advance(dt)
	f.Scroll = s.scroll.Layout(elapsed)
	f.Title = s.title.Layout(elapsed)

	f.Flash, f.FlashStarted = s.flash.Update(nowMs, s.rng)
	return f
}

package textmotion

import (
	"math"

	"github.com/iburimskiy/hyperdemo/internal/config"
	"github.com/iburimskiy/hyperdemo/internal/palette"
)

// Metrics measures text for the active font. size is the text scale factor.
type Metrics interface {
	Width(text string, size float64) int
	LineHeight(size float64) int
}

// Rect is an axis aligned pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// ScrollLayout describes where the looping message is drawn this frame.
type ScrollLayout struct {
	Text  string
	Xs    []int
	Y     int
	Size  float64
	Color palette.RGB565
	Clip  Rect
}

// Scroller moves a message right to left, repeating it to cover the viewport.
type Scroller struct {
	text       string
	width      int
	lineHeight int
	viewportW  int
	viewportH  int
	baseY      int
	pos        float64
}

// NewScroller measures text once and parks it just off the right edge.
func NewScroller(text string, m Metrics, viewportW, viewportH int) *Scroller {
	return &Scroller{
		text:       text,
		width:      m.Width(text, config.ScrollTextSize),
		lineHeight: m.LineHeight(config.ScrollTextSize),
		viewportW:  viewportW,
		viewportH:  viewportH,
		baseY:      viewportH - config.ScrollBaseOffset,
		pos:        float64(viewportW),
	}
}

func (s *Scroller) Width() int { return s.width }

func (s *Scroller) Position() float64 { return s.pos }

func (s *Scroller) SetPosition(p float64) { s.pos = p }

// Advance scrolls left and reports whether the message wrapped.
func (s *Scroller) Advance(dt float64) bool {
	s.pos -= dt * config.ScrollSpeed
	if s.width <= 0 {
		return false
	}
	wrapped := false
	for s.pos <= -float64(s.width) {
		s.pos += float64(s.width)
		wrapped = true
	}
	return wrapped
}

// Layout tiles the message from the current position and applies the
// vertical bob and the brightness pulse.
func (s *Scroller) Layout(elapsed float64) ScrollLayout {
	var xs []int
	x := int(s.pos)
	if s.width <= 0 {
		xs = append(xs, x)
	} else {
		for ; x < s.viewportW; x += s.width {
			xs = append(xs, x)
		}
	}

	level := int(180 + 75*math.Sin(elapsed*2))
	clipY := s.baseY - s.lineHeight/2 - 10
	return ScrollLayout{
		Text:  s.text,
		Xs:    xs,
		Y:     s.baseY + int(config.ScrollBobPixels*math.Sin(elapsed*5)),
		Size:  config.ScrollTextSize,
		Color: palette.Gray(level),
		Clip:  Rect{X: 0, Y: clipY, W: s.viewportW, H: s.viewportH - clipY},
	}
}

// TitleLayout is the pulsing, centered title for one frame.
type TitleLayout struct {
	Text  string
	X, Y  int
	Size  float64
	Color palette.RGB565
}

// Title keeps a string centered while it breathes in size and bobs.
type Title struct {
	text      string
	metrics   Metrics
	viewportW int
}

func NewTitle(text string, m Metrics, viewportW int) *Title {
	return &Title{text: text, metrics: m, viewportW: viewportW}
}

func (t *Title) Layout(elapsed float64) TitleLayout {
	scale := 1 + 0.1*math.Sin(elapsed*3)
	size := config.TitleTextSize * scale
	w := t.metrics.Width(t.text, size)
	return TitleLayout{
		Text:  t.text,
		X:     t.viewportW/2 - w/2,
		Y:     config.TitleTop + int(3*math.Cos(elapsed*4)),
		Size:  size,
		Color: palette.Magenta,
	}
}

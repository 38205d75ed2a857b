package scene

import (
	"github.com/iburimskiy/hyperdemo/internal/band"
	"github.com/iburimskiy/hyperdemo/internal/hyper"
	"github.com/iburimskiy/hyperdemo/internal/palette"
	"github.com/iburimskiy/hyperdemo/internal/starfield"
	"github.com/iburimskiy/hyperdemo/internal/textmotion"
)

// Painter is the drawing backend a Frame is replayed onto.
type Painter interface {
	Clear(c palette.RGB565)
	Pixel(x, y int, c palette.RGB565)
	FillRect(x, y, w, h int, c palette.RGB565)
	HLine(x, y, w int, c palette.RGB565)
	Line(x0, y0, x1, y1 float64, c palette.RGB565)
	FillCircle(x, y, r int, c palette.RGB565)
	Circle(x, y, r int, c palette.RGB565)
	Text(s string, x, y int, size float64, c palette.RGB565)
	SetClip(r textmotion.Rect)
	ClearClip()
}

// Frame is the complete description of one tick. It is never mutated after
// Scene.Tick returns it.
type Frame struct {
	Width, Height int
	DeltaSec      float64
	ElapsedSec    float64

	Stars  []starfield.Sprite
	Band   []band.Row
	Hyper  hyper.Frame
	Scroll textmotion.ScrollLayout
	Title  textmotion.TitleLayout

	Flash        FlashState
	FlashStarted bool
}

// Paint replays the frame back to front: background, stars, band, object,
// scroller, title, flash.
func (f *Frame) Paint(p Painter) {
	p.Clear(palette.Black)

	for _, s := range f.Stars {
		if s.Size > 1 {
			p.FillRect(s.X-s.Size/2, s.Y-s.Size/2, s.Size, s.Size, s.Color)
		} else {
			p.Pixel(s.X, s.Y, s.Color)
		}
	}

	for _, r := range f.Band {
		p.HLine(r.X, r.Y, r.Width, r.Color)
	}

	for _, s := range f.Hyper.Segments {
		p.Line(s.X0, s.Y0, s.X1, s.Y1, f.Hyper.Color)
	}
	for _, m := range f.Hyper.Markers {
		p.FillCircle(m.Center.X, m.Center.Y, m.DotRadius, f.Hyper.Color)
		p.Circle(m.Center.X, m.Center.Y, m.GlowRadius, f.Hyper.Glow)
	}

	clip := f.Scroll.Clip
	p.SetClip(clip)
	p.FillRect(clip.X, clip.Y, clip.W, clip.H, palette.Black)
	for _, x := range f.Scroll.Xs {
		p.Text(f.Scroll.Text, x, f.Scroll.Y, f.Scroll.Size, f.Scroll.Color)
	}
	p.ClearClip()

	p.Text(f.Title.Text, f.Title.X, f.Title.Y, f.Title.Size, f.Title.Color)

	if f.Flash == Flashing {
		p.FillRect(0, 0, f.Width, f.Height, palette.White)
	}
}

package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/hyperdemo/internal/glyph"
	"github.com/iburimskiy/hyperdemo/internal/palette"
	"github.com/iburimskiy/hyperdemo/internal/textmotion"
)

// painter replays frames onto an ebiten image. Clipping is done by drawing
// into a sub-image, which shares the screen's coordinate space.
type painter struct {
	screen *ebiten.Image
	dst    *ebiten.Image
	face   *glyph.Face
}

func newPainter(face *glyph.Face) *painter {
	return &painter{face: face}
}

func (p *painter) reset(screen *ebiten.Image) {
	p.screen = screen
	p.dst = screen
}

func (p *painter) Clear(c palette.RGB565) {
	p.screen.Fill(c)
}

func (p *painter) Pixel(x, y int, c palette.RGB565) {
	vector.DrawFilledRect(p.dst, float32(x), float32(y), 1, 1, c, false)
}

func (p *painter) FillRect(x, y, w, h int, c palette.RGB565) {
	vector.DrawFilledRect(p.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (p *painter) HLine(x, y, w int, c palette.RGB565) {
	vector.DrawFilledRect(p.dst, float32(x), float32(y), float32(w), 1, c, false)
}

// Line centers the stroke on the pixel grid so one pixel wide lines stay crisp.
func (p *painter) Line(x0, y0, x1, y1 float64, c palette.RGB565) {
	vector.StrokeLine(p.dst, float32(x0)+0.5, float32(y0)+0.5, float32(x1)+0.5, float32(y1)+0.5, 1, c, false)
}

func (p *painter) FillCircle(x, y, r int, c palette.RGB565) {
	vector.DrawFilledCircle(p.dst, float32(x)+0.5, float32(y)+0.5, float32(r), c, true)
}

func (p *painter) Circle(x, y, r int, c palette.RGB565) {
	vector.StrokeCircle(p.dst, float32(x)+0.5, float32(y)+0.5, float32(r), 1, c, true)
}

// Text draws with (x, y) as the top-left corner, scaled by size.
func (p *painter) Text(s string, x, y int, size float64, c palette.RGB565) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(float64(x), float64(y)+float64(p.face.Ascent())*size)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(p.dst, s, p.face.Font(), op)
}

func (p *painter) SetClip(r textmotion.Rect) {
	p.dst = p.screen.SubImage(image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)).(*ebiten.Image)
}

func (p *painter) ClearClip() {
	p.dst = p.screen
}

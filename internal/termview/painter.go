// Package termview paints scene frames onto a terminal. The logical viewport
// is stretched over the whole screen, so one cell covers several pixels.
package termview

import (
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/hyperdemo/internal/palette"
	"github.com/iburimskiy/hyperdemo/internal/textmotion"
)

const (
	starRune   = '.'
	brightRune = '*'
	lineRune   = '#'
	dotRune    = 'o'
	glowRune   = '+'
)

// Painter implements scene.Painter on a tcell screen.
type Painter struct {
	screen     tcell.Screen
	vw, vh     int
	cols, rows int
	clip       *textmotion.Rect
}

func NewPainter(s tcell.Screen, viewportW, viewportH int) *Painter {
	p := &Painter{screen: s, vw: viewportW, vh: viewportH}
	p.Resize()
	return p
}

// Resize picks up the current terminal size.
func (p *Painter) Resize() {
	p.cols, p.rows = p.screen.Size()
}

// Metrics reports text sizes in logical pixels: one glyph per cell, no scaling.
func (p *Painter) Metrics() Metrics {
	return Metrics{
		CellW: float64(p.vw) / float64(max(p.cols, 1)),
		CellH: float64(p.vh) / float64(max(p.rows, 1)),
	}
}

// Width and LineHeight measure with the current cell size, so layouts that
// re-measure every frame follow a resize.
func (p *Painter) Width(text string, size float64) int {
	return p.Metrics().Width(text, size)
}

func (p *Painter) LineHeight(size float64) int {
	return p.Metrics().LineHeight(size)
}

// Cell maps a logical pixel to its terminal cell.
func (p *Painter) Cell(x, y int) (int, int) {
	return floorDiv(x*p.cols, p.vw), floorDiv(y*p.rows, p.vh)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func rgb(c palette.RGB565) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (p *Painter) visible(x, y int) bool {
	if x < 0 || y < 0 || x >= p.vw || y >= p.vh {
		return false
	}
	if c := p.clip; c != nil {
		return x >= c.X && x < c.X+c.W && y >= c.Y && y < c.Y+c.H
	}
	return true
}

// plot draws a glyph over whatever background the cell already has.
func (p *Painter) plot(x, y int, r rune, c palette.RGB565) {
	if !p.visible(x, y) {
		return
	}
	cx, cy := p.Cell(x, y)
	p.plotCell(cx, cy, r, c)
}

func (p *Painter) plotCell(cx, cy int, r rune, c palette.RGB565) {
	_, _, style, _ := p.screen.GetContent(cx, cy)
	p.screen.SetContent(cx, cy, r, nil, style.Foreground(rgb(c)))
}

func (p *Painter) Clear(c palette.RGB565) {
	p.screen.Fill(' ', tcell.StyleDefault.Background(rgb(c)))
}

func (p *Painter) Pixel(x, y int, c palette.RGB565) {
	p.plot(x, y, starRune, c)
}

// FillRect paints cell backgrounds. A rectangle narrower than a cell still
// claims the cell it starts in.
func (p *Painter) FillRect(x, y, w, h int, c palette.RGB565) {
	x0, y0, x1, y1 := x, y, x+w, y+h
	if cl := p.clip; cl != nil {
		x0, y0 = max(x0, cl.X), max(y0, cl.Y)
		x1, y1 = min(x1, cl.X+cl.W), min(y1, cl.Y+cl.H)
	}
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, p.vw), min(y1, p.vh)
	if x1 <= x0 || y1 <= y0 {
		return
	}

	if w <= 3 && h <= 3 {
		// Star sized squares read better as a bright glyph than a block.
		p.plot(x0, y0, brightRune, c)
		return
	}

	cx0, cy0 := p.Cell(x0, y0)
	cx1, cy1 := p.Cell(x1-1, y1-1)
	style := tcell.StyleDefault.Background(rgb(c))
	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			p.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

func (p *Painter) HLine(x, y, w int, c palette.RGB565) {
	if w <= 0 || y < 0 || y >= p.vh {
		return
	}
	x0, x1 := max(x, 0), min(x+w, p.vw)
	if cl := p.clip; cl != nil {
		if y < cl.Y || y >= cl.Y+cl.H {
			return
		}
		x0, x1 = max(x0, cl.X), min(x1, cl.X+cl.W)
	}
	if x1 <= x0 {
		return
	}
	cx0, cy := p.Cell(x0, y)
	cx1, _ := p.Cell(x1-1, y)
	style := tcell.StyleDefault.Background(rgb(c))
	for cx := cx0; cx <= cx1; cx++ {
		p.screen.SetContent(cx, cy, ' ', nil, style)
	}
}

// Line walks the segment with Bresenham in logical pixels.
func (p *Painter) Line(fx0, fy0, fx1, fy1 float64, c palette.RGB565) {
	x0, y0 := int(math.Round(fx0)), int(math.Round(fy0))
	x1, y1 := int(math.Round(fx1)), int(math.Round(fy1))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		p.plot(x0, y0, lineRune, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (p *Painter) FillCircle(x, y, r int, c palette.RGB565) {
	p.plot(x, y, dotRune, c)
}

// Circle marks the four compass points that fall outside the center cell.
func (p *Painter) Circle(x, y, r int, c palette.RGB565) {
	cx, cy := p.Cell(x, y)
	for _, d := range [4][2]int{{r, 0}, {-r, 0}, {0, r}, {0, -r}} {
		px, py := x+d[0], y+d[1]
		if qx, qy := p.Cell(px, py); qx == cx && qy == cy {
			continue
		}
		p.plot(px, py, glowRune, c)
	}
}

// Text writes one rune per cell starting at the cell holding (x, y). size is
// ignored; terminals cannot scale glyphs.
func (p *Painter) Text(s string, x, y int, size float64, c palette.RGB565) {
	if y < 0 || y >= p.vh {
		return
	}
	cx, cy := p.Cell(x, y)
	if cl := p.clip; cl != nil {
		_, top := p.Cell(0, cl.Y)
		_, bottom := p.Cell(0, cl.Y+cl.H-1)
		if cy < top || cy > bottom {
			return
		}
	}
	for _, r := range s {
		if cx >= 0 && cx < p.cols {
			p.plotCell(cx, cy, r, c)
		}
		cx++
	}
}

func (p *Painter) SetClip(r textmotion.Rect) { p.clip = &r }

func (p *Painter) ClearClip() { p.clip = nil }

// Metrics measures text for a terminal: every rune takes one cell.
type Metrics struct {
	CellW, CellH float64
}

func (m Metrics) Width(text string, size float64) int {
	return int(float64(utf8.RuneCountInString(text)) * m.CellW)
}

func (m Metrics) LineHeight(size float64) int {
	return int(m.CellH)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package band

import (
	"math"

	"github.com/iburimskiy/hyperdemo/internal/config"
	"github.com/iburimskiy/hyperdemo/internal/palette"
)

// Row is one horizontal run of the band.
type Row struct {
	Y     int
	X     int
	Width int
	Color palette.RGB565
}

// Shader draws a strip of raster bars whose color and horizontal wobble are
// driven by elapsed time.
type Shader struct {
	Top    int
	Height int
	phase  float64 // degrees
}

// New places the band around the vertical middle of a viewport of the given height.
func New(viewportHeight int) *Shader {
	return &Shader{
		Top:    viewportHeight/2 - config.BandTopFromMid,
		Height: config.BandHeight,
	}
}

func (s *Shader) Phase() float64 { return s.phase }

// Advance moves the wave phase forward.
func (s *Shader) Advance(dt float64) {
	s.phase += dt * config.BandPhaseSpeed
}

// Rows computes every visible row for a viewport width at the elapsed time.
func (s *Shader) Rows(width int, elapsed float64) []Row {
	rows := make([]Row, 0, s.Height)
	amplitude := config.BandWaveSpan * math.Sin(elapsed*3)
	phase := s.phase * math.Pi / 180
	half := width / 2

	for y := 0; y < s.Height; y++ {
		ratio := float64(y) / float64(s.Height)
		hue := math.Mod(elapsed*config.BandHueSpeed+float64(y), 360)
		bright := 0.3 + 0.2*math.Sin(elapsed*5+ratio*10)*math.Cos(elapsed*2.5+ratio*5)
		color := palette.HSV(hue, 0.8, palette.Clamp(bright, 0.1, 0.5))

		xOff := int(amplitude * math.Sin(phase+ratio*4*math.Pi))
		start := palette.ClampInt(xOff-half, 0, width)
		end := palette.ClampInt(xOff+half+width, 0, width)
		if end <= start {
			continue
		}
		rows = append(rows, Row{Y: s.Top + y, X: start, Width: end - start, Color: color})
	}
	return rows
}

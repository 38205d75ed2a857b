package hyper

import "math"

// Point is a screen position in pixels.
type Point struct{ X, Y int }

// Segment is a line to draw. Coordinates stay fractional so a backend can
// decide how to snap offset strokes.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Stroke turns a projected edge into the segments that draw it.
type Stroke interface {
	Segments(a, b Point) []Segment
}

// Hairline draws each edge once.
type Hairline struct{}

func (Hairline) Segments(a, b Point) []Segment {
	return []Segment{lineOf(a, b)}
}

// Offset fakes a two pixel stroke by repeating the edge shifted one unit
// along its normal. Degenerate edges get no duplicate.
type Offset struct{}

func (Offset) Segments(a, b Point) []Segment {
	segs := []Segment{lineOf(a, b)}
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	l := math.Hypot(dx, dy)
	if l > 0 {
		nx, ny := -dy/l, dx/l
		segs = append(segs, Segment{
			X0: float64(a.X) + nx, Y0: float64(a.Y) + ny,
			X1: float64(b.X) + nx, Y1: float64(b.Y) + ny,
		})
	}
	return segs
}

func lineOf(a, b Point) Segment {
	return Segment{X0: float64(a.X), Y0: float64(a.Y), X1: float64(b.X), Y1: float64(b.Y)}
}

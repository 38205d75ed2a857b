package hyper

import (
	"math"

	"github.com/iburimskiy/hyperdemo/internal/config"
	"github.com/iburimskiy/hyperdemo/internal/palette"
)

// Angles holds one rotation per plane, in degrees.
type Angles struct {
	YZ, XY, ZW, XW float64
}

var (
	// Rates are the angular speeds in degrees per second.
	Rates = Angles{YZ: 30, XY: 40, ZW: 50, XW: 60}
	// StartAngles tilt the XW plane so the first frame is not a flat cube.
	StartAngles = Angles{XW: 15}
)

const (
	dotRadius  = 2
	glowRadius = 3
)

// Projected is a vertex after both perspective divisions.
type Projected struct {
	Screen Point
	View   Vec3
}

// Marker highlights a vertex: a solid dot plus a larger glow ring.
type Marker struct {
	Center     Point
	DotRadius  int
	GlowRadius int
}

// Frame is everything needed to draw the object for one tick.
type Frame struct {
	Vertices [VertexCount]Projected
	Segments []Segment
	Markers  []Marker
	Color    palette.RGB565
	Glow     palette.RGB565
}

// Engine rotates the 4-cube and projects it to the screen.
type Engine struct {
	angles Angles
	stroke Stroke
}

func New() *Engine {
	return &Engine{angles: StartAngles, stroke: Offset{}}
}

func (e *Engine) Angles() Angles { return e.angles }

func (e *Engine) SetAngles(a Angles) { e.angles = a }

// SetStroke swaps the edge drawing strategy. A nil stroke restores Offset.
func (e *Engine) SetStroke(s Stroke) {
	if s == nil {
		s = Offset{}
	}
	e.stroke = s
}

// Advance turns every plane by its own rate.
func (e *Engine) Advance(dt float64) {
	e.angles.YZ += Rates.YZ * dt
	e.angles.XY += Rates.XY * dt
	e.angles.ZW += Rates.ZW * dt
	e.angles.XW += Rates.XW * dt
}

func rotate(a, b, deg float64) (float64, float64) {
	s, c := math.Sincos(deg * math.Pi / 180)
	return c*a - s*b, s*a + c*b
}

// Rotate applies the plane rotations in the fixed order YZ, XY, ZW, XW. Each
// step consumes the coordinates produced by the previous one.
func Rotate(v Vec4, a Angles) Vec4 {
	x, y, z, w := v.X, v.Y, v.Z, v.W
	y, z = rotate(y, z, a.YZ)
	x, y = rotate(x, y, a.XY)
	z, w = rotate(z, w, a.ZW)
	x, w = rotate(x, w, a.XW)
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// ProjectVertex runs the 4D to 3D and 3D to 2D perspective divisions for a
// rotated vertex. scale is the cube size in pixels.
func ProjectVertex(r Vec4, cx, cy int, scale float64) Projected {
	f4 := config.HyperDistance4D / (config.HyperDistance4D - r.W)
	v := Vec3{X: r.X * f4 * scale, Y: r.Y * f4 * scale, Z: r.Z * f4 * scale}
	f3 := config.HyperDistance3D / (config.HyperDistance3D + v.Z + scale)
	return Projected{
		Screen: Point{X: cx + int(v.X*f3), Y: cy + int(v.Y*f3)},
		View:   v,
	}
}

// Project lays the object out for a width x height viewport at the given
// elapsed time, which drives the color cycle.
func (e *Engine) Project(width, height int, elapsed float64) Frame {
	scale := float64(height) / 4
	cx, cy := width/2, height/2

	var fr Frame
	for i, v := range Vertices {
		fr.Vertices[i] = ProjectVertex(Rotate(v, e.angles), cx, cy, scale)
	}

	hue := math.Mod(elapsed*config.HyperHueSpeed, 360)
	fr.Color = palette.HSV(hue, 1, 1)
	fr.Glow = palette.HSV(hue, 0.5, 0.7)

	fr.Segments = make([]Segment, 0, EdgeCount*2)
	for _, ed := range Edges {
		a := fr.Vertices[ed[0]].Screen
		b := fr.Vertices[ed[1]].Screen
		fr.Segments = append(fr.Segments, e.stroke.Segments(a, b)...)
	}

	fr.Markers = make([]Marker, VertexCount)
	for i, p := range fr.Vertices {
		fr.Markers[i] = Marker{Center: p.Screen, DotRadius: dotRadius, GlowRadius: glowRadius}
	}
	return fr
}

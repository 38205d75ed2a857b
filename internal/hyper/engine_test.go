package hyper

import (
	"math"
	"math/bits"
	"testing"

	"github.com/iburimskiy/hyperdemo/internal/palette"
)

func TestTopology(t *testing.T) {
	degree := make([]int, VertexCount)
	seen := map[Edge]bool{}

	for _, e := range Edges {
		a, b := e[0], e[1]
		if bits.OnesCount(uint(a^b)) != 1 {
			t.Errorf("edge %v joins vertices differing in more than one coordinate", e)
		}
		key := e
		if a > b {
			key = Edge{b, a}
		}
		if seen[key] {
			t.Errorf("duplicate edge %v", e)
		}
		seen[key] = true
		degree[a]++
		degree[b]++
	}

	for i, d := range degree {
		if d != 4 {
			t.Errorf("vertex %d has degree %d, want 4", i, d)
		}
	}
}

func TestVerticesAreUnitCube(t *testing.T) {
	for i, v := range Vertices {
		for _, c := range []float64{v.X, v.Y, v.Z, v.W} {
			if c != 0.5 && c != -0.5 {
				t.Errorf("vertex %d = %+v, want coordinates of +-0.5", i, v)
			}
		}
	}
	if Vertices[1].X != 0.5 || Vertices[1].Y != -0.5 {
		t.Errorf("vertex 1 = %+v, want +X", Vertices[1])
	}
	if Vertices[8].W != 0.5 || Vertices[7].W != -0.5 {
		t.Errorf("W split wrong: v7=%+v v8=%+v", Vertices[7], Vertices[8])
	}
}

func TestProjectAtRest(t *testing.T) {
	e := New()
	e.SetAngles(Angles{})
	fr := e.Project(240, 280, 0)

	tests := []struct {
		vertex int
		want   Point
	}{
		{0, Point{94, 114}},  // back cell, far corner
		{7, Point{143, 163}}, // back cell, near corner
		{8, Point{79, 99}},   // front cell, far corner
		{15, Point{154, 174}},
	}

	for _, tt := range tests {
		if got := fr.Vertices[tt.vertex].Screen; got != tt.want {
			t.Errorf("vertex %d at %v, want %v", tt.vertex, got, tt.want)
		}
	}

	// The front cell (w = +0.5) is magnified by 2.5/2, the back by 2.5/3.
	front := fr.Vertices[15].View.X
	back := fr.Vertices[7].View.X
	if math.Abs(front-43.75) > 1e-9 || math.Abs(back-70.0/2*2.5/3) > 1e-9 {
		t.Errorf("view x front=%v back=%v", front, back)
	}

	if fr.Color != palette.HSV(0, 1, 1) {
		t.Errorf("color = %#04x, want red", fr.Color)
	}
	if fr.Glow != palette.HSV(0, 0.5, 0.7) {
		t.Errorf("glow = %#04x, want dim red", fr.Glow)
	}
}

func TestProjectOutput(t *testing.T) {
	e := New()
	fr := e.Project(240, 280, 1)

	if len(fr.Markers) != VertexCount {
		t.Errorf("got %d markers, want %d", len(fr.Markers), VertexCount)
	}
	for i, m := range fr.Markers {
		if m.Center != fr.Vertices[i].Screen || m.DotRadius != 2 || m.GlowRadius != 3 {
			t.Errorf("marker %d = %+v", i, m)
		}
	}
	// Every edge of a rotated cube has non-zero length, so each gets a duplicate.
	if len(fr.Segments) != EdgeCount*2 {
		t.Errorf("got %d segments, want %d", len(fr.Segments), EdgeCount*2)
	}
	if fr.Color != palette.HSV(50, 1, 1) {
		t.Errorf("color at 1s = %#04x, want hue 50", fr.Color)
	}

	e.SetStroke(Hairline{})
	if got := len(e.Project(240, 280, 1).Segments); got != EdgeCount {
		t.Errorf("hairline segments = %d, want %d", got, EdgeCount)
	}
}

func TestAdvance(t *testing.T) {
	e := New()
	e.Advance(0.5)
	want := Angles{YZ: 15, XY: 20, ZW: 25, XW: 45}
	if got := e.Angles(); got != want {
		t.Errorf("Angles() = %+v, want %+v", got, want)
	}
}

func TestRotatePreservesLength(t *testing.T) {
	angles := []Angles{
		{YZ: 10, XY: 20, ZW: 30, XW: 40},
		{YZ: 123, XY: -45, ZW: 270, XW: 15},
		{XW: 90},
	}
	for _, a := range angles {
		for _, v := range Vertices {
			r := Rotate(v, a)
			got := r.X*r.X + r.Y*r.Y + r.Z*r.Z + r.W*r.W
			if math.Abs(got-1) > 1e-12 {
				t.Errorf("|Rotate(%+v, %+v)|^2 = %v, want 1", v, a, got)
			}
		}
	}
}

func TestRotateOrder(t *testing.T) {
	// A quarter turn in YZ moves +Y onto +Z; the following ZW quarter turn
	// must see that Z and carry it into W.
	r := Rotate(Vec4{Y: 1}, Angles{YZ: 90, ZW: 90})
	if math.Abs(r.W-1) > 1e-12 || math.Abs(r.Y) > 1e-12 || math.Abs(r.Z) > 1e-12 {
		t.Errorf("Rotate = %+v, want +W", r)
	}

	// Applied on its own, ZW leaves a pure Y vector alone.
	r = Rotate(Vec4{Y: 1}, Angles{ZW: 90})
	if math.Abs(r.Y-1) > 1e-12 {
		t.Errorf("Rotate = %+v, want +Y", r)
	}
}

func TestOffsetStroke(t *testing.T) {
	segs := Offset{}.Segments(Point{0, 0}, Point{10, 0})
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	want := Segment{X0: 0, Y0: 1, X1: 10, Y1: 1}
	if segs[1] != want {
		t.Errorf("offset segment = %+v, want %+v", segs[1], want)
	}

	if got := (Offset{}).Segments(Point{5, 5}, Point{5, 5}); len(got) != 1 {
		t.Errorf("degenerate edge produced %d segments, want 1", len(got))
	}
}

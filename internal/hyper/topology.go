package hyper

// Vec4 is a point in object space.
type Vec4 struct{ X, Y, Z, W float64 }

// Vec3 is a point after the 4D perspective division, in pixels.
type Vec3 struct{ X, Y, Z float64 }

// Edge joins two vertex indices.
type Edge [2]int

const (
	VertexCount = 16
	EdgeCount   = 32
)

// Vertices are the corners of a unit 4-cube centered at the origin. Bit 0 of
// the index selects the sign of X, bit 1 Y, bit 2 Z and bit 3 W.
var Vertices = func() [VertexCount]Vec4 {
	var vs [VertexCount]Vec4
	sign := func(i, bit int) float64 {
		if i&(1<<bit) != 0 {
			return 0.5
		}
		return -0.5
	}
	for i := range vs {
		vs[i] = Vec4{X: sign(i, 0), Y: sign(i, 1), Z: sign(i, 2), W: sign(i, 3)}
	}
	return vs
}()

// Edges lists the inner cube, the outer cube, then the struts joining them.
var Edges = [EdgeCount]Edge{
	{0, 1}, {1, 3}, {3, 2}, {2, 0}, {4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, {8, 9}, {9, 11}, {11, 10}, {10, 8},
	{12, 13}, {13, 15}, {15, 14}, {14, 12}, {8, 12}, {9, 13}, {10, 14}, {11, 15},
	{0, 8}, {1, 9}, {2, 10}, {3, 11}, {4, 12}, {5, 13}, {6, 14}, {7, 15},
}

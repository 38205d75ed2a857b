package starfield

import (
	"math/rand/v2"
	"testing"

	"github.com/iburimskiy/hyperdemo/internal/palette"
)

type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

func TestPoolInvariantOverManyTicks(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	f := New(240, 280, 600, rng)

	for tick := 0; tick < 600; tick++ {
		f.Advance(1.0 / 60)
		if f.Len() != 600 {
			t.Fatalf("tick %d: pool size = %d, want 600", tick, f.Len())
		}
		for i, s := range f.Stars() {
			if s.Z <= 0.1 {
				t.Fatalf("tick %d: star %d has z = %v", tick, i, s.Z)
			}
		}
	}
}

func TestRespawnRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	f := New(240, 280, 600, rng)

	for i, s := range f.Stars() {
		if s.X < -144 || s.X > 144 {
			t.Errorf("star %d x = %v out of range", i, s.X)
		}
		if s.Y < -168 || s.Y > 168 {
			t.Errorf("star %d y = %v out of range", i, s.Y)
		}
		if s.Z < 1 || s.Z > 240 {
			t.Errorf("star %d z = %v out of range", i, s.Z)
		}
		_, sat, val := palette.ToHSV(s.Color)
		if sat > 0.25 {
			t.Errorf("star %d saturation = %v, want near white", i, sat)
		}
		if val < 0.65 {
			t.Errorf("star %d value = %v, want bright", i, val)
		}
	}
}

func TestAdvanceProjectsCenteredStar(t *testing.T) {
	f := New(240, 280, 1, constRand(0.5))
	// x and y land on the axis, z halfway into the field.
	s := f.Stars()[0]
	if s.X != 0 || s.Y != 0 || s.Z != 120.5 {
		t.Fatalf("star = %+v, want (0, 0, 120.5)", s)
	}

	sprites := f.Advance(1.0 / 60)
	if len(sprites) != 1 {
		t.Fatalf("got %d sprites, want 1", len(sprites))
	}
	sp := sprites[0]
	if sp.X != 120 || sp.Y != 140 {
		t.Errorf("sprite at (%d,%d), want (120,140)", sp.X, sp.Y)
	}
	if sp.Size != 1 {
		t.Errorf("size = %d, want 1", sp.Size)
	}
	want := s.Color.Scale(1 - f.Stars()[0].Z/360)
	if sp.Color != want {
		t.Errorf("color = %#04x, want %#04x", sp.Color, want)
	}
}

func TestNearStarRespawnsAtFarPlane(t *testing.T) {
	f := New(240, 280, 1, constRand(0.5))
	f.stars[0].Z = 1.0

	f.Advance(1.0 / 60)
	if got := f.stars[0].Z; got != 240 {
		t.Errorf("z after crossing near clip = %v, want 240", got)
	}
}

func TestNearStarsAreLarger(t *testing.T) {
	f := New(240, 280, 1, constRand(0.5))
	f.stars[0].Z = 10

	sprites := f.Advance(0.001)
	if len(sprites) != 1 {
		t.Fatalf("got %d sprites, want 1", len(sprites))
	}
	if sprites[0].Size != 2 {
		t.Errorf("size = %d, want 2", sprites[0].Size)
	}

	f.stars[0].Z = 0.5
	sprites = f.Advance(0.001)
	if sprites[0].Size != 2 {
		t.Errorf("size = %d, want 2", sprites[0].Size)
	}
}

func TestOffscreenStarIsCulledNotRespawned(t *testing.T) {
	f := New(240, 280, 1, constRand(0.5))
	f.stars[0].X = 10000
	f.stars[0].Z = 100

	sprites := f.Advance(1.0 / 60)
	if len(sprites) != 0 {
		t.Errorf("got %d sprites, want off-screen star culled", len(sprites))
	}
	if f.stars[0].X != 10000 {
		t.Errorf("off-screen star was respawned: %+v", f.stars[0])
	}
}

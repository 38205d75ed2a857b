package starfield

import (
	"github.com/iburimskiy/hyperdemo/internal/config"
	"github.com/iburimskiy/hyperdemo/internal/palette"
)

// Rand is the random source stars are spawned from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// Star is a particle in view space. Z is the depth in front of the viewer.
type Star struct {
	X, Y, Z float64
	Color   palette.RGB565
}

// Sprite is a star projected onto the viewport.
type Sprite struct {
	X, Y  int
	Size  int
	Color palette.RGB565
}

// Field owns a fixed pool of stars flying toward the viewer.
type Field struct {
	stars  []Star
	width  int
	height int
	rng    Rand
}

// New fills a pool of n stars for a width x height viewport.
func New(width, height, n int, rng Rand) *Field {
	f := &Field{
		stars:  make([]Star, n),
		width:  width,
		height: height,
		rng:    rng,
	}
	for i := range f.stars {
		f.respawn(&f.stars[i])
	}
	return f
}

func (f *Field) Len() int { return len(f.stars) }

// Stars returns the pool. Callers must not modify it.
func (f *Field) Stars() []Star { return f.stars }

func (f *Field) uniform(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}

func (f *Field) respawn(s *Star) {
	spreadX := float64(f.width) * config.StarSpreadFactor
	spreadY := float64(f.height) * config.StarSpreadFactor
	s.X = f.uniform(-spreadX, spreadX)
	s.Y = f.uniform(-spreadY, spreadY)
	s.Z = f.uniform(1, float64(f.width))

	// Mostly white, bright stars.
	hue := f.uniform(0, 360)
	sat := f.uniform(0, 0.2)
	val := f.uniform(0.7, 1.0)
	s.Color = palette.HSV(hue, sat, val)
}

// Advance moves every star toward the viewer and returns the ones that land
// inside the viewport. Stars crossing the near clip are respawned at the far
// plane; stars that drift off screen keep flying and are simply not drawn.
func (f *Field) Advance(dt float64) []Sprite {
	speed := dt * config.StarSpeed
	cx := f.width / 2
	cy := f.height / 2
	far := float64(f.width)

	sprites := make([]Sprite, 0, len(f.stars))
	for i := range f.stars {
		s := &f.stars[i]
		s.Z -= speed
		if s.Z <= config.StarNearClip {
			f.respawn(s)
			s.Z = far
		}

		invZ := 1 / s.Z
		sx := cx + int(s.X*invZ*float64(cx)*config.StarPerspective)
		sy := cy + int(s.Y*invZ*float64(cy)*config.StarPerspective)
		if sx < 0 || sx >= f.width || sy < 0 || sy >= f.height {
			continue
		}

		size := palette.Clamp(2.5-s.Z/(far/4), 1, 3)
		bright := palette.Clamp(1-s.Z/(far*1.5), 0.2, 1)
		sprites = append(sprites, Sprite{
			X:     sx,
			Y:     sy,
			Size:  int(size),
			Color: s.Color.Scale(bright),
		})
	}
	return sprites
}

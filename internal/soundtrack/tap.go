package soundtrack

import (
	"math"
	"sync"

	"github.com/faiface/beep"

	"github.com/iburimskiy/hyperdemo/internal/config"
)

// Tap wraps a beep.Streamer and records the last N samples into a ring buffer
// so the player can show how loud the soundtrack is right now.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	level     float64
	mu        sync.RWMutex
}

func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot returns up to the last n samples, oldest first.
func (t *Tap) Snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	out := make([][2]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}

// Level is a smoothed, compressed loudness in 0-1 over the recent window.
// Each call folds the newest window into the running value.
func (t *Tap) Level() float64 {
	mag := math.Pow(RMS(t.Snapshot(config.LevelWindow)), 0.3)
	t.mu.Lock()
	defer t.mu.Unlock()
	t.level = config.SmoothingFactor*t.level + (1-config.SmoothingFactor)*mag
	return t.level
}

// RMS is the root mean square of the mono mix of samples.
func RMS(samples [][2]float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	return math.Sqrt(sumSquares / float64(len(samples)))
}

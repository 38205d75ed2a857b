package clock

import "github.com/iburimskiy/hyperdemo/internal/config"

// Clock turns monotonic millisecond readings into a frame delta and the time
// elapsed since the demo started.
type Clock struct {
	start int64
	last  int64
}

func New(startMs int64) *Clock {
	return &Clock{start: startMs, last: startMs}
}

// Tick consumes the current reading. A delta that is not positive or exceeds
// config.MaxFrameDelta is replaced with the nominal 1/60 s.
func (c *Clock) Tick(nowMs int64) (deltaSec, elapsedSec float64) {
	deltaSec = ClampDelta(float64(nowMs-c.last) / 1000)
	c.last = nowMs
	elapsedSec = float64(nowMs-c.start) / 1000
	return deltaSec, elapsedSec
}

func (c *Clock) Start() int64 { return c.start }

func ClampDelta(d float64) float64 {
	if d <= 0 || d > config.MaxFrameDelta {
		return config.NominalFrameDelta
	}
	return d
}

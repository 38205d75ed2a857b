package soundtrack

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Sine is an endless sine tone at the given volume.
func Sine(sr beep.SampleRate, freq, volume float64) beep.Streamer {
	step := freq / float64(sr)
	var n int
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := volume * math.Sin(2*math.Pi*step*float64(n))
			samples[i][0] = v
			samples[i][1] = v
			n++
		}
		return len(samples), true
	})
}

// Zap is the short blip mixed in when the screen flashes.
func Zap(sr beep.SampleRate, freq float64, length time.Duration) beep.Streamer {
	return beep.Take(sr.N(length), Sine(sr, freq, 0.25))
}

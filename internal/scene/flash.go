package scene

import "github.com/iburimskiy/hyperdemo/internal/config"

type FlashState int

const (
	Idle FlashState = iota
	Flashing
)

func (s FlashState) String() string {
	if s == Flashing {
		return "flashing"
	}
	return "idle"
}

// Flash is the rare full screen white-out. It fires at random once the
// cooldown has passed and clears itself after a short, fixed time.
type Flash struct {
	state FlashState
	last  int64
}

// NewFlash starts idle with the cooldown counted from startMs.
func NewFlash(startMs int64) *Flash {
	return &Flash{last: startMs}
}

func (f *Flash) State() FlashState { return f.state }

// Update steps the state machine and reports whether a flash started on this call.
func (f *Flash) Update(nowMs int64, rng Rand) (FlashState, bool) {
	switch f.state {
	case Idle:
		if nowMs-f.last >= config.FlashCooldownMs && rng.IntN(100) < config.FlashChance {
			f.state = Flashing
			f.last = nowMs
			return f.state, true
		}
	case Flashing:
		if nowMs-f.last >= config.FlashLengthMs {
			f.state = Idle
		}
	}
	return f.state, false
}

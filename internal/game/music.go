package game

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/hyperdemo/internal/config"
	"github.com/iburimskiy/hyperdemo/internal/soundtrack"
)

// music owns the speaker: a looping soundtrack plus the flash zap.
type music struct {
	sampleRate beep.SampleRate
	streamer   beep.StreamSeekCloser
	format     beep.Format
	ctrl       *beep.Ctrl
	tap        *soundtrack.Tap
	name       string
	paused     bool
}

func newMusic(sampleRate int) (*music, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &music{sampleRate: sr}, nil
}

// load replaces the current soundtrack with the file at path and starts it looping.
func (m *music) load(path string) error {
	streamer, format, err := soundtrack.Open(path)
	if err != nil {
		return err
	}

	var s beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != m.sampleRate {
		s = beep.Resample(4, format.SampleRate, m.sampleRate, s)
	}
	tap := soundtrack.NewTap(s, config.LevelRingSize)
	ctrl := &beep.Ctrl{Streamer: tap}

	m.stop()
	m.streamer = streamer
	m.format = format
	m.tap = tap
	m.ctrl = ctrl
	m.name = filepath.Base(path)
	m.paused = false
	speaker.Play(ctrl)

	log.Printf("soundtrack %s: %d Hz, %d channels", m.name, format.SampleRate, format.NumChannels)
	return nil
}

// pick asks for a file with a native dialog. Cancelling is not an error.
func (m *music) pick() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: soundtrack.Extensions,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("select soundtrack: %w", err)
	}
	return m.load(filename)
}

func (m *music) togglePause() {
	if m.ctrl == nil {
		return
	}
	speaker.Lock()
	m.paused = !m.paused
	m.ctrl.Paused = m.paused
	speaker.Unlock()
}

func (m *music) zap() {
	speaker.Play(soundtrack.Zap(m.sampleRate, config.ZapFrequency, config.ZapLengthMs*time.Millisecond))
}

// level is the soundtrack loudness in 0-1, zero when nothing is playing.
func (m *music) level() float64 {
	if m.tap == nil || m.paused {
		return 0
	}
	return m.tap.Level()
}

func (m *music) position() time.Duration {
	if m.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := m.streamer.Position()
	speaker.Unlock()
	return m.format.SampleRate.D(pos)
}

func (m *music) stop() {
	speaker.Clear()
	if m.streamer != nil {
		_ = m.streamer.Close()
		m.streamer = nil
	}
	m.tap = nil
	m.ctrl = nil
	m.name = ""
}

func (m *music) close() {
	m.stop()
	speaker.Close()
}

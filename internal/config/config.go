package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	ViewportWidth  = 240
	ViewportHeight = 280
	WindowZoom     = 2

	// Star field
	StarCount        = 600
	StarSpeed        = 120.0
	StarNearClip     = 0.1
	StarPerspective  = 1.2
	StarSpreadFactor = 0.6

	// Hyper-object
	HyperDistance4D = 2.5
	HyperDistance3D = 400.0
	HyperHueSpeed   = 50.0

	// Band
	BandHeight     = 100
	BandPhaseSpeed = 120.0
	BandHueSpeed   = 80.0
	BandWaveSpan   = 30.0
	BandTopFromMid = 50

	// Text
	ScrollSpeed      = 220.0
	ScrollBobPixels  = 8.0
	ScrollBaseOffset = 25
	ScrollTextSize   = 2.0
	TitleTextSize    = 2.0
	TitleTop         = 10

	// Flash
	FlashCooldownMs = 5000
	FlashLengthMs   = 50
	FlashChance     = 5

	// Clock
	MaxFrameDelta     = 0.1
	NominalFrameDelta = 1.0 / 60.0

	DefaultMessage = " +++ HYPER DEMO SCENE in GO +++ 4D TESSERACT +++ EBITEN ROCKS +++ "
	DefaultTitle   = "HYPER DEMO!"

	// Audio
	LevelRingSize   = 8192
	LevelWindow     = 2048
	SmoothingFactor = 0.6
	ZapFrequency    = 880.0
	ZapLengthMs     = 60
)

// Config holds the knobs a player reads from the environment.
type Config struct {
	Width      int    `env:"HYPERDEMO_WIDTH" envDefault:"240"`
	Height     int    `env:"HYPERDEMO_HEIGHT" envDefault:"280"`
	Zoom       int    `env:"HYPERDEMO_ZOOM" envDefault:"2"`
	Seed       int64  `env:"HYPERDEMO_SEED" envDefault:"0"`
	Message    string `env:"HYPERDEMO_MESSAGE"`
	Title      string `env:"HYPERDEMO_TITLE"`
	Music      string `env:"HYPERDEMO_MUSIC"`
	Audio      bool   `env:"HYPERDEMO_AUDIO" envDefault:"true"`
	SampleRate int    `env:"HYPERDEMO_SAMPLE_RATE" envDefault:"44100"`
	FPS        int    `env:"HYPERDEMO_FPS" envDefault:"30"`
	Debug      bool   `env:"HYPERDEMO_DEBUG" envDefault:"false"`
}

// Default returns the configuration used when the environment is empty.
func Default() Config {
	return Config{
		Width:      ViewportWidth,
		Height:     ViewportHeight,
		Zoom:       WindowZoom,
		Message:    DefaultMessage,
		Title:      DefaultTitle,
		Audio:      true,
		SampleRate: 44100,
		FPS:        30,
	}
}

// Load parses the environment on top of the defaults and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Message == "" {
		cfg.Message = DefaultMessage
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	ErrViewport   = errors.New("viewport must be positive")
	ErrZoom       = errors.New("zoom must be positive")
	ErrFPS        = errors.New("fps must be positive")
	ErrSampleRate = errors.New("sample rate must be positive")
)

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrViewport, c.Width, c.Height)
	}
	if c.Zoom <= 0 {
		return fmt.Errorf("%w: %d", ErrZoom, c.Zoom)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: %d", ErrFPS, c.FPS)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrSampleRate, c.SampleRate)
	}
	return nil
}

// Package game runs the demo scene in an ebiten window.
package game

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/hyperdemo/internal/config"
	"github.com/iburimskiy/hyperdemo/internal/glyph"
	"github.com/iburimskiy/hyperdemo/internal/palette"
	"github.com/iburimskiy/hyperdemo/internal/scene"
	"github.com/iburimskiy/hyperdemo/internal/soundtrack"
)

type Game struct {
	cfg     config.Config
	scene   *scene.Scene
	painter *painter
	frame   *scene.Frame
	start   time.Time

	// audio, nil when the speaker could not be opened
	music *music

	showStatus bool
	lastErr    error
}

// New builds the scene from cfg. seed feeds the single random source.
func New(cfg config.Config, seed uint64) *Game {
	face := glyph.Default()
	opts := scene.Options{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Message:   cfg.Message,
		Title:     cfg.Title,
		StarCount: config.StarCount,
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	g := &Game{
		cfg:     cfg,
		painter: newPainter(face),
		start:   time.Now(),
	}
	g.scene = scene.New(opts, rng, face, 0)

	if cfg.Audio {
		m, err := newMusic(cfg.SampleRate)
		if err != nil {
			// Non-fatal, the demo runs silent
			log.Printf("audio disabled: %v", err)
		} else {
			g.music = m
		}
	}
	if g.music != nil && cfg.Music != "" {
		if err := g.music.load(cfg.Music); err != nil {
			g.lastErr = err
			log.Printf("soundtrack: %v", err)
		}
	}
	return g
}

func (g *Game) now() int64 {
	return time.Since(g.start).Milliseconds()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.showStatus = !g.showStatus
	}
	if g.music != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.music.togglePause()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyO) {
			if err := g.music.pick(); err != nil {
				g.lastErr = err
			}
		}
	}

	g.frame = g.scene.Tick(g.now())
	if g.frame.FlashStarted && g.music != nil {
		g.music.zap()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}
	g.painter.reset(screen)
	g.frame.Paint(g.painter)

	g.drawLevelMeter(screen)
	if g.showStatus || g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, g.status(), 2, g.cfg.Height-16)
	}
}

// drawLevelMeter runs a thin bar along the top edge, as wide as the soundtrack is loud.
func (g *Game) drawLevelMeter(screen *ebiten.Image) {
	if g.music == nil {
		return
	}
	level := g.music.level()
	if level <= 0 {
		return
	}
	hue := g.frame.ElapsedSec * config.HyperHueSpeed
	w := float32(level * float64(g.cfg.Width))
	vector.DrawFilledRect(screen, 0, 0, w, 2, palette.HSV(hue+180, 0.8, 0.9), false)
	vector.DrawFilledRect(screen, 0, 2, w, 1, color.RGBA{A: 160}, false)
}

func (g *Game) status() string {
	s := fmt.Sprintf("%.0f fps", ebiten.ActualFPS())
	if g.music != nil {
		switch {
		case g.music.name == "":
			s += " | O: open music"
		case g.music.paused:
			s += " | paused " + g.music.name
		default:
			s += " | " + g.music.name + " " + soundtrack.FormatDuration(g.music.position())
		}
	}
	if g.lastErr != nil {
		s += " | error: " + g.lastErr.Error()
	}
	return s
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Close releases the speaker.
func (g *Game) Close() {
	if g.music != nil {
		g.music.close()
	}
}

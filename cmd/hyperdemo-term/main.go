// Command hyperdemo-term plays the demo scene in a terminal.
package main

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/hyperdemo/internal/config"
	"github.com/iburimskiy/hyperdemo/internal/scene"
	"github.com/iburimskiy/hyperdemo/internal/termview"
)

const logFileName = "hyperdemo.log"

// setupLogging keeps log output off the terminal tcell owns. With debug set
// it goes to a file instead.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "hyperdemo-term: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	seed := uint64(cfg.Seed)
	if cfg.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("hyperdemo-term %dx%d, seed %d", cfg.Width, cfg.Height, seed)

	painter := termview.NewPainter(screen, cfg.Width, cfg.Height)
	opts := scene.Options{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Message:   cfg.Message,
		Title:     cfg.Title,
		StarCount: config.StarCount,
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	sc := scene.New(opts, rng, painter, 0)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	start := time.Now()
	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				painter.Resize()
				log.Printf("resized to %v", painter.Metrics())
			}
		case <-ticker.C:
			frame := sc.Tick(time.Since(start).Milliseconds())
			if frame.FlashStarted {
				log.Printf("flash at %.2fs", frame.ElapsedSec)
			}
			frame.Paint(painter)
			screen.Show()
		}
	}
}

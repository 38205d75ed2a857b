package main

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/hyperdemo/internal/config"
	"github.com/iburimskiy/hyperdemo/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	seed := uint64(cfg.Seed)
	if cfg.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("hyperdemo %dx%d, seed %d", cfg.Width, cfg.Height, seed)

	ebiten.SetWindowSize(cfg.Width*cfg.Zoom, cfg.Height*cfg.Zoom)
	ebiten.SetWindowTitle("Hyper Demo - Esc/Q: quit, Space: pause music, O: open music, F: status")

	g := game.New(cfg, seed)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("run: %v", err)
	}
}

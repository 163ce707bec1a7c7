package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/invaders/pkg/app"
	"github.com/decker502/invaders/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	seed       = flag.Int64("seed", 0, "Random seed for alien fire (0 = time based)")
	configPath = flag.String("config", "", "Path to a game config YAML file (default: embedded data/invaders.yaml)")
	mute       = flag.Bool("mute", false, "Disable sound cues")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	invaders, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Seed:       *seed,
		ConfigPath: *configPath,
		Mute:       *mute,
	})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	cfg := invaders.GameConfig()
	ebiten.SetWindowSize(int(cfg.Window.Width), int(cfg.Window.Height))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(invaders); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}

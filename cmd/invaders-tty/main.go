// invaders-tty 在终端里运行同一个游戏
//
// 用法: go run ./cmd/invaders-tty [-seed N] [-config path] [-mute] [-verbose]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/invaders/internal/tty"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/systems"
)

var (
	verbose    = flag.Bool("verbose", false, "Write logs to -logfile")
	logFile    = flag.String("logfile", "invaders-tty.log", "Log file used with -verbose")
	seed       = flag.Int64("seed", 0, "Random seed for alien fire (0 = time based)")
	configPath = flag.String("config", "", "Path to a game config YAML file (default: built-in values)")
	mute       = flag.Bool("mute", false, "Disable sound cues")
	hold       = flag.Int("hold", tty.DefaultHoldFrames, "Frames an arrow key stays held after a key event")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("invaders-tty: %v", err)
	}
}

func run() error {
	// 终端被游戏占用，日志只能写文件
	log.SetOutput(io.Discard)
	if *verbose {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	var cues game.CuePlayer = game.NopCuePlayer{}
	if !*mute {
		speakerCues, err := tty.NewSpeakerCues()
		if err != nil {
			// 没有声音也能玩
			log.Printf("[Audio] %v, falling back to terminal bell", err)
			cues = tty.NewBellCues(screen)
		} else {
			defer speakerCues.Close()
			cues = speakerCues
		}
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	session := systems.NewSession(cfg, cues, rand.New(rand.NewSource(s)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := tty.NewGame(screen, session, *hold).Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

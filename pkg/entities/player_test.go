package entities

import (
	"testing"

	"github.com/decker502/invaders/pkg/config"
)

func TestNewPlayer(t *testing.T) {
	cfg := config.DefaultGameConfig()
	p := NewPlayer(cfg)

	if p.Lives != 5 {
		t.Errorf("expected 5 lives, got %d", p.Lives)
	}
	if p.Rect.CenterX() != cfg.Window.Width/2 {
		t.Errorf("expected centered player, got centerX=%v", p.Rect.CenterX())
	}
	if p.Rect.Bottom() != cfg.Window.Height {
		t.Errorf("expected bottom on window edge, got %v", p.Rect.Bottom())
	}
}

// 玩家位置在任何帧都必须落在 [0, 窗口宽度-飞船宽度]
func TestPlayerStaysInsideField(t *testing.T) {
	cfg := config.DefaultGameConfig()
	maxX := cfg.Window.Width - cfg.Player.Width

	tests := []struct {
		name  string
		left  bool
		right bool
	}{
		{"按住左键", true, false},
		{"按住右键", false, true},
		{"同时按住", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(cfg)
			p.SetInput(tt.left, tt.right)
			for frame := 0; frame < 300; frame++ {
				p.Step()
				if p.Rect.X < 0 || p.Rect.X > maxX {
					t.Fatalf("frame %d: x=%v outside [0, %v]", frame, p.Rect.X, maxX)
				}
			}
		})
	}
}

func TestPlayerClampsOddWidths(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Player.Width = 61 // 起始位置不是速度的整数倍
	p := NewPlayer(cfg)

	p.SetInput(true, false)
	for i := 0; i < 200; i++ {
		p.Step()
	}
	if p.Rect.X != 0 {
		t.Errorf("expected x clamped to 0, got %v", p.Rect.X)
	}

	p.SetInput(false, true)
	for i := 0; i < 200; i++ {
		p.Step()
	}
	if p.Rect.Right() != cfg.Window.Width {
		t.Errorf("expected right edge at %v, got %v", cfg.Window.Width, p.Rect.Right())
	}
}

func TestPlayerResetKeepsLives(t *testing.T) {
	cfg := config.DefaultGameConfig()
	p := NewPlayer(cfg)
	p.Lives = 2
	p.Rect.X = 10

	p.Reset()

	if p.Lives != 2 {
		t.Errorf("reset must not touch lives, got %d", p.Lives)
	}
	if p.Rect.CenterX() != cfg.Window.Width/2 {
		t.Errorf("expected recentered player, got centerX=%v", p.Rect.CenterX())
	}
}

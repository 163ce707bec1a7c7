package entities

import (
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
)

func TestAlienStep(t *testing.T) {
	a := NewAlien(100, 100, 48, 40, 3)

	a.Step()
	if a.Rect.X != 103 {
		t.Errorf("expected x=103 after one step, got %v", a.Rect.X)
	}

	a.Reverse()
	if a.Direction != components.DirectionLeft {
		t.Errorf("expected direction left after reverse, got %v", a.Direction)
	}
	if a.Rect.X != 100 {
		t.Errorf("reverse should step once in the new direction, got x=%v", a.Rect.X)
	}
}

func TestAlienReset(t *testing.T) {
	a := NewAlien(64, 128, 48, 40, 1)
	a.Rect.X = 500
	a.Rect.Y = 300
	a.Direction = components.DirectionLeft

	a.Reset()

	if a.Rect.X != 64 || a.Rect.Y != 128 {
		t.Errorf("expected spawn position (64, 128), got (%v, %v)", a.Rect.X, a.Rect.Y)
	}
	if a.Direction != components.DirectionRight {
		t.Error("expected direction reset to right")
	}
}

func TestSpawnFormation(t *testing.T) {
	tests := []struct {
		name     string
		round    int
		velocity float64
	}{
		{"第一回合", 1, 1},
		{"第二回合", 2, 2},
		{"第七回合", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(config.DefaultGameConfig())
			if n := SpawnFormation(w, tt.velocity); n != 55 {
				t.Fatalf("expected 55 aliens, got %d", n)
			}

			ids := w.Aliens.IDs()
			first, _ := w.Aliens.Get(ids[0])
			last, _ := w.Aliens.Get(ids[len(ids)-1])

			if first.Rect.X != 64 || first.Rect.Y != 64 {
				t.Errorf("expected first alien at (64, 64), got (%v, %v)", first.Rect.X, first.Rect.Y)
			}
			if last.Rect.X != 64+10*64 || last.Rect.Y != 64+4*64 {
				t.Errorf("expected last alien at (704, 320), got (%v, %v)", last.Rect.X, last.Rect.Y)
			}

			w.Aliens.Each(func(_ ecs.EntityID, a *Alien) {
				if a.Velocity != tt.velocity {
					t.Errorf("expected velocity %v, got %v", tt.velocity, a.Velocity)
				}
				if a.Direction != components.DirectionRight {
					t.Error("new aliens should move right")
				}
			})
		})
	}
}

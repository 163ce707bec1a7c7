package entities

import (
	"testing"

	"github.com/decker502/invaders/pkg/config"
)

func TestNewPlayerBulletCap(t *testing.T) {
	w := NewWorld(config.DefaultGameConfig())

	for i := 0; i < 2; i++ {
		if _, ok := NewPlayerBullet(w); !ok {
			t.Fatalf("shot %d should be allowed", i+1)
		}
	}

	// 第三发被静默忽略
	if _, ok := NewPlayerBullet(w); ok {
		t.Error("third player bullet should be rejected")
	}
	if w.PlayerBullets.Len() != 2 {
		t.Errorf("expected 2 player bullets, got %d", w.PlayerBullets.Len())
	}

	// 销毁一发后可以再次开火
	w.PlayerBullets.DestroyEntity(w.PlayerBullets.IDs()[0])
	if _, ok := NewPlayerBullet(w); !ok {
		t.Error("should fire again after a bullet is destroyed")
	}
}

func TestNewPlayerBulletPosition(t *testing.T) {
	w := NewWorld(config.DefaultGameConfig())
	id, _ := NewPlayerBullet(w)
	b, _ := w.PlayerBullets.Get(id)

	if b.Rect.CenterX() != w.Player.Rect.CenterX() {
		t.Errorf("expected bullet centerX %v, got %v", w.Player.Rect.CenterX(), b.Rect.CenterX())
	}
	if b.Rect.CenterY() != w.Player.Rect.Top() {
		t.Errorf("expected bullet centerY %v, got %v", w.Player.Rect.Top(), b.Rect.CenterY())
	}
	if b.Faction != FactionPlayer {
		t.Errorf("expected player faction, got %v", b.Faction)
	}
}

func TestNewAlienBulletCap(t *testing.T) {
	w := NewWorld(config.DefaultGameConfig())
	shooter := NewAlien(100, 100, 48, 40, 1)

	for i := 0; i < 3; i++ {
		if _, ok := NewAlienBullet(w, shooter); !ok {
			t.Fatalf("alien shot %d should be allowed", i+1)
		}
	}
	if _, ok := NewAlienBullet(w, shooter); ok {
		t.Error("fourth alien bullet should be rejected")
	}

	b, _ := w.AlienBullets.Get(w.AlienBullets.IDs()[0])
	if b.Rect.CenterX() != 124 || b.Rect.CenterY() != 140 {
		t.Errorf("expected bullet centered at (124, 140), got (%v, %v)", b.Rect.CenterX(), b.Rect.CenterY())
	}
}

func TestBulletOffScreen(t *testing.T) {
	w := NewWorld(config.DefaultGameConfig())

	id, _ := NewPlayerBullet(w)
	up, _ := w.PlayerBullets.Get(id)
	frames := 0
	for !up.OffScreen() {
		up.Step()
		frames++
		if frames > 1000 {
			t.Fatal("player bullet never left the screen")
		}
	}
	if up.Rect.Bottom() >= 0 {
		t.Errorf("player bullet should be fully above the screen, bottom=%v", up.Rect.Bottom())
	}

	shooter := NewAlien(100, 600, 48, 40, 1)
	id, _ = NewAlienBullet(w, shooter)
	down, _ := w.AlienBullets.Get(id)
	down.Step()
	if down.Rect.Y != 640 {
		t.Errorf("alien bullet should move down 10px, got y=%v", down.Rect.Y)
	}
	for !down.OffScreen() {
		down.Step()
	}
	if down.Rect.Top() <= w.Config.Window.Height {
		t.Errorf("alien bullet should be fully below the screen, top=%v", down.Rect.Top())
	}
}

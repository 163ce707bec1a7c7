package systems

import (
	"testing"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
)

func TestNewSessionStartsFirstRound(t *testing.T) {
	s, cues := newTestSession(neverFire)

	if s.World().Aliens.Len() != 55 {
		t.Errorf("expected 55 aliens, got %d", s.World().Aliens.Len())
	}
	if s.State().Round != 1 || s.State().Score != 0 {
		t.Errorf("expected round 1 score 0, got %d / %d", s.State().Round, s.State().Score)
	}
	if cues.count(game.CueNewRound) != 1 {
		t.Errorf("expected new-round cue, got %d", cues.count(game.CueNewRound))
	}
}

// 第一回合编队清空：分数 +1000，进入第二回合，生成 55 个速度为 2 的外星人
func TestSessionRoundCompletion(t *testing.T) {
	s, _ := newTestSession(neverFire)
	s.World().Aliens.Clear()

	s.Update(game.Input{})

	if s.State().Score != 1000 {
		t.Errorf("expected score 1000, got %d", s.State().Score)
	}
	if s.State().Round != 2 {
		t.Errorf("expected round 2, got %d", s.State().Round)
	}
	if s.World().Aliens.Len() != 55 {
		t.Fatalf("expected 55 aliens, got %d", s.World().Aliens.Len())
	}
	s.World().Aliens.Each(func(_ ecs.EntityID, a *entities.Alien) {
		if a.Velocity != 2 {
			t.Errorf("expected velocity 2, got %v", a.Velocity)
		}
	})
}

// 最后一条生命被击中：立即重置（分数 0、回合 1、生命 5、新的 55 个速度 1 外星人）
func TestSessionLastLifeResetsGame(t *testing.T) {
	s, cues := newTestSession(neverFire)
	w := s.World()
	s.State().Score = 2300
	s.State().Round = 3
	w.Player.Lives = 1
	placeAlienBulletOnPlayer(w)

	s.Update(game.Input{})

	state := s.State()
	if state.Status != game.StatusGameOver {
		t.Fatalf("expected game over, got %v", state.Status)
	}
	if state.MainText != "Final Score: 2300" {
		t.Errorf("expected final score message, got %q", state.MainText)
	}
	if state.SubText != MessagePlayAgain {
		t.Errorf("expected play-again hint, got %q", state.SubText)
	}
	if state.Score != 0 || state.Round != 1 {
		t.Errorf("expected score 0 round 1, got %d / %d", state.Score, state.Round)
	}
	if w.Player.Lives != 5 {
		t.Errorf("expected 5 lives, got %d", w.Player.Lives)
	}
	if w.Aliens.Len() != 55 {
		t.Fatalf("expected 55 aliens, got %d", w.Aliens.Len())
	}
	w.Aliens.Each(func(_ ecs.EntityID, a *entities.Alien) {
		if a.Velocity != 1 {
			t.Errorf("expected velocity 1, got %v", a.Velocity)
		}
	})
	if w.AlienBullets.Len() != 0 || w.PlayerBullets.Len() != 0 {
		t.Error("expected all bullets cleared")
	}
	if cues.count(game.CuePlayerHit) != 1 {
		t.Errorf("expected player-hit cue, got %d", cues.count(game.CuePlayerHit))
	}

	// 结束画面期间游戏不推进
	frame := s.Frame()
	s.Update(game.Input{Fire: true, Left: true})
	if s.Frame() != frame || w.PlayerBullets.Len() != 0 {
		t.Error("game over screen must block gameplay")
	}

	s.Update(game.Input{Continue: true})
	if !state.IsRunning() {
		t.Errorf("expected running after continue, got %v", state.Status)
	}
}

func TestSessionPlayerHitPauses(t *testing.T) {
	s, _ := newTestSession(neverFire)
	w := s.World()

	// 先让编队移动几帧，再被击中
	for i := 0; i < 5; i++ {
		s.Update(game.Input{})
	}
	w.Player.Rect.X = 0
	entities.NewPlayerBullet(w)
	placeAlienBulletOnPlayer(w)

	s.Update(game.Input{})

	state := s.State()
	if state.Status != game.StatusPaused {
		t.Fatalf("expected paused, got %v", state.Status)
	}
	if state.MainText != MessagePlayerHit || state.SubText != MessageContinue {
		t.Errorf("unexpected pause text %q / %q", state.MainText, state.SubText)
	}
	if w.Player.Lives != 4 {
		t.Errorf("expected 4 lives, got %d", w.Player.Lives)
	}
	if w.PlayerBullets.Len() != 0 || w.AlienBullets.Len() != 0 {
		t.Error("expected all bullets cleared")
	}
	if w.Player.Rect.CenterX() != w.Config.Window.Width/2 {
		t.Error("expected player recentered")
	}
	if w.Aliens.Len() != 55 {
		t.Errorf("aliens must not be destroyed by a status check, got %d", w.Aliens.Len())
	}
	w.Aliens.Each(func(_ ecs.EntityID, a *entities.Alien) {
		if a.Rect.X != a.StartX || a.Rect.Y != a.StartY {
			t.Fatalf("expected alien back at spawn, got (%v, %v)", a.Rect.X, a.Rect.Y)
		}
	})

	// 继续输入恢复游戏，但不推进这一帧
	frame := s.Frame()
	s.Update(game.Input{Continue: true})
	if !state.IsRunning() {
		t.Fatal("expected running after continue")
	}
	if s.Frame() != frame {
		t.Error("continue frame should not advance gameplay")
	}
}

// 同一帧内击落最后一个外星人并被击中：先暂停，回合奖励在继续后的下一帧结算
func TestSessionLastAlienAndPlayerHitSameFrame(t *testing.T) {
	s, _ := newTestSession(neverFire)
	w := s.World()

	w.Aliens.Clear()
	w.Aliens.Add(entities.NewAlien(100, 100, 48, 40, 1))

	id, ok := entities.NewPlayerBullet(w)
	if !ok {
		t.Fatal("expected player bullet")
	}
	b, _ := w.PlayerBullets.Get(id)
	b.Rect.X, b.Rect.Y = 120, 110
	placeAlienBulletOnPlayer(w)

	s.Update(game.Input{})

	state := s.State()
	if state.Status != game.StatusPaused {
		t.Fatalf("expected paused, got %v", state.Status)
	}
	if state.Score != 100 {
		t.Errorf("expected score 100 before the round bonus, got %d", state.Score)
	}
	if state.Round != 1 {
		t.Errorf("expected round 1 while paused, got %d", state.Round)
	}
	if w.Player.Lives != 4 {
		t.Errorf("expected 4 lives, got %d", w.Player.Lives)
	}
	if w.Aliens.Len() != 0 {
		t.Errorf("expected formation cleared, got %d aliens", w.Aliens.Len())
	}

	s.Update(game.Input{Continue: true})
	if !state.IsRunning() {
		t.Fatal("expected running after continue")
	}

	s.Update(game.Input{})
	if state.Score != 1100 {
		t.Errorf("expected score 1100 after the round bonus, got %d", state.Score)
	}
	if state.Round != 2 {
		t.Errorf("expected round 2, got %d", state.Round)
	}
	if w.Aliens.Len() != 55 {
		t.Errorf("expected a fresh formation of 55, got %d", w.Aliens.Len())
	}
}

func TestSessionBreachPauses(t *testing.T) {
	s, cues := newTestSession(neverFire)
	w := s.World()

	// 把编队移到右边缘下方，下一次触边即突破
	w.Aliens.Each(func(_ ecs.EntityID, a *entities.Alien) {
		a.Rect.X += w.Config.Window.Width - 752
		a.Rect.Y += 240
	})

	s.Update(game.Input{})

	if s.State().Status != game.StatusPaused || s.State().MainText != MessageBreach {
		t.Fatalf("expected breach pause, got %v %q", s.State().Status, s.State().MainText)
	}
	if w.Player.Lives != 4 {
		t.Errorf("expected 4 lives, got %d", w.Player.Lives)
	}
	if cues.count(game.CueBreach) != 1 {
		t.Errorf("expected breach cue, got %d", cues.count(game.CueBreach))
	}
	w.Aliens.Each(func(_ ecs.EntityID, a *entities.Alien) {
		if a.Rect.Y != a.StartY {
			t.Fatal("expected formation reset after breach")
		}
	})
}

func TestSessionFireIsCapped(t *testing.T) {
	s, cues := newTestSession(neverFire)

	for i := 0; i < 5; i++ {
		s.Update(game.Input{Fire: true})
	}

	if s.World().PlayerBullets.Len() != 2 {
		t.Errorf("expected 2 player bullets, got %d", s.World().PlayerBullets.Len())
	}
	if cues.count(game.CuePlayerFire) != 2 {
		t.Errorf("expected 2 fire cues, got %d", cues.count(game.CuePlayerFire))
	}
}

func TestSessionAlienFire(t *testing.T) {
	tests := []struct {
		name string
		rng  RandomSource
		want int
	}{
		{"永不开火", neverFire, 0},
		{"阈值本身不开火", fixedRandom{value: 999}, 0},
		{"总是开火但受上限约束", alwaysFire, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, cues := newTestSession(tt.rng)
			s.Update(game.Input{})

			if s.World().AlienBullets.Len() != tt.want {
				t.Errorf("expected %d alien bullets, got %d", tt.want, s.World().AlienBullets.Len())
			}
			if cues.count(game.CueAlienFire) != tt.want {
				t.Errorf("expected %d alien-fire cues, got %d", tt.want, cues.count(game.CueAlienFire))
			}
		})
	}
}

// 长时间运行的不变量：子弹上限、玩家边界、分数和回合单调性、生命范围
func TestSessionInvariants(t *testing.T) {
	s, _ := newTestSession(alwaysFire)
	w := s.World()
	cfg := w.Config

	prevScore := 0
	prevRound := 1
	resets := 0

	for frame := 0; frame < 5000; frame++ {
		in := game.Input{
			Fire:  frame%3 == 0,
			Left:  (frame/200)%2 == 0,
			Right: (frame/200)%2 == 1,
		}
		if !s.State().IsRunning() {
			in = game.Input{Continue: true}
		}
		s.Update(in)

		state := s.State()
		if w.PlayerBullets.Len() > config.PlayerMaxBullets {
			t.Fatalf("frame %d: %d player bullets", frame, w.PlayerBullets.Len())
		}
		if w.AlienBullets.Len() > config.AlienMaxBullets {
			t.Fatalf("frame %d: %d alien bullets", frame, w.AlienBullets.Len())
		}
		if w.Player.Rect.X < 0 || w.Player.Rect.Right() > cfg.Window.Width {
			t.Fatalf("frame %d: player outside the field at x=%v", frame, w.Player.Rect.X)
		}
		if w.Player.Lives < 0 || w.Player.Lives > cfg.Player.Lives {
			t.Fatalf("frame %d: lives out of range: %d", frame, w.Player.Lives)
		}

		if state.Status == game.StatusGameOver && state.Score == 0 && state.Round == 1 {
			if prevScore != 0 || prevRound != 1 {
				resets++
			}
			prevScore, prevRound = 0, 1
			continue
		}
		if state.Score < prevScore {
			t.Fatalf("frame %d: score decreased %d -> %d", frame, prevScore, state.Score)
		}
		if state.Round < prevRound {
			t.Fatalf("frame %d: round decreased %d -> %d", frame, prevRound, state.Round)
		}
		if (state.Score-prevScore)%100 != 0 {
			t.Fatalf("frame %d: score changed by %d", frame, state.Score-prevScore)
		}
		prevScore, prevRound = state.Score, state.Round
	}

	t.Logf("resets observed: %d", resets)
}

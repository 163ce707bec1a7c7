package systems

import (
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
)

// fixedRandom 总是返回同一个值（不超过 n-1）
type fixedRandom struct {
	value int
}

func (r fixedRandom) Intn(n int) int {
	if r.value >= n {
		return n - 1
	}
	return r.value
}

// neverFire 外星人永不开火
var neverFire = fixedRandom{value: 0}

// alwaysFire 外星人每帧都尝试开火
var alwaysFire = fixedRandom{value: 1 << 30}

// recordingCues 记录播放过的音效
type recordingCues struct {
	played []game.Cue
}

func (r *recordingCues) PlayCue(c game.Cue) {
	r.played = append(r.played, c)
}

func (r *recordingCues) count(c game.Cue) int {
	n := 0
	for _, p := range r.played {
		if p == c {
			n++
		}
	}
	return n
}

// newTestWorld 创建没有外星人的世界
func newTestWorld() *entities.World {
	return entities.NewWorld(config.DefaultGameConfig())
}

// newTestSession 创建测试会话
func newTestSession(rng RandomSource) (*Session, *recordingCues) {
	cues := &recordingCues{}
	return NewSession(config.DefaultGameConfig(), cues, rng), cues
}

// placeAlienBulletOnPlayer 放置一颗下一帧仍与玩家重叠的外星人子弹
func placeAlienBulletOnPlayer(w *entities.World) {
	player := w.Player.Bounds()
	shooter := entities.NewAlien(player.CenterX()-24, player.Top()-20, 48, 40, 1)
	entities.NewAlienBullet(w, shooter)
}

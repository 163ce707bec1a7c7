package systems

import (
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
)

// WeaponSystem 处理玩家和外星人的开火
type WeaponSystem struct {
	world *entities.World
	cues  game.CuePlayer
	rng   RandomSource
}

// NewWeaponSystem 创建武器系统
//
// 参数:
//   - world: 游戏世界
//   - cues: 音效播放器
//   - rng: 外星人随机开火使用的随机数来源
func NewWeaponSystem(world *entities.World, cues game.CuePlayer, rng RandomSource) *WeaponSystem {
	return &WeaponSystem{
		world: world,
		cues:  cues,
		rng:   rng,
	}
}

// FirePlayer 玩家开火；场上子弹已达上限时静默忽略
//
// 返回:
//   - bool: 是否发射了子弹
func (s *WeaponSystem) FirePlayer() bool {
	if _, ok := entities.NewPlayerBullet(s.world); !ok {
		return false
	}
	s.cues.PlayCue(game.CuePlayerFire)
	return true
}

// UpdateAlienFire 每个外星人每帧抽取一次随机数，超过阈值且未达上限时开火
//
// 返回:
//   - int: 本帧发射的子弹数
func (s *WeaponSystem) UpdateAlienFire() int {
	fired := 0

	s.world.Aliens.Each(func(_ ecs.EntityID, a *entities.Alien) {
		if s.rng.Intn(config.AlienFireRange) <= config.AlienFireThreshold {
			return
		}
		if _, ok := entities.NewAlienBullet(s.world, a); ok {
			s.cues.PlayCue(game.CueAlienFire)
			fired++
		}
	})

	return fired
}

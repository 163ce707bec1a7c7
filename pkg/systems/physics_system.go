package systems

import (
	"log"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
)

// PhysicsSystem 处理碰撞检测
// 玩家子弹与外星人、外星人子弹与玩家
type PhysicsSystem struct {
	world *entities.World
	state *game.GameState
	cues  game.CuePlayer
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(world *entities.World, state *game.GameState, cues game.CuePlayer) *PhysicsSystem {
	return &PhysicsSystem{
		world: world,
		state: state,
		cues:  cues,
	}
}

// UpdateBulletAlien 检测玩家子弹与外星人的碰撞
// 每对重叠的子弹和外星人同时销毁，每个外星人计分一次；
// 一颗子弹只能击中按生成顺序找到的第一个外星人
//
// 返回:
//   - int: 本帧击落的外星人数量
func (s *PhysicsSystem) UpdateBulletAlien() int {
	aliens := s.world.Aliens
	bullets := s.world.PlayerBullets
	kills := 0

	for _, bulletID := range bullets.IDs() {
		bullet, ok := bullets.Get(bulletID)
		if !ok {
			continue
		}
		bulletBox := bullet.Bounds()

		for _, alienID := range aliens.IDs() {
			alien, ok := aliens.Get(alienID)
			if !ok {
				continue
			}
			if !bulletBox.Overlaps(alien.Bounds()) {
				continue
			}

			bullets.DestroyEntity(bulletID)
			aliens.DestroyEntity(alienID)
			s.cues.PlayCue(game.CueAlienHit)
			s.state.AddScore(config.AlienHitScore)
			kills++
			break
		}
	}

	return kills
}

// UpdateBulletPlayer 检测外星人子弹与玩家的碰撞
// 击中时销毁子弹并扣除一条生命；调用方随后执行状态检查（会清空所有子弹），
// 因此每帧最多扣除一条生命
//
// 返回:
//   - bool: 玩家是否被击中
func (s *PhysicsSystem) UpdateBulletPlayer() bool {
	bullets := s.world.AlienBullets
	player := s.world.Player
	playerBox := player.Bounds()

	for _, bulletID := range bullets.IDs() {
		bullet, ok := bullets.Get(bulletID)
		if !ok {
			continue
		}
		if !bullet.Bounds().Overlaps(playerBox) {
			continue
		}

		bullets.DestroyEntity(bulletID)
		s.cues.PlayCue(game.CuePlayerHit)
		if player.Lives > 0 {
			player.Lives--
		}
		log.Printf("[PhysicsSystem] Player hit, lives left: %d", player.Lives)
		return true
	}

	return false
}

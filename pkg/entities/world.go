package entities

import (
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
)

// World 游戏世界中所有实体的集合
// 每帧只在游戏循环中被修改
type World struct {
	Config        *config.GameConfig
	Player        *Player
	Aliens        *ecs.Group[*Alien]
	PlayerBullets *ecs.Group[*Bullet]
	AlienBullets  *ecs.Group[*Bullet]
}

// NewWorld 创建空的游戏世界（只有玩家，没有外星人）
func NewWorld(cfg *config.GameConfig) *World {
	return &World{
		Config:        cfg,
		Player:        NewPlayer(cfg),
		Aliens:        ecs.NewGroup[*Alien](),
		PlayerBullets: ecs.NewGroup[*Bullet](),
		AlienBullets:  ecs.NewGroup[*Bullet](),
	}
}

// ClearBullets 立即清除双方所有子弹
func (w *World) ClearBullets() {
	w.PlayerBullets.Clear()
	w.AlienBullets.Clear()
}

// ResetPositions 玩家和所有外星人回到初始位置（不销毁外星人）
func (w *World) ResetPositions() {
	w.Player.Reset()
	w.Aliens.Each(func(_ ecs.EntityID, a *Alien) {
		a.Reset()
	})
}

// RemoveMarkedEntities 清理本帧标记删除的实体
func (w *World) RemoveMarkedEntities() {
	w.Aliens.RemoveMarkedEntities()
	w.PlayerBullets.RemoveMarkedEntities()
	w.AlienBullets.RemoveMarkedEntities()
}

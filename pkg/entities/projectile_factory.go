package entities

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
)

// NewPlayerBullet 玩家开火
// 子弹中心位于飞船顶边中点；场上玩家子弹已达上限时不创建
//
// 返回:
//   - ecs.EntityID: 子弹实体ID
//   - bool: 是否成功创建
func NewPlayerBullet(w *World) (ecs.EntityID, bool) {
	if w.PlayerBullets.Len() >= config.PlayerMaxBullets {
		return 0, false
	}

	bounds := w.Player.Bounds()
	bullet := newBullet(w, FactionPlayer, bounds.CenterX(), bounds.Top())
	return w.PlayerBullets.Add(bullet), true
}

// NewAlienBullet 外星人开火
// 子弹中心位于外星人底边中点；场上外星人子弹已达上限时不创建
func NewAlienBullet(w *World, shooter *Alien) (ecs.EntityID, bool) {
	if w.AlienBullets.Len() >= config.AlienMaxBullets {
		return 0, false
	}

	bounds := shooter.Bounds()
	bullet := newBullet(w, FactionAlien, bounds.CenterX(), bounds.Bottom())
	return w.AlienBullets.Add(bullet), true
}

func newBullet(w *World, faction Faction, cx, cy float64) *Bullet {
	return &Bullet{
		Rect:        components.CenteredAt(cx, cy, w.Config.Bullet.Width, w.Config.Bullet.Height),
		Faction:     faction,
		Velocity:    w.Config.Bullet.Speed,
		fieldHeight: w.Config.Window.Height,
	}
}

package entities

import "github.com/decker502/invaders/pkg/components"

// Faction 子弹所属阵营
type Faction int

const (
	// FactionPlayer 玩家子弹，向上飞行
	FactionPlayer Faction = iota
	// FactionAlien 外星人子弹，向下飞行
	FactionAlien
)

// String 返回阵营名称
func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionAlien:
		return "alien"
	default:
		return "unknown"
	}
}

// Bullet 子弹
type Bullet struct {
	Rect     components.Rect
	Faction  Faction
	Velocity float64 // 固定速度（像素/帧），方向由阵营决定

	fieldHeight float64
}

// Step 垂直移动
func (b *Bullet) Step() {
	if b.Faction == FactionPlayer {
		b.Rect.Y -= b.Velocity
	} else {
		b.Rect.Y += b.Velocity
	}
}

// Bounds 返回碰撞边界框
func (b *Bullet) Bounds() components.Rect {
	return b.Rect
}

// OffScreen 子弹是否已完全离开屏幕
// 玩家子弹检查上方，外星人子弹检查下方
func (b *Bullet) OffScreen() bool {
	if b.Faction == FactionPlayer {
		return b.Rect.Bottom() < 0
	}
	return b.Rect.Top() > b.fieldHeight
}

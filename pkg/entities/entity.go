package entities

import "github.com/decker502/invaders/pkg/components"

// Steppable 每帧推进一次的实体
type Steppable interface {
	Step()
}

// Boundable 拥有碰撞边界框的实体
type Boundable interface {
	Bounds() components.Rect
}

// Entity 游戏世界中的实体（玩家、外星人、子弹）
// 实体种类是封闭集合：*Player、*Alien、*Bullet
type Entity interface {
	Steppable
	Boundable
}

var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Alien)(nil)
	_ Entity = (*Bullet)(nil)
)

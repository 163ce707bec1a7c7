package systems

import (
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
)

// MovementSystem 每帧推进所有实体的位置
type MovementSystem struct {
	world *entities.World
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(world *entities.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// UpdateShips 移动玩家和所有外星人
func (s *MovementSystem) UpdateShips() {
	s.world.Player.Step()
	s.world.Aliens.Each(func(_ ecs.EntityID, a *entities.Alien) {
		a.Step()
	})
}

// UpdateBullets 移动双方子弹，并销毁完全离开屏幕的子弹
func (s *MovementSystem) UpdateBullets() {
	stepBullets(s.world.PlayerBullets)
	stepBullets(s.world.AlienBullets)
}

func stepBullets(group *ecs.Group[*entities.Bullet]) {
	group.Each(func(id ecs.EntityID, b *entities.Bullet) {
		b.Step()
		if b.OffScreen() {
			group.DestroyEntity(id)
		}
	})
}

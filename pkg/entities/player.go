package entities

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
)

// Player 玩家飞船
// 被击中或重置时只重新定位，不会被销毁
type Player struct {
	Rect  components.Rect
	Lives int // 剩余生命数

	speed      float64
	fieldWidth float64

	// 当前帧的水平输入
	moveLeft  bool
	moveRight bool
}

// NewPlayer 创建玩家飞船
// 初始位置：水平居中，底边贴住窗口底部
func NewPlayer(cfg *config.GameConfig) *Player {
	p := &Player{
		Rect: components.Rect{
			Y:      cfg.Window.Height - cfg.Player.Height,
			Width:  cfg.Player.Width,
			Height: cfg.Player.Height,
		},
		Lives:      cfg.Player.Lives,
		speed:      cfg.Player.Speed,
		fieldWidth: cfg.Window.Width,
	}
	p.Reset()
	return p
}

// SetInput 设置本帧的水平移动输入（按住方向键）
func (p *Player) SetInput(left, right bool) {
	p.moveLeft = left
	p.moveRight = right
}

// Step 按输入移动，位置限制在 [0, 窗口宽度-飞船宽度]
func (p *Player) Step() {
	if p.moveLeft && p.Rect.Left() > 0 {
		p.Rect.X -= p.speed
	}
	if p.moveRight && p.Rect.Right() < p.fieldWidth {
		p.Rect.X += p.speed
	}
	p.clamp()
}

// Bounds 返回碰撞边界框
func (p *Player) Bounds() components.Rect {
	return p.Rect
}

// Reset 水平居中，不影响生命数
func (p *Player) Reset() {
	p.Rect.X = p.fieldWidth/2 - p.Rect.Width/2
}

func (p *Player) clamp() {
	maxX := p.fieldWidth - p.Rect.Width
	if p.Rect.X < 0 {
		p.Rect.X = 0
	}
	if p.Rect.X > maxX {
		p.Rect.X = maxX
	}
}

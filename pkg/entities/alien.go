package entities

import "github.com/decker502/invaders/pkg/components"

// Alien 外星人
// 速度和出生位置只由回合数和网格索引决定
type Alien struct {
	Rect      components.Rect
	StartX    float64              // 出生X，用于重置
	StartY    float64              // 出生Y，用于重置
	Direction components.Direction // 水平方向 ±1
	Velocity  float64              // 水平速度（等于回合数）
}

// NewAlien 在 (x, y) 创建外星人，初始向右移动
func NewAlien(x, y, width, height, velocity float64) *Alien {
	return &Alien{
		Rect: components.Rect{
			X:      x,
			Y:      y,
			Width:  width,
			Height: height,
		},
		StartX:    x,
		StartY:    y,
		Direction: components.DirectionRight,
		Velocity:  velocity,
	}
}

// Step 水平移动 direction * velocity
func (a *Alien) Step() {
	a.Rect.X += a.Direction.Sign() * a.Velocity
}

// Bounds 返回碰撞边界框
func (a *Alien) Bounds() components.Rect {
	return a.Rect
}

// Reverse 反转方向并沿新方向立即移动一步，使编队离开边缘
func (a *Alien) Reverse() {
	a.Direction = a.Direction.Reverse()
	a.Step()
}

// Reset 回到出生位置，方向恢复为向右
func (a *Alien) Reset() {
	a.Rect.X = a.StartX
	a.Rect.Y = a.StartY
	a.Direction = components.DirectionRight
}

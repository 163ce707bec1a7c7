package components

// Direction 水平/垂直移动方向
type Direction int

const (
	// DirectionLeft 向左（或向上）
	DirectionLeft Direction = -1
	// DirectionRight 向右（或向下）
	DirectionRight Direction = 1
)

// Reverse 返回相反方向
func (d Direction) Reverse() Direction {
	return -d
}

// Sign 返回方向的符号系数
func (d Direction) Sign() float64 {
	return float64(d)
}

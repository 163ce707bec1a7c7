package components

// Rect 轴对齐边界框（AABB）
// X/Y 为左上角坐标，用于实体的位置与碰撞检测
type Rect struct {
	X      float64 // 左上角X（像素）
	Y      float64 // 左上角Y（像素）
	Width  float64 // 宽度（像素）
	Height float64 // 高度（像素）
}

// Left 返回左边界
func (r Rect) Left() float64 { return r.X }

// Right 返回右边界
func (r Rect) Right() float64 { return r.X + r.Width }

// Top 返回上边界
func (r Rect) Top() float64 { return r.Y }

// Bottom 返回下边界
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX 返回水平中心
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY 返回垂直中心
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Overlaps 检查两个矩形是否重叠
// 边缘恰好相接不算重叠（与 sprite rect 的碰撞语义一致）
func (r Rect) Overlaps(other Rect) bool {
	return r.Left() < other.Right() &&
		other.Left() < r.Right() &&
		r.Top() < other.Bottom() &&
		other.Top() < r.Bottom()
}

// CenteredAt 返回以 (cx, cy) 为中心、指定尺寸的矩形
func CenteredAt(cx, cy, width, height float64) Rect {
	return Rect{
		X:      cx - width/2,
		Y:      cy - height/2,
		Width:  width,
		Height: height,
	}
}

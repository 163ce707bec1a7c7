package scenes

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteKind 精灵类型
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteAlien
	SpritePlayerBullet
	SpriteAlienBullet
)

// spriteMask 像素图案，'#' 为实心像素，其余为透明
type spriteMask []string

var (
	// 16x12，按 4 倍缩放即为 64x48 的飞船
	playerMask = spriteMask{
		".......##.......",
		"......####......",
		"......####......",
		".....######.....",
		".##..######..##.",
		".##.########.##.",
		".##############.",
		"################",
		"################",
		"#####.####.#####",
		"####...##...####",
		"###..........###",
	}

	// 12x10，按 4 倍缩放即为 48x40 的外星人
	alienMask = spriteMask{
		"...#....#...",
		"....#..#....",
		"...######...",
		"..##.##.##..",
		".##########.",
		"############",
		"#.########.#",
		"#.#......#.#",
		"...##..##...",
		"..##....##..",
	}

	// 子弹是实心矩形
	bulletMask = spriteMask{
		"##",
		"##",
		"##",
		"##",
		"##",
		"##",
	}
)

var spriteColors = map[SpriteKind]color.RGBA{
	SpritePlayer:       {R: 80, G: 220, B: 120, A: 255},
	SpriteAlien:        {R: 230, G: 230, B: 90, A: 255},
	SpritePlayerBullet: {R: 140, G: 220, B: 255, A: 255},
	SpriteAlienBullet:  {R: 255, G: 90, B: 80, A: 255},
}

func maskFor(kind SpriteKind) spriteMask {
	switch kind {
	case SpritePlayer:
		return playerMask
	case SpriteAlien:
		return alienMask
	default:
		return bulletMask
	}
}

// Size 返回图案的像素尺寸
func (m spriteMask) Size() (w, h int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m[0]), len(m)
}

// Pixels 返回所有实心像素的坐标
func (m spriteMask) Pixels() []image.Point {
	var pts []image.Point
	for y, row := range m {
		for x, c := range row {
			if c == '#' {
				pts = append(pts, image.Pt(x, y))
			}
		}
	}
	return pts
}

// newSpriteImage 把像素图案绘制成 Ebitengine 图像
// 绘制时按实体尺寸缩放，所以图像保持原始像素大小
func newSpriteImage(kind SpriteKind) *ebiten.Image {
	mask := maskFor(kind)
	w, h := mask.Size()
	img := ebiten.NewImage(w, h)
	clr := spriteColors[kind]
	for _, p := range mask.Pixels() {
		img.Set(p.X, p.Y, clr)
	}
	return img
}

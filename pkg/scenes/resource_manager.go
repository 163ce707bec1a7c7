package scenes

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager 渲染资源管理器
// 字体来自 Go 字体集，精灵由像素图案生成，二者都按需创建并缓存
type ResourceManager struct {
	fontSource    *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace
	sprites       map[SpriteKind]*ebiten.Image
}

// NewResourceManager 创建资源管理器并解析字体
func NewResourceManager() (*ResourceManager, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}

	return &ResourceManager{
		fontSource:    source,
		fontFaceCache: make(map[float64]*text.GoTextFace),
		sprites:       make(map[SpriteKind]*ebiten.Image),
	}, nil
}

// LoadFont 返回指定字号的字体，同字号只创建一次
func (rm *ResourceManager) LoadFont(size float64) *text.GoTextFace {
	if face, exists := rm.fontFaceCache[size]; exists {
		return face
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	log.Printf("[ResourceManager] Created font face, size %.1f", size)
	return face
}

// GetSprite 返回精灵图像，首次调用时生成
func (rm *ResourceManager) GetSprite(kind SpriteKind) *ebiten.Image {
	if img, exists := rm.sprites[kind]; exists {
		return img
	}
	img := newSpriteImage(kind)
	rm.sprites[kind] = img
	return img
}

// Package utils 提供 Ebitengine 平台层的通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/invaders/pkg/game"
)

// KeyChecker 按键状态查询函数
type KeyChecker func(key ebiten.Key) bool

// 各个动作绑定的按键
var (
	leftKeys     = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys    = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	fireKeys     = []ebiten.Key{ebiten.KeySpace}
	continueKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}
	quitKeys     = []ebiten.Key{ebiten.KeyEscape}
)

// GetGameInput 读取当前帧的键盘输入
// 方向键按住生效，开火与继续只在按下的那一帧生效
func GetGameInput() game.Input {
	return BuildGameInput(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

// BuildGameInput 根据按键查询函数组装输入
//
// 参数：
//   - pressed: 按键当前是否按住
//   - justPressed: 按键是否在本帧刚按下
func BuildGameInput(pressed, justPressed KeyChecker) game.Input {
	return game.Input{
		Left:     anyKey(pressed, leftKeys),
		Right:    anyKey(pressed, rightKeys),
		Fire:     anyKey(justPressed, fireKeys),
		Continue: anyKey(justPressed, continueKeys),
		Quit:     anyKey(justPressed, quitKeys),
	}
}

func anyKey(check KeyChecker, keys []ebiten.Key) bool {
	for _, k := range keys {
		if check(k) {
			return true
		}
	}
	return false
}

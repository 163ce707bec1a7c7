package tty

import (
	"github.com/gdamore/tcell/v2"

	"github.com/decker502/invaders/pkg/game"
)

// DefaultHoldFrames 方向键按下后视为按住的帧数
// 终端没有按键抬起事件，只能依靠按键重复不断刷新这个窗口
const DefaultHoldFrames = 18

// InputTracker 把终端按键事件转换为逐帧输入
type InputTracker struct {
	holdFrames  int
	leftFrames  int
	rightFrames int

	fire bool
	cont bool
	quit bool
}

// NewInputTracker 创建输入跟踪器，holdFrames <= 0 时使用默认值
func NewInputTracker(holdFrames int) *InputTracker {
	if holdFrames <= 0 {
		holdFrames = DefaultHoldFrames
	}
	return &InputTracker{holdFrames: holdFrames}
}

// HandleEvent 处理一个终端事件
func (t *InputTracker) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	switch key.Key() {
	case tcell.KeyLeft:
		t.leftFrames = t.holdFrames
		t.rightFrames = 0
	case tcell.KeyRight:
		t.rightFrames = t.holdFrames
		t.leftFrames = 0
	case tcell.KeyEnter:
		t.cont = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.quit = true
	case tcell.KeyRune:
		switch key.Rune() {
		case ' ':
			t.fire = true
		case 'q', 'Q':
			t.quit = true
		case 'a', 'A':
			t.leftFrames = t.holdFrames
			t.rightFrames = 0
		case 'd', 'D':
			t.rightFrames = t.holdFrames
			t.leftFrames = 0
		}
	}
}

// Next 返回本帧输入
// 开火、继续和退出在读取后清除，方向键的按住窗口减少一帧
func (t *InputTracker) Next() game.Input {
	in := game.Input{
		Left:     t.leftFrames > 0,
		Right:    t.rightFrames > 0,
		Fire:     t.fire,
		Continue: t.cont,
		Quit:     t.quit,
	}

	if t.leftFrames > 0 {
		t.leftFrames--
	}
	if t.rightFrames > 0 {
		t.rightFrames--
	}
	t.fire = false
	t.cont = false
	t.quit = false
	return in
}

package tty

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/invaders/pkg/systems"
)

// Game 终端游戏循环
// 事件由单独的 goroutine 读取后通过 channel 转发，所有状态只在循环 goroutine 中修改
type Game struct {
	screen   tcell.Screen
	session  *systems.Session
	renderer *Renderer
	input    *InputTracker
	tick     time.Duration
}

// NewGame 创建终端游戏
//
// 参数：
//   - screen: 已初始化的 tcell 屏幕
//   - session: 游戏会话
//   - holdFrames: 方向键按住窗口，<= 0 使用默认值
func NewGame(screen tcell.Screen, session *systems.Session, holdFrames int) *Game {
	cfg := session.Config()
	return &Game{
		screen:   screen,
		session:  session,
		renderer: NewRenderer(screen, cfg),
		input:    NewInputTracker(holdFrames),
		tick:     time.Second / time.Duration(cfg.Window.TPS),
	}
}

// HandleEvent 处理终端事件
func (g *Game) HandleEvent(ev tcell.Event) {
	if _, ok := ev.(*tcell.EventResize); ok {
		g.screen.Sync()
		return
	}
	g.input.HandleEvent(ev)
}

// Step 推进一帧并重绘，收到退出输入时返回 false
func (g *Game) Step() bool {
	in := g.input.Next()
	if in.Quit {
		return false
	}
	g.session.Update(in)
	g.renderer.Draw(g.session)
	return true
}

// Run 运行游戏循环，直到退出输入或 ctx 取消
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// 屏幕已关闭
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	g.renderer.Draw(g.session)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			g.HandleEvent(ev)
		case <-ticker.C:
			if !g.Step() {
				log.Printf("[Game] Quit, final score %d", g.session.State().Score)
				return nil
			}
		}
	}
}

package systems

import (
	"fmt"
	"log"

	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
)

// 暂停画面提示文本
const (
	MessagePlayerHit = "You've been hit!"
	MessageBreach    = "Aliens breached the line!"
	MessageContinue  = "Press 'Enter' to continue"
	MessagePlayAgain = "Press 'Enter' to play again"
)

// StatusSystem 游戏状态控制器
// 处理被击中/入侵后的暂停、生命耗尽后的重置以及继续游戏
type StatusSystem struct {
	world  *entities.World
	state  *game.GameState
	rounds *RoundSystem
}

// NewStatusSystem 创建状态系统
func NewStatusSystem(world *entities.World, state *game.GameState, rounds *RoundSystem) *StatusSystem {
	return &StatusSystem{
		world:  world,
		state:  state,
		rounds: rounds,
	}
}

// CheckGameStatus 清空子弹、重置玩家和外星人位置（不销毁外星人），
// 生命耗尽时重置整局游戏，否则进入暂停状态显示两行提示
func (s *StatusSystem) CheckGameStatus(mainText, subText string) {
	s.world.ClearBullets()
	s.world.ResetPositions()

	if s.world.Player.Lives <= 0 {
		s.ResetGame()
		return
	}

	s.state.Pause(mainText, subText)
	log.Printf("[StatusSystem] Paused: %s", mainText)
}

// ResetGame 进入结束画面（显示最终得分），并恢复初始状态：
// 分数归零、回合回到1、生命恢复、清空外星人和子弹、开始新回合
func (s *StatusSystem) ResetGame() {
	finalScore := s.state.Score
	s.state.EnterGameOver(fmt.Sprintf("Final Score: %d", finalScore), MessagePlayAgain)
	log.Printf("[StatusSystem] Game over, final score %d", finalScore)

	s.state.ResetProgress()
	s.world.Player.Lives = s.world.Config.Player.Lives
	s.world.Player.Reset()
	s.world.Aliens.Clear()
	s.world.ClearBullets()
	s.rounds.StartNewRound()
}

// Continue 关闭暂停或结束画面
//
// 返回:
//   - bool: 是否恢复了游戏
func (s *StatusSystem) Continue() bool {
	if !s.state.Resume() {
		return false
	}
	log.Printf("[StatusSystem] Resumed at round %d", s.state.Round)
	return true
}

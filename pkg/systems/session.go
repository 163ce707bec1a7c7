package systems

import (
	"log"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
)

// Session 一局游戏的上下文
// 持有游戏世界、状态和所有系统，按固定顺序推进每一帧
type Session struct {
	cfg   *config.GameConfig
	world *entities.World
	state *game.GameState

	movementSystem *MovementSystem
	weaponSystem   *WeaponSystem
	physicsSystem  *PhysicsSystem
	roundSystem    *RoundSystem
	statusSystem   *StatusSystem

	frame uint64
}

// NewSession 创建游戏会话并开始第一回合
//
// 参数:
//   - cfg: 游戏配置
//   - cues: 音效播放器，nil 表示静音
//   - rng: 外星人开火使用的随机数来源
func NewSession(cfg *config.GameConfig, cues game.CuePlayer, rng RandomSource) *Session {
	if cues == nil {
		cues = game.NopCuePlayer{}
	}

	world := entities.NewWorld(cfg)
	state := game.NewGameState()
	difficulty := NewDifficultyEngine(cfg)

	rounds := NewRoundSystem(world, state, cues, difficulty)
	s := &Session{
		cfg:            cfg,
		world:          world,
		state:          state,
		movementSystem: NewMovementSystem(world),
		weaponSystem:   NewWeaponSystem(world, cues, rng),
		physicsSystem:  NewPhysicsSystem(world, state, cues),
		roundSystem:    rounds,
		statusSystem:   NewStatusSystem(world, state, rounds),
	}

	rounds.StartNewRound()
	log.Printf("[Session] Session created")
	return s
}

// World 返回游戏世界（渲染使用）
func (s *Session) World() *entities.World {
	return s.world
}

// State 返回游戏状态（渲染使用）
func (s *Session) State() *game.GameState {
	return s.state
}

// Config 返回游戏配置
func (s *Session) Config() *config.GameConfig {
	return s.cfg
}

// Frame 返回已推进的游戏帧数（暂停期间不计数）
func (s *Session) Frame() uint64 {
	return s.frame
}

// Update 推进一帧
// 暂停或结束画面时只处理继续输入；退出输入由平台层处理
func (s *Session) Update(in game.Input) {
	if !s.state.IsRunning() {
		if in.Continue {
			s.statusSystem.Continue()
		}
		return
	}

	s.frame++
	defer s.world.RemoveMarkedEntities()

	// 输入与开火
	s.world.Player.SetInput(in.Left, in.Right)
	if in.Fire {
		s.weaponSystem.FirePlayer()
	}

	// 移动
	s.movementSystem.UpdateShips()
	s.weaponSystem.UpdateAlienFire()
	s.movementSystem.UpdateBullets()

	// 编队触边
	if s.roundSystem.ShiftAliens() {
		s.statusSystem.CheckGameStatus(MessageBreach, MessageContinue)
		return
	}

	// 碰撞
	s.physicsSystem.UpdateBulletAlien()
	if s.physicsSystem.UpdateBulletPlayer() {
		s.statusSystem.CheckGameStatus(MessagePlayerHit, MessageContinue)
		return
	}

	// 回合完成
	s.roundSystem.CheckRoundCompletion()
}

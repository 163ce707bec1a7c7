package systems

import (
	"log"

	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
)

// RoundSystem 回合导演
// 负责生成编队、编队触边下降、检测入侵以及回合完成
type RoundSystem struct {
	world      *entities.World
	state      *game.GameState
	cues       game.CuePlayer
	difficulty *DifficultyEngine
}

// NewRoundSystem 创建回合系统
func NewRoundSystem(world *entities.World, state *game.GameState, cues game.CuePlayer, difficulty *DifficultyEngine) *RoundSystem {
	return &RoundSystem{
		world:      world,
		state:      state,
		cues:       cues,
		difficulty: difficulty,
	}
}

// StartNewRound 播放新回合音效并按当前回合数生成 11x5 编队
func (s *RoundSystem) StartNewRound() {
	s.cues.PlayCue(game.CueNewRound)
	velocity := s.difficulty.AlienVelocity(s.state.Round)
	count := entities.SpawnFormation(s.world, velocity)
	log.Printf("[RoundSystem] Round %d started: %d aliens, velocity %.0f", s.state.Round, count, velocity)
}

// ShiftAliens 任一外星人触及左右边缘时，整个编队下降并反向
// 下降后任一外星人底边越过入侵线时判定为入侵：扣除一条生命并播放入侵音效
//
// 返回:
//   - bool: 是否发生入侵（调用方随后执行状态检查）
func (s *RoundSystem) ShiftAliens() bool {
	fieldWidth := s.world.Config.Window.Width

	shift := false
	s.world.Aliens.Each(func(_ ecs.EntityID, a *entities.Alien) {
		if a.Rect.Left() <= 0 || a.Rect.Right() >= fieldWidth {
			shift = true
		}
	})
	if !shift {
		return false
	}

	drop := s.difficulty.DropDistance(s.state.Round)
	breachLine := s.world.Config.BreachLineY()

	breach := false
	s.world.Aliens.Each(func(_ ecs.EntityID, a *entities.Alien) {
		a.Rect.Y += drop
		a.Reverse()
		if a.Rect.Bottom() >= breachLine {
			breach = true
		}
	})
	if !breach {
		return false
	}

	player := s.world.Player
	if player.Lives > 0 {
		player.Lives--
	}
	s.cues.PlayCue(game.CueBreach)
	log.Printf("[RoundSystem] Aliens breached the line, lives left: %d", player.Lives)
	return true
}

// CheckRoundCompletion 编队全灭时奖励 1000*回合数，进入下一回合并生成新编队
//
// 返回:
//   - bool: 是否完成了回合
func (s *RoundSystem) CheckRoundCompletion() bool {
	if s.world.Aliens.Len() > 0 {
		return false
	}

	bonus := s.difficulty.RoundBonus(s.state.Round)
	s.state.AddScore(bonus)
	log.Printf("[RoundSystem] Round %d cleared, bonus %d", s.state.Round, bonus)

	s.state.NextRound()
	s.StartNewRound()
	return true
}

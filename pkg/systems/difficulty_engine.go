package systems

import (
	"github.com/decker502/invaders/pkg/config"
)

// DifficultyEngine 难度引擎
// 难度只随回合数线性增长
type DifficultyEngine struct {
	cfg *config.GameConfig
}

// NewDifficultyEngine 创建新的难度引擎实例
func NewDifficultyEngine(cfg *config.GameConfig) *DifficultyEngine {
	return &DifficultyEngine{cfg: cfg}
}

// AlienVelocity 外星人水平速度
// 公式: velocity = round
func (d *DifficultyEngine) AlienVelocity(round int) float64 {
	return float64(round)
}

// DropDistance 编队触边后的下降距离
// 公式: drop = AlienDropPerRound * round
func (d *DifficultyEngine) DropDistance(round int) float64 {
	return config.AlienDropPerRound * float64(round)
}

// RoundBonus 回合完成奖励
// 公式: bonus = RoundBonusPerRound * round
func (d *DifficultyEngine) RoundBonus(round int) int {
	return config.RoundBonusPerRound * round
}

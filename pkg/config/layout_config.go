package config

// 布局配置常量
// 逻辑画布尺寸独立于实际窗口大小，Ebitengine 会自动缩放

const (
	// GameWindowWidth 逻辑画布宽度
	GameWindowWidth = 1200

	// GameWindowHeight 逻辑画布高度
	GameWindowHeight = 700

	// DefaultWindowTitle 窗口标题
	DefaultWindowTitle = "Space Shooter"

	// EmbeddedConfigPath 内嵌配置文件路径
	EmbeddedConfigPath = "data/invaders.yaml"
)

// 游戏规则常量
// 难度只随回合数变化，这些值不开放配置
const (
	// PlayerMaxBullets 同时在场的玩家子弹上限
	PlayerMaxBullets = 2

	// AlienMaxBullets 同时在场的外星人子弹上限
	AlienMaxBullets = 3

	// AlienDropPerRound 编队触边下降距离 = AlienDropPerRound * 回合数
	AlienDropPerRound = 10

	// AlienFireRange 外星人每帧抽取 [0, AlienFireRange) 的整数
	AlienFireRange = 1001

	// AlienFireThreshold 抽取值大于该阈值时开火
	AlienFireThreshold = 999

	// AlienHitScore 击落一个外星人的得分
	AlienHitScore = 100

	// RoundBonusPerRound 回合完成奖励 = RoundBonusPerRound * 回合数
	RoundBonusPerRound = 1000
)

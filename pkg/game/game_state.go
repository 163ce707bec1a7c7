package game

// Status 游戏状态机的状态
type Status int

const (
	// StatusRunning 正常游戏
	StatusRunning Status = iota
	// StatusPaused 被击中或防线被突破后暂停，显示提示信息
	StatusPaused
	// StatusGameOver 生命耗尽，显示最终得分
	StatusGameOver
)

// String 返回状态名称
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// GameState 存储回合、分数和暂停状态
// 由游戏循环独占修改；生命数保存在玩家实体上
type GameState struct {
	Round  int    // 当前回合（从1开始，只增不减，重置时回到1）
	Score  int    // 当前分数（只增不减，重置时归零）
	Status Status // 状态机当前状态

	// 暂停画面的两行提示
	MainText string
	SubText  string
}

// NewGameState 创建初始游戏状态
func NewGameState() *GameState {
	return &GameState{
		Round:  1,
		Status: StatusRunning,
	}
}

// AddScore 增加分数，负数被忽略
func (gs *GameState) AddScore(amount int) {
	if amount <= 0 {
		return
	}
	gs.Score += amount
}

// NextRound 进入下一回合
func (gs *GameState) NextRound() int {
	gs.Round++
	return gs.Round
}

// IsRunning 是否处于正常游戏状态
func (gs *GameState) IsRunning() bool {
	return gs.Status == StatusRunning
}

// Pause 进入暂停状态并记录提示信息
func (gs *GameState) Pause(mainText, subText string) {
	gs.Status = StatusPaused
	gs.MainText = mainText
	gs.SubText = subText
}

// EnterGameOver 进入游戏结束画面并记录提示信息
func (gs *GameState) EnterGameOver(mainText, subText string) {
	gs.Status = StatusGameOver
	gs.MainText = mainText
	gs.SubText = subText
}

// Resume 从暂停或结束画面返回游戏
//
// 返回：
//   - bool: 状态是否发生变化
func (gs *GameState) Resume() bool {
	if gs.Status == StatusRunning {
		return false
	}
	gs.Status = StatusRunning
	gs.MainText = ""
	gs.SubText = ""
	return true
}

// ResetProgress 分数归零、回合回到1，不改变状态机状态
func (gs *GameState) ResetProgress() {
	gs.Score = 0
	gs.Round = 1
}

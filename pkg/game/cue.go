package game

// Cue 音效提示类型
// 播放是即发即弃的，不保证在下一次触发前播放完毕
type Cue int

const (
	// CuePlayerFire 玩家开火
	CuePlayerFire Cue = iota
	// CueAlienFire 外星人开火
	CueAlienFire
	// CueAlienHit 外星人被击落
	CueAlienHit
	// CuePlayerHit 玩家被击中
	CuePlayerHit
	// CueBreach 外星人突破防线
	CueBreach
	// CueNewRound 新回合开始
	CueNewRound

	cueCount
)

// AllCues 返回所有音效提示，用于预加载
func AllCues() []Cue {
	cues := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		cues = append(cues, c)
	}
	return cues
}

// String 返回音效提示的资源ID
func (c Cue) String() string {
	switch c {
	case CuePlayerFire:
		return "SOUND_PLAYER_FIRE"
	case CueAlienFire:
		return "SOUND_ALIEN_FIRE"
	case CueAlienHit:
		return "SOUND_ALIEN_HIT"
	case CuePlayerHit:
		return "SOUND_PLAYER_HIT"
	case CueBreach:
		return "SOUND_BREACH"
	case CueNewRound:
		return "SOUND_NEW_ROUND"
	default:
		return "SOUND_UNKNOWN"
	}
}

// CuePlayer 音效播放协作者
// 由平台层实现（Ebitengine 音频或终端蜂鸣）
type CuePlayer interface {
	PlayCue(cue Cue)
}

// NopCuePlayer 不播放任何声音
type NopCuePlayer struct{}

// PlayCue 实现 CuePlayer
func (NopCuePlayer) PlayCue(Cue) {}

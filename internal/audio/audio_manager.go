// Package audio 在 Ebitengine 音频上下文中播放合成的提示音
package audio

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/invaders/internal/synth"
	"github.com/decker502/invaders/pkg/game"
)

// DefaultSoundVolume 默认音效音量
const DefaultSoundVolume = 0.8

// AudioManager 音频管理器
// 启动时把所有提示音合成为 PCM，按资源ID缓存播放器。
// 同一提示音再次触发时从头播放，会打断上一次尚未结束的播放。
type AudioManager struct {
	context     *audio.Context
	pcm         map[string][]byte        // 资源ID -> PCM 数据
	players     map[string]*audio.Player // 资源ID -> 播放器
	soundVolume float64
	muted       bool
}

// NewAudioManager 创建音频管理器并合成全部提示音
//
// 参数：
//   - ctx: Ebitengine 音频上下文，采样率必须为 synth.SampleRate
//   - muted: 是否静音
func NewAudioManager(ctx *audio.Context, muted bool) (*AudioManager, error) {
	if ctx.SampleRate() != int(synth.SampleRate) {
		return nil, fmt.Errorf("audio context sample rate %d, want %d", ctx.SampleRate(), int(synth.SampleRate))
	}

	bank, err := loadCueBank()
	if err != nil {
		return nil, err
	}

	am := &AudioManager{
		context:     ctx,
		pcm:         bank,
		players:     make(map[string]*audio.Player, len(bank)),
		soundVolume: DefaultSoundVolume,
		muted:       muted,
	}
	log.Printf("[AudioManager] Synthesized %d cues (muted: %v)", len(bank), muted)
	return am, nil
}

// loadCueBank 合成所有提示音
func loadCueBank() (map[string][]byte, error) {
	bank := make(map[string][]byte)
	for _, cue := range game.AllCues() {
		pcm, err := synth.CuePCM(cue)
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize %s: %w", cue, err)
		}
		bank[cue.String()] = pcm
	}
	return bank, nil
}

// PlayCue 实现 game.CuePlayer
func (am *AudioManager) PlayCue(cue game.Cue) {
	am.PlaySound(cue.String())
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.muted {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.soundVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// SetSoundVolume 设置音效音量 (0.0 ~ 1.0)
func (am *AudioManager) SetSoundVolume(volume float64) {
	am.soundVolume = max(0, min(1, volume))
	for _, player := range am.players {
		player.SetVolume(am.soundVolume)
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.soundVolume
}

// AdjustSoundVolume 按增量调节音量，返回调节后的音量
func (am *AudioManager) AdjustSoundVolume(delta float64) float64 {
	am.SetSoundVolume(am.soundVolume + delta)
	return am.GetSoundVolume()
}

// SetMuted 切换静音
func (am *AudioManager) SetMuted(muted bool) {
	am.muted = muted
	if muted {
		for _, player := range am.players {
			player.Pause()
		}
	}
}

// IsMuted 是否静音
func (am *AudioManager) IsMuted() bool {
	return am.muted
}

// getSoundPlayer 获取或创建音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.players[soundID]; exists {
		return player
	}

	pcm, exists := am.pcm[soundID]
	if !exists {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	player := am.context.NewPlayerFromBytes(pcm)
	am.players[soundID] = player
	return player
}

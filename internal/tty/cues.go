package tty

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/decker502/invaders/internal/synth"
	"github.com/decker502/invaders/pkg/game"
)

// SpeakerCues 通过系统音频设备播放合成的提示音
type SpeakerCues struct {
	buffers map[game.Cue]*beep.Buffer
}

// NewSpeakerCues 合成提示音并初始化 speaker
func NewSpeakerCues() (*SpeakerCues, error) {
	buffers, err := newCueBuffers()
	if err != nil {
		return nil, err
	}
	if err := speaker.Init(synth.SampleRate, synth.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}
	log.Printf("[Audio] Speaker initialized with %d cues", len(buffers))
	return &SpeakerCues{buffers: buffers}, nil
}

func newCueBuffers() (map[game.Cue]*beep.Buffer, error) {
	buffers := make(map[game.Cue]*beep.Buffer)
	for _, cue := range game.AllCues() {
		buf, err := synth.CueBuffer(cue)
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize %s: %w", cue, err)
		}
		buffers[cue] = buf
	}
	return buffers, nil
}

// PlayCue 实现 game.CuePlayer
func (c *SpeakerCues) PlayCue(cue game.Cue) {
	buf, ok := c.buffers[cue]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Close 释放音频设备
func (c *SpeakerCues) Close() {
	speaker.Close()
}

// BellCues 没有音频设备时的替代：只对扣命事件响铃
type BellCues struct {
	screen tcell.Screen
}

// NewBellCues 创建终端响铃提示
func NewBellCues(screen tcell.Screen) *BellCues {
	return &BellCues{screen: screen}
}

// PlayCue 实现 game.CuePlayer
func (b *BellCues) PlayCue(cue game.Cue) {
	switch cue {
	case game.CuePlayerHit, game.CueBreach:
		if err := b.screen.Beep(); err != nil {
			log.Printf("[Audio] Beep failed: %v", err)
		}
	}
}

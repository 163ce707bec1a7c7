package synth

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/decker502/invaders/pkg/game"
)

// 新回合提示音的琶音音高 (C5 E5 G5 C6)
var newRoundNotes = []float64{523.25, 659.25, 783.99, 1046.50}

const newRoundNoteDuration = 90 * time.Millisecond

// gain 按线性倍数缩放音量
func gain(s beep.Streamer, factor float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: factor - 1}
}

// CueStreamer 返回提示音对应的一次性音频流
// 返回的流只能播放一次，需要重复播放时请重新调用或使用 Buffer
func CueStreamer(cue game.Cue) (beep.Streamer, error) {
	switch cue {
	case game.CuePlayerFire:
		// 高音下扫的激光声
		osc := NewSweep(WaveSquare, 1400, 400, 120*time.Millisecond, SampleRate)
		return gain(NewEnvelope(osc, 120*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, SampleRate), 0.25), nil

	case game.CueAlienFire:
		osc := NewSweep(WaveSaw, 320, 140, 150*time.Millisecond, SampleRate)
		return gain(NewEnvelope(osc, 150*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, SampleRate), 0.2), nil

	case game.CueAlienHit:
		noise := NewSweep(WaveNoise, 0, 0, 180*time.Millisecond, SampleRate)
		return gain(NewEnvelope(noise, 180*time.Millisecond, time.Millisecond, 150*time.Millisecond, SampleRate), 0.3), nil

	case game.CuePlayerHit:
		noise := NewEnvelope(NewSweep(WaveNoise, 1, 1, 400*time.Millisecond, SampleRate),
			400*time.Millisecond, time.Millisecond, 350*time.Millisecond, SampleRate)
		thump := NewEnvelope(NewSweep(WaveSquare, 110, 55, 400*time.Millisecond, SampleRate),
			400*time.Millisecond, time.Millisecond, 300*time.Millisecond, SampleRate)
		return beep.Mix(gain(noise, 0.3), gain(thump, 0.2)), nil

	case game.CueBreach:
		osc := NewSweep(WaveSquare, 440, 110, 700*time.Millisecond, SampleRate)
		return gain(NewEnvelope(osc, 700*time.Millisecond, 10*time.Millisecond, 200*time.Millisecond, SampleRate), 0.25), nil

	case game.CueNewRound:
		notes := make([]beep.Streamer, 0, len(newRoundNotes))
		for _, freq := range newRoundNotes {
			tone, err := generators.SineTone(SampleRate, freq)
			if err != nil {
				return nil, fmt.Errorf("failed to create tone %.2fHz: %w", freq, err)
			}
			shaped := NewEnvelope(beep.Take(SampleRate.N(newRoundNoteDuration), tone),
				newRoundNoteDuration, 5*time.Millisecond, 40*time.Millisecond, SampleRate)
			notes = append(notes, gain(shaped, 0.3))
		}
		return beep.Seq(notes...), nil
	}

	return nil, fmt.Errorf("unknown cue %d", int(cue))
}

// CueBuffer 把提示音合成进可重复播放的 Buffer
func CueBuffer(cue game.Cue) (*beep.Buffer, error) {
	s, err := CueStreamer(cue)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(Format)
	buf.Append(s)
	return buf, nil
}

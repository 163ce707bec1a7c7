// Package synth 用 beep 合成游戏音效
//
// 游戏不附带任何音频文件，所有提示音都在启动时由振荡器、包络和扫频合成。
// 合成结果既可以作为 beep.Streamer 直接交给 speaker 播放（终端前端），
// 也可以渲染成 16 位小端立体声 PCM 交给 Ebitengine 的 audio 包（窗口前端）。
package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate 合成与播放使用的采样率
// 与 Ebitengine audio.Context 的采样率保持一致
const SampleRate = beep.SampleRate(48000)

// Waveform 振荡器波形
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep 线性扫频振荡器
// 频率在 duration 内从 from 线性变化到 to，结束后流终止
type sweep struct {
	wave     Waveform
	from, to float64
	rate     beep.SampleRate
	total    int
	pos      int
	phase    float64
	noise    *rand.Rand
}

// NewSweep 创建扫频振荡器，from == to 时即为固定频率
func NewSweep(wave Waveform, from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	s := &sweep{
		wave:  wave,
		from:  from,
		to:    to,
		rate:  rate,
		total: rate.N(duration),
	}
	if wave == WaveNoise {
		// 固定种子，保证每次合成的音效一致
		s.noise = rand.New(rand.NewSource(int64(from*1000) + int64(to)))
	}
	return s
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}

		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)

		var v float64
		switch s.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case WaveSaw:
			v = 2*s.phase - 1
		case WaveNoise:
			v = s.noise.Float64()*2 - 1
		}

		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope 线性起音/释音包络
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope 给流加上起音和释音，total 之后截断
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if remaining := e.total - e.pos; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.pos >= releaseStart {
			vol = math.Min(vol, float64(e.total-e.pos)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

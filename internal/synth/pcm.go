package synth

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"

	"github.com/decker502/invaders/pkg/game"
)

// Format 渲染 PCM 的格式：16 位立体声
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// RenderPCM 把流渲染为 16 位小端立体声 PCM
// 这是 Ebitengine audio 包接受的原始格式
func RenderPCM(s beep.Streamer) []byte {
	var out []byte
	chunk := make([][2]float64, 512)
	for {
		n, ok := s.Stream(chunk)
		for _, frame := range chunk[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// CuePCM 合成并渲染一个提示音
func CuePCM(cue game.Cue) ([]byte, error) {
	s, err := CueStreamer(cue)
	if err != nil {
		return nil, err
	}
	return RenderPCM(s), nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

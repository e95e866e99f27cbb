package tts

import (
	"context"
	"math"
)

const (
	mockSampleRate     = 24000
	mockSamplesPerChar = 240 // 10ms of tone per character
	mockToneHz         = 440
)

// mockEngine produces a quiet sine tone sized by the input text instead of
// calling a real backend. It keeps dry runs and tests fully offline while
// still exercising the whole chunk, pad and file pipeline.
type mockEngine struct{}

func newMockEngine() Engine {
	return mockEngine{}
}

func (mockEngine) Name() string         { return "mock" }
func (mockEngine) SampleRate() int      { return mockSampleRate }
func (mockEngine) DefaultVoice() string { return "tone" }

func (mockEngine) Synthesize(ctx context.Context, text, voice string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	samples := make([]float32, runeLen(text)*mockSamplesPerChar)
	for i := range samples {
		samples[i] = float32(0.2 * math.Sin(2*math.Pi*mockToneHz*float64(i)/mockSampleRate))
	}
	return samples, nil
}

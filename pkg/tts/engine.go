// Package tts renders per-speaker chapter text into WAV files through a
// pluggable speech synthesis engine.
package tts

import (
	"context"
	"fmt"

	"github.com/jromero88/Shadow-Slave-audiobook/pkg/project"
)

// Engine synthesizes speech one chunk at a time. Samples come back as mono
// float32 in [-1, 1] at the engine's fixed native rate, so results from
// separate calls concatenate without resampling.
type Engine interface {
	Name() string
	SampleRate() int
	DefaultVoice() string
	Synthesize(ctx context.Context, text, voice string) ([]float32, error)
}

// NewEngine builds the engine selected in settings.
func NewEngine(settings project.Settings) (Engine, error) {
	switch settings.Engine {
	case "openai":
		return newOpenAIEngine(settings)
	case "bark":
		return newBarkEngine(settings), nil
	case "deepgram":
		return newDeepgramEngine(settings)
	case "mock":
		return newMockEngine(), nil
	}
	return nil, fmt.Errorf("unknown engine %q (expected openai, bark, deepgram or mock)", settings.Engine)
}

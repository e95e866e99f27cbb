package tts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jromero88/Shadow-Slave-audiobook/pkg/project"
)

func TestNewEngineSelection(t *testing.T) {
	eng, err := NewEngine(project.Settings{Engine: "mock"})
	require.NoError(t, err)
	require.Equal(t, "mock", eng.Name())

	eng, err = NewEngine(project.Settings{Engine: "bark", BarkURL: "http://localhost:5000"})
	require.NoError(t, err)
	require.Equal(t, "bark", eng.Name())
	require.Equal(t, "v2/en_speaker_0", eng.DefaultVoice())
	require.Equal(t, 24000, eng.SampleRate())

	_, err = NewEngine(project.Settings{Engine: "openai"})
	require.Error(t, err, "openai engine needs an API key")

	_, err = NewEngine(project.Settings{Engine: "deepgram"})
	require.Error(t, err, "deepgram engine needs an API key")

	_, err = NewEngine(project.Settings{Engine: "espeak"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "espeak")
}

func TestMockEngineSynthesize(t *testing.T) {
	eng := newMockEngine()
	samples, err := eng.Synthesize(context.Background(), "abcd", "tone")
	require.NoError(t, err)
	require.Len(t, samples, 4*mockSamplesPerChar)
	for _, s := range samples {
		require.LessOrEqual(t, s, float32(0.2))
		require.GreaterOrEqual(t, s, float32(-0.2))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = eng.Synthesize(ctx, "abcd", "tone")
	require.ErrorIs(t, err, context.Canceled)
}

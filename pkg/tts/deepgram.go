package tts

import (
	"context"
	"fmt"
	"os"

	api "github.com/deepgram/deepgram-go-sdk/pkg/api/speak/v1/rest"
	"github.com/deepgram/deepgram-go-sdk/pkg/client/interfaces"
	client "github.com/deepgram/deepgram-go-sdk/pkg/client/speak"

	"github.com/jromero88/Shadow-Slave-audiobook/pkg/project"
)

// deepgramSampleRate is the linear16 rate requested from the speak API.
const deepgramSampleRate = 24000

// deepgramEngine drives the Aura speak API. The voice identifier is the
// Aura model name, e.g. aura-hera-en.
type deepgramEngine struct {
	speak *api.Client
}

func newDeepgramEngine(settings project.Settings) (Engine, error) {
	if settings.DeepgramKey == "" {
		return nil, fmt.Errorf("DEEPGRAM_API_KEY is not set")
	}
	client.InitWithDefault()
	c := client.NewREST(settings.DeepgramKey, &interfaces.ClientOptions{})
	return &deepgramEngine{speak: api.New(c)}, nil
}

func (e *deepgramEngine) Name() string         { return "deepgram" }
func (e *deepgramEngine) SampleRate() int      { return deepgramSampleRate }
func (e *deepgramEngine) DefaultVoice() string { return "aura-hera-en" }

// Synthesize round-trips through a temp file because the SDK's save call is
// its stable way of fetching a complete audio body.
func (e *deepgramEngine) Synthesize(ctx context.Context, text, voice string) ([]float32, error) {
	options := &interfaces.SpeakOptions{
		Model:      voice,
		Encoding:   "linear16",
		Container:  "wav",
		SampleRate: deepgramSampleRate,
	}

	tmp, err := os.CreateTemp("", "audiobook_dg_*.wav")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpName)

	if _, err := e.speak.ToSave(ctx, tmpName, text, options); err != nil {
		return nil, fmt.Errorf("speech generation failed: %w", err)
	}

	data, err := os.ReadFile(tmpName)
	if err != nil {
		return nil, fmt.Errorf("failed to read speech output: %w", err)
	}
	samples, _, err := DecodeWAV(data)
	if err != nil {
		return nil, err
	}
	return samples, nil
}

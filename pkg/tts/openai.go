package tts

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"

	"github.com/jromero88/Shadow-Slave-audiobook/pkg/project"
)

// openaiSampleRate is the fixed rate of the speech endpoint's WAV output.
const openaiSampleRate = 24000

type openaiEngine struct {
	client *openai.Client
	model  string
	speed  float64
}

func newOpenAIEngine(settings project.Settings) (Engine, error) {
	if settings.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	return &openaiEngine{
		client: openai.NewClient(settings.OpenAIKey),
		model:  settings.OpenAIModel,
		speed:  settings.SpeechSpeed,
	}, nil
}

func (e *openaiEngine) Name() string         { return "openai" }
func (e *openaiEngine) SampleRate() int      { return openaiSampleRate }
func (e *openaiEngine) DefaultVoice() string { return "alloy" }

func (e *openaiEngine) Synthesize(ctx context.Context, text, voice string) ([]float32, error) {
	request := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(e.model),
		ResponseFormat: openai.SpeechResponseFormatWav,
		Voice:          openai.SpeechVoice(voice),
		Input:          text,
		Speed:          e.speed,
	}

	resp, err := e.client.CreateSpeech(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("speech generation failed: %w", err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read speech response: %w", err)
	}
	samples, _, err := DecodeWAV(data)
	if err != nil {
		return nil, err
	}
	return samples, nil
}

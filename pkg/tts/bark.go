package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jromero88/Shadow-Slave-audiobook/pkg/project"
)

// barkSampleRate is Bark's fixed output rate.
const barkSampleRate = 24000

// barkEngine talks to a local Bark server. The voice identifier is the
// history prompt, e.g. v2/en_speaker_0.
type barkEngine struct {
	baseURL string
	client  *http.Client
}

type barkRequest struct {
	Text          string `json:"text"`
	HistoryPrompt string `json:"history_prompt"`
}

func newBarkEngine(settings project.Settings) Engine {
	return &barkEngine{
		baseURL: settings.BarkURL,
		client:  &http.Client{Timeout: settings.HTTPTimeout},
	}
}

func (e *barkEngine) Name() string         { return "bark" }
func (e *barkEngine) SampleRate() int      { return barkSampleRate }
func (e *barkEngine) DefaultVoice() string { return "v2/en_speaker_0" }

func (e *barkEngine) Synthesize(ctx context.Context, text, voice string) ([]float32, error) {
	body, err := json.Marshal(barkRequest{Text: text, HistoryPrompt: voice})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &statusCodeError{StatusCode: resp.StatusCode, Message: string(data)}
	}

	samples, _, err := DecodeWAV(data)
	if err != nil {
		return nil, err
	}
	return samples, nil
}

// statusCodeError reports an HTTP failure from a synthesis backend.
type statusCodeError struct {
	StatusCode int
	Message    string
}

func (e *statusCodeError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Message)
}

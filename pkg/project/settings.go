package project

import (
	"time"

	"github.com/spf13/viper"
)

// Settings carries every tunable the pipeline reads. They are resolved from
// the environment once at startup so no other package consults global state
// on its own.
type Settings struct {
	Engine        string // openai, bark, deepgram or mock
	MaxChunkChars int    // soft ceiling on characters per synthesis call
	SpeechSpeed   float64
	OpenAIModel   string
	OpenAIKey     string
	DeepgramKey   string
	BarkURL       string
	HTTPTimeout   time.Duration
}

// LoadSettings reads the AUDIOBOOK_* configuration with working defaults
// for everything except API keys, which stay empty until set.
func LoadSettings() Settings {
	s := Settings{
		Engine:        viper.GetString("AUDIOBOOK_ENGINE"),
		MaxChunkChars: viper.GetInt("AUDIOBOOK_MAX_CHARS"),
		SpeechSpeed:   viper.GetFloat64("AUDIOBOOK_SPEECH_SPEED"),
		OpenAIModel:   viper.GetString("AUDIOBOOK_OPENAI_MODEL"),
		OpenAIKey:     viper.GetString("OPENAI_API_KEY"),
		DeepgramKey:   viper.GetString("DEEPGRAM_API_KEY"),
		BarkURL:       viper.GetString("AUDIOBOOK_BARK_URL"),
		HTTPTimeout:   5 * time.Minute,
	}
	if s.Engine == "" {
		s.Engine = "bark"
	}
	if s.MaxChunkChars == 0 {
		s.MaxChunkChars = 550
	}
	if s.SpeechSpeed == 0 {
		s.SpeechSpeed = 1.0
	}
	if s.OpenAIModel == "" {
		s.OpenAIModel = "gpt-4o-mini-tts"
	}
	if s.BarkURL == "" {
		s.BarkURL = "http://localhost:5000"
	}
	return s
}

package project

import (
	"encoding/json"
	"fmt"
	"os"
)

// VoiceMap assigns engine voice identifiers to display speaker names. The
// file is curated by hand and never rewritten by the pipeline.
type VoiceMap map[string]string

// LoadVoiceMap reads voices_map.json. A missing file is an error, not an
// empty map.
func LoadVoiceMap(path string) (VoiceMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("voice map not found at %s: %w", path, err)
	}
	var m VoiceMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return m, nil
}

// Resolve returns the voice mapped to a display name, or fallback when the
// speaker has no usable entry.
func (m VoiceMap) Resolve(displayName, fallback string) string {
	if v, ok := m[displayName]; ok && v != "" {
		return v
	}
	return fallback
}

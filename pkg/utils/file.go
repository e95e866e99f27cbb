package utils

import (
	"strings"
	"unicode"
)

// SafeSpeakerName converts a display speaker name into a directory-safe
// form. Letters, digits, spaces, dashes and underscores survive, spaces
// become underscores. A name that collapses to nothing maps to "Unknown"
// so rows without a usable speaker still get a folder.
func SafeSpeakerName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	safe := strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
	if safe == "" {
		return "Unknown"
	}
	return safe
}

// DisplaySpeakerName is the reverse mapping used when walking speaker
// folders: underscores back to spaces for voice map lookups.
func DisplaySpeakerName(dirName string) string {
	return strings.ReplaceAll(dirName, "_", " ")
}

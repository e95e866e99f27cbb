package tts

import (
	"regexp"
	"strings"
)

// Speech engines stumble over pictographs and zero-width characters that
// ride along in novel text pasted from the web, so the text is scrubbed
// before chunking.
var pictographs = regexp.MustCompile(`[\x{1F000}-\x{1FAFF}]|[\x{2600}-\x{27BF}]|[\x{2190}-\x{21FF}]|[\x{FE00}-\x{FE0F}]|[\x{2B00}-\x{2BFF}]`)

var zeroWidth = strings.NewReplacer(
	"\u200B", " ", // zero width space
	"\u200C", " ", // zero width non-joiner
	"\u200D", " ", // zero width joiner
	"\uFEFF", " ", // zero width no-break space
)

// CleanForSpeech removes characters that trip up synthesis and collapses
// the whitespace left behind.
func CleanForSpeech(text string) string {
	cleaned := pictographs.ReplaceAllString(text, "")
	cleaned = zeroWidth.Replace(cleaned)
	return normalizeWhitespace(cleaned)
}

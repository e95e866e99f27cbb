package tts

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// sentenceBoundary matches the end of a sentence-like fragment: terminal
// punctuation, an optional closing quote or bracket, then whitespace.
var sentenceBoundary = regexp.MustCompile(`[.!?…]+["'”’)\]]?\s+`)

// SplitIntoChunks breaks text into sentence-respecting chunks of at most
// maxChars characters. Whitespace is collapsed first. The limit is a soft
// target: a single sentence longer than maxChars passes through as its own
// oversized chunk, never cut mid-sentence.
func SplitIntoChunks(text string, maxChars int) []string {
	text = normalizeWhitespace(text)
	if text == "" {
		return nil
	}

	var chunks []string
	cur := ""
	for _, part := range splitSentences(text) {
		if cur != "" && runeLen(cur)+runeLen(part) > maxChars {
			chunks = append(chunks, strings.TrimSpace(cur))
			cur = ""
		}
		cur += part
	}
	if trimmed := strings.TrimSpace(cur); trimmed != "" {
		chunks = append(chunks, trimmed)
	}
	return chunks
}

// splitSentences cuts normalized text into fragments that each keep their
// terminal punctuation and trailing separator. Text after the last boundary
// becomes the final fragment. A space is appended before matching so a
// sentence ending flush at the end of input still counts as a boundary.
func splitSentences(text string) []string {
	var parts []string
	start := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(text+" ", -1) {
		end := loc[1]
		if end > len(text) {
			end = len(text)
		}
		parts = append(parts, text[start:end])
		start = end
	}
	if start < len(text) {
		parts = append(parts, text[start:])
	}
	return parts
}

// normalizeWhitespace collapses whitespace runs into single spaces and
// trims the ends, so newlines in the source text never influence chunking.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

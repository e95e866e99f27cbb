package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Truncate shortens s to at most max characters, replacing the tail with a
// single ellipsis rune. Counting is by rune so multi-byte text never gets
// cut mid-character.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	head := strings.TrimRightFunc(string(r[:max-3]), unicode.IsSpace)
	return head + "…"
}

package script

import (
	"fmt"
	"os"
	"strings"
)

// RebuildSFXCues writes the sound-effect cue sheet: one section per chapter
// holding a line for every row that carries an effect. Chapters without
// effects get no section. Returns the number of cue lines written.
func RebuildSFXCues(chapters Chapters, path string) (int, error) {
	var lines []string
	count := 0
	for _, ch := range chapters {
		var cues []string
		for _, r := range ch.Rows {
			if sfx := strings.TrimSpace(r.SFX); sfx != "" {
				cues = append(cues, fmt.Sprintf("%d. %s — %s", r.Index, r.Scene, sfx))
			}
		}
		if len(cues) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("=== %s ===", ch.Stem))
		lines = append(lines, cues...)
		lines = append(lines, "")
		count += len(cues)
	}
	return count, writeLines(path, lines)
}

// writeLines joins lines with newlines, drops the trailing blank separator
// and ends the file with a single newline. An empty list writes an empty
// file.
func writeLines(path string, lines []string) error {
	content := strings.TrimRight(strings.Join(lines, "\n"), "\n")
	if content != "" {
		content += "\n"
	}
	return os.WriteFile(path, []byte(content), 0644)
}

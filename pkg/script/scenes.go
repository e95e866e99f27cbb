package script

import (
	"fmt"
	"strings"

	"github.com/jromero88/Shadow-Slave-audiobook/pkg/utils"
)

// sceneBeatMax caps how much of a line the scene index quotes.
const sceneBeatMax = 140

// RebuildSceneIndex writes one line per scene in first-appearance order,
// grouped by chapter. Each scene is summarized by the first narrator line
// inside it, falling back to the line of whatever row introduced the scene.
// Returns the number of lines written, headers and separators included.
func RebuildSceneIndex(chapters Chapters, path string) (int, error) {
	var out []string
	for _, ch := range chapters {
		seen := make(map[string]struct{})
		var entries []string
		for _, r := range ch.Rows {
			if _, ok := seen[r.Scene]; ok {
				continue
			}
			seen[r.Scene] = struct{}{}
			beat := sceneBeat(ch.Rows, r)
			entries = append(entries, fmt.Sprintf("%s — %s", r.Scene, utils.Truncate(beat, sceneBeatMax)))
		}
		if len(entries) == 0 {
			continue
		}
		out = append(out, fmt.Sprintf("=== %s ===", ch.Stem))
		out = append(out, entries...)
		out = append(out, "")
	}
	return len(out), writeLines(path, out)
}

// sceneBeat picks the representative line for the scene that first appears
// at row r.
func sceneBeat(rows Rows, r Row) string {
	for _, x := range rows {
		if x.Scene == r.Scene && strings.EqualFold(x.Speaker, "narrator") {
			return x.Line
		}
	}
	return r.Line
}

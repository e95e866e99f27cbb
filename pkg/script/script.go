// Package script loads chapter master scripts and regenerates every derived
// artifact: the cast list, the sound-effect cue sheet, the scene index, the
// per-speaker exports and the README progress table.
package script

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Row is one spoken or cued unit of a chapter master script.
type Row struct {
	Index   int    `json:"index"`
	Scene   string `json:"scene"`
	Speaker string `json:"speaker"`
	Line    string `json:"line"`
	Emotion string `json:"emotion"`
	SFX     string `json:"sfx"`
	Timing  string `json:"timing"`
	Notes   string `json:"notes"`
}

type Rows []Row

// requiredFields lists every key a script row must carry, even when the
// value is empty. A row missing any of them invalidates the whole file.
var requiredFields = []string{"index", "scene", "speaker", "line", "emotion", "sfx", "timing", "notes"}

// loadRows reads one master script and validates that it is a JSON array
// whose rows all carry the required fields. name is the bare filename used
// in error messages.
func loadRows(path, name string) (Rows, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: expected a top-level JSON array of rows: %w", name, err)
	}
	for pos, fields := range raw {
		var missing []string
		for _, key := range requiredFields {
			if _, ok := fields[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("%s: row %s is missing required field(s): %s",
				name, rowLabel(fields, pos), strings.Join(missing, ", "))
		}
	}

	var rows Rows
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return rows, nil
}

// rowLabel names a row by its own index field when it has one, else by its
// position in the file.
func rowLabel(fields map[string]json.RawMessage, pos int) string {
	if raw, ok := fields["index"]; ok {
		return string(raw)
	}
	return fmt.Sprintf("#%d", pos)
}

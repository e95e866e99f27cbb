package script

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jromero88/Shadow-Slave-audiobook/pkg/utils"
)

// CastEntry pairs a speaker with the voice note curated by hand in
// cast_master.json. Notes survive every rebuild.
type CastEntry struct {
	Name      string `json:"name"`
	VoiceNote string `json:"voice_note"`
}

// LoadCast reads cast_master.json.
func LoadCast(castPath string) ([]CastEntry, error) {
	data, err := os.ReadFile(castPath)
	if err != nil {
		return nil, fmt.Errorf("cast file not found: %s: %w", castPath, err)
	}
	var cast []CastEntry
	if err := json.Unmarshal(data, &cast); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", castPath, err)
	}
	return cast, nil
}

// RebuildCast regenerates castPath from the speakers seen across all
// chapters, carrying voice notes over from the previous version of the
// file. Returns the number of entries written.
func RebuildCast(chapters Chapters, castPath string) (int, error) {
	speakers := make(map[string]struct{})
	for _, ch := range chapters {
		for _, r := range ch.Rows {
			if sp := strings.TrimSpace(r.Speaker); sp != "" {
				speakers[sp] = struct{}{}
			}
		}
	}

	// A missing or mangled previous cast file just means no notes carry
	// over; the rebuild itself must still happen.
	notes := make(map[string]string)
	if old, err := LoadCast(castPath); err == nil {
		for _, entry := range old {
			notes[entry.Name] = entry.VoiceNote
		}
	}

	names := make([]string, 0, len(speakers))
	for name := range speakers {
		names = append(names, name)
	}
	sortCaseInsensitive(names)

	merged := make([]CastEntry, 0, len(names))
	for _, name := range names {
		merged = append(merged, CastEntry{Name: name, VoiceNote: notes[name]})
	}
	if err := utils.WriteJSON(castPath, merged); err != nil {
		return 0, err
	}
	return len(merged), nil
}

// sortCaseInsensitive orders names the way a person scanning the cast list
// expects, with the original spelling as a deterministic tiebreak.
func sortCaseInsensitive(names []string) {
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
}

package script

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jromero88/Shadow-Slave-audiobook/pkg/ssml"
	"github.com/jromero88/Shadow-Slave-audiobook/pkg/utils"
)

// chapterGapBreak separates chapters inside a speaker's aggregate markup.
const chapterGapBreak = "300ms"

// aggItem is one exported line destined for a speaker's _ALL files.
type aggItem struct {
	prefix string
	stem   string
	index  int
	line   string
	timing string
}

// speakerBundle collects a speaker's lines across every chapter. display
// keeps the spelling of the first appearance; speakers whose names sanitize
// to the same folder share one bundle.
type speakerBundle struct {
	display string
	items   []aggItem
}

// ExportSpeakers writes the per-chapter text and markup files for every
// speaker, then the _ALL aggregates spanning all chapters. Returns the
// number of speaker folders written.
func ExportSpeakers(chapters Chapters, voicesDir string) (int, error) {
	if err := os.MkdirAll(voicesDir, 0755); err != nil {
		return 0, err
	}

	bundles := make(map[string]*speakerBundle)
	var order []string

	for _, ch := range chapters {
		bySpeaker := make(map[string]Rows)
		var speakers []string
		for _, r := range ch.Rows {
			if _, ok := bySpeaker[r.Speaker]; !ok {
				speakers = append(speakers, r.Speaker)
			}
			bySpeaker[r.Speaker] = append(bySpeaker[r.Speaker], r)
		}

		for _, speaker := range speakers {
			rows := append(Rows(nil), bySpeaker[speaker]...)
			sort.SliceStable(rows, func(i, j int) bool { return rows[i].Index < rows[j].Index })

			safe := utils.SafeSpeakerName(speaker)
			dir := filepath.Join(voicesDir, safe)
			if err := os.MkdirAll(dir, 0755); err != nil {
				return 0, err
			}
			if err := writeSpeakerText(filepath.Join(dir, ch.Stem+".txt"), rows); err != nil {
				return 0, err
			}
			if err := writeSpeakerMarkup(filepath.Join(dir, ch.Stem+".ssml"), speaker, rows); err != nil {
				return 0, err
			}

			bundle, ok := bundles[safe]
			if !ok {
				bundle = &speakerBundle{display: speaker}
				bundles[safe] = bundle
				order = append(order, safe)
			}
			for _, r := range rows {
				bundle.items = append(bundle.items, aggItem{
					prefix: ch.Prefix,
					stem:   ch.Stem,
					index:  r.Index,
					line:   r.Line,
					timing: r.Timing,
				})
			}
		}
	}

	for _, safe := range order {
		bundle := bundles[safe]
		sort.SliceStable(bundle.items, func(i, j int) bool {
			if bundle.items[i].prefix != bundle.items[j].prefix {
				return bundle.items[i].prefix < bundle.items[j].prefix
			}
			return bundle.items[i].index < bundle.items[j].index
		})
		dir := filepath.Join(voicesDir, safe)
		if err := writeAggregateText(filepath.Join(dir, "_ALL.txt"), bundle.items); err != nil {
			return 0, err
		}
		if err := writeAggregateMarkup(filepath.Join(dir, "_ALL.ssml"), bundle.display, bundle.items); err != nil {
			return 0, err
		}
	}
	return len(order), nil
}

// writeSpeakerText writes one line of dialogue per line of text, in index
// order, ready for a synthesis pass.
func writeSpeakerText(path string, rows Rows) error {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(r.Line)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

func writeSpeakerMarkup(path, speaker string, rows Rows) error {
	doc := ssml.NewBuilder("speak")
	doc.Open("voice", "name", speaker)
	for _, r := range rows {
		doc.Leaf("prosody", r.Line, "rate", "medium")
		if r.Timing != "" {
			doc.Empty("break", "time", r.Timing)
		}
	}
	doc.Close()
	out, err := doc.String()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out), 0644)
}

// writeAggregateText concatenates a speaker's lines across chapters with a
// === chapter stem === header wherever a new chapter begins.
func writeAggregateText(path string, items []aggItem) error {
	var b strings.Builder
	lastPrefix := ""
	for _, it := range items {
		if it.prefix != lastPrefix {
			fmt.Fprintf(&b, "\n=== %s ===\n", it.stem)
			lastPrefix = it.prefix
		}
		b.WriteString(it.line)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

// writeAggregateMarkup mirrors the aggregate text file as markup, with a
// fixed pause at chapter boundaries instead of headers.
func writeAggregateMarkup(path, display string, items []aggItem) error {
	doc := ssml.NewBuilder("speak")
	doc.Open("voice", "name", display)
	lastPrefix := ""
	for _, it := range items {
		if it.prefix != lastPrefix {
			if lastPrefix != "" {
				doc.Empty("break", "time", chapterGapBreak)
			}
			lastPrefix = it.prefix
		}
		doc.Leaf("prosody", it.line, "rate", "medium")
		if it.timing != "" {
			doc.Empty("break", "time", it.timing)
		}
	}
	doc.Close()
	out, err := doc.String()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out), 0644)
}

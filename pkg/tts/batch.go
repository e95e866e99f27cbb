package tts

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jromero88/Shadow-Slave-audiobook/pkg/project"
	"github.com/jromero88/Shadow-Slave-audiobook/pkg/utils"
)

// BatchOptions narrows and tunes one rendering pass.
type BatchOptions struct {
	Speakers  []string // speaker folder names; empty means all
	Chapters  []string // chapter stems; empty means all
	Overwrite bool
	MaxChars  int
}

// BatchSummary counts what a rendering pass did.
type BatchSummary struct {
	Processed int // files examined after filtering
	Rendered  int // output files written
	Skipped   int // outputs that already existed
	Warned    int // inputs with nothing to speak
	Failed    int // files where no chunk rendered
}

// renderOutcome classifies one file's pass through the renderer.
type renderOutcome int

const (
	outcomeRendered renderOutcome = iota
	outcomeEmpty
	outcomeFailed
)

// RenderAll walks voices/<Speaker>/*.txt and renders one WAV per text file
// into audio_raw/, resolving each speaker's voice through the voice map.
// Existing outputs are kept unless overwrite is set. Chunk failures never
// stop the walk; only I/O errors on the project tree and context
// cancellation do.
func RenderAll(ctx context.Context, p project.Project, eng Engine, voices project.VoiceMap, opts BatchOptions) (BatchSummary, error) {
	var sum BatchSummary

	speakerDirs, err := listDirs(p.VoicesDir())
	if err != nil {
		return sum, fmt.Errorf("voices directory not found: %s (run sync first): %w", p.VoicesDir(), err)
	}
	if err := os.MkdirAll(p.AudioRawDir(), 0755); err != nil {
		return sum, err
	}

	speakerFilter := toSet(opts.Speakers)
	chapterFilter := toSet(opts.Chapters)

	for _, dirName := range speakerDirs {
		if speakerFilter != nil && !speakerFilter[dirName] {
			continue
		}
		display := utils.DisplaySpeakerName(dirName)
		voice := voices.Resolve(display, eng.DefaultVoice())

		names, err := listTextFiles(filepath.Join(p.VoicesDir(), dirName))
		if err != nil {
			return sum, err
		}
		for _, name := range names {
			if err := ctx.Err(); err != nil {
				return sum, err
			}
			stem := strings.TrimSuffix(name, ".txt")
			if chapterFilter != nil && !chapterFilter[stem] {
				continue
			}
			sum.Processed++

			outPath := filepath.Join(p.AudioRawDir(), fmt.Sprintf("%s_%s.wav", stem, dirName))
			if !opts.Overwrite {
				if _, err := os.Stat(outPath); err == nil {
					log.Printf("[skip] %s (exists)", filepath.Base(outPath))
					sum.Skipped++
					continue
				}
			}

			outcome, err := renderFile(ctx, eng, filepath.Join(p.VoicesDir(), dirName, name), outPath, display, voice, opts.MaxChars)
			if err != nil {
				return sum, err
			}
			switch outcome {
			case outcomeRendered:
				sum.Rendered++
			case outcomeEmpty:
				sum.Warned++
			case outcomeFailed:
				sum.Failed++
			}
		}
	}

	log.Printf("[summary] processed files: %d", sum.Processed)
	return sum, nil
}

// renderFile takes one speaker text file to a finished WAV. Soft problems
// (empty input, every chunk failing) come back as an outcome; the error
// return is reserved for the project tree being unreadable or unwritable.
func renderFile(ctx context.Context, eng Engine, txtPath, outPath, display, voice string, maxChars int) (renderOutcome, error) {
	raw, err := os.ReadFile(txtPath)
	if err != nil {
		return outcomeFailed, err
	}
	text := CleanForSpeech(string(raw))
	if text == "" {
		log.Printf("[warn] empty text: %s", txtPath)
		return outcomeEmpty, nil
	}
	chunks := SplitIntoChunks(text, maxChars)
	if len(chunks) == 0 {
		log.Printf("[warn] nothing to render: %s", txtPath)
		return outcomeEmpty, nil
	}

	log.Printf("[render] %s — speaker=%s voice=%s chunks=%d", filepath.Base(outPath), display, voice, len(chunks))
	res := RenderChunks(ctx, eng, chunks, voice)
	if err := ctx.Err(); err != nil {
		// an interrupted file must not exist as a done marker; the next
		// run renders it from scratch
		return outcomeFailed, err
	}
	if res.Rendered == 0 {
		log.Printf("[error] no chunk rendered for %s", txtPath)
		return outcomeFailed, nil
	}

	if err := WriteWAV(outPath, res.Samples, res.SampleRate); err != nil {
		return outcomeFailed, err
	}
	log.Printf("[done] %s", outPath)
	return outcomeRendered, nil
}

func listDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sortFolded(names)
	return names, nil
}

func listTextFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
			names = append(names, e.Name())
		}
	}
	sortFolded(names)
	return names, nil
}

// sortFolded orders names case-insensitively so runs walk the tree in the
// order a directory listing shows it, with the raw name as tiebreak.
func sortFolded(names []string) {
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

package script

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// chapterFilePattern matches master script filenames like
// 01_chapter1_master.json, capturing the two-digit ordering prefix and the
// chapter number.
var chapterFilePattern = regexp.MustCompile(`(?i)^(\d{2})_chapter(\d+)_master\.json$`)

// Chapter is one master script file with its rows loaded and validated.
type Chapter struct {
	Path   string
	Name   string // filename, e.g. 01_chapter1_master.json
	Stem   string // section label, e.g. 01_chapter1
	Prefix string // ordering prefix, e.g. "01"
	Number int    // chapter number parsed from the filename
	Rows   Rows
}

type Chapters []Chapter

// LoadChapters discovers every master script under scriptDir and loads and
// validates all of them before returning, so a single broken chapter stops
// the run before any artifact is rewritten. Files that do not match the
// naming pattern are ignored. The result is ordered by filename prefix.
func LoadChapters(scriptDir string) (Chapters, error) {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return nil, fmt.Errorf("script directory not found: %s: %w", scriptDir, err)
	}

	var chapters Chapters
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := chapterFilePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		name := entry.Name()
		path := filepath.Join(scriptDir, name)
		rows, err := loadRows(path, name)
		if err != nil {
			return nil, err
		}
		number, _ := strconv.Atoi(m[2])
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		stem = strings.TrimSuffix(stem, "_master")
		chapters = append(chapters, Chapter{
			Path:   path,
			Name:   name,
			Stem:   stem,
			Prefix: m[1],
			Number: number,
			Rows:   rows,
		})
	}

	sort.Slice(chapters, func(i, j int) bool {
		if chapters[i].Prefix != chapters[j].Prefix {
			return chapters[i].Prefix < chapters[j].Prefix
		}
		return chapters[i].Name < chapters[j].Name
	})
	return chapters, nil
}

// SceneCount returns the number of distinct scene labels in the chapter.
func (c Chapter) SceneCount() int {
	seen := make(map[string]struct{})
	for _, r := range c.Rows {
		seen[r.Scene] = struct{}{}
	}
	return len(seen)
}

package script

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jromero88/Shadow-Slave-audiobook/pkg/utils"
)

// progressHeader is the heading the tracker table lives under. The replace
// logic keys on it, so renaming it in the README detaches the section.
const progressHeader = "## 📊 Chapter Progress Tracker"

const defaultReadme = "# Shadow Slave Audiobook – Production Notes\n"

// chapterTitleMax caps the chapter label quoted in the tracker table.
const chapterTitleMax = 40

// UpdateReadmeProgress rebuilds the chapter progress table and splices it
// into the README, replacing the existing section when present and
// appending one otherwise. Script and audio statuses are advanced by hand
// after recording sessions, so the rebuilt rows carry fixed placeholders.
func UpdateReadmeProgress(chapters Chapters, readmePath string) error {
	type entry struct {
		number int
		title  string
		notes  string
	}
	entries := make([]entry, 0, len(chapters))
	for _, ch := range chapters {
		label := ""
		if len(ch.Rows) > 0 {
			label = ch.Rows[0].Scene
		}
		if label == "" {
			label = fmt.Sprintf("Chapter %d", ch.Number)
		}
		entries = append(entries, entry{
			number: ch.Number,
			title:  fmt.Sprintf("Ch%d: %s", ch.Number, utils.Truncate(label, chapterTitleMax)),
			notes:  fmt.Sprintf("%d scene(s) scripted", ch.SceneCount()),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].number < entries[j].number })

	var table strings.Builder
	table.WriteString("| Chapter | Script | Audio Raw | Audio Final | Status Notes |\n")
	table.WriteString("|---------|--------|-----------|-------------|--------------|\n")
	for _, e := range entries {
		fmt.Fprintf(&table, "| %s | ✅ Scripted | ⏳ Pending | ❌ Not Mixed | %s |\n", e.title, e.notes)
	}

	text := defaultReadme
	if data, err := os.ReadFile(readmePath); err == nil {
		text = string(data)
	}
	updated := replaceSection(text, progressHeader, "\n"+table.String())
	return os.WriteFile(readmePath, []byte(updated), 0644)
}

// replaceSection swaps the body of the markdown section that starts with
// header, up to the next second-level heading, leaving the rest of the
// document byte-for-byte untouched. A document without the section gets it
// appended. Appending and replacing at end of file produce identical bytes,
// so rewriting an unchanged document is a no-op.
func replaceSection(text, header, body string) string {
	start := strings.Index(text, header)
	if start < 0 {
		return strings.TrimRight(text, " \t\r\n") + "\n\n" + header + body
	}
	tail := text[start+len(header):]
	next := strings.Index(tail, "\n## ")
	if next < 0 {
		return text[:start] + header + body
	}
	return text[:start] + header + body + tail[next+1:]
}

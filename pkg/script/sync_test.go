package script

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jromero88/Shadow-Slave-audiobook/pkg/project"
)

const chapterOne = `[
  {"index": 1, "scene": "Awakening", "speaker": "Narrator", "line": "He opened his eyes to darkness.", "emotion": "calm", "sfx": "wind howling", "timing": "600ms", "notes": ""},
  {"index": 2, "scene": "Awakening", "speaker": "Sunny", "line": "Not again.", "emotion": "dry", "sfx": "", "timing": "", "notes": "whisper"},
  {"index": 3, "scene": "The Chains", "speaker": "Sunny", "line": "Chains. Why is it always chains?", "emotion": "tired", "sfx": "metal rattling", "timing": "400ms", "notes": ""}
]`

const chapterTwo = `[
  {"index": 1, "scene": "The Shore", "speaker": "Nephis", "line": "Stand up.", "emotion": "cold", "sfx": "", "timing": "", "notes": ""},
  {"index": 2, "scene": "The Shore", "speaker": "Narrator", "line": "The grey waves clawed at the black sand.", "emotion": "", "sfx": "waves", "timing": "300ms", "notes": ""},
  {"index": 3, "scene": "The Shore", "speaker": "Sunny", "line": "Fine.", "emotion": "", "sfx": "", "timing": "", "notes": ""}
]`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	return string(data)
}

func fixtureProject(t *testing.T) project.Project {
	t.Helper()
	p := project.New(t.TempDir())
	writeFile(t, filepath.Join(p.ScriptDir(), "01_chapter1_master.json"), chapterOne)
	writeFile(t, filepath.Join(p.ScriptDir(), "02_chapter2_master.json"), chapterTwo)
	return p
}

func TestSyncBuildsAllArtifacts(t *testing.T) {
	p := fixtureProject(t)

	sum, err := Sync(p)
	require.NoError(t, err)
	require.Equal(t, 2, sum.Chapters)
	require.Equal(t, 3, sum.CastSize)
	require.Equal(t, 3, sum.SFXCues)
	require.Equal(t, 3, sum.Speakers)

	cast, err := LoadCast(p.CastPath())
	require.NoError(t, err)
	require.Equal(t, []CastEntry{
		{Name: "Narrator"},
		{Name: "Nephis"},
		{Name: "Sunny"},
	}, cast)

	require.Equal(t,
		"=== 01_chapter1 ===\n"+
			"1. Awakening — wind howling\n"+
			"3. The Chains — metal rattling\n"+
			"\n"+
			"=== 02_chapter2 ===\n"+
			"2. The Shore — waves\n",
		readFile(t, p.SFXCuesPath()))

	require.Equal(t,
		"=== 01_chapter1 ===\n"+
			"Awakening — He opened his eyes to darkness.\n"+
			"The Chains — Chains. Why is it always chains?\n"+
			"\n"+
			"=== 02_chapter2 ===\n"+
			"The Shore — The grey waves clawed at the black sand.\n",
		readFile(t, p.SceneIndexPath()))

	readme := readFile(t, p.ReadmePath())
	require.Contains(t, readme, "# Shadow Slave Audiobook – Production Notes")
	require.Contains(t, readme, "## 📊 Chapter Progress Tracker")
	require.Contains(t, readme, "| Ch1: Awakening | ✅ Scripted | ⏳ Pending | ❌ Not Mixed | 2 scene(s) scripted |")
	require.Contains(t, readme, "| Ch2: The Shore | ✅ Scripted | ⏳ Pending | ❌ Not Mixed | 1 scene(s) scripted |")
}

func TestSyncSpeakerExports(t *testing.T) {
	p := fixtureProject(t)
	_, err := Sync(p)
	require.NoError(t, err)

	require.Equal(t, "He opened his eyes to darkness.\n",
		readFile(t, filepath.Join(p.VoicesDir(), "Narrator", "01_chapter1.txt")))
	require.Equal(t, "Not again.\nChains. Why is it always chains?\n",
		readFile(t, filepath.Join(p.VoicesDir(), "Sunny", "01_chapter1.txt")))

	require.Equal(t,
		"\n=== 01_chapter1 ===\n"+
			"Not again.\n"+
			"Chains. Why is it always chains?\n"+
			"\n=== 02_chapter2 ===\n"+
			"Fine.\n",
		readFile(t, filepath.Join(p.VoicesDir(), "Sunny", "_ALL.txt")))

	markup := readFile(t, filepath.Join(p.VoicesDir(), "Narrator", "01_chapter1.ssml"))
	require.Contains(t, markup, `<voice name="Narrator">`)
	require.Contains(t, markup, `<prosody rate="medium">He opened his eyes to darkness.</prosody>`)
	require.Contains(t, markup, `<break time="600ms"/>`)

	all := readFile(t, filepath.Join(p.VoicesDir(), "Narrator", "_ALL.ssml"))
	require.Contains(t, all, `<break time="300ms"/>`, "chapter boundary pause")
	require.Contains(t, all, "The grey waves clawed at the black sand.")
}

func TestSyncIsIdempotent(t *testing.T) {
	p := fixtureProject(t)
	_, err := Sync(p)
	require.NoError(t, err)

	snapshot := map[string]string{}
	paths := []string{
		p.CastPath(),
		p.SFXCuesPath(),
		p.SceneIndexPath(),
		p.ReadmePath(),
		filepath.Join(p.VoicesDir(), "Sunny", "_ALL.txt"),
		filepath.Join(p.VoicesDir(), "Sunny", "_ALL.ssml"),
		filepath.Join(p.VoicesDir(), "Narrator", "01_chapter1.txt"),
	}
	for _, path := range paths {
		snapshot[path] = readFile(t, path)
	}

	_, err = Sync(p)
	require.NoError(t, err)
	for _, path := range paths {
		require.Equal(t, snapshot[path], readFile(t, path), "second sync changed %s", path)
	}
}

func TestSyncKeepsVoiceNotes(t *testing.T) {
	p := fixtureProject(t)
	_, err := Sync(p)
	require.NoError(t, err)

	// hand-edit a note the way a producer would between syncs
	cast, err := LoadCast(p.CastPath())
	require.NoError(t, err)
	for i := range cast {
		if cast[i].Name == "Sunny" {
			cast[i].VoiceNote = "low, raspy, deadpan"
		}
	}
	writeFile(t, p.CastPath(), mustJSON(t, cast))

	_, err = Sync(p)
	require.NoError(t, err)

	cast, err = LoadCast(p.CastPath())
	require.NoError(t, err)
	notes := map[string]string{}
	for _, entry := range cast {
		notes[entry.Name] = entry.VoiceNote
	}
	require.Equal(t, "low, raspy, deadpan", notes["Sunny"])
	require.Equal(t, "", notes["Narrator"])
}

func TestSyncAbortsBeforeWritingAnything(t *testing.T) {
	p := project.New(t.TempDir())
	writeFile(t, filepath.Join(p.ScriptDir(), "01_chapter1_master.json"), chapterOne)
	// second chapter is broken: row 2 lost its timing field
	writeFile(t, filepath.Join(p.ScriptDir(), "02_chapter2_master.json"), `[
  {"index": 1, "scene": "The Shore", "speaker": "Nephis", "line": "Stand up.", "emotion": "", "sfx": "", "timing": "", "notes": ""},
  {"index": 2, "scene": "The Shore", "speaker": "Narrator", "line": "Waves.", "emotion": "", "sfx": "", "notes": ""}
]`)

	_, err := Sync(p)
	require.Error(t, err)
	require.Contains(t, err.Error(), "02_chapter2_master.json")
	require.Contains(t, err.Error(), "timing")
	require.Contains(t, err.Error(), "row 2")

	_, statErr := os.Stat(p.CastPath())
	require.True(t, os.IsNotExist(statErr), "cast must not be written on a failed sync")
	_, statErr = os.Stat(p.VoicesDir())
	require.True(t, os.IsNotExist(statErr), "exports must not be written on a failed sync")
	_, statErr = os.Stat(p.ReadmePath())
	require.True(t, os.IsNotExist(statErr), "README must not be touched on a failed sync")
}

func TestSyncWithoutChapters(t *testing.T) {
	p := project.New(t.TempDir())
	require.NoError(t, os.MkdirAll(p.ScriptDir(), 0755))
	writeFile(t, filepath.Join(p.ScriptDir(), "notes.txt"), "not a chapter")

	sum, err := Sync(p)
	require.NoError(t, err)
	require.Equal(t, Summary{}, sum)

	_, statErr := os.Stat(p.CastPath())
	require.True(t, os.IsNotExist(statErr))
}

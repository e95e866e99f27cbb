// Package project locates the files of one audiobook project tree and loads
// its configuration. Everything the pipeline reads or writes hangs off a
// single root directory so the whole project stays relocatable.
package project

import "path/filepath"

// Project resolves well-known paths under one project root.
type Project struct {
	Root string
}

func New(root string) Project {
	return Project{Root: root}
}

// ScriptDir holds the chapter master scripts plus the generated cast list
// and cue sheet.
func (p Project) ScriptDir() string {
	return filepath.Join(p.Root, "script")
}

func (p Project) CastPath() string {
	return filepath.Join(p.ScriptDir(), "cast_master.json")
}

func (p Project) SFXCuesPath() string {
	return filepath.Join(p.ScriptDir(), "sfx_cues.txt")
}

func (p Project) SceneIndexPath() string {
	return filepath.Join(p.Root, "scene_index.txt")
}

// VoicesDir holds one folder per speaker with per-chapter text and markup
// exports.
func (p Project) VoicesDir() string {
	return filepath.Join(p.Root, "voices")
}

// AudioRawDir receives rendered chapter WAV files before mixing.
func (p Project) AudioRawDir() string {
	return filepath.Join(p.Root, "audio_raw")
}

// VoiceMapPath is the hand-maintained speaker-to-voice assignment file.
func (p Project) VoiceMapPath() string {
	return filepath.Join(p.Root, "voices_map.json")
}

func (p Project) ReadmePath() string {
	return filepath.Join(p.Root, "README_production_notes.md")
}

package script

import "github.com/jromero88/Shadow-Slave-audiobook/pkg/project"

// Summary reports what a sync pass rebuilt.
type Summary struct {
	Chapters   int
	CastSize   int
	SFXCues    int
	SceneLines int
	Speakers   int
}

// Sync loads and validates every chapter master script, then regenerates
// all derived artifacts. Loading happens up front: a validation failure in
// any chapter aborts before a single artifact is touched.
func Sync(p project.Project) (Summary, error) {
	chapters, err := LoadChapters(p.ScriptDir())
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{Chapters: len(chapters)}
	if len(chapters) == 0 {
		return sum, nil
	}

	if sum.CastSize, err = RebuildCast(chapters, p.CastPath()); err != nil {
		return sum, err
	}
	if sum.SFXCues, err = RebuildSFXCues(chapters, p.SFXCuesPath()); err != nil {
		return sum, err
	}
	if sum.SceneLines, err = RebuildSceneIndex(chapters, p.SceneIndexPath()); err != nil {
		return sum, err
	}
	if sum.Speakers, err = ExportSpeakers(chapters, p.VoicesDir()); err != nil {
		return sum, err
	}
	if err = UpdateReadmeProgress(chapters, p.ReadmePath()); err != nil {
		return sum, err
	}
	return sum, nil
}

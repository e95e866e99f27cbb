package pkg

import (
	"fmt"
	"log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jromero88/Shadow-Slave-audiobook/pkg/project"
	"github.com/jromero88/Shadow-Slave-audiobook/pkg/script"
	"github.com/jromero88/Shadow-Slave-audiobook/pkg/tts"
)

// NewCommand assembles the audiobook CLI.
func NewCommand() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:           "audiobook",
		Short:         "Shadow Slave audiobook production pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("root", ".", "project root directory")

	cmd.AddCommand(
		newSyncCommand(),
		newRenderCommand(),
		newSpeakersCommand(),
	)
	return cmd, nil
}

func newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Rebuild cast, cue sheet, scene index, speaker exports and the progress table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			proj := project.New(root)

			sum, err := script.Sync(proj)
			if err != nil {
				return err
			}
			if sum.Chapters == 0 {
				log.Printf("No chapter master files found in %s", proj.ScriptDir())
				return nil
			}

			log.Printf("Rebuilt cast_master.json with %d speaker(s)", sum.CastSize)
			log.Printf("Rebuilt sfx_cues.txt with %d cue line(s)", sum.SFXCues)
			log.Printf("Rebuilt scene_index.txt with %d line(s)", sum.SceneLines)
			log.Printf("Exported per-chapter and aggregate files for %d speaker(s) in %s", sum.Speakers, proj.VoicesDir())
			log.Println("Updated README progress tracker")
			color.Green("Sync complete: %d chapter(s)", sum.Chapters)
			return nil
		},
	}
}

func newRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render per-speaker chapter text into WAV files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			speakers, _ := cmd.Flags().GetStringArray("speaker")
			chapters, _ := cmd.Flags().GetStringArray("chapter")
			overwrite, _ := cmd.Flags().GetBool("overwrite")
			maxChars, _ := cmd.Flags().GetInt("max-chars")

			proj := project.New(root)
			settings := project.LoadSettings()
			if maxChars > 0 {
				settings.MaxChunkChars = maxChars
			}

			eng, err := tts.NewEngine(settings)
			if err != nil {
				return err
			}
			log.Printf("[init] engine=%s voice=%s max-chars=%d", eng.Name(), eng.DefaultVoice(), settings.MaxChunkChars)

			voices, err := project.LoadVoiceMap(proj.VoiceMapPath())
			if err != nil {
				return err
			}

			sum, err := tts.RenderAll(cmd.Context(), proj, eng, voices, tts.BatchOptions{
				Speakers:  speakers,
				Chapters:  chapters,
				Overwrite: overwrite,
				MaxChars:  settings.MaxChunkChars,
			})
			if err != nil {
				return err
			}

			if sum.Failed > 0 {
				color.Red("%d file(s) produced no audio", sum.Failed)
			}
			color.Green("Rendered %d file(s), skipped %d existing", sum.Rendered, sum.Skipped)
			return nil
		},
	}
	cmd.Flags().StringArray("speaker", nil, "only this speaker folder, e.g. Narrator (repeatable)")
	cmd.Flags().StringArray("chapter", nil, "only this chapter stem, e.g. 01_chapter1 (repeatable)")
	cmd.Flags().Bool("overwrite", false, "re-render outputs that already exist")
	cmd.Flags().Int("max-chars", 0, "max characters per synthesis chunk")
	return cmd
}

func newSpeakersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "speakers",
		Short: "List the cast with voice notes and voice map assignments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			proj := project.New(root)

			cast, err := script.LoadCast(proj.CastPath())
			if err != nil {
				return err
			}
			voices, err := project.LoadVoiceMap(proj.VoiceMapPath())
			if err != nil {
				return err
			}

			unmapped := 0
			for _, entry := range cast {
				voice := voices.Resolve(entry.Name, "")
				if voice == "" {
					unmapped++
					voice = "(no voice mapped)"
				}
				fmt.Printf("%-24s %-22s %s\n", entry.Name, voice, entry.VoiceNote)
			}
			if unmapped > 0 {
				color.Yellow("%d speaker(s) missing a voices_map.json entry", unmapped)
			}
			return nil
		},
	}
}

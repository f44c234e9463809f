package main

import (
	"errors"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/lionheart/internal/application/game"
	"github.com/younwookim/lionheart/internal/application/scene/playing"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

func newRunCmd(opts *options) *cobra.Command {
	var (
		stage  string
		record string
		watch  bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play a stage in a window",
		Long: `Opens a window and plays a stage from its first checkpoint.

Arrows move, Up jumps, Space swings the sword, Esc pauses.
Hold Tab to show the collision probes when debug probes are enabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger()
			loader, cfg, err := opts.load()
			if err != nil {
				return err
			}

			sceneOpts := []playing.Option{playing.WithRate(opts.rate)}
			if record != "" {
				sceneOpts = append(sceneOpts, playing.WithRecording(record))
			}
			if watch {
				if opts.configDir == "" {
					return errors.New("--watch needs --config")
				}
				w, err := config.NewWatcher(logger, opts.configDir, filepath.Join(opts.configDir, "stages"))
				if err != nil {
					return err
				}
				sceneOpts = append(sceneOpts, playing.WithWatcher(w))
			}

			scene, err := playing.New(loader, cfg, stage, logger, sceneOpts...)
			if err != nil {
				return err
			}

			settings := cfg.Physics.Settings()
			g := game.New(scene, settings.ScreenWidth, settings.ScreenHeight, settings.Rate, logger)
			defer g.Close()

			ebiten.SetWindowSize(settings.ScreenWidth*settings.Scale, settings.ScreenHeight*settings.Scale)
			ebiten.SetWindowTitle("Lionheart")
			return ebiten.RunGame(g)
		},
	}
	cmd.Flags().StringVar(&stage, "stage", "demo", "Stage to play")
	cmd.Flags().StringVar(&record, "record", "", "Record input to file (e.g., --record replay.json)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload configs and the stage when their files change")
	return cmd
}

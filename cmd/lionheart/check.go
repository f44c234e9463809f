package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/lionheart/internal/application/feature"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configs and every stage",
		Long:  `Loads the configs and builds every stage with its entities, reporting the stages that fail.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, cfg, err := opts.load()
			if err != nil {
				return err
			}
			names, err := loader.ListStages()
			if err != nil {
				return err
			}

			logger := opts.logger()
			if !opts.debug {
				logger.SetLevel(log.WarnLevel)
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, name := range names {
				if err := checkStage(loader, cfg, name, logger); err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s: %v\n", name, err)
					continue
				}
				fmt.Fprintf(out, "ok   %s\n", name)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d stages failed", failed, len(names))
			}
			return nil
		},
	}
}

// checkStage builds a stage the way the game does, placing every entity.
func checkStage(loader *config.Loader, cfg *config.GameConfig, name string, logger *log.Logger) error {
	stageCfg, err := loader.LoadStage(name)
	if err != nil {
		return err
	}
	_, err = feature.Setup(cfg, stageCfg, nil, nil, logger)
	return err
}

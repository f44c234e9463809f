package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/younwookim/lionheart/internal/application/feature"
	"github.com/younwookim/lionheart/internal/application/replay"
	"github.com/younwookim/lionheart/internal/application/system"
)

func newSimCmd(opts *options) *cobra.Command {
	var (
		stage      string
		ticks      int
		replayFile string
		hold       []string
	)
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Simulate a stage without a window",
		Long: `Runs a stage headless and prints where the player ended up.

The input comes from a recorded replay, or from buttons held for a number
of ticks. A replay brings its own stage and rate unless --stage is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger()

			var replayer *replay.Replayer
			if replayFile != "" {
				data, err := replay.LoadReplay(replayFile)
				if err != nil {
					return err
				}
				replayer = replay.NewReplayer(*data)
				if !cmd.Flags().Changed("stage") && replayer.Stage() != "" {
					stage = replayer.Stage()
				}
				if opts.rate == 0 {
					opts.rate = replayer.Rate()
				}
			}

			loader, cfg, err := opts.load()
			if err != nil {
				return err
			}
			stageCfg, err := loader.LoadStage(stage)
			if err != nil {
				return err
			}
			sim, err := feature.Setup(cfg, stageCfg, nil, nil, logger)
			if err != nil {
				return err
			}

			step := func(in system.InputState) error {
				if sim.Outcome() != system.Running {
					return nil
				}
				return sim.Step(in, 1)
			}

			if replayer != nil {
				err = replayer.Run(step)
			} else {
				held, perr := parseHold(hold)
				if perr != nil {
					return perr
				}
				for i := 0; i < ticks && err == nil; i++ {
					err = step(held)
				}
			}
			if err != nil {
				return err
			}

			printResult(cmd, stage, sim)
			return nil
		},
	}
	cmd.Flags().StringVar(&stage, "stage", "demo", "Stage to simulate")
	cmd.Flags().IntVar(&ticks, "ticks", 600, "Ticks to simulate without a replay")
	cmd.Flags().StringVar(&replayFile, "replay", "", "Replay file to feed")
	cmd.Flags().StringSliceVar(&hold, "hold", nil, "Buttons held every tick: left,right,up,down,fire")
	return cmd
}

func parseHold(buttons []string) (system.InputState, error) {
	var in system.InputState
	for _, b := range buttons {
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "left":
			in.Left = true
		case "right":
			in.Right = true
		case "up":
			in.Up = true
		case "down":
			in.Down = true
		case "fire":
			in.Fire = true
		default:
			return in, fmt.Errorf("unknown button %q", b)
		}
	}
	return in, nil
}

func printResult(cmd *cobra.Command, stage string, sim *system.Simulation) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "stage:      %s\n", stage)
	fmt.Fprintf(out, "ticks:      %d\n", sim.Ticks())
	fmt.Fprintf(out, "outcome:    %s\n", sim.Outcome())
	cp := sim.Checkpoint()
	fmt.Fprintf(out, "checkpoint: %d,%d\n", cp.TX, cp.TY)
	if p, ok := sim.World.Player(); ok {
		x, y := p.Model.Position()
		fmt.Fprintf(out, "player:     %.2f,%.2f %s life %d\n", x, y, p.States.Current().ID(), p.Model.Life.Current)
	}
	fmt.Fprintf(out, "monsters:   %d\n", sim.World.CountMonsters())
}

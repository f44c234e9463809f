// lionheart runs the Lionheart stages, in a window or headless.
//
// Usage:
//
//	lionheart run [--stage demo] [--record file] [--watch]   - Play a stage
//	lionheart sim [--stage demo] [--ticks n] [--replay file] - Simulate without a window
//	lionheart check                                          - Validate every stage
//
// Global flags:
//
//	--config <dir>  - Read configs from a directory instead of the embedded ones
//	--rate <tps>    - Override the simulation rate
//	--debug         - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// options are the global flags shared by every command.
type options struct {
	configDir string
	rate      int
	debug     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "lionheart",
		Short: "Lionheart - side-scrolling action on a tile map",
		Long: `Lionheart runs the stages of a side-scrolling action game: a knight
walking, jumping, climbing lianas and fighting with a sword.

Examples:
  lionheart run
  lionheart run --stage demo --record run.json
  lionheart sim --replay run.json
  lionheart check --config ./configs`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configDir, "config", "", "Config directory (default: embedded configs)")
	root.PersistentFlags().IntVar(&opts.rate, "rate", 0, "Simulation ticks per second (default: from physics.json)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newSimCmd(opts))
	root.AddCommand(newCheckCmd(opts))
	return root
}

func (o *options) logger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "lionheart",
	})
	if o.debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

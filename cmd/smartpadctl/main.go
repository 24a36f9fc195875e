// smartpadctl drives a MidiPlus SmartPad from the command line: it plays
// animation files, pushes stored layouts, and manages the layout library.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"smartpad/internal/config"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	cmd := &cobra.Command{
		Use:           "smartpadctl",
		Short:         "Control a MidiPlus SmartPad RGB pad grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if ctx.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			ctx.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&ctx.port, "port", "", "MIDI output port name (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newPortsCommand(ctx),
		newPlayCommand(ctx),
		newShowCommand(ctx),
		newClearCommand(ctx),
		newLayoutsCommand(ctx),
	)
	return cmd
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"smartpad/internal/animation"
	"smartpad/internal/player"
)

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var from int
	var once bool

	cmd := &cobra.Command{
		Use:   "play <animation.json>",
		Short: "Play an animation file on the device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := animation.NewSequence("")
			if err := seq.LoadFile(args[0]); err != nil {
				return err
			}
			if once {
				seq.SetLoop(false)
			}

			session, transport, err := ctx.connect()
			if err != nil {
				return err
			}
			defer transport.Close()
			defer session.Disconnect(true)

			fmt.Fprintf(cmd.OutOrStdout(), "Playing %q (%d frames, %dms/frame) on %s\n",
				seq.Name(), seq.FrameCount(), seq.DelayMS(), session.PortName())

			sigCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err = player.New(seq, session).Play(sigCtx, from)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVar(&from, "from", -1, "frame index to start from")
	cmd.Flags().BoolVar(&once, "once", false, "play through once even if the file loops")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Turn off every pad on the device",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, transport, err := ctx.connect()
			if err != nil {
				return err
			}
			defer transport.Close()
			defer session.Disconnect(false)

			if err := session.Clear(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared all pads on %s\n", session.PortName())
			return nil
		},
	}
}

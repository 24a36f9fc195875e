package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smartpad/internal/palette"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <layout name>",
		Short: "Display a saved layout on the device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.layoutStore()
			if err != nil {
				return err
			}
			names, err := store.Load(args[0])
			if err != nil {
				return err
			}
			colors := make([]palette.Color, len(names))
			for i, n := range names {
				colors[i] = palette.Normalize(n)
			}

			session, transport, err := ctx.connect()
			if err != nil {
				return err
			}
			defer transport.Close()
			// Leave the layout lit; close without clearing.
			defer session.Disconnect(false)

			if err := session.SendGrid(colors); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Displayed layout %q on %s\n", args[0], session.PortName())
			return nil
		},
	}
}

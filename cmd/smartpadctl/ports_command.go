package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"smartpad/internal/smartpad"
)

func newPortsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List MIDI output ports",
		RunE: func(cmd *cobra.Command, args []string) error {
			transport := smartpad.NewMIDITransport()
			defer transport.Close()

			ports, err := transport.Ports()
			if err != nil {
				return fmt.Errorf("list ports: %w", err)
			}
			if len(ports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No MIDI output ports found.")
				return nil
			}

			detected := ctx.selector()(ports)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"#", "Port", "Detected"})
			for i, name := range ports {
				mark := ""
				if name == detected {
					mark = "*"
				}
				t.AppendRow(table.Row{i, name, mark})
			}
			t.Render()
			return nil
		},
	}
}

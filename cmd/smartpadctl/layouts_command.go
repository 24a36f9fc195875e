package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"smartpad/internal/animation"
	"smartpad/internal/layouts"
)

func newLayoutsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "Manage the saved layout library",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(
		newLayoutsListCommand(ctx),
		newLayoutsSaveCommand(ctx),
		newLayoutsDeleteCommand(ctx),
	)
	return cmd
}

func newLayoutsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved layouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.layoutStore()
			if err != nil {
				return err
			}
			names, err := store.Names()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved layouts.")
				return nil
			}
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Layout", "Key"})
			for _, name := range names {
				t.AppendRow(table.Row{name, layouts.Key(name)})
			}
			t.Render()
			return nil
		},
	}
}

func newLayoutsSaveCommand(ctx *commandContext) *cobra.Command {
	var frame int

	cmd := &cobra.Command{
		Use:   "save <name> <animation.json>",
		Short: "Save one frame of an animation as a named layout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := animation.NewSequence("")
			if err := seq.LoadFile(args[1]); err != nil {
				return err
			}
			f := seq.Frame(frame)
			if f == nil {
				return fmt.Errorf("animation %q has no frame %d (count %d)",
					seq.Name(), frame, seq.FrameCount())
			}

			store, err := ctx.layoutStore()
			if err != nil {
				return err
			}
			if err := store.Save(args[0], f.Names()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved layout %q (key %s)\n",
				args[0], layouts.Key(args[0]))
			return nil
		},
	}

	cmd.Flags().IntVar(&frame, "frame", 0, "frame index to capture")
	return cmd
}

func newLayoutsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.layoutStore()
			if err != nil {
				return err
			}
			if err := store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted layout %q\n", args[0])
			return nil
		},
	}
}

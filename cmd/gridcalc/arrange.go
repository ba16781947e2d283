package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-grid/internal/render"
)

func newArrangeCmd() *cobra.Command {
	var (
		flags sizeFlags
		stats bool
	)
	cmd := &cobra.Command{
		Use:   "arrange <file>",
		Short: "Arrange a grid and list every frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, size, err := arrange(args[0], flags.size())
			if err != nil {
				return err
			}
			widths, heights := b.Table.Extents()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.Size("arranged", size))
			fmt.Fprintln(out, render.Extents(widths, heights))
			fmt.Fprintln(out, render.Frames(b.Frames()))
			if stats {
				fmt.Fprintln(out, render.Stats(b.Table.Stats()))
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&stats, "stats", false, "print measure and arrange counters")
	return cmd
}

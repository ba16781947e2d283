package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-grid/internal/render"
)

func newMeasureCmd() *cobra.Command {
	var flags sizeFlags
	cmd := &cobra.Command{
		Use:   "measure <file>",
		Short: "Print the natural size of a grid description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := load(args[0])
			if err != nil {
				return err
			}
			available := flags.size()
			natural := b.Table.NaturalSize(available)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.Size("available", available))
			fmt.Fprintln(out, render.Size("natural  ", natural))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/render"
)

func newPreviewCmd() *cobra.Command {
	var flags sizeFlags
	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Draw the arranged grid as outlines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return preview(cmd.OutOrStdout(), args[0], flags.size())
		},
	}
	flags.register(cmd)
	return cmd
}

func preview(out io.Writer, path string, size grid.Size) error {
	b, arranged, err := arrange(path, size)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s %s", filepath.Base(path), arranged)
	fmt.Fprintln(out, render.Preview(title, b.Frames(), arranged))
	return nil
}

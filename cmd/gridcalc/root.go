package main

import (
	"fmt"

	"github.com/spf13/cobra"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/config"
	"github.com/grindlemire/go-grid/internal/debug"
)

// sizeFlags holds the --width/--height pair shared by every subcommand.
// Zero or negative means unbounded.
type sizeFlags struct {
	width, height int
}

func (f *sizeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.width, "width", "W", 0, "available width (0 = unbounded)")
	cmd.Flags().IntVarP(&f.height, "height", "H", 0, "available height (0 = unbounded)")
}

func (f *sizeFlags) size() grid.Size {
	s := grid.Unbounded()
	if f.width > 0 {
		s.Width = f.width
	}
	if f.height > 0 {
		s.Height = f.height
	}
	return s
}

func newRootCmd() *cobra.Command {
	var logPath string

	root := &cobra.Command{
		Use:           "gridcalc",
		Short:         "Measure, arrange and preview grid layouts",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logPath == "" {
				return nil
			}
			if err := debug.Init(logPath); err != nil {
				return fmt.Errorf("failed to enable logging: %w", err)
			}
			debug.Log("gridcalc %s %v", cmd.Name(), args)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logPath == "" {
				return nil
			}
			return debug.Close()
		},
	}
	root.PersistentFlags().StringVar(&logPath, "log", "", "write debug log lines to this file")

	root.AddCommand(
		newMeasureCmd(),
		newArrangeCmd(),
		newPreviewCmd(),
		newWatchCmd(),
	)
	return root
}

// load reads and builds the description at path.
func load(path string) (*config.Built, error) {
	d, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	b, err := d.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", path, err)
	}
	return b, nil
}

// arrange loads path and arranges it at size. Unbounded axes resolve to the
// natural size.
func arrange(path string, size grid.Size) (*config.Built, grid.Size, error) {
	b, err := load(path)
	if err != nil {
		return nil, grid.Size{}, err
	}
	b.Table.Arrange(size)
	arranged, _ := b.Table.ArrangedSize()
	return b, arranged, nil
}

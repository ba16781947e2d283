package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-grid/internal/debug"
)

// settle is how long to wait after a change before reloading, so editors
// that write in several steps are read once.
const settle = 100 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var flags sizeFlags
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Redraw the preview whenever the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			path := args[0]
			out := cmd.OutOrStdout()
			redraw := func() {
				if err := preview(out, path, flags.size()); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				}
			}

			redraw()
			return watch(ctx, path, redraw)
		},
	}
	flags.register(cmd)
	return cmd
}

// watch calls onChange every time the file at path is written, created or
// renamed into place, until ctx is done. The parent directory is watched so
// that editors replacing the file atomically are still seen.
func watch(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	var lastMod time.Time
	if stat, err := os.Stat(path); err == nil {
		lastMod = stat.ModTime()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			stat, err := os.Stat(path)
			if err != nil {
				continue
			}
			if !stat.ModTime().After(lastMod) {
				continue
			}
			lastMod = stat.ModTime()
			debug.Log("watch: %s changed, reloading", path)

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(settle):
			}
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			debug.Log("watch: %v", err)
		}
	}
}

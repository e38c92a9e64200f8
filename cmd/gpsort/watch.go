package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/repsac/gp-sort-media/internal/fsops"
	"github.com/repsac/gp-sort-media/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and conform new proxy/thumbnail files",
	Long: `Watch a directory and conform LRV and THM files as they appear,
after a short debounce so files are not renamed mid-copy. Runs until
interrupted. Conform failures are logged and watching continues.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: loadConfig,
	RunE:    runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	fi, err := os.Stat(dir)
	if err != nil {
		return fail(err)
	}
	if !fi.IsDir() {
		return fail(fmt.Errorf("%s is not a directory", dir))
	}

	debounce := time.Duration(cfg.WatchDebounceMS) * time.Millisecond
	w, err := watch.New(dir, debounce, fsops.Opts{DryRun: cfg.DryRun}, logger)
	if err != nil {
		return fail(err)
	}

	// Blocks until the signal-notified context is cancelled.
	if err := w.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return fail(err)
	}
	logger.Info("Watch stopped")
	return nil
}

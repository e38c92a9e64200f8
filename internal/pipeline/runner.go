// Package pipeline routes CLI arguments through the sort, conform, and link
// phases and aggregates run statistics.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/repsac/gp-sort-media/internal/conform"
	"github.com/repsac/gp-sort-media/internal/config"
	"github.com/repsac/gp-sort-media/internal/fsops"
	"github.com/repsac/gp-sort-media/internal/linker"
	"github.com/repsac/gp-sort-media/internal/logging"
	"github.com/repsac/gp-sort-media/internal/sorter"
)

// Run processes every path: directories go through the full
// sort-conform-link sequence, individual files through single-file conform.
// The first failure aborts the run; completed renames are not rolled back.
func Run(ctx context.Context, cfg *config.Config, sink logging.Sink, paths []string) (RunStats, error) {
	var stats RunStats

	dirs, files, err := splitInput(paths)
	if err != nil {
		return stats, err
	}

	opts := fsops.Opts{DryRun: cfg.DryRun}

	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if err := sortMedia(dir, cfg, sink, &stats); err != nil {
			return stats, err
		}
		stats.Dirs++
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if _, err := conform.File(file, opts, sink); err != nil {
			return stats, err
		}
		stats.FilesConformed++
	}

	return stats, nil
}

// sortMedia runs the three phases over one media dump directory. Each phase
// starts only after the previous fully completed; the filesystem itself is
// the state carried between them.
func sortMedia(dir string, cfg *config.Config, sink logging.Sink, stats *RunStats) error {
	opts := fsops.Opts{DryRun: cfg.DryRun}

	moved, err := sorter.Sort(dir, sorter.Options{
		IgnoreHidden: cfg.IgnoreHidden,
		DryRun:       cfg.DryRun,
	}, sink)
	stats.Moved += moved
	if err != nil {
		return err
	}

	renamed, err := conform.Folders(dir, opts, sink)
	stats.FoldersRenamed += renamed
	if err != nil {
		return err
	}

	res, err := linker.Link(dir, opts, sink)
	stats.Thumbnails += res.Thumbnails
	stats.Proxies += res.Proxies
	return err
}

// splitInput resolves each argument to an absolute path and classifies it as
// directory or file. Anything else (missing, socket, etc.) is an error.
func splitInput(paths []string) (dirs, files []string, err error) {
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, nil, err
		}
		fi, err := os.Stat(abs)
		if err != nil {
			return nil, nil, fmt.Errorf("unsupported node %q: %w", p, err)
		}
		switch {
		case fi.IsDir():
			dirs = append(dirs, abs)
		case fi.Mode().IsRegular():
			files = append(files, abs)
		default:
			return nil, nil, fmt.Errorf("unsupported node type %q", p)
		}
	}
	return dirs, files, nil
}

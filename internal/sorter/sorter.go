// Package sorter buckets every file in a tree into a sibling directory named
// after its extension.
package sorter

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/repsac/gp-sort-media/internal/fsops"
	"github.com/repsac/gp-sort-media/internal/logging"
	"github.com/repsac/gp-sort-media/internal/naming"
)

// Options controls a sort pass.
type Options struct {
	IgnoreHidden bool // Skip dotfiles and dot-directories (SD-card index junk).
	DryRun       bool
}

// Sort walks root recursively and moves each file into a directory named
// after its lowercased extension, created next to the file's own parent.
// Returns the number of files moved.
//
// Files are collected before any move so freshly created buckets are not
// re-visited. A file without an extension resolves to the empty bucket,
// which is its own parent: it is left in place. Re-running over an
// already-bucketed tree would nest buckets a level deeper and is out of
// scope.
func Sort(root string, opts Options, sink logging.Sink) (int, error) {
	sink.Info("Sorting media in: %s", root)

	files, err := collect(root, opts.IgnoreHidden)
	if err != nil {
		return 0, err
	}

	moved := 0
	for _, path := range files {
		node := naming.NodeFor(path)
		if node.Ext == "" {
			sink.Debug("No extension, leaving in place: %s", path)
			continue
		}

		bucket := filepath.Join(filepath.Dir(path), node.Ext)
		if !opts.DryRun {
			if err := os.MkdirAll(bucket, 0o755); err != nil {
				return moved, err
			}
		}
		if _, err := fsops.MoveInto(path, bucket, fsops.Opts{DryRun: opts.DryRun}, sink); err != nil {
			return moved, err
		}
		moved++
	}
	return moved, nil
}

// collect gathers regular file paths under root, sorted for deterministic
// processing order.
func collect(root string, ignoreHidden bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		hidden := strings.HasPrefix(d.Name(), ".")
		if d.IsDir() {
			if ignoreHidden && hidden && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if ignoreHidden && hidden {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

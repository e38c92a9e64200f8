// Package fsops implements the rename primitives every conform step goes
// through: collision pre-check, progress line through the sink, then the
// filesystem rename.
//
// Renames use os.Rename and are atomic on a single volume. Moving across
// volumes would need copy+delete and is not supported; the collision
// guarantee only holds same-volume. The existence check before the rename is
// a check-then-act window: concurrent external modification of the tree
// during a run is not guarded against.
package fsops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/repsac/gp-sort-media/internal/logging"
)

// CollisionError reports a rename whose destination already exists. Nothing
// has been overwritten or moved when this is returned.
type CollisionError struct {
	Dest string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s already exists", e.Dest)
}

// Opts controls rename behavior.
type Opts struct {
	// DryRun logs the would-be rename and skips the filesystem call.
	// The collision check still runs.
	DryRun bool
}

// RenameFile renames src to dst, failing with *CollisionError if dst exists.
// Returns dst on success.
func RenameFile(src, dst string, opts Opts, sink logging.Sink) (string, error) {
	if _, err := os.Lstat(dst); err == nil {
		return "", &CollisionError{Dest: dst}
	}

	if opts.DryRun {
		sink.Info("[DRY] Would rename %s > %s", src, dst)
		return dst, nil
	}

	sink.Info("Renaming %s > %s", src, dst)
	if err := os.Rename(src, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// RenameFolder renames the directory at src to newName within its parent,
// failing with *CollisionError if the target exists. Returns the new path.
func RenameFolder(src, newName string, opts Opts, sink logging.Sink) (string, error) {
	dst := filepath.Join(filepath.Dir(src), newName)
	if _, err := os.Lstat(dst); err == nil {
		return "", &CollisionError{Dest: dst}
	}

	if opts.DryRun {
		sink.Info("[DRY] Would rename directory %s > %s", src, dst)
		return dst, nil
	}

	sink.Info("Renaming directory %s > %s", src, dst)
	if err := os.Rename(src, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// MoveInto moves src into the directory dir, keeping its base name.
// Fails with *CollisionError if dir already holds an entry by that name.
func MoveInto(src, dir string, opts Opts, sink logging.Sink) (string, error) {
	dst := filepath.Join(dir, filepath.Base(src))

	if _, err := os.Lstat(dst); err == nil {
		return "", &CollisionError{Dest: dst}
	}

	if opts.DryRun {
		sink.Info("[DRY] Would move %s > %s", src, dir)
		return dst, nil
	}

	sink.Info("Moving %s > %s", src, dir)
	if err := os.Rename(src, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// Package conform renames raw camera-firmware names to the canonical
// convention: extension buckets become semantic folders, and individual
// proxy/thumbnail files are renamed by the matching policy rule.
package conform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/repsac/gp-sort-media/internal/fsops"
	"github.com/repsac/gp-sort-media/internal/logging"
	"github.com/repsac/gp-sort-media/internal/naming"
)

// UnsupportedTypeError reports a single-file conform on an extension with no
// handler. The siblings processed before it are not rolled back.
type UnsupportedTypeError struct {
	Ext string // As seen on the file, without the dot.
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf(".%s file support not available", e.Ext)
}

// FileHandler conforms one file in place and returns its new path.
type FileHandler func(path string, opts fsops.Opts, sink logging.Sink) (string, error)

// fileHandlers maps a lowercased extension to its conform handler. An
// explicit table rather than name-based lookup so the supported set is
// visible in one place.
var fileHandlers = map[string]FileHandler{
	"lrv": LRVFile,
	"thm": THMFile,
}

// LRVFile renames a low-res proxy recording to the high-res naming scheme:
// GL012345.LRV becomes GH012345.MP4.
func LRVFile(path string, opts fsops.Opts, sink logging.Sink) (string, error) {
	return applyRule(path, naming.ProxyRule, opts, sink)
}

// THMFile renames a thumbnail to a plain JPG: GH012345.THM becomes
// GH012345.JPG.
func THMFile(path string, opts fsops.Opts, sink logging.Sink) (string, error) {
	return applyRule(path, naming.ThumbnailRule, opts, sink)
}

func applyRule(path string, rule naming.Rule, opts fsops.Opts, sink logging.Sink) (string, error) {
	node := naming.NodeFor(path)
	dst := filepath.Join(filepath.Dir(path), naming.Derive(node.Base, rule))
	return fsops.RenameFile(path, dst, opts, sink)
}

// File conforms a single file by extension. Unsupported extensions fail with
// *UnsupportedTypeError and no filesystem mutation.
func File(path string, opts fsops.Opts, sink logging.Sink) (string, error) {
	node := naming.NodeFor(path)
	handler, ok := fileHandlers[node.Ext]
	if !ok {
		raw := strings.TrimPrefix(filepath.Ext(path), ".")
		return "", &UnsupportedTypeError{Ext: raw}
	}
	return handler(path, opts, sink)
}

// Folders renames the immediate child directories of root whose lowercased
// name is a supported source extension to the canonical folder name
// (mp4 to HIRES, lrv to PROXY, thm to THUMBNAILS). Everything else is
// silently skipped. Returns the number of folders renamed.
func Folders(root string, opts fsops.Opts, sink logging.Sink) (int, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, err
	}

	conformed := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		canonical, ok := naming.CanonicalFolders[strings.ToLower(e.Name())]
		if !ok {
			sink.Debug("Skipping unrecognized folder: %s", e.Name())
			continue
		}
		if _, err := fsops.RenameFolder(filepath.Join(root, e.Name()), canonical, opts, sink); err != nil {
			return conformed, err
		}
		conformed++
	}
	return conformed, nil
}

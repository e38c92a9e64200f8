// Package linker matches proxy and thumbnail files to their high-resolution
// siblings by shared recording index and renames them so all files of one
// recording carry the same stem.
package linker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/repsac/gp-sort-media/internal/fsops"
	"github.com/repsac/gp-sort-media/internal/logging"
	"github.com/repsac/gp-sort-media/internal/naming"
)

// UnmatchedCorrelationError reports a proxy file whose correlation key has no
// counterpart in the HIRES folder. The linking pass stops there; files
// renamed earlier in the pass stay renamed.
type UnmatchedCorrelationError struct {
	File string
	Key  string
}

func (e *UnmatchedCorrelationError) Error() string {
	return fmt.Sprintf("no high-res match for %s (correlation key %q)", e.File, e.Key)
}

// Result counts the renames performed by a linking pass.
type Result struct {
	Thumbnails int
	Proxies    int
}

// Link runs the two linking passes under root. The thumbnail pass renames
// every file in THUMBNAILS with the thumbnail rule. The proxy pass builds the
// correlation table from HIRES and renames every PROXY file to its high-res
// sibling's stem, keeping the proxy extension. Either folder may be absent;
// that pass is then skipped.
func Link(root string, opts fsops.Opts, sink logging.Sink) (Result, error) {
	var res Result

	thumbs, err := linkThumbnails(filepath.Join(root, naming.Thumbnails), opts, sink)
	if err != nil {
		return res, err
	}
	res.Thumbnails = thumbs

	proxies, err := linkProxies(root, opts, sink)
	if err != nil {
		return res, err
	}
	res.Proxies = proxies
	return res, nil
}

func linkThumbnails(dir string, opts fsops.Opts, sink logging.Sink) (int, error) {
	files, ok, err := listFiles(dir)
	if err != nil || !ok {
		return 0, err
	}

	renamed := 0
	for _, path := range files {
		node := naming.NodeFor(path)
		dst := filepath.Join(dir, naming.Derive(node.Base, naming.ThumbnailRule))
		if _, err := fsops.RenameFile(path, dst, opts, sink); err != nil {
			return renamed, err
		}
		renamed++
	}
	return renamed, nil
}

func linkProxies(root string, opts fsops.Opts, sink logging.Sink) (int, error) {
	table, ok, err := buildTable(filepath.Join(root, naming.HiRes), sink)
	if err != nil || !ok {
		return 0, err
	}

	files, ok, err := listFiles(filepath.Join(root, naming.Proxy))
	if err != nil || !ok {
		return 0, err
	}

	renamed := 0
	for _, path := range files {
		node := naming.NodeFor(path)
		key := node.CorrelationKey()
		stem, found := table[key]
		if !found {
			return renamed, &UnmatchedCorrelationError{File: filepath.Base(path), Key: key}
		}

		// Adopt the high-res stem; keep the proxy's own extension.
		dst := filepath.Join(filepath.Dir(path), stem+filepath.Ext(path))
		if _, err := fsops.RenameFile(path, dst, opts, sink); err != nil {
			return renamed, err
		}
		renamed++
	}
	return renamed, nil
}

// buildTable maps correlation key to high-res base name from the HIRES
// folder contents. Read once, then only consulted. Duplicate keys should not
// happen with real firmware; the later entry wins and a warning is logged.
func buildTable(dir string, sink logging.Sink) (map[string]string, bool, error) {
	files, ok, err := listFiles(dir)
	if err != nil || !ok {
		return nil, ok, err
	}

	table := make(map[string]string, len(files))
	for _, path := range files {
		node := naming.NodeFor(path)
		key := node.CorrelationKey()
		if prev, dup := table[key]; dup {
			sink.Warn("Duplicate correlation key %q: %s replaces %s", key, node.Base, prev)
		}
		table[key] = node.Base
	}
	return table, true, nil
}

// listFiles returns the sorted regular-file paths directly inside dir.
// ok is false when dir does not exist.
func listFiles(dir string) ([]string, bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, true, nil
}

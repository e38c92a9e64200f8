// Package watch observes a dump directory and conforms supported files as
// the camera (or a copy job) drops them in.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/repsac/gp-sort-media/internal/conform"
	"github.com/repsac/gp-sort-media/internal/fsops"
	"github.com/repsac/gp-sort-media/internal/logging"
	"github.com/repsac/gp-sort-media/internal/naming"
)

// Watcher conforms LRV/THM files appearing in one directory. Unlike the
// batch pipeline, a failed conform here is logged and watching continues;
// aborting a long-lived watch over one bad file would be hostile.
type Watcher struct {
	dir      string
	debounce time.Duration
	opts     fsops.Opts
	sink     logging.Sink

	fsw     *fsnotify.Watcher
	mu      sync.Mutex
	pending map[string]*time.Timer
	done    chan struct{}
}

// New starts watching dir. debounce is the settle time between a file event
// and the conform attempt, so half-written files are not renamed mid-copy.
func New(dir string, debounce time.Duration, opts fsops.Opts, sink logging.Sink) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		dir:      dir,
		debounce: debounce,
		opts:     opts,
		sink:     sink,
		fsw:      fsw,
		pending:  make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}
	go w.run()
	sink.Info("Watching %s", dir)
	return w, nil
}

// Run blocks until ctx is cancelled, then stops the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
		w.Stop()
		return ctx.Err()
	case <-w.done:
		return nil
	}
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.schedule(event.Name)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sink.Warn("Watch error: %v", err)

		case <-w.done:
			return
		}
	}
}

// schedule debounces per path: every new event for a still-pending path
// resets its timer, so a file conforms only once writes have settled.
func (w *Watcher) schedule(path string) {
	if !Conformable(path) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[path]; ok {
		t.Stop()
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()
		w.conformOne(path)
	})
}

func (w *Watcher) conformOne(path string) {
	if _, err := os.Stat(path); err != nil {
		return // Vanished before the debounce fired.
	}
	if _, err := conform.File(path, w.opts, w.sink); err != nil {
		w.sink.Error("Conform %s: %v", filepath.Base(path), err)
	}
}

// Stop shuts the watcher down and cancels pending conforms.
func (w *Watcher) Stop() {
	select {
	case <-w.done:
		return
	default:
	}
	close(w.done)
	w.fsw.Close()

	w.mu.Lock()
	for _, t := range w.pending {
		t.Stop()
	}
	w.pending = make(map[string]*time.Timer)
	w.mu.Unlock()
}

// Conformable reports whether the watcher should pick up a path: a
// non-hidden file whose extension has a conform rule.
func Conformable(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return false
	}
	node := naming.NodeFor(path)
	return node.Ext == "lrv" || node.Ext == "thm"
}

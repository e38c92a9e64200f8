package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/repsac/gp-sort-media/internal/fsops"
	"github.com/repsac/gp-sort-media/internal/logging"
)

func TestConformable(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/card/GL000001.LRV", true},
		{"/card/GL000001.lrv", true},
		{"/card/GH000001.THM", true},
		{"/card/GH000001.MP4", false},
		{"/card/GOPR0001.JPG", false},
		{"/card/.GL000001.LRV", false},
		{"/card/README", false},
	}
	for _, tt := range tests {
		if got := Conformable(tt.path); got != tt.want {
			t.Errorf("Conformable(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcher_ConformsNewFile(t *testing.T) {
	dir := t.TempDir()
	sink := logging.NewMemory()

	w, err := New(dir, 50*time.Millisecond, fsops.Opts{}, sink)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "GL000004.LRV")
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatal(err)
	}

	want := filepath.Join(dir, "GH000004.MP4")
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(want); err == nil {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("watched file was not conformed; dir sink: %v", sink.Lines())
}

func TestWatcher_IgnoresUnsupported(t *testing.T) {
	dir := t.TempDir()
	sink := logging.NewMemory()

	w, err := New(dir, 20*time.Millisecond, fsops.Opts{}, sink)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "GH000004.MP4")
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(200 * time.Millisecond)
	if _, err := os.Stat(path); err != nil {
		t.Errorf("unsupported file should be left alone: %v", err)
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, time.Millisecond, fsops.Opts{}, logging.NewMemory())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.Stop()
	w.Stop()
}

package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger_TranscriptOrder(t *testing.T) {
	l := New(Options{NoColor: true})
	l.Info("sorting %s", "/media/card")
	l.Warn("duplicate key %s", "012345")
	l.Error("boom")

	tr := l.Transcript()
	if len(tr) != 3 {
		t.Fatalf("transcript lines: got %d, want 3", len(tr))
	}
	checks := []string{"[INFO] sorting /media/card", "[WARN] duplicate key 012345", "[ERROR] boom"}
	for i, want := range checks {
		if !strings.Contains(tr[i], want) {
			t.Errorf("line %d = %q, want substring %q", i, tr[i], want)
		}
	}
}

func TestLogger_DebugRecordedEvenWhenQuiet(t *testing.T) {
	l := New(Options{NoColor: true})
	l.Debug("dispatch %s", "lrv")
	tr := l.Transcript()
	if len(tr) != 1 || !strings.Contains(tr[0], "[DEBUG] dispatch lrv") {
		t.Errorf("transcript = %v, want one DEBUG line", tr)
	}
}

func TestWriteErrorLog(t *testing.T) {
	dir := t.TempDir()
	l := New(Options{NoColor: true})
	l.Info("renaming GL000002.LRV")

	path, err := l.WriteErrorLog(dir, "gpsort", errors.New("HIRES already exists"))
	if err != nil {
		t.Fatalf("WriteErrorLog: %v", err)
	}

	base := filepath.Base(path)
	if !strings.HasPrefix(base, "gpsort.") || !strings.HasSuffix(base, ".error") {
		t.Errorf("error log name = %q, want gpsort.<timestamp>.error", base)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read error log: %v", err)
	}
	got := string(b)
	if !strings.Contains(got, "renaming GL000002.LRV") {
		t.Errorf("error log missing transcript: %s", got)
	}
	if !strings.Contains(got, "FAILURE: HIRES already exists") {
		t.Errorf("error log missing failure detail: %s", got)
	}
}

func TestMemory_CollectsLevels(t *testing.T) {
	m := NewMemory()
	m.Info("a")
	m.Debug("b %d", 2)

	want := []string{"INFO a", "DEBUG b 2"}
	got := m.Lines()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

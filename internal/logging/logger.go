// Package logging provides the log sink used by every core operation and the
// error-log flush performed by the CLI on failure.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Sink is the append-only progress log that core operations (sorter,
// conformer, linker, rename primitives) write through. It is injected
// explicitly so the core stays testable without console side effects;
// tests swap in [Memory].
type Sink interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Debug(format string, args ...any)
}

// Options controls Logger construction.
type Options struct {
	Verbose bool // Emit Debug lines to the console.
	NoColor bool // Disable styled output.
}

// Logger is the production Sink. It renders through charmbracelet/log and
// keeps a plain-text transcript of every line so the CLI can dump the full
// run history into an error log when a run fails.
type Logger struct {
	mu         sync.Mutex
	cl         *log.Logger
	transcript []string
}

// New builds a Logger writing styled output to stderr.
func New(opts Options) *Logger {
	cl := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if opts.Verbose {
		cl.SetLevel(log.DebugLevel)
	}
	if opts.NoColor {
		cl.SetColorProfile(termenv.Ascii)
	}
	return &Logger{cl: cl}
}

func (l *Logger) record(level, msg string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	l.transcript = append(l.transcript, ts+" ["+level+"] "+msg)
	l.mu.Unlock()
}

// Info logs a progress line.
func (l *Logger) Info(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.record("INFO", msg)
	l.cl.Info(msg)
}

// Warn logs a non-fatal anomaly (e.g. duplicate correlation key).
func (l *Logger) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.record("WARN", msg)
	l.cl.Warn(msg)
}

// Error logs a failure line.
func (l *Logger) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.record("ERROR", msg)
	l.cl.Error(msg)
}

// Debug logs a detail line. Hidden from the console unless verbose, but
// recorded either way so the error log carries the full picture.
func (l *Logger) Debug(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.record("DEBUG", msg)
	l.cl.Debug(msg)
}

// Transcript returns a copy of every line logged so far.
func (l *Logger) Transcript() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.transcript))
	copy(out, l.transcript)
	return out
}

// WriteErrorLog writes the accumulated transcript plus the failure detail to
// <program>.<YYYYMMDD-HHMMSS>.error inside dir and returns the file path.
func (l *Logger) WriteErrorLog(dir, program string, failure error) (string, error) {
	name := fmt.Sprintf("%s.%s.error", program, time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	l.mu.Lock()
	body := strings.Join(l.transcript, "\n")
	l.mu.Unlock()

	if body != "" {
		body += "\n"
	}
	body += fmt.Sprintf("FAILURE: %v\n", failure)

	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

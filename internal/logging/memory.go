package logging

import (
	"fmt"
	"sync"
)

// Memory is an in-memory Sink for tests. Lines are stored as
// "<LEVEL> <message>" in call order.
type Memory struct {
	mu    sync.Mutex
	lines []string
}

// NewMemory returns an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) append(level, format string, args []any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, level+" "+fmt.Sprintf(format, args...))
}

func (m *Memory) Info(format string, args ...any)  { m.append("INFO", format, args) }
func (m *Memory) Warn(format string, args ...any)  { m.append("WARN", format, args) }
func (m *Memory) Error(format string, args ...any) { m.append("ERROR", format, args) }
func (m *Memory) Debug(format string, args ...any) { m.append("DEBUG", format, args) }

// Lines returns a copy of everything logged so far.
func (m *Memory) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

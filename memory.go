package multilog

import "sync"

// MemoryOutput records every message it receives, in delivery order. It is
// the destination to reach for in tests and in programs that want to
// inspect recent log traffic. It grows without bound, so it is not meant
// for long-lived production capture.
type MemoryOutput struct {
	mu    sync.RWMutex
	lines []string
}

// NewMemoryOutput returns an empty in-memory destination.
func NewMemoryOutput() *MemoryOutput {
	return &MemoryOutput{}
}

// Write records the message.
func (o *MemoryOutput) Write(message string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = append(o.lines, message)
	return nil
}

// Lines returns a copy of everything recorded so far.
func (o *MemoryOutput) Lines() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	lines := make([]string, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Len returns the number of recorded messages.
func (o *MemoryOutput) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.lines)
}

// Clear discards everything recorded so far.
func (o *MemoryOutput) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = nil
}

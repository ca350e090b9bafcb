package multilog

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Output is a log destination. Write delivers one formatted message; the
// message carries no trailing line break, so the destination appends
// whatever terminator suits its medium. A returned error means the message
// was not delivered; the logger reports it on the fallback diagnostic
// channel and carries on with the remaining destinations.
//
// Loggers track destinations by identity, so implementations must be
// comparable. Pointer receivers, the norm for stateful sinks, satisfy this.
type Output interface {
	Write(message string) error
}

// Console is the destination registered on loggers constructed without an
// explicit destination list. Holding the canonical instance here lets
// callers detach it by identity:
//
//	multilog.RemoveOutput(multilog.Console)
var Console = NewConsoleOutput()

// ConsoleOutput writes messages to standard output, one per line. The
// stream is captured at construction, and every constructed instance is a
// distinct destination in a logger's set.
type ConsoleOutput struct {
	out io.Writer
}

// NewConsoleOutput returns a console destination writing to the current
// standard output.
func NewConsoleOutput() *ConsoleOutput {
	return &ConsoleOutput{out: os.Stdout}
}

// Write appends message and a line break to standard output.
func (o *ConsoleOutput) Write(message string) error {
	_, err := fmt.Fprintln(o.out, message)
	return err
}

// WriterOutput adapts an arbitrary io.Writer into a destination. Writes are
// serialized by an internal mutex, so one instance may safely be shared
// between loggers.
type WriterOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterOutput returns a destination that appends messages to w.
func NewWriterOutput(w io.Writer) *WriterOutput {
	return &WriterOutput{w: w}
}

// Write appends message and a line break to the underlying writer.
func (o *WriterOutput) Write(message string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := fmt.Fprintln(o.w, message)
	return err
}

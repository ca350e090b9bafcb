package multilog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Logger filters messages by severity and fans them out to a set of
// destinations. The zero value is not usable; construct with [New].
//
// One logger-wide mutex guards both the destination set and the write
// path, so concurrent log calls are serialized and every call sees a
// consistent set of destinations. The minimum level lives outside the
// lock: calls filtered out by severity return without synchronizing at
// all.
type Logger struct {
	level atomic.Int32

	mu       sync.Mutex
	outputs  map[Output]struct{}
	fallback io.Writer // diagnostic channel for destination failures
}

// New returns a logger delivering to the given destinations, with a
// minimum level of [LevelInfo]. With no arguments the logger starts with
// [Console] registered, so messages reach standard output out of the box.
func New(outputs ...Output) *Logger {
	l := &Logger{
		outputs:  make(map[Output]struct{}),
		fallback: os.Stderr,
	}
	l.level.Store(int32(LevelInfo))
	if len(outputs) == 0 {
		l.outputs[Console] = struct{}{}
		return l
	}
	for _, out := range outputs {
		if out != nil {
			l.outputs[out] = struct{}{}
		}
	}
	return l
}

// NewDiscard returns a logger that drops everything it is given. Use it
// when logging should be suppressed entirely.
func NewDiscard() *Logger {
	return New(NewWriterOutput(io.Discard))
}

// MinLevel returns the severity below which messages are dropped.
func (l *Logger) MinLevel() Level {
	return Level(l.level.Load())
}

// SetMinLevel replaces the minimum severity. It takes effect for calls
// that start after it returns; calls already past the filter are
// unaffected.
func (l *Logger) SetMinLevel(level Level) {
	l.level.Store(int32(level))
}

// AddOutput registers a destination. Destinations are tracked by identity:
// adding one that is already registered is a no-op, as is adding nil.
func (l *Logger) AddOutput(out Output) {
	if out == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.outputs[out] = struct{}{}
}

// RemoveOutput detaches a destination. Removing one that is not registered
// is a no-op. A message already fanning out on another goroutine may still
// reach the removed destination once.
func (l *Logger) RemoveOutput(out Output) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.outputs, out)
}

// Outputs returns a snapshot of the registered destinations, in no
// particular order. Mutations after the call do not affect the returned
// slice.
func (l *Logger) Outputs() []Output {
	l.mu.Lock()
	defer l.mu.Unlock()
	outs := make([]Output, 0, len(l.outputs))
	for out := range l.outputs {
		outs = append(outs, out)
	}
	return outs
}

// Log emits msg at the given level. Messages below the minimum level are
// dropped before any formatting or locking happens. A non-nil err makes
// every destination receive a second block carrying the error text and its
// stack trace.
//
// Destination failures never escape: each one is reported on the fallback
// diagnostic channel and the fan-out continues with the remaining
// destinations. A destination whose primary write fails is not handed the
// trace block.
func (l *Logger) Log(level Level, msg string, err error) {
	l.log(level, msg, err)
}

// log renders and delivers one message. Every public logging entry point
// calls it directly, keeping it exactly one frame below the call site, so
// the stack captured for stackless errors leads with the caller.
func (l *Logger) log(level Level, msg string, err error) {
	if level < l.MinLevel() {
		return
	}

	line := formatMessage(time.Now(), level, msg)
	var trace string
	if err != nil {
		// Two frames separate formatTrace from the logging call site:
		// log and the exported method or function wrapping it.
		trace = formatTrace(err, 2)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for out := range l.outputs {
		if werr := out.Write(line); werr != nil {
			l.reportFailure(werr)
			continue
		}
		if err == nil {
			continue
		}
		if werr := out.Write(trace); werr != nil {
			l.reportFailure(werr)
		}
	}
}

// reportFailure sends a destination failure to the fallback channel.
// Called with l.mu held.
func (l *Logger) reportFailure(err error) {
	fmt.Fprintf(l.fallback, "log output error: %v\n", err)
}

// Debug emits msg at [LevelDebug]. An optional error may be supplied; the
// first non-nil one is logged with its stack trace.
func (l *Logger) Debug(msg string, errs ...error) {
	l.log(LevelDebug, msg, firstError(errs))
}

// Info emits msg at [LevelInfo].
func (l *Logger) Info(msg string, errs ...error) {
	l.log(LevelInfo, msg, firstError(errs))
}

// Warn emits msg at [LevelWarning].
func (l *Logger) Warn(msg string, errs ...error) {
	l.log(LevelWarning, msg, firstError(errs))
}

// Error emits msg at [LevelError].
func (l *Logger) Error(msg string, errs ...error) {
	l.log(LevelError, msg, firstError(errs))
}

// Fatal emits msg at [LevelFatal]. Unlike the standard library's
// log.Fatal it does not terminate the process; FATAL is the highest
// severity and nothing more.
func (l *Logger) Fatal(msg string, errs ...error) {
	l.log(LevelFatal, msg, firstError(errs))
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

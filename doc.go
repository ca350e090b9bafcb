// Package multilog provides a process-wide logging facility that filters
// messages by severity and fans them out to pluggable destinations.
//
// The package keeps one shared logger for the whole process, reachable with
// [Default]; independent loggers come from [New]. Every message that clears
// the minimum severity is rendered once as
//
//	[2026-01-12 15:04:05.000] [INFO] message text
//
// and delivered to every registered destination under one exclusive lock,
// so output from concurrent goroutines never interleaves.
//
// # Destinations
//
// A destination is anything implementing [Output]. The package ships
// [ConsoleOutput] (standard output), [FileOutput] (append to a file, with
// parent directories created at construction), [WriterOutput] (any
// io.Writer), [MemoryOutput] (an in-memory recorder, handy in tests), and
// [ColorConsole] (standard output with level tinting on capable terminals).
// A destination that fails a write never disturbs its siblings: the failure
// is reported on the fallback diagnostic channel (standard error) and the
// fan-out carries on.
//
// # Basic Usage
//
//	multilog.Info("starting up")
//
//	out, err := multilog.NewFileOutput("/var/log/app/app.log")
//	if err != nil {
//		// the log directory could not be created
//	}
//	multilog.AddOutput(out)
//	multilog.SetMinLevel(multilog.LevelDebug)
//	multilog.Debug("now visible")
//
// # Errors and Stack Traces
//
// Supplying an error to a logging call appends a second block carrying the
// error text and one tab-indented line per stack frame:
//
//	if err := task(); err != nil {
//		multilog.Error("task failed", err)
//	}
//
// Errors built with github.com/cockroachdb/errors carry the stack captured
// where they were constructed; other errors get the stack of the logging
// call site.
//
// # Testing
//
// [ForTest] returns a debug-level logger wired to a test's log output, and
// [MemoryOutput] records delivered messages for assertions:
//
//	mem := multilog.NewMemoryOutput()
//	logger := multilog.New(mem)
//	logger.Warn("recorded")
//	// mem.Lines() now holds the formatted line
package multilog

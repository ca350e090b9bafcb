package multilog

import "testing"

// testWriter adapts testing.T to io.Writer for use as a log destination.
type testWriter struct {
	t *testing.T
}

// Write implements io.Writer by logging to the test.
func (w *testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	// Trim trailing newline since t.Log adds its own
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	w.t.Log(msg)
	return len(p), nil
}

// ForTest returns a logger that delivers into the test's log output, so
// messages appear only when the test fails or is run with -v. The logger
// is set to [LevelDebug] to capture everything.
func ForTest(t *testing.T) *Logger {
	t.Helper()
	l := New(NewWriterOutput(&testWriter{t: t}))
	l.SetMinLevel(LevelDebug)
	return l
}

package multilog

import "testing"

func TestTestWriter_TrimsNewline(t *testing.T) {
	tw := &testWriter{t: t}

	n, err := tw.Write([]byte("test message\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len("test message\n") {
		t.Errorf("Write returned %d, want %d", n, len("test message\n"))
	}

	n, err = tw.Write([]byte("no newline"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len("no newline") {
		t.Errorf("Write returned %d, want %d", n, len("no newline"))
	}

	n, err = tw.Write([]byte(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("Write returned %d, want 0", n)
	}
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if got := logger.MinLevel(); got != LevelDebug {
		t.Errorf("MinLevel() = %v, want %v", got, LevelDebug)
	}

	// These land in the test log, visible on failure or with -v.
	logger.Debug("debug from test logger")
	logger.Info("info from test logger")
	logger.Warn("warn from test logger")
	logger.Error("error from test logger")
}

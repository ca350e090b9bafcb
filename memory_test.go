package multilog

import (
	"sync"
	"testing"
)

func TestMemoryOutput_RecordsInOrder(t *testing.T) {
	mem := NewMemoryOutput()

	for _, msg := range []string{"one", "two", "three"} {
		if err := mem.Write(msg); err != nil {
			t.Fatalf("Write(%q) failed: %v", msg, err)
		}
	}

	lines := mem.Lines()
	want := []string{"one", "two", "three"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestMemoryOutput_LinesReturnsCopy(t *testing.T) {
	mem := NewMemoryOutput()
	_ = mem.Write("original")

	lines := mem.Lines()
	lines[0] = "tampered"

	if got := mem.Lines()[0]; got != "original" {
		t.Errorf("mutating the returned slice leaked into the recorder: %q", got)
	}
}

func TestMemoryOutput_LenAndClear(t *testing.T) {
	mem := NewMemoryOutput()
	if mem.Len() != 0 {
		t.Errorf("fresh recorder has Len %d, want 0", mem.Len())
	}

	_ = mem.Write("a")
	_ = mem.Write("b")
	if mem.Len() != 2 {
		t.Errorf("Len() = %d, want 2", mem.Len())
	}

	mem.Clear()
	if mem.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", mem.Len())
	}
	if len(mem.Lines()) != 0 {
		t.Error("Lines() after Clear should be empty")
	}
}

func TestMemoryOutput_ConcurrentWrites(t *testing.T) {
	mem := NewMemoryOutput()

	const goroutines = 8
	const perGoroutine = 50

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				_ = mem.Write("line")
			}
		}()
	}
	wg.Wait()

	if mem.Len() != goroutines*perGoroutine {
		t.Errorf("Len() = %d, want %d", mem.Len(), goroutines*perGoroutine)
	}
}

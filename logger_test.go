package turtle

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs routes debug output into a buffer for the rest of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	return &buf
}

func TestLoggerSilentByDefault(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should install a discarding logger, not nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("discarding logger enabled for %v", level)
		}
	}

	// Drawing with the silent logger must not panic or allocate handlers.
	tu, err := New(newMockBackend("quiet"))
	if err != nil {
		t.Fatal(err)
	}
	_ = tu.Forward(1)
	_ = tu.Close()
}

func TestTurtleLogsLifecycle(t *testing.T) {
	buf := captureLogs(t)

	tu, err := New(newMockBackend("log"), WithSize(40, 30))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_ = tu.Forward(5)
	_ = tu.Close()

	out := buf.String()
	for _, want := range []string{"canvas ready", "width=40", "height=30", "canvas closed", "strokes=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestTurtleLogsUndoAndOpen(t *testing.T) {
	resetRegistry()
	defer resetRegistry()
	registerMock(t, "mock")

	buf := captureLogs(t)

	tu, err := Open("mock")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	_ = tu.Forward(5)
	_ = tu.Left(90)
	_ = tu.Undo()

	out := buf.String()
	for _, want := range []string{"opened backend", "backend=mock", "undo", "history=1", "undoable=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 50

	// Each goroutine owns its turtle; only the logger is shared.
	for range goroutines {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tu, err := New(newMockBackend("concurrent"), WithSize(10, 10))
			if err != nil {
				t.Error(err)
				return
			}
			_ = tu.Forward(1)
			_ = tu.Close()
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}

	wg.Wait()
}

func BenchmarkDisabledLogForward(b *testing.B) {
	tu, err := New(newMockBackend("bench"), WithUndoBuffer(0))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = tu.Forward(1)
		_ = tu.Left(1)
	}
}

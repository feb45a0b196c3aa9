package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

// startWatch runs Watch in the background and returns a thread-safe rerun
// counter.
func startWatch(t *testing.T, root string) func() int {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	var mu sync.Mutex
	runs := 0
	go Watch(ctx, root, logger, func(context.Context) {
		mu.Lock()
		runs++
		mu.Unlock()
	})
	time.Sleep(100 * time.Millisecond)

	return func() int {
		mu.Lock()
		defer mu.Unlock()
		return runs
	}
}

func TestWatch_RerunsOnDocumentChange(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "bknd-a"), 0o755); err != nil {
		t.Fatal(err)
	}
	runs := startWatch(t, root)

	if err := os.WriteFile(filepath.Join(root, "bknd-a", "SKILL.md"), []byte("---\nname: bknd-a\n---\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return runs() >= 1
	}, "expected a rerun after a document change")
}

func TestWatch_IgnoresNonMarkdownFiles(t *testing.T) {
	root := t.TempDir()
	runs := startWatch(t, root)

	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(500 * time.Millisecond)
	if n := runs(); n != 0 {
		t.Errorf("runs = %d, want 0 for a non-markdown file", n)
	}
}

func TestWatch_StopsOnContextCancel(t *testing.T) {
	root := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, root, logger, func(context.Context) {})
	}()
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v on cancellation", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("Watch did not stop after context cancellation")
	}
}

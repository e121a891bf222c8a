package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/lexihq/lexi/internal/corpus"
)

func TestWatcher_StopUnblocksStart(t *testing.T) {
	store := corpus.NewStore(t.TempDir())
	pipeline := NewPipeline(new(MockEmbedder), store, t.TempDir(), 500)

	watcher := NewWatcher(pipeline)
	go watcher.Start(context.Background())

	time.Sleep(50 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		watcher.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop in time")
	}
}

func TestWatcher_MissingDirectoryExitsCleanly(t *testing.T) {
	store := corpus.NewStore(t.TempDir())
	pipeline := NewPipeline(new(MockEmbedder), store, "/nonexistent/documents", 500)

	watcher := NewWatcher(pipeline)

	done := make(chan struct{})
	go func() {
		watcher.Start(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not exit on missing directory")
	}
}

package ingest

import (
	"context"
	"log"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-ingests documents as they are added or rewritten in the
// documents directory.
type Watcher struct {
	pipeline *Pipeline
	stopChan chan struct{}
	doneChan chan struct{}
}

// NewWatcher creates a new Watcher instance
func NewWatcher(pipeline *Pipeline) *Watcher {
	return &Watcher{
		pipeline: pipeline,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Start begins watching the documents directory until the context is
// cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	defer close(w.doneChan)

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("document watcher failed to start: %v", err)
		return
	}
	defer fsWatcher.Close()

	if err := fsWatcher.Add(w.pipeline.documentsDir); err != nil {
		log.Printf("document watcher failed to watch %s: %v", w.pipeline.documentsDir, err)
		return
	}

	log.Printf("watching %s for document changes", w.pipeline.documentsDir)

	for {
		select {
		case <-ctx.Done():
			log.Println("document watcher stopped: context cancelled")
			return
		case <-w.stopChan:
			log.Println("document watcher stopped: stop signal received")
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !IsSupported(event.Name) {
				continue
			}
			log.Printf("document changed: %s", event.Name)
			if _, err := w.pipeline.ProcessDocument(ctx, event.Name); err != nil {
				log.Printf("failed to process %s: %v", event.Name, err)
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("document watcher error: %v", err)
		}
	}
}

// Stop gracefully stops the watcher
func (w *Watcher) Stop() {
	close(w.stopChan)
	<-w.doneChan
	log.Println("document watcher shutdown complete")
}

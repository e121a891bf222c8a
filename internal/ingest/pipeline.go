// Package ingest reads documents, normalizes and chunks their text, and
// persists one embedded chunk record per segment.
package ingest

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lexihq/lexi/internal/corpus"
	"github.com/lexihq/lexi/internal/domain"
	"github.com/lexihq/lexi/internal/telemetry"
	"github.com/lexihq/lexi/internal/textproc"
)

// DefaultChunkSize is the word budget per chunk during ingestion.
const DefaultChunkSize = 500

// Embedder generates unit-normalized embeddings for chunk text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Pipeline turns documents into persisted chunk records.
type Pipeline struct {
	embedder     Embedder
	store        *corpus.Store
	documentsDir string
	chunkSize    int
}

// NewPipeline creates an ingestion Pipeline. A non-positive chunkSize takes
// the default.
func NewPipeline(embedder Embedder, store *corpus.Store, documentsDir string, chunkSize int) *Pipeline {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Pipeline{
		embedder:     embedder,
		store:        store,
		documentsDir: documentsDir,
		chunkSize:    chunkSize,
	}
}

// ProcessDocument ingests a single document: read, normalize, chunk, embed,
// and persist. Returns the number of chunk records written.
func (p *Pipeline) ProcessDocument(ctx context.Context, path string) (int, error) {
	ctx, span := telemetry.StartSpan(ctx, "ingest.document", telemetry.SpanAttributes{
		Document:  filepath.Base(path),
		Operation: "ingest",
	})
	defer span.End()

	content, err := ReadDocument(path)
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(content) == "" {
		return 0, fmt.Errorf("no content extracted from %s", filepath.Base(path))
	}

	if err := p.store.EnsureDir(); err != nil {
		return 0, err
	}

	processed := textproc.Normalize(content)
	chunks := textproc.Split(processed, p.chunkSize)

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for i, chunk := range chunks {
		vec, err := p.embedder.Embed(ctx, chunk)
		if err != nil {
			return i, err
		}

		record := domain.Chunk{Content: chunk, Embedding: vec}
		if err := p.store.Save(base, i, record); err != nil {
			return i, err
		}
	}

	return len(chunks), nil
}

// ProcessAll ingests every supported document in the documents directory.
// Per-document failures are logged and skipped so one bad file does not stop
// the run. Returns the number of documents successfully processed.
func (p *Pipeline) ProcessAll(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(p.documentsDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read documents directory: %w", err)
	}

	processed := 0
	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}

		path := filepath.Join(p.documentsDir, entry.Name())
		log.Printf("processing %s...", path)
		chunks, err := p.ProcessDocument(ctx, path)
		if err != nil {
			log.Printf("failed to process %s: %v", path, err)
			continue
		}
		log.Printf("finished processing %s (%d chunks)", path, chunks)
		processed++
	}

	return processed, nil
}

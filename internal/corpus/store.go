// Package corpus persists one JSON record per chunk under a directory and
// enumerates them for retrieval.
package corpus

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lexihq/lexi/internal/domain"
)

const (
	// RecordExt is the file extension of chunk records.
	RecordExt = ".json"
	// chunkMarker separates the document base name from the chunk index in
	// record filenames: <documentBase>_chunk_<index>.json
	chunkMarker = "_chunk_"
)

// StoredChunk is a chunk record loaded from disk together with its backing path.
type StoredChunk struct {
	Chunk domain.Chunk
	Path  string
}

// Store owns the persisted chunk records in a single directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is not created here;
// callers run EnsureDir during initialization.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the corpus directory.
func (s *Store) Dir() string {
	return s.dir
}

// EnsureDir creates the corpus directory if it does not exist.
func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

// Exists reports whether the corpus directory is present.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

// RecordName builds the record filename for a document chunk.
func RecordName(documentBase string, index int) string {
	return fmt.Sprintf("%s%s%d%s", documentBase, chunkMarker, index, RecordExt)
}

// Save persists a chunk record. The record is written to a temp file and
// renamed into place so a concurrent List never observes a partial record.
func (s *Store) Save(documentBase string, index int, chunk domain.Chunk) error {
	if err := domain.ValidateChunk(&chunk); err != nil {
		return err
	}

	data, err := json.Marshal(chunk)
	if err != nil {
		return fmt.Errorf("failed to encode chunk record: %w", err)
	}

	target := filepath.Join(s.dir, RecordName(documentBase, index))
	tmp, err := os.CreateTemp(s.dir, "."+documentBase+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp record: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write chunk record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close chunk record: %w", err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to store chunk record: %w", err)
	}

	return nil
}

// List loads every parseable chunk record in the corpus directory, in
// lexical filename order. Records that fail to load or parse are logged and
// skipped so a single bad file never fails the whole scan.
func (s *Store) List() ([]StoredChunk, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory: %w", err)
	}

	var records []StoredChunk
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, RecordExt) {
			continue
		}

		path := filepath.Join(s.dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("error processing %s: %v", name, err)
			continue
		}

		var chunk domain.Chunk
		if err := json.Unmarshal(data, &chunk); err != nil {
			log.Printf("error processing %s: %v", name, err)
			continue
		}
		if len(chunk.Embedding) == 0 {
			log.Printf("error processing %s: record has no embedding", name)
			continue
		}

		records = append(records, StoredChunk{Chunk: chunk, Path: path})
	}

	return records, nil
}

// Stats summarizes the corpus by grouping record filenames on the document
// prefix before the chunk marker. A missing directory yields all-zero stats.
func (s *Store) Stats() domain.CorpusStats {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return domain.CorpusStats{}
	}

	docChunks := make(map[string]int)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, RecordExt) {
			continue
		}
		docName, _, _ := strings.Cut(name, chunkMarker)
		docChunks[docName]++
	}

	totalDocs := len(docChunks)
	totalChunks := 0
	for _, n := range docChunks {
		totalChunks += n
	}

	stats := domain.CorpusStats{
		TotalDocuments: totalDocs,
		TotalChunks:    totalChunks,
	}
	if totalDocs > 0 {
		stats.AverageChunksPerDoc = float64(totalChunks) / float64(totalDocs)
	}
	return stats
}

// Metadata derives document metadata from the backing file's stat at call
// time. Go exposes no portable creation time, so the modification time stands
// in for both timestamps.
func Metadata(path string) (domain.DocumentMetadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.DocumentMetadata{}, fmt.Errorf("failed to stat record: %w", err)
	}

	return domain.DocumentMetadata{
		Filename:     filepath.Base(path),
		CreatedAt:    info.ModTime(),
		LastModified: info.ModTime(),
	}, nil
}

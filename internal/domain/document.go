package domain

import (
	"fmt"
	"time"
)

// Chunk is a bounded-size segment of a document's text, embedded and stored
// independently. Immutable once persisted.
type Chunk struct {
	Content   string    `json:"content"`
	Embedding []float32 `json:"embedding"`
}

// DocumentMetadata describes the backing file of a stored chunk. It is derived
// from the file's stat at retrieval time, never persisted with the chunk.
type DocumentMetadata struct {
	Filename     string
	CreatedAt    time.Time
	LastModified time.Time
}

// ScoredDocument is a transient ranking record produced by retrieval.
type ScoredDocument struct {
	Content    string
	Similarity float64
	Metadata   DocumentMetadata
}

// CorpusStats summarizes the persisted chunk collection.
type CorpusStats struct {
	TotalDocuments      int
	TotalChunks         int
	AverageChunksPerDoc float64
}

// ValidateChunk validates a Chunk before it is persisted.
func ValidateChunk(c *Chunk) error {
	if c == nil {
		return fmt.Errorf("chunk cannot be nil")
	}

	if c.Content == "" {
		return fmt.Errorf("chunk content is required")
	}

	if len(c.Embedding) == 0 {
		return fmt.Errorf("chunk embedding is required")
	}

	return nil
}

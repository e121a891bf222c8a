// Package retrieval ranks stored chunks against a query by cosine similarity.
package retrieval

import (
	"context"
	"log"
	"path/filepath"
	"sort"

	"github.com/lexihq/lexi/internal/corpus"
	"github.com/lexihq/lexi/internal/domain"
	"github.com/lexihq/lexi/internal/embedding"
	"github.com/lexihq/lexi/internal/textproc"
)

const (
	// DefaultTopK is the number of results returned when none is specified.
	DefaultTopK = 5
	// DefaultMinSimilarity filters out weak matches.
	DefaultMinSimilarity = 0.5
)

// Embedder generates unit-normalized embeddings for query text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Retriever performs a linear scan of the corpus store for every query.
type Retriever struct {
	embedder Embedder
	store    *corpus.Store
}

// NewRetriever creates a Retriever over the given store.
func NewRetriever(embedder Embedder, store *corpus.Store) *Retriever {
	return &Retriever{
		embedder: embedder,
		store:    store,
	}
}

// Retrieve returns up to topK stored chunks whose similarity to the query is
// at least minSimilarity, ordered by similarity descending. Ties keep the
// enumeration order of the store. A missing corpus directory is a soft
// condition: it logs a warning and returns no results. An embedding failure
// for the query is fatal to the call.
func (r *Retriever) Retrieve(ctx context.Context, query string, topK int, minSimilarity float64) ([]domain.ScoredDocument, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	if !r.store.Exists() {
		log.Printf("embeddings directory %s does not exist!", r.store.Dir())
		return []domain.ScoredDocument{}, nil
	}

	processed := textproc.Normalize(query)

	queryEmbedding, err := r.embedder.Embed(ctx, processed)
	if err != nil {
		return nil, err
	}

	records, err := r.store.List()
	if err != nil {
		return nil, err
	}

	scored := make([]domain.ScoredDocument, 0, len(records))
	for _, record := range records {
		similarity, err := embedding.Similarity(queryEmbedding, record.Chunk.Embedding)
		if err != nil {
			log.Printf("error processing %s: %v", filepath.Base(record.Path), err)
			continue
		}

		if similarity < minSimilarity {
			continue
		}

		// Metadata is read fresh per call, not cached with the record.
		metadata, err := corpus.Metadata(record.Path)
		if err != nil {
			log.Printf("error processing %s: %v", filepath.Base(record.Path), err)
			continue
		}

		scored = append(scored, domain.ScoredDocument{
			Content:    record.Chunk.Content,
			Similarity: similarity,
			Metadata:   metadata,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored, nil
}

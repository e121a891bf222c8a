package embedding

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lexihq/lexi/internal/domain"
)

// DefaultCacheSize bounds the memo cache to the most recently used inputs.
const DefaultCacheSize = 1000

// Client defines the interface for the external embedding provider.
type Client interface {
	CreateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// Gateway wraps the embedding provider, unit-normalizes every vector it
// returns, and memoizes results by exact input text. The cache is safe for
// concurrent use, so one Gateway may be shared across server requests.
type Gateway struct {
	client Client
	cache  *lru.Cache[string, []float32]
}

// NewGateway creates a Gateway with the default cache size.
func NewGateway(client Client) *Gateway {
	return NewGatewayWithCacheSize(client, DefaultCacheSize)
}

// NewGatewayWithCacheSize creates a Gateway with an explicit cache capacity.
func NewGatewayWithCacheSize(client Client, cacheSize int) *Gateway {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, []float32](cacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size, which is guarded above.
		panic(err)
	}
	return &Gateway{
		client: client,
		cache:  cache,
	}
}

// Embed returns the unit-normalized embedding for text. Identical text is
// never re-embedded while cached. Provider failures are wrapped in an
// embedding error and not retried at this layer.
func (g *Gateway) Embed(ctx context.Context, text string) ([]float32, error) {
	if vec, ok := g.cache.Get(text); ok {
		return vec, nil
	}

	raw, err := g.client.CreateEmbedding(ctx, text)
	if err != nil {
		return nil, domain.NewEmbeddingError(err)
	}

	vec := Normalize(raw)
	g.cache.Add(text, vec)
	return vec, nil
}

// BatchEmbed embeds each text and returns a map of text to vector. Texts whose
// embedding fails are silently omitted.
func (g *Gateway) BatchEmbed(ctx context.Context, texts []string) map[string][]float32 {
	embeddings := make(map[string][]float32, len(texts))
	for _, text := range texts {
		vec, err := g.Embed(ctx, text)
		if err != nil {
			continue
		}
		embeddings[text] = vec
	}
	return embeddings
}

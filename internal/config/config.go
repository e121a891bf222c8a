package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	DocumentsDir  string `envconfig:"DOCUMENTS_DIR" default:"data/documents"`
	EmbeddingsDir string `envconfig:"EMBEDDINGS_DIR" default:"data/embeddings"`

	// APIToken protects the /query endpoint.
	APIToken string `envconfig:"API_TOKEN"`

	OpenAIAPIKey   string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL  string `envconfig:"OPENAI_BASE_URL"`
	EmbeddingModel string `envconfig:"EMBEDDING_MODEL" default:"nomic-embed-text"`
	ChatModel      string `envconfig:"CHAT_MODEL" default:"llama3.2"`

	ChunkSize           int     `envconfig:"CHUNK_SIZE" default:"500"`
	TopKResults         int     `envconfig:"TOP_K_RESULTS" default:"5"`
	SimilarityThreshold float64 `envconfig:"SIMILARITY_THRESHOLD" default:"0.5"`
	MaxRetries          int     `envconfig:"MAX_RETRIES" default:"3"`
	EmbeddingCacheSize  int     `envconfig:"EMBEDDING_CACHE_SIZE" default:"1000"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("LEXI", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// EnsureDirs creates the document and embedding directories. Called explicitly
// by the composing binaries rather than as an import side effect.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.DocumentsDir, c.EmbeddingsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

func (c *Config) HasAPIToken() bool {
	return c.APIToken != ""
}

package admin

import (
	"fmt"

	"github.com/lexihq/lexi/internal/config"
	"github.com/lexihq/lexi/internal/corpus"
	"github.com/spf13/cobra"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show corpus statistics",
		Long:  "Show the number of documents and chunk records in the embeddings directory",
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store := corpus.NewStore(cfg.EmbeddingsDir)
	stats := store.Stats()

	fmt.Printf("Documents:           %d\n", stats.TotalDocuments)
	fmt.Printf("Chunks:              %d\n", stats.TotalChunks)
	fmt.Printf("Avg chunks per doc:  %.2f\n", stats.AverageChunksPerDoc)
	return nil
}

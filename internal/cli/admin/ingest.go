package admin

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lexihq/lexi/internal/config"
	"github.com/lexihq/lexi/internal/corpus"
	"github.com/lexihq/lexi/internal/embedding"
	"github.com/lexihq/lexi/internal/ingest"
	"github.com/lexihq/lexi/internal/llm"
	"github.com/spf13/cobra"
)

// IngestCmd returns the ingest command
func IngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Process documents into embedded chunks",
		Long:  "Read every supported document from the documents directory, chunk and embed the text, and persist one record per chunk",
		RunE:  runIngest,
	}

	cmd.Flags().Bool("watch", false, "Keep running and re-ingest documents as they change on disk")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	llmClient := llm.NewClient(llm.Config{
		APIKey:         cfg.OpenAIAPIKey,
		BaseURL:        cfg.OpenAIBaseURL,
		EmbeddingModel: cfg.EmbeddingModel,
		ChatModel:      cfg.ChatModel,
	})

	gateway := embedding.NewGatewayWithCacheSize(llmClient, cfg.EmbeddingCacheSize)
	store := corpus.NewStore(cfg.EmbeddingsDir)
	pipeline := ingest.NewPipeline(gateway, store, cfg.DocumentsDir, cfg.ChunkSize)

	processed, err := pipeline.ProcessAll(ctx)
	if err != nil {
		return err
	}
	log.Printf("processed %d documents", processed)

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		return nil
	}

	watcher := ingest.NewWatcher(pipeline)
	go watcher.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	watcher.Stop()
	return nil
}

package admin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lexihq/lexi/internal/answer"
	"github.com/lexihq/lexi/internal/api/handlers"
	"github.com/lexihq/lexi/internal/config"
	"github.com/lexihq/lexi/internal/corpus"
	"github.com/lexihq/lexi/internal/embedding"
	"github.com/lexihq/lexi/internal/ingest"
	"github.com/lexihq/lexi/internal/llm"
	"github.com/lexihq/lexi/internal/retrieval"
	"github.com/lexihq/lexi/internal/server"
	"github.com/lexihq/lexi/internal/telemetry"
	"github.com/spf13/cobra"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the lexi API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	cmd.Flags().Bool("watch", false, "Re-ingest documents as they change on disk")

	return cmd
}

// overridePort applies an explicitly set --port flag over the configured port.
func overridePort(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("port") {
		return
	}
	if port, err := cmd.Flags().GetString("port"); err == nil && port != "" {
		cfg.Port = port
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize Sentry with tracing if SENTRY_DSN is set
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		environment := os.Getenv("ENVIRONMENT")
		if environment == "" {
			environment = "development"
		}

		// Default to 10% sampling in production, 100% in development
		sampleRate := 0.1
		if environment == "development" {
			sampleRate = 1.0
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              dsn,
			Environment:      environment,
			TracesSampleRate: sampleRate,
			Debug:            cfg.Debug,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	overridePort(cmd, cfg)

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
	retriever := retrieval.NewRetriever(gateway, store)

	composer := answer.NewComposerWithOptions(llmClient, retriever, store, answer.Options{
		TopK:          cfg.TopKResults,
		MinSimilarity: cfg.SimilarityThreshold,
		MaxRetries:    cfg.MaxRetries,
	})

	var watcher *ingest.Watcher
	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		pipeline := ingest.NewPipeline(gateway, store, cfg.DocumentsDir, cfg.ChunkSize)
		watcher = ingest.NewWatcher(pipeline)
		go watcher.Start(ctx)
		log.Println("document watcher started")
	}

	routerCfg := server.RouterConfig{
		APIToken:     cfg.APIToken,
		QueryHandler: handlers.NewQueryHandler(composer),
	}

	router := server.NewRouter(routerCfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	if watcher != nil {
		watcher.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("server exited")
	return nil
}

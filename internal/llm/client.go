// Package llm adapts the OpenAI-compatible completion and embedding APIs.
// Pointing BaseURL at a local runtime (e.g. Ollama's /v1 endpoint) works the
// same way as the hosted service.
package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultEmbeddingModel is the model used for generating embeddings.
	DefaultEmbeddingModel = "nomic-embed-text"
	// DefaultChatModel is the model used for chat completions.
	DefaultChatModel = "llama3.2"
)

var (
	// ErrNoChoices is returned when the completion API responds without any choices.
	ErrNoChoices = errors.New("no completion choices returned")
	// ErrNoEmbeddingData is returned when the embedding API responds without data.
	ErrNoEmbeddingData = errors.New("no embedding data returned")
)

type Config struct {
	APIKey         string
	BaseURL        string
	EmbeddingModel string
	ChatModel      string
}

// Client wraps the OpenAI-compatible API client.
type Client struct {
	api            *openai.Client
	embeddingModel string
	chatModel      string
}

// NewClient creates a new Client with explicit configuration.
func NewClient(cfg Config) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	embeddingModel := cfg.EmbeddingModel
	if embeddingModel == "" {
		embeddingModel = DefaultEmbeddingModel
	}
	chatModel := cfg.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}

	return &Client{
		api:            openai.NewClientWithConfig(apiCfg),
		embeddingModel: embeddingModel,
		chatModel:      chatModel,
	}
}

// CreateEmbedding calls the embedding API for a single text.
func (c *Client) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(c.embeddingModel),
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Data) == 0 {
		return nil, ErrNoEmbeddingData
	}

	return resp.Data[0].Embedding, nil
}

// Chat sends a single-turn user prompt to the completion API and returns the
// assistant's message content.
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	return resp.Choices[0].Message.Content, nil
}

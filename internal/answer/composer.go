// Package answer builds prompts from retrieved chunks and formats the final
// assistant response.
package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexihq/lexi/internal/domain"
	"github.com/lexihq/lexi/internal/telemetry"
)

// DefaultMaxRetries bounds completion attempts before giving up.
const DefaultMaxRetries = 3

const contextPromptTemplate = `You are a legal assistant chatbot. Your task is to answer questions based on the provided context.

Context information is below:
---------------------
%s
---------------------

Given the context information, please follow these guidelines:
1. If the context contains relevant information, provide a clear and concise answer
2. If the context doesn't contain relevant information, provide a general answer but clearly state that this information is not available in the provided documents
3. Always maintain a professional and helpful tone
4. If you're unsure about something, say so

Question: %s
Answer:`

const generalPromptTemplate = `You are a helpful legal assistant chatbot. While I don't have specific legal documents to reference for your question, I'll do my best to provide a general answer.

Question: %s
Answer:`

const (
	msgNoDocuments = "I don't have any legal documents loaded yet. Please add some documents first."
	msgLLMTrouble  = "I'm having trouble processing your request right now. Please try again later."
	msgUnexpected  = "An unexpected error occurred. Please try again later."

	sourceTimeLayout = "2006-01-02 15:04:05"
)

// ChatClient defines the interface for the completion gateway.
type ChatClient interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// Retriever returns the stored chunks most relevant to a query.
type Retriever interface {
	Retrieve(ctx context.Context, query string, topK int, minSimilarity float64) ([]domain.ScoredDocument, error)
}

// StatsSource reports corpus statistics.
type StatsSource interface {
	Stats() domain.CorpusStats
}

// Composer orchestrates retrieval, prompting, and response formatting.
type Composer struct {
	chat          ChatClient
	retriever     Retriever
	stats         StatsSource
	topK          int
	minSimilarity float64
	maxRetries    int
}

// Options tunes retrieval and retry behavior; zero values take defaults.
type Options struct {
	TopK          int
	MinSimilarity float64
	MaxRetries    int
}

// NewComposer creates a Composer with defaults.
func NewComposer(chat ChatClient, retriever Retriever, stats StatsSource) *Composer {
	return NewComposerWithOptions(chat, retriever, stats, Options{})
}

// NewComposerWithOptions creates a Composer with explicit options.
func NewComposerWithOptions(chat ChatClient, retriever Retriever, stats StatsSource, opts Options) *Composer {
	topK := opts.TopK
	if topK <= 0 {
		topK = 5
	}
	minSimilarity := opts.MinSimilarity
	if minSimilarity <= 0 {
		minSimilarity = 0.5
	}
	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	return &Composer{
		chat:          chat,
		retriever:     retriever,
		stats:         stats,
		topK:          topK,
		minSimilarity: minSimilarity,
		maxRetries:    maxRetries,
	}
}

// Answer runs the full query pipeline. An empty corpus short-circuits to a
// fixed message without calling the language model. Completion failures are
// retried up to the configured attempt count; exhausting them yields an LLM
// domain error wrapping the last cause.
func (c *Composer) Answer(ctx context.Context, query string) (string, error) {
	ctx, span := telemetry.StartSpan(ctx, "answer.query", telemetry.SpanAttributes{Operation: "answer"})
	defer span.End()

	stats := c.stats.Stats()
	if stats.TotalDocuments == 0 {
		return msgNoDocuments, nil
	}

	docs, err := c.retriever.Retrieve(ctx, query, c.topK, c.minSimilarity)
	if err != nil {
		return "", err
	}

	contents := make([]string, 0, len(docs))
	for _, doc := range docs {
		contents = append(contents, doc.Content)
	}

	response, err := c.complete(ctx, query, contents)
	if err != nil {
		return "", err
	}

	if len(docs) == 0 {
		return response, nil
	}

	sources := make([]string, 0, len(docs))
	for _, doc := range docs {
		sources = append(sources, fmt.Sprintf("%s (Last modified: %s)",
			doc.Metadata.Filename, doc.Metadata.LastModified.Format(sourceTimeLayout)))
	}

	return formatResponse(response, sources), nil
}

// Respond is the orchestration boundary: fatal pipeline errors become fixed,
// non-technical user-facing messages with no internal detail.
func (c *Composer) Respond(ctx context.Context, query string) string {
	response, err := c.Answer(ctx, query)
	if err != nil {
		telemetry.CaptureError(ctx, err)
		if domain.IsLLMError(err) {
			return msgLLMTrouble
		}
		return msgUnexpected
	}
	return response
}

func (c *Composer) complete(ctx context.Context, query string, contents []string) (string, error) {
	var prompt string
	if len(contents) == 0 {
		prompt = fmt.Sprintf(generalPromptTemplate, query)
	} else {
		prompt = fmt.Sprintf(contextPromptTemplate, strings.Join(contents, " "), query)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		response, err := c.chat.Chat(ctx, prompt)
		if err == nil {
			return response, nil
		}
		lastErr = err
	}

	return "", domain.NewLLMError(c.maxRetries, lastErr)
}

func formatResponse(response string, sources []string) string {
	formatted := strings.TrimSpace(response)
	if len(sources) > 0 {
		formatted += "\n\n" + strings.Repeat("─", 50) + "\nSources:"
		for _, source := range sources {
			formatted += "\n• " + source
		}
	}
	return formatted
}

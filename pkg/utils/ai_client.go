package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// AIClientInterface is the generation-model dependency injected into the
// itinerary pipeline. Implementations return the model's raw text without
// repairing it; sanitizing untrusted output is the pipeline's job.
type AIClientInterface interface {
	GenerateItinerary(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	Close() error
}

// NewAIClient builds the configured provider client.
func NewAIClient(provider, apiKey, model string) (AIClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

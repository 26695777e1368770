package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

const (
	generationAttempts = 3
	generationBackoff  = time.Second

	embeddingAttempts = 5
	embeddingBackoff  = time.Second
)

// GeminiClient implements AIClientInterface using Google's Gemini models.
type GeminiClient struct {
	client         *genai.Client
	model          string
	embeddingModel string
}

func NewGeminiClient(apiKey, model string) (AIClientInterface, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:         client,
		model:          model,
		embeddingModel: "text-embedding-004",
	}, nil
}

// GenerateItinerary performs a single blocking round trip to the model with
// deterministic-leaning sampling and a bounded output ceiling. Transient
// failures are retried a fixed number of times with fixed backoff; after
// exhaustion the last error is returned, never substituted output.
func (c *GeminiClient) GenerateItinerary(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.2)
	model.SetMaxOutputTokens(8192)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	var lastErr error
	for attempt := 1; attempt <= generationAttempts; attempt++ {
		resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
		if err != nil {
			lastErr = fmt.Errorf("gemini API call failed: %w", err)
			log.Printf("Gemini generation attempt %d/%d failed: %v", attempt, generationAttempts, err)
			if attempt < generationAttempts {
				select {
				case <-time.After(generationBackoff):
				case <-ctx.Done():
					return "", ctx.Err()
				}
			}
			continue
		}

		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			lastErr = fmt.Errorf("no content generated by Gemini")
			continue
		}

		return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
	}

	return "", lastErr
}

func (c *GeminiClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	em := c.client.EmbeddingModel(c.embeddingModel)

	var lastErr error
	for attempt := 1; attempt <= embeddingAttempts; attempt++ {
		res, err := em.EmbedContent(ctx, genai.Text(text))
		if err == nil && res.Embedding != nil && len(res.Embedding.Values) > 0 {
			return pgvector.NewVector(res.Embedding.Values), nil
		}
		if err == nil {
			err = fmt.Errorf("empty embedding response")
		}
		lastErr = err
		if attempt < embeddingAttempts {
			select {
			case <-time.After(time.Duration(attempt) * embeddingBackoff):
			case <-ctx.Done():
				return pgvector.Vector{}, ctx.Err()
			}
		}
	}

	return pgvector.Vector{}, fmt.Errorf("gemini embedding failed: %w", lastErr)
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

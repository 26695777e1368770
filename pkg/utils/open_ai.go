package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements AIClientInterface using OpenAI chat completions and
// embeddings.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) AIClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIClient) GenerateItinerary(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		MaxTokens:   8192,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	}

	var lastErr error
	for attempt := 1; attempt <= generationAttempts; attempt++ {
		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			lastErr = fmt.Errorf("openai API call failed: %w", err)
			log.Printf("OpenAI generation attempt %d/%d failed: %v", attempt, generationAttempts, err)
			if attempt < generationAttempts {
				select {
				case <-time.After(generationBackoff):
				case <-ctx.Done():
					return "", ctx.Err()
				}
			}
			continue
		}

		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("no content generated by OpenAI")
			continue
		}

		return resp.Choices[0].Message.Content, nil
	}

	return "", lastErr
}

func (c *OpenAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embedding failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("empty embedding response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

func (c *OpenAIClient) Close() error {
	return nil
}

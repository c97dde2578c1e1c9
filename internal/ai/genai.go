// internal/ai/genai.go
package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenAIProvider talks to the Gemini API for both embeddings and completions.
type GenAIProvider struct {
	client          *genai.Client
	embedModel      string
	completionModel string
	temperature     float32
	maxTokens       int32
}

// NewGenAIProvider creates a Gemini-backed provider.
func NewGenAIProvider(apiKey, embedModel, completionModel string, temperature float64, maxTokens int) (*GenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if embedModel == "" {
		embedModel = "gemini-embedding-001"
	}
	if completionModel == "" {
		completionModel = "gemini-2.0-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIProvider{
		client:          client,
		embedModel:      embedModel,
		completionModel: completionModel,
		temperature:     float32(temperature),
		maxTokens:       int32(maxTokens),
	}, nil
}

// Embed generates an embedding for a single text.
func (p *GenAIProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	result, err := p.client.Models.EmbedContent(ctx,
		p.embedModel,
		contents,
		&genai.EmbedContentConfig{
			TaskType: "SEMANTIC_SIMILARITY",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("GenAI embed failed: %w", err)
	}

	if len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}
	return result.Embeddings[0].Values, nil
}

// Complete generates a completion for the given instructions.
func (p *GenAIProvider) Complete(ctx context.Context, system, user string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(p.temperature),
		MaxOutputTokens: p.maxTokens,
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.completionModel, genai.Text(user), cfg)
	if err != nil {
		return "", fmt.Errorf("GenAI completion failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty completion returned")
	}
	return text, nil
}

// Close satisfies Provider. The SDK client holds no connection that needs
// an explicit release.
func (p *GenAIProvider) Close() error {
	return nil
}

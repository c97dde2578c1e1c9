// internal/ai/ai.go

// Package ai abstracts the embedding and completion services behind small
// interfaces so the pipeline never depends on a concrete vendor SDK.
package ai

import (
	"context"
	"fmt"
	"time"

	"gameforge/internal/common/config"
)

// Embedder turns text into a dense vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Completer produces a free-form completion from a system instruction and a
// user message.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Provider bundles both capabilities plus lifecycle.
type Provider interface {
	Embedder
	Completer
	Close() error
}

// NewProvider builds the provider selected in configuration.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.AI.Provider {
	case "genai":
		return NewGenAIProvider(
			cfg.AI.GenAI.APIKey,
			cfg.AI.GenAI.EmbedModel,
			cfg.AI.GenAI.CompletionModel,
			cfg.Generation.Temperature,
			cfg.Generation.MaxTokens,
		)
	case "httpapi":
		timeout := time.Duration(cfg.AI.HTTPAPI.Timeout) * time.Millisecond
		return NewHTTPProvider(cfg.AI.HTTPAPI.BaseURL, timeout), nil
	default:
		return nil, fmt.Errorf("unknown ai provider: %s", cfg.AI.Provider)
	}
}

// internal/generation/generator.go
package generation

import (
	"context"
	stderrors "errors"
	"time"

	"gameforge/internal/ai"
	"gameforge/internal/common/errors"
	"gameforge/internal/common/logger"
	"gameforge/internal/models"
)

// Generator calls the completion model and enforces the artifact contract on
// what comes back.
type Generator struct {
	completer ai.Completer
	validator *Validator
	timeout   time.Duration
	log       logger.Logger
}

// NewGenerator creates a generator with the given completion backend.
func NewGenerator(completer ai.Completer, validator *Validator, timeout time.Duration, log logger.Logger) *Generator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Generator{
		completer: completer,
		validator: validator,
		timeout:   timeout,
		log:       log,
	}
}

// Generate produces a validated artifact for the prompt. Failures map onto
// the recoverable error classes: timeouts to GENERATION_TIMEOUT, transport
// errors to SERVICE_ERROR and contract violations to
// GENERATION_INVALID_OUTPUT. All of them are absorbed by the fallback
// synthesizer one level up.
func (g *Generator) Generate(ctx context.Context, prompt string, retrieval models.RetrievalResult) (models.Artifact, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := time.Now()
	raw, err := g.completer.Complete(ctx, SystemInstruction(), BuildUserPrompt(prompt, retrieval))
	if err != nil {
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			g.log.Warn("generation timed out", map[string]interface{}{
				"timeoutMs": g.timeout.Milliseconds(),
			})
			return models.Artifact{}, errors.NewGenerationTimeoutError()
		}
		return models.Artifact{}, errors.NewServiceError(err)
	}

	artifact, err := ParseOutput(raw, retrieval.DetectedType)
	if err != nil {
		g.log.Warn("generation output failed parsing", map[string]interface{}{
			"error": err.Error(),
		})
		return models.Artifact{}, err
	}

	if err := g.validator.Validate(artifact); err != nil {
		g.log.Warn("generation output failed validation", map[string]interface{}{
			"error": err.Error(),
		})
		return models.Artifact{}, err
	}

	g.log.Info("generation complete", map[string]interface{}{
		"gameType":   string(artifact.Type),
		"durationMs": time.Since(started).Milliseconds(),
	})
	return artifact, nil
}

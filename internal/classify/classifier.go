// internal/classify/classifier.go

// Package classify detects the intended game type of a prompt from keyword
// evidence. It is pure and deterministic: the same prompt against the same
// registry always yields the same answer.
package classify

import (
	"strings"

	"gameforge/internal/models"
	"gameforge/pkg/registry"
)

// Classifier scores prompts against the keyword groups of every registered
// game type.
type Classifier struct {
	registry *registry.TypeRegistry
}

// NewClassifier creates a classifier over the given registry.
func NewClassifier(r *registry.TypeRegistry) *Classifier {
	return &Classifier{registry: r}
}

// Classify returns the best-matching game type and a confidence in [0, 1].
// Confidence for a type is the fraction of its keyword groups with at least
// one keyword present in the prompt. A prompt matching nothing classifies as
// generic with confidence 0. Ties resolve in registry registration order.
func (c *Classifier) Classify(prompt string) (models.GameType, float64) {
	lowered := strings.ToLower(prompt)

	best := models.GameTypeGeneric
	bestConfidence := 0.0

	for _, entry := range c.registry.Entries() {
		if len(entry.KeywordGroups) == 0 {
			continue
		}
		matched := 0
		for _, group := range entry.KeywordGroups {
			if groupMatches(lowered, group) {
				matched++
			}
		}
		confidence := float64(matched) / float64(len(entry.KeywordGroups))
		if confidence > bestConfidence {
			best = entry.Type
			bestConfidence = confidence
		}
	}

	return best, bestConfidence
}

func groupMatches(lowered string, group []string) bool {
	for _, keyword := range group {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

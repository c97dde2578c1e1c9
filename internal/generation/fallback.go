// internal/generation/fallback.go
package generation

import (
	"gameforge/internal/models"
	"gameforge/pkg/registry"
)

// Synthesizer produces canned, hand-verified artifacts when generation
// fails. It is pure and total: it performs no I/O, cannot fail, and yields a
// playable artifact for any input type.
type Synthesizer struct {
	registry *registry.TypeRegistry
}

// NewSynthesizer creates a synthesizer over the given registry.
func NewSynthesizer(r *registry.TypeRegistry) *Synthesizer {
	return &Synthesizer{registry: r}
}

// Synthesize returns the degraded artifact for the type. Unknown types get
// the generic artifact.
func (s *Synthesizer) Synthesize(gameType models.GameType) models.Artifact {
	entry, ok := s.registry.Get(gameType)
	if !ok {
		entry, _ = s.registry.Get(models.GameTypeGeneric)
		gameType = models.GameTypeGeneric
	}

	// GameData is deep-copied so callers can never mutate registry state.
	return models.Artifact{
		Title:       entry.Fallback.Title,
		Description: entry.Fallback.Description,
		Code:        entry.Fallback.Code,
		GameData:    copyMap(entry.Fallback.GameData),
		Type:        gameType,
		Degraded:    true,
	}
}

func copyMap(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return nil
	}
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		switch typed := v.(type) {
		case map[string]interface{}:
			out[k] = copyMap(typed)
		case []interface{}:
			out[k] = copySlice(typed)
		default:
			out[k] = v
		}
	}
	return out
}

func copySlice(in []interface{}) []interface{} {
	out := make([]interface{}, len(in))
	for i, v := range in {
		switch typed := v.(type) {
		case map[string]interface{}:
			out[i] = copyMap(typed)
		case []interface{}:
			out[i] = copySlice(typed)
		default:
			out[i] = v
		}
	}
	return out
}

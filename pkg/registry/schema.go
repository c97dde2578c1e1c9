// pkg/registry/schema.go
package registry

import (
	"gameforge/internal/models"
)

// Entry describes one supported game type: the keyword groups the classifier
// matches against, the JSON schema its game_data document must satisfy, and
// the canned fallback artifact the synthesizer returns when generation fails.
type Entry struct {
	Type models.GameType `json:"gameType"`

	// KeywordGroups are groups of synonyms. Classifier confidence for a type
	// is the fraction of its groups with at least one keyword present.
	KeywordGroups [][]string `json:"keywordGroups"`

	// GameDataSchema is a JSON Schema source validated with gojsonschema.
	GameDataSchema string `json:"gameDataSchema"`

	Fallback FallbackSpec `json:"fallback"`
}

// FallbackSpec holds the hand-verified artifact content for one type.
type FallbackSpec struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Code        string                 `json:"code"`
	GameData    map[string]interface{} `json:"gameData"`
}

// TypeRegistry maps game types onto their entries. It is the single extension
// point for new types: registering an entry makes the classifier, validator
// and fallback synthesizer aware of it at once.
type TypeRegistry struct {
	entries map[models.GameType]Entry
	order   []models.GameType
}

// NewTypeRegistry creates an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		entries: make(map[models.GameType]Entry),
	}
}

// Register adds or replaces the entry for a type. Registration order is
// preserved and drives every ordered iteration over the registry.
func (r *TypeRegistry) Register(e Entry) {
	if _, exists := r.entries[e.Type]; !exists {
		r.order = append(r.order, e.Type)
	}
	r.entries[e.Type] = e
}

// Get returns the entry for a type.
func (r *TypeRegistry) Get(t models.GameType) (Entry, bool) {
	e, ok := r.entries[t]
	return e, ok
}

// Entries returns all entries in registration order.
func (r *TypeRegistry) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, r.entries[t])
	}
	return out
}

// Types returns all registered types in registration order.
func (r *TypeRegistry) Types() []models.GameType {
	out := make([]models.GameType, len(r.order))
	copy(out, r.order)
	return out
}

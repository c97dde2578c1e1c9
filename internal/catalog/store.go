// internal/catalog/store.go
package catalog

import (
	"math"
	"sort"
	"sync/atomic"

	"gameforge/internal/common/errors"
	"gameforge/internal/models"
)

// Store is the in-memory template catalog. The full template list is held in
// an atomically swapped snapshot: readers never block, and a reload replaces
// the whole catalog in one step so a search sees either the old set or the
// new set, never a mix.
type Store struct {
	snapshot atomic.Pointer[[]models.Template]
}

// NewStore creates an empty, not-yet-loaded store.
func NewStore() *Store {
	return &Store{}
}

// Load replaces the catalog with the given templates. The slice is copied so
// later caller mutations cannot leak into the published snapshot.
func (s *Store) Load(templates []models.Template) {
	snap := make([]models.Template, len(templates))
	copy(snap, templates)
	s.snapshot.Store(&snap)
}

// Loaded reports whether a catalog has been published, even an empty one.
func (s *Store) Loaded() bool {
	return s.snapshot.Load() != nil
}

// Count returns the number of templates in the current snapshot.
func (s *Store) Count() int {
	snap := s.snapshot.Load()
	if snap == nil {
		return 0
	}
	return len(*snap)
}

// All returns the current snapshot in catalog order.
func (s *Store) All() []models.Template {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil
	}
	out := make([]models.Template, len(*snap))
	copy(out, *snap)
	return out
}

// Search ranks the catalog against the query embedding by cosine similarity
// and returns the top k matches. Ties keep catalog order, so repeated
// searches over the same snapshot are deterministic.
func (s *Store) Search(query []float32, k int) ([]models.Match, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, errors.NewStoreNotReadyError()
	}
	if k <= 0 {
		return nil, nil
	}

	matches := make([]models.Match, 0, len(*snap))
	for _, tpl := range *snap {
		matches = append(matches, models.Match{
			Template: tpl,
			Score:    CosineSimilarity(query, tpl.Embedding),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths and zero vectors score 0 rather than erroring, so a
// template with a bad embedding simply ranks last.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

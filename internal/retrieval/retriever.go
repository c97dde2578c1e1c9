// internal/retrieval/retriever.go

// Package retrieval combines vector search over the template catalog with the
// keyword classifier to assemble the generation context for a prompt.
package retrieval

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gameforge/internal/ai"
	"gameforge/internal/catalog"
	"gameforge/internal/classify"
	"gameforge/internal/common/errors"
	"gameforge/internal/common/logger"
	"gameforge/internal/models"
)

// Options tune the retriever. Zero values fall back to sensible defaults.
type Options struct {
	TopK int
	// OverrideConfidence gates the keyword re-rank: below it, vector rank
	// stands as-is.
	OverrideConfidence float64
	MaxContextBytes    int
	// EmbedTimeout bounds the embedding call so a hung embedding service
	// cannot stall a job indefinitely.
	EmbedTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.TopK <= 0 {
		o.TopK = 2
	}
	if o.OverrideConfidence <= 0 {
		o.OverrideConfidence = 0.5
	}
	if o.MaxContextBytes <= 0 {
		o.MaxContextBytes = 16384
	}
	if o.EmbedTimeout <= 0 {
		o.EmbedTimeout = 10 * time.Second
	}
	return o
}

// Retriever resolves a prompt into ranked templates and a bounded context.
type Retriever struct {
	store      *catalog.Store
	embedder   ai.Embedder
	classifier *classify.Classifier
	opts       Options
	log        logger.Logger
}

// NewRetriever creates a retriever over the given store and embedder.
func NewRetriever(store *catalog.Store, embedder ai.Embedder, classifier *classify.Classifier, opts Options, log logger.Logger) *Retriever {
	return &Retriever{
		store:      store,
		embedder:   embedder,
		classifier: classifier,
		opts:       opts.withDefaults(),
		log:        log,
	}
}

// Retrieve embeds the prompt, ranks the catalog and reconciles the vector
// rank with the keyword classifier. When the classifier is confident enough,
// the best template of the detected type is promoted to the top so the
// generator always sees an example of the intended kind.
func (r *Retriever) Retrieve(ctx context.Context, prompt string) (models.RetrievalResult, error) {
	detectedType, confidence := r.classifier.Classify(prompt)

	embedCtx, cancel := context.WithTimeout(ctx, r.opts.EmbedTimeout)
	queryVec, err := r.embedder.Embed(embedCtx, prompt)
	cancel()
	if err != nil {
		return models.RetrievalResult{}, errors.NewEmbeddingUnavailableError(err)
	}

	// Rank the whole catalog so a confident keyword signal can reach
	// templates outside the similarity top-K.
	ranked, err := r.store.Search(queryVec, r.store.Count())
	if err != nil {
		return models.RetrievalResult{}, err
	}

	matches := r.reconcile(ranked, detectedType, confidence)
	if len(matches) > r.opts.TopK {
		matches = matches[:r.opts.TopK]
	}

	r.log.Debug("retrieval complete", map[string]interface{}{
		"detectedType": string(detectedType),
		"confidence":   confidence,
		"matches":      len(matches),
	})

	return models.RetrievalResult{
		Matches:      matches,
		DetectedType: detectedType,
		Confidence:   confidence,
		Context:      r.buildContext(matches),
	}, nil
}

// reconcile promotes the highest-similarity template of the detected type to
// the front when the classifier clears the override threshold. Relative
// order of everything else is preserved.
func (r *Retriever) reconcile(ranked []models.Match, detectedType models.GameType, confidence float64) []models.Match {
	if confidence < r.opts.OverrideConfidence || detectedType == models.GameTypeGeneric {
		return ranked
	}
	if len(ranked) > 0 && ranked[0].Template.Type == detectedType {
		return ranked
	}

	for i, m := range ranked {
		if m.Template.Type == detectedType {
			out := make([]models.Match, 0, len(ranked))
			out = append(out, m)
			out = append(out, ranked[:i]...)
			out = append(out, ranked[i+1:]...)
			return out
		}
	}
	// Catalog carries no template of the detected type; vector rank stands.
	return ranked
}

// buildContext renders the matches into the textual context handed to the
// generator, truncated to the configured byte budget.
func (r *Retriever) buildContext(matches []models.Match) string {
	var b strings.Builder
	for i, m := range matches {
		block := fmt.Sprintf(
			"--- Reference template %d: %s ---\nType: %s\nDescription: %s\n%s\nCode:\n%s\n\n",
			i+1, m.Template.Name, m.Template.Type, m.Template.Description,
			m.Template.DataSchemaHint, m.Template.Code,
		)
		remaining := r.opts.MaxContextBytes - b.Len()
		if remaining <= 0 {
			break
		}
		if len(block) > remaining {
			b.WriteString(block[:remaining])
			break
		}
		b.WriteString(block)
	}
	return b.String()
}

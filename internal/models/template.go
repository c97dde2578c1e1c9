// internal/models/template.go
package models

// Template is a curated reference game indexed for retrieval. Templates are
// immutable after catalog load; the store hands out copies of the slice
// header, never mutates entries.
type Template struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Code           string    `json:"code"`
	DataSchemaHint string    `json:"dataSchemaHint,omitempty"`
	Type           GameType  `json:"gameType"`
	Tags           []string  `json:"tags"`
	Embedding      []float32 `json:"embedding"`
}

// SearchableText is the text the catalog embedding is computed over:
// description plus type plus tags, matching how templates are indexed.
func (t Template) SearchableText() string {
	text := t.Description + " " + string(t.Type)
	for _, tag := range t.Tags {
		text += " " + tag
	}
	return text
}

// Match pairs a retrieved template with its similarity score.
type Match struct {
	Template Template `json:"template"`
	Score    float64  `json:"score"`
}

// RetrievalResult is the transient output of the retriever, passed by value
// into the generator.
type RetrievalResult struct {
	Matches      []Match  `json:"matches"`
	DetectedType GameType `json:"detectedType"`
	Confidence   float64  `json:"confidence"`
	Context      string   `json:"context"`
}

// TopMatch returns the highest-ranked match, if any.
func (r RetrievalResult) TopMatch() (Match, bool) {
	if len(r.Matches) == 0 {
		return Match{}, false
	}
	return r.Matches[0], true
}

// internal/catalog/loader.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gameforge/internal/models"
)

// Embedder is the slice of the AI client the loader needs to index templates.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// catalogFile is the on-disk catalog format produced by the catalog builder.
type catalogFile struct {
	Templates []models.Template `json:"templates"`
}

// ReadFile reads a catalog that may still lack embeddings, for the catalog
// builder to fill in via EmbedAll. Server startup goes through LoadFile,
// which insists on fully embedded entries.
func ReadFile(path string) ([]models.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	for i, tpl := range file.Templates {
		if tpl.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
	}
	return file.Templates, nil
}

// LoadFile reads a pre-embedded catalog written by the catalog builder.
func LoadFile(path string) ([]models.Template, error) {
	templates, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	for _, tpl := range templates {
		if len(tpl.Embedding) == 0 {
			return nil, fmt.Errorf("catalog entry %s has no embedding", tpl.ID)
		}
	}
	return templates, nil
}

// WriteFile persists an embedded catalog for later LoadFile calls.
func WriteFile(path string, templates []models.Template) error {
	data, err := json.MarshalIndent(catalogFile{Templates: templates}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

// ValidateDimensions checks every template embedding against the configured
// vector width, catching catalogs built against a different embedding model.
// A non-positive width disables the check.
func ValidateDimensions(templates []models.Template, dimensions int) error {
	if dimensions <= 0 {
		return nil
	}
	for _, tpl := range templates {
		if len(tpl.Embedding) != dimensions {
			return fmt.Errorf("template %s: embedding has %d dimensions, want %d",
				tpl.ID, len(tpl.Embedding), dimensions)
		}
	}
	return nil
}

// EmbedAll indexes every template through the embedder. Templates that
// already carry an embedding are left untouched.
func EmbedAll(ctx context.Context, embedder Embedder, templates []models.Template) ([]models.Template, error) {
	out := make([]models.Template, len(templates))
	copy(out, templates)

	for i := range out {
		if len(out[i].Embedding) > 0 {
			continue
		}
		vec, err := embedder.Embed(ctx, out[i].SearchableText())
		if err != nil {
			return nil, fmt.Errorf("embed template %s: %w", out[i].ID, err)
		}
		out[i].Embedding = vec
	}
	return out, nil
}

// internal/jobs/store.go

// Package jobs owns the generation job lifecycle: creation, asynchronous
// execution of the pipeline and status queries.
package jobs

import (
	"context"
	"errors"

	"gameforge/internal/models"
)

// ErrJobNotFound is the store-level sentinel for an unknown job id. The
// manager translates it into the caller-visible NOT_FOUND error.
var ErrJobNotFound = errors.New("job not found")

// Store persists jobs. Implementations must return ErrJobNotFound from Get
// and Update when the id is unknown.
type Store interface {
	// Create persists a new job. The id must not already exist.
	Create(ctx context.Context, job models.Job) error

	// Get returns the job by id.
	Get(ctx context.Context, id string) (models.Job, error)

	// Update overwrites an existing job.
	Update(ctx context.Context, job models.Job) error

	// Close releases backend resources.
	Close() error
}

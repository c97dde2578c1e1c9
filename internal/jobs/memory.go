// internal/jobs/memory.go
package jobs

import (
	"context"
	"fmt"
	"sync"

	"gameforge/internal/models"
)

// MemoryStore keeps jobs in process memory. The default backend for single
// instance deployments and tests.
type MemoryStore struct {
	mu   sync.RWMutex
	jobs map[string]models.Job
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs: make(map[string]models.Job),
	}
}

func (s *MemoryStore) Create(_ context.Context, job models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.jobs[job.ID]; exists {
		return fmt.Errorf("job %s already exists", job.ID)
	}
	s.jobs[job.ID] = job
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return models.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (s *MemoryStore) Update(_ context.Context, job models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[job.ID]; !ok {
		return ErrJobNotFound
	}
	s.jobs[job.ID] = job
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

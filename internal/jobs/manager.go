// internal/jobs/manager.go
package jobs

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"gameforge/internal/classify"
	"gameforge/internal/common/errors"
	"gameforge/internal/common/logger"
	"gameforge/internal/common/metrics"
	"gameforge/internal/common/observability"
	"gameforge/internal/generation"
	"gameforge/internal/models"
	"gameforge/internal/retrieval"
)

// Manager drives jobs through pending -> generating -> {ready, failed}.
//
// Pipeline failures never fail a job: the fallback synthesizer converts them
// into a degraded ready artifact. Only job store failures finalize as failed.
type Manager struct {
	store       Store
	retriever   *retrieval.Retriever
	generator   *generation.Generator
	synthesizer *generation.Synthesizer
	classifier  *classify.Classifier
	obs         *observability.Observability
	log         logger.Logger

	maxPromptLength int

	// inflight guards against a job being executed twice in this process.
	inflight sync.Map
	wg       sync.WaitGroup
}

// NewManager wires the pipeline stages into a lifecycle manager.
func NewManager(
	store Store,
	retriever *retrieval.Retriever,
	generator *generation.Generator,
	synthesizer *generation.Synthesizer,
	classifier *classify.Classifier,
	obs *observability.Observability,
	log logger.Logger,
	maxPromptLength int,
) *Manager {
	if maxPromptLength <= 0 {
		maxPromptLength = 2000
	}
	return &Manager{
		store:           store,
		retriever:       retriever,
		generator:       generator,
		synthesizer:     synthesizer,
		classifier:      classifier,
		obs:             obs,
		log:             log,
		maxPromptLength: maxPromptLength,
	}
}

// Create validates the request, persists a pending job and dispatches its
// execution. The returned job is the caller's handle for status polling.
func (m *Manager) Create(ctx context.Context, req models.GenerationRequest) (models.Job, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return models.Job{}, errors.NewInvalidRequestError("prompt is empty")
	}
	if len(prompt) > m.maxPromptLength {
		return models.Job{}, errors.NewInvalidRequestError(
			fmt.Sprintf("prompt exceeds %d characters", m.maxPromptLength))
	}

	now := time.Now().UTC()
	job := models.Job{
		ID:        uuid.NewString(),
		State:     models.JobStatePending,
		Prompt:    prompt,
		Requester: req.Requester,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.store.Create(ctx, job); err != nil {
		return models.Job{}, errors.NewJobStoreFailedError(err)
	}

	metrics.JobsCreated.Inc()
	m.log.Info("job created", map[string]interface{}{
		"jobId":     job.ID,
		"requester": job.Requester,
	})

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		// Detached from the request context: the job outlives the HTTP call.
		if err := m.Run(context.Background(), job.ID); err != nil {
			m.log.WithError(err).Error("job run failed", map[string]interface{}{
				"jobId": job.ID,
			})
		}
	}()

	return job, nil
}

// Run executes one job to a terminal state. Idempotent: a job already
// running, or already terminal, is left untouched.
func (m *Manager) Run(ctx context.Context, id string) error {
	if _, alreadyRunning := m.inflight.LoadOrStore(id, struct{}{}); alreadyRunning {
		return nil
	}
	defer m.inflight.Delete(id)

	job, err := m.store.Get(ctx, id)
	if stderrors.Is(err, ErrJobNotFound) {
		return errors.NewNotFoundError(id)
	}
	if err != nil {
		return errors.NewJobStoreFailedError(err)
	}
	if job.State != models.JobStatePending {
		return nil
	}

	job.State = models.JobStateGenerating
	job.UpdatedAt = time.Now().UTC()
	if err := m.store.Update(ctx, job); err != nil {
		return errors.NewJobStoreFailedError(err)
	}

	metrics.JobsActive.Inc()
	defer metrics.JobsActive.Dec()
	started := time.Now()

	artifact, absorbedCode := m.execute(ctx, job.Prompt)

	job.State = models.JobStateReady
	job.Artifact = &artifact
	job.Error = nil
	job.UpdatedAt = time.Now().UTC()

	if err := m.store.Update(ctx, job); err != nil {
		m.markFailed(ctx, job, err)
		m.recordFinalized(ctx, models.JobStateFailed, false, time.Since(started))
		return errors.NewJobStoreFailedError(err)
	}

	if absorbedCode != "" {
		metrics.JobsDegraded.WithLabelValues(absorbedCode).Inc()
	}
	m.recordFinalized(ctx, models.JobStateReady, artifact.Degraded, time.Since(started))

	m.log.Info("job finalized", map[string]interface{}{
		"jobId":      job.ID,
		"state":      string(job.State),
		"gameType":   string(artifact.Type),
		"degraded":   artifact.Degraded,
		"durationMs": time.Since(started).Milliseconds(),
	})
	return nil
}

// Status returns the current job snapshot.
func (m *Manager) Status(ctx context.Context, id string) (models.Job, error) {
	job, err := m.store.Get(ctx, id)
	if stderrors.Is(err, ErrJobNotFound) {
		return models.Job{}, errors.NewNotFoundError(id)
	}
	if err != nil {
		return models.Job{}, errors.NewJobStoreFailedError(err)
	}
	return job, nil
}

// Wait blocks until all dispatched jobs have finished. Used for graceful
// shutdown and tests.
func (m *Manager) Wait() {
	m.wg.Wait()
}

// execute runs retrieval and generation, absorbing every recoverable failure
// into a fallback artifact. Returns the artifact plus the absorbed error
// code, empty when generation succeeded cleanly.
func (m *Manager) execute(ctx context.Context, prompt string) (models.Artifact, string) {
	retrievalStart := time.Now()
	result, err := m.retriever.Retrieve(ctx, prompt)
	metrics.StageDuration.WithLabelValues("retrieval").Observe(time.Since(retrievalStart).Seconds())
	if err != nil {
		m.log.WithError(err).Warn("retrieval failed, synthesizing fallback", map[string]interface{}{
			"errorCode": string(errors.CodeOf(err)),
		})
		detectedType, _ := m.classifier.Classify(prompt)
		return m.synthesizer.Synthesize(detectedType), string(errors.CodeOf(err))
	}

	generationStart := time.Now()
	artifact, err := m.generator.Generate(ctx, prompt, result)
	metrics.StageDuration.WithLabelValues("generation").Observe(time.Since(generationStart).Seconds())
	if err != nil {
		m.log.WithError(err).Warn("generation failed, synthesizing fallback", map[string]interface{}{
			"errorCode": string(errors.CodeOf(err)),
		})
		return m.synthesizer.Synthesize(result.DetectedType), string(errors.CodeOf(err))
	}

	return artifact, ""
}

// markFailed is the best-effort terminal write when the ready write failed.
func (m *Manager) markFailed(ctx context.Context, job models.Job, cause error) {
	job.State = models.JobStateFailed
	job.Artifact = nil
	job.Error = &models.JobError{
		Kind:    string(errors.ErrCodeJobStoreFailed),
		Message: cause.Error(),
	}
	job.UpdatedAt = time.Now().UTC()

	if err := m.store.Update(ctx, job); err != nil {
		m.log.WithError(err).Error("failed to persist failed state", map[string]interface{}{
			"jobId": job.ID,
		})
	}
}

func (m *Manager) recordFinalized(ctx context.Context, state models.JobState, degraded bool, duration time.Duration) {
	metrics.JobsCompleted.WithLabelValues(string(state)).Inc()
	if m.obs != nil {
		m.obs.RecordJobProcessed(ctx, string(state), degraded)
		m.obs.RecordJobDuration(ctx, duration, string(state))
	}
}

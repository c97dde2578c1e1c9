// internal/jobs/manager_test.go
package jobs

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameforge/internal/catalog"
	"gameforge/internal/classify"
	"gameforge/internal/common/errors"
	"gameforge/internal/common/logger"
	"gameforge/internal/generation"
	"gameforge/internal/models"
	"gameforge/internal/retrieval"
	"gameforge/pkg/registry"
)

const validQuizOutput = `TITLE: Math Quiz
DESCRIPTION: A quiz about basic math
CODE_START
const app = new PIXI.Application({});
document.getElementById('game-container').appendChild(app.view);
const questions = GAME_DATA.questions;
CODE_END
DATA_START
{"questions": [{"question": "2+2?", "answers": ["3", "4"], "correctIndex": 1}]}
DATA_END`

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	vec := make([]float32, 4)
	for i, c := range text {
		vec[i%4] += float32(c)
	}
	return vec, nil
}

type fakeCompleter struct {
	output string
	err    error
}

func (f *fakeCompleter) Complete(context.Context, string, string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func newTestManager(t *testing.T, store Store, embedder *fakeEmbedder, completer *fakeCompleter) *Manager {
	t.Helper()

	r := registry.Default()
	classifier := classify.NewClassifier(r)
	log := logger.NewNoOpLogger()

	catalogStore := catalog.NewStore()
	templates, err := catalog.EmbedAll(context.Background(), embedder, catalog.Seed())
	if embedder.err == nil {
		require.NoError(t, err)
		catalogStore.Load(templates)
	} else {
		catalogStore.Load(catalog.Seed())
	}

	retriever := retrieval.NewRetriever(catalogStore, embedder, classifier, retrieval.Options{}, log)
	generator := generation.NewGenerator(completer, generation.NewValidator(r), time.Second, log)
	synthesizer := generation.NewSynthesizer(r)

	return NewManager(store, retriever, generator, synthesizer, classifier, nil, log, 2000)
}

func TestCreateRejectsInvalidPrompts(t *testing.T) {
	m := newTestManager(t, NewMemoryStore(), &fakeEmbedder{}, &fakeCompleter{output: validQuizOutput})

	tests := []struct {
		name   string
		prompt string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t  "},
		{"too long", strings.Repeat("x", 2001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Create(context.Background(), models.GenerationRequest{Prompt: tt.prompt})
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
		})
	}
}

func TestJobLifecycleHappyPath(t *testing.T) {
	m := newTestManager(t, NewMemoryStore(), &fakeEmbedder{}, &fakeCompleter{output: validQuizOutput})

	job, err := m.Create(context.Background(), models.GenerationRequest{
		Prompt:    "Create a quiz about basic math",
		Requester: "player-1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatePending, job.State)
	assert.NotEmpty(t, job.ID)

	m.Wait()

	final, err := m.Status(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStateReady, final.State)
	require.NotNil(t, final.Artifact)
	assert.Equal(t, "Math Quiz", final.Artifact.Title)
	assert.Equal(t, models.GameTypeQuiz, final.Artifact.Type)
	assert.False(t, final.Artifact.Degraded)
	assert.Nil(t, final.Error)
}

func TestGenerationFailureFinalizesReadyDegraded(t *testing.T) {
	m := newTestManager(t, NewMemoryStore(), &fakeEmbedder{}, &fakeCompleter{err: fmt.Errorf("model offline")})

	job, err := m.Create(context.Background(), models.GenerationRequest{Prompt: "Create a quiz about basic math"})
	require.NoError(t, err)
	m.Wait()

	final, err := m.Status(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStateReady, final.State)
	require.NotNil(t, final.Artifact)
	assert.True(t, final.Artifact.Degraded)
	assert.Equal(t, models.GameTypeQuiz, final.Artifact.Type)
	assert.Nil(t, final.Error)
}

func TestEmbeddingFailureFinalizesReadyDegraded(t *testing.T) {
	m := newTestManager(t, NewMemoryStore(), &fakeEmbedder{err: fmt.Errorf("embed down")}, &fakeCompleter{output: validQuizOutput})

	job, err := m.Create(context.Background(), models.GenerationRequest{Prompt: "a platformer where you jump"})
	require.NoError(t, err)
	m.Wait()

	final, err := m.Status(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStateReady, final.State)
	require.NotNil(t, final.Artifact)
	assert.True(t, final.Artifact.Degraded)
	// Keyword classification still steers the fallback type.
	assert.Equal(t, models.GameTypePlatformer, final.Artifact.Type)
}

func TestMalformedOutputFinalizesReadyDegraded(t *testing.T) {
	m := newTestManager(t, NewMemoryStore(), &fakeEmbedder{}, &fakeCompleter{output: "no markers at all"})

	job, err := m.Create(context.Background(), models.GenerationRequest{Prompt: "a tile matching puzzle"})
	require.NoError(t, err)
	m.Wait()

	final, err := m.Status(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStateReady, final.State)
	assert.True(t, final.Artifact.Degraded)
	assert.Equal(t, models.GameTypePuzzle, final.Artifact.Type)
}

func TestStatusUnknownJobReturnsNotFound(t *testing.T) {
	m := newTestManager(t, NewMemoryStore(), &fakeEmbedder{}, &fakeCompleter{output: validQuizOutput})

	_, err := m.Status(context.Background(), "does-not-exist")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.CodeOf(err))
}

func TestRunIsIdempotentOnTerminalJobs(t *testing.T) {
	store := NewMemoryStore()
	m := newTestManager(t, store, &fakeEmbedder{}, &fakeCompleter{output: validQuizOutput})

	job, err := m.Create(context.Background(), models.GenerationRequest{Prompt: "a quiz"})
	require.NoError(t, err)
	m.Wait()

	first, err := m.Status(context.Background(), job.ID)
	require.NoError(t, err)
	require.Equal(t, models.JobStateReady, first.State)

	// Running again must not touch the terminal job.
	require.NoError(t, m.Run(context.Background(), job.ID))
	second, err := m.Status(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, first.UpdatedAt, second.UpdatedAt)
	assert.Equal(t, first.Artifact.Title, second.Artifact.Title)
}

func TestRunUnknownJobReturnsNotFound(t *testing.T) {
	m := newTestManager(t, NewMemoryStore(), &fakeEmbedder{}, &fakeCompleter{output: validQuizOutput})

	err := m.Run(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.CodeOf(err))
}

// failingStore errors on every write after a configurable number of calls.
type failingStore struct {
	*MemoryStore
	failCreate bool
}

func (s *failingStore) Create(ctx context.Context, job models.Job) error {
	if s.failCreate {
		return fmt.Errorf("disk full")
	}
	return s.MemoryStore.Create(ctx, job)
}

func TestCreateStoreFailureSurfacesJobStoreFailed(t *testing.T) {
	store := &failingStore{MemoryStore: NewMemoryStore(), failCreate: true}
	m := newTestManager(t, store, &fakeEmbedder{}, &fakeCompleter{output: validQuizOutput})

	_, err := m.Create(context.Background(), models.GenerationRequest{Prompt: "a quiz"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeJobStoreFailed, errors.CodeOf(err))
}

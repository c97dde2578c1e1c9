// internal/api/handlers_test.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameforge/internal/catalog"
	"gameforge/internal/classify"
	"gameforge/internal/common/logger"
	"gameforge/internal/generation"
	"gameforge/internal/jobs"
	"gameforge/internal/retrieval"
	"gameforge/pkg/registry"
)

const validQuizOutput = `TITLE: Math Quiz
DESCRIPTION: A quiz about basic math
CODE_START
document.getElementById('game-container').appendChild(app.view);
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
}

func (f *fakeCompleter) Complete(context.Context, string, string) (string, error) {
	return f.output, nil
}

type testHarness struct {
	server  *Server
	manager *jobs.Manager
}

func newTestServer(t *testing.T, embedder *fakeEmbedder) *testHarness {
	t.Helper()

	r := registry.Default()
	classifier := classify.NewClassifier(r)
	log := logger.NewNoOpLogger()

	catalogStore := catalog.NewStore()
	templates, err := catalog.EmbedAll(context.Background(), &fakeEmbedder{}, catalog.Seed())
	require.NoError(t, err)
	catalogStore.Load(templates)

	retriever := retrieval.NewRetriever(catalogStore, embedder, classifier, retrieval.Options{}, log)
	generator := generation.NewGenerator(
		&fakeCompleter{output: validQuizOutput},
		generation.NewValidator(r), time.Second, log)
	synthesizer := generation.NewSynthesizer(r)
	manager := jobs.NewManager(jobs.NewMemoryStore(), retriever, generator, synthesizer, classifier, nil, log, 2000)

	return &testHarness{
		server:  NewServer(manager, catalogStore, embedder, log),
		manager: manager,
	}
}

func TestGenerateAccepted(t *testing.T) {
	h := newTestServer(t, &fakeEmbedder{})
	handler := h.server.Routes()

	body := strings.NewReader(`{"prompt": "Create a quiz about basic math"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/games/generate", body)
	req.Header.Set("X-Requester-ID", "player-7")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp struct {
		JobID string `json:"job_id"`
		State string `json:"state"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.JobID)
	assert.Equal(t, "pending", resp.State)
}

func TestGenerateEmptyPromptRejected(t *testing.T) {
	h := newTestServer(t, &fakeEmbedder{})
	handler := h.server.Routes()

	req := httptest.NewRequest(http.MethodPost, "/api/games/generate", strings.NewReader(`{"prompt": ""}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_REQUEST")
}

func TestGenerateMalformedBodyRejected(t *testing.T) {
	h := newTestServer(t, &fakeEmbedder{})
	handler := h.server.Routes()

	req := httptest.NewRequest(http.MethodPost, "/api/games/generate", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatusLifecycle(t *testing.T) {
	h := newTestServer(t, &fakeEmbedder{})
	handler := h.server.Routes()

	body := strings.NewReader(`{"prompt": "Create a quiz about basic math"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/games/generate", body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var created struct {
		JobID string `json:"job_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	h.manager.Wait()

	statusReq := httptest.NewRequest(http.MethodGet, "/api/games/"+created.JobID, nil)
	statusRec := httptest.NewRecorder()
	handler.ServeHTTP(statusRec, statusReq)
	require.Equal(t, http.StatusOK, statusRec.Code)

	var status struct {
		State    string `json:"state"`
		Artifact *struct {
			Title    string `json:"title"`
			GameType string `json:"gameType"`
			Degraded bool   `json:"degraded"`
		} `json:"artifact"`
	}
	require.NoError(t, json.Unmarshal(statusRec.Body.Bytes(), &status))
	assert.Equal(t, "ready", status.State)
	require.NotNil(t, status.Artifact)
	assert.Equal(t, "Math Quiz", status.Artifact.Title)
	assert.False(t, status.Artifact.Degraded)
}

func TestStatusUnknownJob(t *testing.T) {
	h := newTestServer(t, &fakeEmbedder{})
	handler := h.server.Routes()

	req := httptest.NewRequest(http.MethodGet, "/api/games/nope", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestTemplatesListing(t *testing.T) {
	h := newTestServer(t, &fakeEmbedder{})
	handler := h.server.Routes()

	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Templates []map[string]interface{} `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Templates, len(catalog.Seed()))
	// Listing exposes metadata only.
	assert.NotContains(t, rec.Body.String(), "PIXI.Application")
	assert.NotContains(t, rec.Body.String(), "embedding")
}

func TestTemplateSearch(t *testing.T) {
	h := newTestServer(t, &fakeEmbedder{})
	handler := h.server.Routes()

	req := httptest.NewRequest(http.MethodGet, "/api/templates/search?q=quiz&limit=2", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Templates []struct {
			ID    string   `json:"id"`
			Score *float64 `json:"score"`
		} `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Templates, 2)
	require.NotNil(t, resp.Templates[0].Score)
	require.NotNil(t, resp.Templates[1].Score)
	assert.GreaterOrEqual(t, *resp.Templates[0].Score, *resp.Templates[1].Score)
}

func TestTemplateSearchValidation(t *testing.T) {
	h := newTestServer(t, &fakeEmbedder{})
	handler := h.server.Routes()

	for _, target := range []string{
		"/api/templates/search",
		"/api/templates/search?q=quiz&limit=0",
		"/api/templates/search?q=quiz&limit=abc",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}

func TestTemplateSearchEmbedderDown(t *testing.T) {
	h := newTestServer(t, &fakeEmbedder{err: fmt.Errorf("down")})
	handler := h.server.Routes()

	req := httptest.NewRequest(http.MethodGet, "/api/templates/search?q=quiz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t, &fakeEmbedder{})
	handler := h.server.Routes()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestHealthzUnloadedCatalog(t *testing.T) {
	log := logger.NewNoOpLogger()
	server := NewServer(nil, catalog.NewStore(), &fakeEmbedder{}, log)
	handler := server.Routes()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

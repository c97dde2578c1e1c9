// internal/api/handlers.go
package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gameforge/internal/common/errors"
	"gameforge/internal/models"
)

const requesterHeader = "X-Requester-ID"

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	JobID string `json:"job_id"`
	State string `json:"state"`
}

// handleGenerate accepts a prompt and returns 202 with the job handle.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewInvalidRequestError("request body is not valid JSON"))
		return
	}

	job, err := s.manager.Create(r.Context(), models.GenerationRequest{
		Prompt:    req.Prompt,
		Requester: r.Header.Get(requesterHeader),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, generateResponse{
		JobID: job.ID,
		State: string(job.State),
	})
}

type statusResponse struct {
	JobID     string           `json:"job_id"`
	State     string           `json:"state"`
	Artifact  *models.Artifact `json:"artifact,omitempty"`
	Error     *models.JobError `json:"error,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// handleStatus returns the current state of a job, including the artifact
// once ready.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	job, err := s.manager.Status(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		JobID:     job.ID,
		State:     string(job.State),
		Artifact:  job.Artifact,
		Error:     job.Error,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	})
}

// templateSummary is the catalog listing shape: metadata only, no code or
// embedding payloads.
type templateSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	GameType    string   `json:"game_type"`
	Tags        []string `json:"tags"`
	Score       *float64 `json:"score,omitempty"`
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	templates := s.catalog.All()
	summaries := make([]templateSummary, 0, len(templates))
	for _, tpl := range templates {
		summaries = append(summaries, templateSummary{
			ID:          tpl.ID,
			Name:        tpl.Name,
			Description: tpl.Description,
			GameType:    string(tpl.Type),
			Tags:        tpl.Tags,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"templates": summaries})
}

// handleTemplateSearch ranks the catalog against a free-text query.
func (s *Server) handleTemplateSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, errors.NewInvalidRequestError("query parameter q is required"))
		return
	}

	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, errors.NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	vec, err := s.embedder.Embed(r.Context(), query)
	if err != nil {
		writeError(w, errors.NewEmbeddingUnavailableError(err))
		return
	}

	matches, err := s.catalog.Search(vec, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	summaries := make([]templateSummary, 0, len(matches))
	for _, m := range matches {
		score := m.Score
		summaries = append(summaries, templateSummary{
			ID:          m.Template.ID,
			Name:        m.Template.Name,
			Description: m.Template.Description,
			GameType:    string(m.Template.Type),
			Tags:        m.Template.Tags,
			Score:       &score,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"templates": summaries})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	state := "healthy"
	if !s.catalog.Loaded() {
		status = http.StatusServiceUnavailable
		state = "catalog not loaded"
	}

	writeJSON(w, status, map[string]interface{}{
		"status":    state,
		"templates": s.catalog.Count(),
		"time":      time.Now().UTC().Format(time.RFC3339),
	})
}

// writeError maps error codes onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	code := errors.CodeOf(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidRequest:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeEmbeddingUnavailable, errors.ErrCodeStoreNotReady:
		status = http.StatusServiceUnavailable
	}

	body := errorBody{Code: string(code), Message: err.Error()}
	var stdErr *errors.StandardError
	if stderrors.As(err, &stdErr) {
		body.Message = stdErr.Message
		body.Details = stdErr.Details
	}
	writeJSON(w, status, errorResponse{Error: body})
}

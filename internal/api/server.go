// internal/api/server.go

// Package api exposes the generation pipeline over HTTP.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"gameforge/internal/ai"
	"gameforge/internal/catalog"
	"gameforge/internal/common/config"
	"gameforge/internal/common/logger"
	"gameforge/internal/jobs"
)

// Server holds the handler dependencies.
type Server struct {
	manager  *jobs.Manager
	catalog  *catalog.Store
	embedder ai.Embedder
	log      logger.Logger
}

// NewServer creates the API server.
func NewServer(manager *jobs.Manager, catalogStore *catalog.Store, embedder ai.Embedder, log logger.Logger) *Server {
	return &Server{
		manager:  manager,
		catalog:  catalogStore,
		embedder: embedder,
		log:      log,
	}
}

// Routes returns the HTTP mux with all endpoints registered.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/games/generate", s.handleGenerate)
	mux.HandleFunc("GET /api/games/{id}", s.handleStatus)
	mux.HandleFunc("GET /api/templates", s.handleTemplates)
	mux.HandleFunc("GET /api/templates/search", s.handleTemplateSearch)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return mux
}

// NewHTTPServer wraps the routes in a configured http.Server.
func (s *Server) NewHTTPServer(cfg config.ServerConfig) *http.Server {
	readTimeout := time.Duration(cfg.ReadTimeout) * time.Millisecond
	writeTimeout := time.Duration(cfg.WriteTimeout) * time.Millisecond
	if readTimeout <= 0 {
		readTimeout = 10 * time.Second
	}
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}

	return &http.Server{
		Addr:         cfg.ListenAddress,
		Handler:      s.Routes(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

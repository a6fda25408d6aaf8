// Package api serves the dashboard JSON endpoints and the uniform error bodies.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/okian/velocity/internal/domain/dashboard"
	"github.com/okian/velocity/pkg/logger"
	"github.com/okian/velocity/pkg/metrics"
)

const contentTypeJSON = "application/json"

// Server wires the metric generators to HTTP routes.
type Server struct {
	catalog *dashboard.Catalog
	metrics *metrics.Manager
	logger  logger.Logger
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithMetrics records snapshot counts on m instead of the global manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Server) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithLogger sets the logger used for encoding failures.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a Server over catalog.
func NewServer(catalog *dashboard.Catalog, opts ...Option) *Server {
	s := &Server{
		catalog: catalog,
		metrics: metrics.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches the health route and one GET route per registry entry.
func (s *Server) Register(_ context.Context, r chi.Router) {
	if r == nil {
		panic("router is nil")
	}
	r.Get(dashboard.HealthRoute, s.handleHealth)
	for _, e := range s.catalog.Registry() {
		r.Get(e.Route, s.snapshotHandler(e))
	}
}

// errorResponse is the body of every non-2xx JSON answer.
type errorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

// writeJSON marshals before writing so an encoding failure can still become a 500.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		if s.logger != nil {
			s.logger.Error(r.Context(), "encode response", logger.String("path", r.URL.Path), logger.Error(WrapKind("api.write_json", ErrEncode, err)))
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	write(w, status, body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	body, _ := json.Marshal(errorResponse{Error: msg, Status: "error"})
	write(w, status, body)
}

func write(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

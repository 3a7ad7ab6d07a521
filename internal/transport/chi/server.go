// Package chi wires the query pipeline and health service into HTTP
// handlers.
package chi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fundwise/faqd/internal/domain/faq"
	healthuc "github.com/fundwise/faqd/internal/usecase/health"
	queryuc "github.com/fundwise/faqd/internal/usecase/query"
)

// Server exposes the FAQ pipeline over HTTP.
type Server struct {
	query  *queryuc.Service
	health *healthuc.Service
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(query *queryuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{query: query, health: health, logger: logger}
}

// Routes mounts all handlers on r.
func (s *Server) Routes(r chi.Router) {
	r.Post("/api/query", s.handleQuery)
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)
}

// queryRequest accepts any JSON value for query so that non-string input
// can be rejected with a specific message instead of a decode error.
type queryRequest struct {
	Query any `json:"query"`
}

// queryResponse mirrors the wire shape of a query result. Nullable fields
// are emitted explicitly as JSON null for non-success outcomes.
type queryResponse struct {
	Status      string   `json:"status"`
	ErrorType   string   `json:"error_type,omitempty"`
	Message     string   `json:"message,omitempty"`
	Answer      *string  `json:"answer"`
	Source      *string  `json:"source"`
	LastUpdated *string  `json:"last_updated"`
	MatchedKey  *string  `json:"matched_q_key,omitempty"`
	Similarity  *float64 `json:"similarity,omitempty"`
}

// handleQuery handles POST /api/query.
// Blank or non-string input is rejected here; the pipeline itself never
// sees it.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == nil {
		s.logger.Debug("query request rejected", zap.String("reason", "missing query"))
		writeInvalidRequest(w, "Query is required")
		return
	}

	text, ok := req.Query.(string)
	if !ok || strings.TrimSpace(text) == "" {
		s.logger.Debug("query request rejected", zap.String("reason", "query not a non-empty string"))
		writeInvalidRequest(w, "Query must be a non-empty string")
		return
	}

	result := s.query.Process(r.Context(), text)
	writeJSON(w, http.StatusOK, resultToResponse(result))
}

// handleHealth handles GET /health. Always 200: an empty knowledge base is
// reported as degraded but the service keeps answering.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  string(report.Status),
		"checks":  checks,
		"entries": report.Entries,
	})
}

// handleMetrics handles GET /metrics.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func resultToResponse(res faq.Result) queryResponse {
	resp := queryResponse{
		Status:    string(res.Status),
		ErrorType: string(res.ErrorType),
		Message:   res.Message,
	}

	switch res.Status {
	case faq.StatusSuccess:
		resp.Answer = ptr(res.Answer)
		resp.Source = ptr(res.Source)
		resp.LastUpdated = ptr(res.LastUpdated)
		resp.MatchedKey = ptr(res.MatchedKey)
		resp.Similarity = ptr(res.Similarity)
	case faq.StatusRefusal:
		// Refusals carry the advisory source URL, nothing else.
		resp.Source = ptr(res.Source)
	case faq.StatusError, faq.StatusNoMatch:
		// All nullable fields stay null.
	}

	return resp
}

func ptr[T any](v T) *T { return &v }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeInvalidRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"status":     "error",
		"error_type": "invalid_request",
		"message":    message,
	})
}

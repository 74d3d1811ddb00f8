package chi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/papersapi/internal/transport/dto"
	healthuc "github.com/kailas-cloud/papersapi/internal/usecase/health"
	queryuc "github.com/kailas-cloud/papersapi/internal/usecase/query"
)

// Server serves the papers API over HTTP.
type Server struct {
	queries queryuc.Executor
	health  *healthuc.Service
	logger  *zap.Logger
	now     func() time.Time
}

// NewServer creates an HTTP API server.
func NewServer(queries queryuc.Executor, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{
		queries: queries,
		health:  health,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock overrides the timestamp source (tests).
func (s *Server) WithClock(now func() time.Time) *Server {
	s.now = now
	return s
}

// ListPapers handles GET /api/papers.
func (s *Server) ListPapers(w http.ResponseWriter, r *http.Request) {
	req := dto.ParseQuery(r.URL.Query())
	res := s.queries.Execute(r.Context(), &req)
	writeJSON(w, http.StatusOK, dto.PapersResponseFromResult(&res, s.now()))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, dto.HealthResponse{
		Status:  string(report.Status),
		Checks:  checks,
		Records: report.Records,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// NotFound answers unrouted paths with the failure envelope.
func (s *Server) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, dto.NewErrorResponse("endpoint not found", s.now()))
}

// MethodNotAllowed answers routed paths hit with an unsupported method.
func (s *Server) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, dto.NewErrorResponse("method not allowed", s.now()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

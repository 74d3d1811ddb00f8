package chi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kailas-cloud/papersapi/internal/metrics"
)

// RouterOptions tunes the middleware chain.
type RouterOptions struct {
	AllowOrigin    string
	CompressLevel  int // 0 disables compression
	MetricsEnabled bool
}

// NewRouter wires the middleware chain and routes.
// The recoverer sits inside logging and metrics so failed requests are
// still logged and counted with their 500 status.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(WideEventMiddleware(s.logger))
	r.Use(metrics.Middleware())
	if opts.AllowOrigin != "" {
		r.Use(chiMiddleware.SetHeader("Access-Control-Allow-Origin", opts.AllowOrigin))
	}
	if opts.CompressLevel > 0 {
		r.Use(chiMiddleware.Compress(opts.CompressLevel, "application/json"))
	}
	r.Use(JSONRecoverer(s.logger, func() time.Time { return s.now() }))

	r.Get("/api/papers", s.ListPapers)
	r.Get("/health", s.HealthCheck)
	if opts.MetricsEnabled {
		r.Get("/metrics", s.Metrics)
	}
	r.NotFound(s.NotFound)
	r.MethodNotAllowed(s.MethodNotAllowed)

	return r
}

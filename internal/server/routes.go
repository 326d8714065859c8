package server

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

// Config contains server configuration options.
type Config struct {
	// AllowedOrigins is the list of allowed CORS origins.
	AllowedOrigins []string
	// MaxBodyBytes limits the size of request bodies.
	MaxBodyBytes int64
	// TracerProvider creates request spans. Nil means the global provider.
	TracerProvider trace.TracerProvider
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		AllowedOrigins: []string{"*"},
		MaxBodyBytes:   1 << 20,
	}
}

// NewRouter creates a new HTTP router with all routes configured.
// It uses Go 1.22+ ServeMux with method-based routing. The job routes
// are mounted under /api/jobs; anything else falls through to NotFound.
func NewRouter(h *Handlers, logger *slog.Logger, cfg Config) http.Handler {
	mux := http.NewServeMux()

	// Register routes with method-based patterns (Go 1.22+)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("POST /api/jobs", h.CreateJob)
	mux.HandleFunc("POST /api/jobs/{$}", h.CreateJob)
	mux.HandleFunc("GET /api/jobs", h.ListJobs)
	mux.HandleFunc("GET /api/jobs/{$}", h.ListJobs)
	mux.HandleFunc("GET /api/jobs/{id}", h.GetJob)

	// Matches every method and path, so the mux never answers 405 itself.
	mux.HandleFunc("/", h.NotFound)

	// Apply middleware chain
	chain := ChainMiddleware(
		RecoveryMiddleware(logger),
		TracingMiddleware(cfg.TracerProvider),
		LoggingMiddleware(logger),
		SecurityHeadersMiddleware(),
		CORSMiddleware(cfg.AllowedOrigins),
		BodyLimitMiddleware(cfg.MaxBodyBytes),
	)

	return chain(mux)
}

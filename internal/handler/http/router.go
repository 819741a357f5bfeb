package http

import (
	"log/slog"
	"net/http"
	"time"

	"portfolio-blog/internal/common/pagination"
	"portfolio-blog/internal/handler/http/post"
	"portfolio-blog/internal/handler/http/requestid"
	"portfolio-blog/internal/observability/tracing"
	"portfolio-blog/internal/repository"
)

// RouterConfig holds the dependencies of the HTTP API.
type RouterConfig struct {
	Repo           repository.PostRepository
	Content        Pinger
	Pagination     pagination.Config
	RequestTimeout time.Duration
	Version        string
	Logger         *slog.Logger
}

// NewRouter builds the API handler. Middleware runs in this order, outermost
// first: request ID, tracing, recover, logging, timeout, metrics.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	mux.Handle("GET /live", &LiveHandler{})
	mux.Handle("GET /ready", &ReadyHandler{Content: cfg.Content})
	mux.Handle("GET /health", &HealthHandler{Content: cfg.Content, Version: cfg.Version})
	mux.Handle("GET /metrics", MetricsHandler())
	post.Register(mux, cfg.Repo, cfg.Pagination)

	return Chain(MetricsMiddleware(mux),
		requestid.Middleware,
		tracing.Middleware,
		Recover(logger),
		Logging(logger),
		Timeout(cfg.RequestTimeout),
	)
}

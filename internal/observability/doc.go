// Package observability groups the logging, metrics and tracing support of
// the blog.
//
// Subpackages:
//   - logging: slog construction and request-scoped loggers
//   - metrics: Prometheus collectors for content loading and static export
//   - tracing: OpenTelemetry provider setup and HTTP server spans
//
// Example usage:
//
//	logger, err := logging.New(os.Stderr, logging.FormatJSON, "info")
//	if err != nil {
//	    return err
//	}
//	shutdown := tracing.Init()
//	defer shutdown(context.Background())
//
//	metrics.RecordDocumentsLoaded(len(posts))
package observability

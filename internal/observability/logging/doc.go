// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats
//   - Request ID and trace ID enrichment
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	import "portfolio-blog/internal/observability/logging"
//
//	func main() {
//	    logger, err := logging.New(os.Stdout, "json", "info")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    logger.Info("application started", slog.String("version", "1.0"))
//	}
//
//	func handleRequest(ctx context.Context) {
//	    logger := logging.WithRequestID(ctx, logging.FromContext(ctx))
//	    logger.Info("processing request")
//	}
package logging

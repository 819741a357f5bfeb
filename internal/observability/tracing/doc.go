// Package tracing provides OpenTelemetry tracing integration.
//
// It offers the application tracer, a provider bootstrap for the serve
// command and an HTTP server-span middleware. The file repository opens one
// span per operation under the same tracer.
//
// Example usage:
//
//	import "portfolio-blog/internal/observability/tracing"
//
//	func main() {
//	    shutdown := tracing.Init()
//	    defer shutdown(context.Background())
//	}
//
//	func load(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "load")
//	    defer span.End()
//	    // ...
//	}
package tracing

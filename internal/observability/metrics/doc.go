// Package metrics provides the Prometheus metrics of the content pipeline.
//
// This package centralizes the non-HTTP metrics:
//   - Documents loaded and load failures by reason
//   - Repository query duration by operation
//   - Static export duration and outcome
//
// All metrics are registered with the Prometheus default registry and exposed
// via the /metrics endpoint alongside the HTTP metrics.
//
// Example usage:
//
//	import "portfolio-blog/internal/observability/metrics"
//
//	func fetch(ctx context.Context) {
//	    start := time.Now()
//	    defer func() { metrics.RecordRepositoryQuery("fetch_recent_posts", time.Since(start)) }()
//	    // ... load posts ...
//	}
package metrics

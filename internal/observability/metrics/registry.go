package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Content metrics track how the document set is read
var (
	// DocumentsLoadedTotal counts documents loaded and mapped successfully
	DocumentsLoadedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_documents_loaded_total",
			Help: "Total number of documents loaded from the content directory",
		},
	)

	// DocumentLoadFailuresTotal counts documents that failed to load, by reason
	DocumentLoadFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_document_load_failures_total",
			Help: "Total number of documents that failed to load",
		},
		[]string{"reason"}, // reason: missing_metadata, malformed_metadata, invalid_date, invalid_url, vanished, io
	)

	// RepositoryQueryDuration measures repository operations end to end
	RepositoryQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blog_repository_query_duration_seconds",
			Help:    "Repository query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation"},
	)

	// ExportDuration measures a full static export
	ExportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "blog_export_duration_seconds",
			Help:    "Time taken to export the static site",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)

	// ExportsTotal counts static exports by result
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_exports_total",
			Help: "Total number of static exports",
		},
		[]string{"result"}, // result: success, failure
	)
)

// RecordDocumentsLoaded adds count successfully loaded documents.
func RecordDocumentsLoaded(count int) {
	DocumentsLoadedTotal.Add(float64(count))
}

// RecordDocumentLoadFailure records one failed document load.
func RecordDocumentLoadFailure(reason string) {
	DocumentLoadFailuresTotal.WithLabelValues(reason).Inc()
}

// RecordRepositoryQuery records the duration of a repository operation.
// Operation is the method name in snake case (e.g., "fetch_recent_posts").
func RecordRepositoryQuery(operation string, duration time.Duration) {
	RepositoryQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordExport records the outcome and duration of a static export.
func RecordExport(success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "failure"
	}
	ExportsTotal.WithLabelValues(result).Inc()
	ExportDuration.Observe(duration.Seconds())
}

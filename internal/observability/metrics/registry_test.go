package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDocumentsLoaded(t *testing.T) {
	before := testutil.ToFloat64(DocumentsLoadedTotal)

	RecordDocumentsLoaded(3)
	RecordDocumentsLoaded(0)

	assert.Equal(t, before+3, testutil.ToFloat64(DocumentsLoadedTotal))
}

func TestRecordDocumentLoadFailure(t *testing.T) {
	tests := []struct {
		name   string
		reason string
	}{
		{name: "missing metadata", reason: "missing_metadata"},
		{name: "invalid url", reason: "invalid_url"},
		{name: "vanished", reason: "vanished"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(DocumentLoadFailuresTotal.WithLabelValues(tt.reason))
			RecordDocumentLoadFailure(tt.reason)
			assert.Equal(t, before+1, testutil.ToFloat64(DocumentLoadFailuresTotal.WithLabelValues(tt.reason)))
		})
	}
}

func TestRecordRepositoryQuery(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordRepositoryQuery("fetch_recent_posts", 5*time.Millisecond)
		RecordRepositoryQuery("get_post_by_slug", 0)
	})
	assert.GreaterOrEqual(t, testutil.CollectAndCount(RepositoryQueryDuration), 2)
}

func TestRecordExport(t *testing.T) {
	tests := []struct {
		name    string
		success bool
		result  string
	}{
		{name: "success", success: true, result: "success"},
		{name: "failure", success: false, result: "failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(ExportsTotal.WithLabelValues(tt.result))
			RecordExport(tt.success, 100*time.Millisecond)
			assert.Equal(t, before+1, testutil.ToFloat64(ExportsTotal.WithLabelValues(tt.result)))
		})
	}
}

func TestExportDuration_Observed(t *testing.T) {
	sampleCount := func() uint64 {
		m := &dto.Metric{}
		require.NoError(t, ExportDuration.Write(m))
		return m.GetHistogram().GetSampleCount()
	}
	before := sampleCount()

	RecordExport(true, 250*time.Millisecond)

	assert.Equal(t, before+1, sampleCount())
}

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveBeforeInitIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		ObserveHTTP("GET", "/x", "200", time.Millisecond)
		AddImportRows("bank", OutcomeImported, 3)
		ObserveExport("", "", time.Millisecond)
	})
}

func TestCounters(t *testing.T) {
	Init()
	Init()

	AddImportRows("bank", OutcomeDuplicate, 2)
	AddImportRows("bank", OutcomeDuplicate, 0)
	AddImportRows("bank", OutcomeDuplicate, 3)
	assert.Equal(t, 5.0, testutil.ToFloat64(importRows.WithLabelValues("bank", OutcomeDuplicate)))

	ObserveImportRun("")
	assert.Equal(t, 1.0, testutil.ToFloat64(importRunsTotal.WithLabelValues(ResultSuccess)))

	ObserveExport("pdf", Result(errors.New("boom")), time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(exportTotal.WithLabelValues("pdf", ResultError)))

	ObserveProjection(ResultSuccess, 42, time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(projectionTotal.WithLabelValues(ResultSuccess)))
}

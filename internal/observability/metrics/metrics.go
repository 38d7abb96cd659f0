package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "liq_"

	ResultSuccess = "success"
	ResultError   = "error"

	OutcomeImported   = "imported"
	OutcomeIgnored    = "ignored"
	OutcomeInvalid    = "invalid"
	OutcomeDuplicate  = "duplicate"
	OutcomeReschedule = "rescheduled"
)

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	importRunsTotal *prometheus.CounterVec
	importRows      *prometheus.CounterVec

	projectionTotal   *prometheus.CounterVec
	projectionLatency *prometheus.HistogramVec
	projectionEntries prometheus.Histogram

	exportTotal   *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec
)

// Init registers the planner metrics with the default registry.
func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)

		importRunsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "import_runs_total",
				Help: "Total import runs by result",
			},
			[]string{"result"},
		)
		importRows = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "import_rows_total",
				Help: "Imported statement and invoice rows by source and outcome",
			},
			[]string{"source", "outcome"},
		)

		projectionTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "projection_total",
				Help: "Total projection computations by result",
			},
			[]string{"result"},
		)
		projectionLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "projection_latency_seconds",
				Help:    "Projection latency in seconds, including store reads",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		projectionEntries = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "projection_entries",
				Help:    "Number of bookings in a computed projection",
				Buckets: prometheus.ExponentialBuckets(10, 2, 10),
			},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "export_total",
				Help: "Total projection exports by format and result",
			},
			[]string{"format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "export_latency_seconds",
				Help:    "Projection export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(
			httpRequests,
			httpLatency,
			importRunsTotal,
			importRows,
			projectionTotal,
			projectionLatency,
			projectionEntries,
			exportTotal,
			exportLatency,
		)
	})
}

// ObserveHTTP records one handled request.
func ObserveHTTP(method, route, status string, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	if httpRequests != nil {
		httpRequests.WithLabelValues(method, route, status).Inc()
	}
	if httpLatency != nil {
		httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
	}
}

// ObserveImportRun increments the import run counter.
func ObserveImportRun(result string) {
	if result == "" {
		result = ResultSuccess
	}
	if importRunsTotal != nil {
		importRunsTotal.WithLabelValues(result).Inc()
	}
}

// AddImportRows adds count rows for source and outcome.
func AddImportRows(source, outcome string, count int) {
	if count <= 0 {
		return
	}
	if importRows != nil {
		importRows.WithLabelValues(source, outcome).Add(float64(count))
	}
}

// ObserveProjection records projection latency, result and size.
func ObserveProjection(result string, entries int, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if projectionTotal != nil {
		projectionTotal.WithLabelValues(result).Inc()
	}
	if projectionLatency != nil {
		projectionLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
	if projectionEntries != nil && result == ResultSuccess {
		projectionEntries.Observe(float64(entries))
	}
}

// ObserveExport records export latency and result.
func ObserveExport(format, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = ResultSuccess
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
	if exportLatency != nil {
		exportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}

// Result maps an error to a result label.
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}

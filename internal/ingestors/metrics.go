package ingestors

import (
	"pbshist/internal/shared/metrics"
)

const (
	valueIngested        = "ingested"
	valueMalformed       = "malformed"
	valueUnknownCode     = "unknown_code"
	valueFilteredByQueue = "filtered_by_queue"
	valueFailed          = "failed"
)

var (
	metricLinesReadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_read_total",
		},
		[]string{"result"},
	)

	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRunDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "run_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	)
)

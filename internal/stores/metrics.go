package stores

import (
	"pbshist/internal/shared/metrics"
)

const (
	valueMarshalFailed = "marshal_failed"
	valueAlreadyExists = "already_exists"
	valuePutFailed     = "put_failed"
)

var (
	metricReportsExportedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExport,
			Name:      "reports_exported_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)

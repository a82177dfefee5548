package aggregators

import (
	"pbshist/internal/shared/metrics"
)

const valueUnknownEventCode = "unknown"

var (
	// metricEventsCountedTotal counts histogram increments by event code and hour row
	// (bucket_id "hour-00" .. "hour-23"). Codes outside the job mask share the
	// "unknown" label to keep cardinality bounded.
	metricEventsCountedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "events_counted_total",
		},
		[]string{"event_code", "bucket_id"},
	)

	metricSingleNodeJobsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "single_node_jobs_total",
		},
		[]string{},
	)

	metricMalformedAccountingTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "malformed_accounting_blobs_total",
		},
		[]string{"event_code"},
	)
)

func eventCodeLabel(code string, known bool) string {
	if known {
		return code
	}
	return valueUnknownEventCode
}

package models

import "time"

// TotalSingleNodeJobs is the key under which the single-node job count is exposed
// next to the per-code totals.
const TotalSingleNodeJobs = "single_node_jobs"

// HistogramReport is the finalized, read-only result of one accounting log run. It is
// what the text renderer, the HTTP API and the JSON export consume.
//
// Example JSON (counts abbreviated to two codes):
//
//	{
//	  "runId": "01HV3K8Q6Z5N7W2R9B4C1D0E3F",
//	  "logFile": "/var/spool/pbs/server_priv/accounting/20180308",
//	  "logDate": "2018-03-08T00:00:00+01:00",
//	  "queue": "*",
//	  "eventCodes": ["E", "Q"],
//	  "hourly": [
//	    {"hour": 0, "counts": {"E": 0, "Q": 0}},
//	    {"hour": 9, "counts": {"E": 0, "Q": 1}},
//	    {"hour": 10, "counts": {"E": 1, "Q": 0}}
//	  ],
//	  "totals": {"E": 1, "Q": 1, "single_node_jobs": 1},
//	  "singleNodeJobs": 1,
//	  "singleNodeJobRatio": 100,
//	  "lines": {"read": 2, "ingested": 2}
//	}
type HistogramReport struct {
	RunID              string           `json:"runId"`
	LogFile            string           `json:"logFile"`
	LogDate            time.Time        `json:"logDate"`
	Queue              string           `json:"queue"`
	EventCodes         []EventCode      `json:"eventCodes"`
	Hourly             []HourlyCounts   `json:"hourly"`
	Totals             map[string]int64 `json:"totals"`
	SingleNodeJobs     int64            `json:"singleNodeJobs"`
	SingleNodeJobRatio *float64         `json:"singleNodeJobRatio,omitempty"` // nil when no job ended
	Lines              LineStats        `json:"lines"`
}

// HourlyCounts is one row of the histogram.
type HourlyCounts struct {
	Hour   int                 `json:"hour"`
	Counts map[EventCode]int64 `json:"counts"`
}

// LineStats accounts for every line read during a run.
type LineStats struct {
	Read                int64 `json:"read"`
	Ingested            int64 `json:"ingested"`
	Malformed           int64 `json:"malformed,omitempty"`
	UnknownCode         int64 `json:"unknownCode,omitempty"`
	FilteredByQueue     int64 `json:"filteredByQueue,omitempty"`
	// MalformedAccounting counts malformed blobs among records whose fields were needed:
	// E records, or every record when a queue filter is set. Other blobs are never parsed.
	MalformedAccounting int64 `json:"malformedAccounting,omitempty"`
}

// Cell returns the count of code during hour, 0 when absent.
func (r *HistogramReport) Cell(hour int, code EventCode) int64 {
	if !ValidHour(hour) || hour >= len(r.Hourly) {
		return 0
	}
	return r.Hourly[hour].Counts[code]
}

// Total returns the total count of code over all hours.
func (r *HistogramReport) Total(code EventCode) int64 {
	return r.Totals[string(code)]
}

package models

import "time"

// Record is one parsed accounting log line. Accounting fields are not decoded here;
// consumers extract them from AccountingBlob only when they need them.
type Record struct {
	LineNumber     int
	Timestamp      time.Time
	EventCode      EventCode
	JobID          string
	AccountingBlob string
}

// Hour returns the hour-of-day bucket of the record, as written in the log.
func (r *Record) Hour() int {
	return r.Timestamp.Hour()
}

package ingestors

import (
	"fmt"
	"strings"
	"time"

	"pbshist/internal/models"
)

// TimestampLayout is the accounting log timestamp format, MM/DD/YYYY HH:MM:SS.
const TimestampLayout = "01/02/2006 15:04:05"

const recordFieldCount = 4

// ParseRecord splits a line on its first three ';' into timestamp, event code, job id
// and accounting blob. Timestamps carry no zone: they are kept as the wall clock written
// in the log, so the hour bucket does not depend on the zone of the analysing host.
func ParseRecord(line string, lineNumber int) (*models.Record, error) {
	fields := strings.SplitN(line, ";", recordFieldCount)
	if len(fields) < recordFieldCount {
		return nil, errMalformedLine(lineNumber,
			fmt.Sprintf("expected %d ';'-separated fields, got %d", recordFieldCount, len(fields)), nil)
	}

	timestamp, err := time.Parse(TimestampLayout, fields[0])
	if err != nil {
		return nil, errMalformedLine(lineNumber, fmt.Sprintf("invalid timestamp %q", fields[0]), err)
	}

	return &models.Record{
		LineNumber:     lineNumber,
		Timestamp:      timestamp,
		EventCode:      models.EventCode(fields[1]),
		JobID:          fields[2],
		AccountingBlob: fields[3],
	}, nil
}

package aggregators

import (
	"errors"
	"fmt"

	"pbshist/internal/models"
	"pbshist/internal/shared/svcerrors"
)

var (
	ErrEmptyLog               = errors.New("accounting log has no records")
	ErrMissingAccountingField = errors.New("missing accounting field")
	ErrNoEndedJobs            = errors.New("no ended jobs")

	// Tolerated: the record is not counted and processing continues.
	ErrUnknownEventCode = errors.New("unknown event code")
	ErrRecordFiltered   = errors.New("record filtered by queue")
)

const (
	codeEmptyLog               = "LOG_1001"
	codeMissingAccountingField = "LOG_1003"
	codeNoEndedJobs            = "LOG_1004"
)

// errEmptyLog returns an error when the log date is requested before any record was ingested.
func errEmptyLog(logFile string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeEmptyLog,
		fmt.Sprintf("accounting log %q contains no records", logFile), ErrEmptyLog)
}

// errMissingAccountingField returns an error when a record lacks a field it must carry.
func errMissingAccountingField(record *models.Record, field string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingAccountingField,
		fmt.Sprintf("line %d: %s record for job %s has no %s", record.LineNumber, record.EventCode, record.JobID, field),
		ErrMissingAccountingField)
}

// errNoEndedJobs returns an error when a ratio over ended jobs has a zero denominator.
func errNoEndedJobs() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeNoEndedJobs, "no ended jobs [E] to compute a ratio over", ErrNoEndedJobs)
}

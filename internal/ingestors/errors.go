package ingestors

import (
	"errors"
	"fmt"
	"net/http"

	"pbshist/internal/shared/svcerrors"
)

var (
	ErrLogOpen       = errors.New("cannot open accounting log")
	ErrMalformedLine = errors.New("malformed accounting log line")
	ErrLogRead       = errors.New("cannot read accounting log")
)

// IngestionService errors
const (
	codeLogOpen       = "LOG_1000"
	codeMalformedLine = "LOG_1002"
	codeLogRead       = "LOG_1005"

	codeInternalExportFailed = "LOG_9000"
)

// errLogOpen returns an error when the accounting log file cannot be opened.
func errLogOpen(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeLogOpen,
		fmt.Sprintf("could not open PBS accounting log %q", path),
		fmt.Errorf("%w: %w", ErrLogOpen, cause))
}

// errMalformedLine returns an error when a line does not have the
// "timestamp;code;job;accounting" shape or its timestamp cannot be parsed.
func errMalformedLine(lineNumber int, reason string, cause error) *svcerrors.ServiceError {
	wrapped := ErrMalformedLine
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrMalformedLine, cause)
	}
	return svcerrors.NewInvalidArgumentError(codeMalformedLine,
		fmt.Sprintf("line %d: %s", lineNumber, reason), wrapped)
}

func errLogRead(name string, lineNumber int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeLogRead,
		fmt.Sprintf("reading %q failed after line %d", name, lineNumber),
		fmt.Errorf("%w: %w", ErrLogRead, cause))
}

// errBodyTooLarge returns an error when an uploaded log exceeds the server body limit.
func errBodyTooLarge(limit int64, cause error) *svcerrors.ServiceError {
	svcErr := svcerrors.NewInvalidArgumentError(codeLogRead,
		fmt.Sprintf("accounting log too large: must be <= %d bytes", limit),
		fmt.Errorf("%w: %w", ErrLogRead, cause))
	svcErr.HttpStatusCode = http.StatusRequestEntityTooLarge
	return svcErr
}

// errInternalExportFailed returns an error when the JSON report cannot be stored.
func errInternalExportFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalExportFailed, fmt.Errorf("reportExportFailed: %w", cause))
}

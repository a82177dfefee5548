package app

import (
	"fmt"

	"pbshist/internal/shared/svcerrors"
)

const (
	codeInternalRenderFailed = "LOG_9001"
)

// errInternalRenderFailed returns an error when the text report cannot be written out.
func errInternalRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("reportRenderFailed: %w", cause))
}

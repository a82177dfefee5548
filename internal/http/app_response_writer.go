package http

import (
	"net/http"

	"pbshist/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter wraps the http.ResponseWriter so middlewares can read the status
// and the ServiceError of a handled request.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// statusOf returns the status written to w, 200 when nothing was written explicitly.
func statusOf(w http.ResponseWriter) int {
	if appWriter, ok := w.(*appResponseWriter); ok && appWriter.Status() != 0 {
		return appWriter.Status()
	}
	return http.StatusOK
}

// errorCodeOf returns the ServiceError code recorded on w, "" on success.
func errorCodeOf(w http.ResponseWriter) string {
	if appWriter, ok := w.(*appResponseWriter); ok {
		return appWriter.ErrorCode()
	}
	return ""
}

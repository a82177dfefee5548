package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pbshist/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlingAdapter_Errors(t *testing.T) {
	t.Parallel()

	tooLarge := svcerrors.NewInvalidArgumentError("LOG_1005", "accounting log too large", nil)
	tooLarge.HttpStatusCode = http.StatusRequestEntityTooLarge

	tests := []struct {
		name             string
		err              error
		expectedStatus   int
		expectedCategory string
		expectedCode     string
		expectedMessage  string
	}{
		{
			name:             "InvalidArgument error",
			err:              svcerrors.NewInvalidArgumentError("LOG_1002", "line 3: invalid timestamp", nil),
			expectedStatus:   http.StatusBadRequest,
			expectedCategory: "invalid_argument",
			expectedCode:     "LOG_1002",
			expectedMessage:  "line 3: invalid timestamp",
		},
		{
			name:             "NotFound error",
			err:              svcerrors.NewNotFoundError("LOG_1000", "could not open PBS accounting log", nil),
			expectedStatus:   http.StatusNotFound,
			expectedCategory: "not_found",
			expectedCode:     "LOG_1000",
			expectedMessage:  "could not open PBS accounting log",
		},
		{
			name:             "Custom status",
			err:              tooLarge,
			expectedStatus:   http.StatusRequestEntityTooLarge,
			expectedCategory: "invalid_argument",
			expectedCode:     "LOG_1005",
			expectedMessage:  "accounting log too large",
		},
		{
			name:             "Internal error",
			err:              svcerrors.NewInternalError("LOG_9000", assert.AnError),
			expectedStatus:   http.StatusInternalServerError,
			expectedCategory: "internal",
			expectedCode:     "LOG_9000",
			expectedMessage:  "internal error",
		},
		{
			name:             "Non-ServiceError",
			err:              assert.AnError,
			expectedStatus:   http.StatusInternalServerError,
			expectedCategory: "internal",
			expectedCode:     "SYS_9001",
			expectedMessage:  "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := errorHandlingAdapter(&testHandler{
				handleFunc: func(w http.ResponseWriter, r *http.Request) error {
					return tt.err
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			reqID := "test-request-id-" + tt.name
			req.Header.Set(headerRequestID, reqID)

			rr := httptest.NewRecorder()
			appWriter := newAppResponseWriter(rr, 1)
			handler.ServeHTTP(appWriter, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedCode, appWriter.ErrorCode(), "error code should reach the middlewares")

			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))

			assert.Equal(t, reqID, errorResponse.RequestID)
			assert.Equal(t, tt.expectedCategory, errorResponse.ErrorCategory)
			assert.Equal(t, tt.expectedCode, errorResponse.ErrorCode)
			assert.Equal(t, tt.expectedMessage, errorResponse.ErrorDescription)
		})
	}
}

func TestErrorHandlingAdapter_NoError(t *testing.T) {
	t.Parallel()

	handler := errorHandlingAdapter(&testHandler{
		handleFunc: func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("success"))
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "success", rr.Body.String())
}

// testHandler wraps a function to implement AppHttpHandler interface for testing
type testHandler struct {
	handleFunc func(w http.ResponseWriter, r *http.Request) error
}

func (h *testHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return h.handleFunc(w, r)
}

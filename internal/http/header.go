package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID   = "x-request-id"
	headerContentType = "content-type"
	headerLogName     = "x-log-name"
	headerQueue       = "x-queue"
)

const defaultLogName = "upload"

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

// logName names the uploaded log in reports and logs.
func logName(r *http.Request) string {
	name := strings.TrimSpace(r.Header.Get(headerLogName))
	if name == "" {
		return defaultLogName
	}
	return name
}

// queue returns the queue filter override, "" when the header is absent.
func queue(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerQueue))
}

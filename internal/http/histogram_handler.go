package http

import (
	"net/http"

	"pbshist/internal/ingestors"
)

type histogramHandler struct {
	ingestionService ingestors.IngestionService
}

func NewHistogramHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &histogramHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /histograms: the body is a raw accounting log, the response
// the JSON histogram report of that log.
func (h *histogramHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.ingestionService.IngestReader(r.Context(), logName(r), queue(r), r.Body)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, report)
	return nil
}

package http

import (
	"net/http"

	"pbshist/internal/models"
	"pbshist/internal/reports"
)

type eventCodesHandler struct {
	legend []reports.LegendEntry
}

// NewEventCodesHandler serves the legend of the job mask columns.
func NewEventCodesHandler() AppHttpHandler {
	return &eventCodesHandler{legend: reports.Legend(models.SortedEventCodes())}
}

func (h *eventCodesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, h.legend)
	return nil
}

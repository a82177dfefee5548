package http

import (
	"net/http"

	"pbshist/internal/ingestors"
	"pbshist/internal/shared/loggers"
	"pbshist/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, httpLogger loggers.Logger, maxBodyBytes int64) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger, maxBodyBytes)

	histogramHandler := NewHistogramHandler(ingestionService)
	eventCodesHandler := NewEventCodesHandler()

	router.Post("/histograms", errorHandlingAdapter(histogramHandler))
	router.Get("/event-codes", errorHandlingAdapter(eventCodesHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pbshist/internal/models"
	"pbshist/internal/shared/filestorages"
	"pbshist/internal/shared/metrics"
)

var (
	ErrReportAlreadyExist = errors.New("report already exists")
)

// ReportStore exports finished histogram reports as JSON documents. Reports are
// written create-if-not-exists under reports/<log day>/<run id>.json, so a run id
// is never exported twice.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	// Save writes report and returns its file key.
	Save(ctx context.Context, report *models.HistogramReport) (string, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewReportStore(fileStorage filestorages.FileStorage) ReportStore {
	return &reportStore{fileStorage: fileStorage, dir: "reports"}
}

func (s *reportStore) Save(ctx context.Context, report *models.HistogramReport) (string, error) {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		metricReportsExportedTotal.WithLabelValues(valueMarshalFailed).Inc()
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	reader := bytes.NewReader(jsonData)

	key := s.getKey(report)
	_, err = s.fileStorage.Put(ctx, key, reader, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			metricReportsExportedTotal.WithLabelValues(valueAlreadyExists).Inc()
			return "", ErrReportAlreadyExist
		}
		metricReportsExportedTotal.WithLabelValues(valuePutFailed).Inc()
		return "", fmt.Errorf("failed to put report: %w", err)
	}

	metricReportsExportedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return key, nil
}

func (s *reportStore) getKey(report *models.HistogramReport) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, models.FormatLogDay(report.LogDate), report.RunID)
}

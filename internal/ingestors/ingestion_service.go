package ingestors

import (
	"context"
	"errors"
	"io"
	"time"

	"pbshist/internal/aggregators"
	"pbshist/internal/models"
	"pbshist/internal/shared/loggers"
	"pbshist/internal/shared/metrics"
	"pbshist/internal/shared/svcerrors"
	"pbshist/internal/shared/ulid"
	"pbshist/internal/stores"
)

// MalformedLinePolicy decides what happens to lines that cannot be parsed into a record.
type MalformedLinePolicy string

const (
	// MalformedLinesStrict aborts the run on the first malformed line.
	MalformedLinesStrict MalformedLinePolicy = "strict"
	// MalformedLinesSkip logs, counts and skips malformed lines.
	MalformedLinesSkip MalformedLinePolicy = "skip"
)

// Options holds the defaults applied to every run of an IngestionService.
type Options struct {
	MalformedLines MalformedLinePolicy
	UnknownCodes   aggregators.UnknownCodePolicy
	Queue          string
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestFile builds the hourly histogram of the accounting log at path.
	IngestFile(ctx context.Context, path string) (*models.HistogramReport, error)
	// IngestReader builds the hourly histogram of an accounting log read from r.
	// A non-empty queue overrides the configured queue filter for this run.
	IngestReader(ctx context.Context, name string, queue string, r io.Reader) (*models.HistogramReport, error)
}

type ingestionService struct {
	opts        Options
	extractor   aggregators.KeyValueExtractor
	reportStore stores.ReportStore
}

// NewIngestionService returns a service that runs each log through a fresh aggregator.
// reportStore may be nil, in which case reports are not exported.
func NewIngestionService(opts Options, extractor aggregators.KeyValueExtractor, reportStore stores.ReportStore) IngestionService {
	if opts.MalformedLines == "" {
		opts.MalformedLines = MalformedLinesStrict
	}
	if opts.UnknownCodes == "" {
		opts.UnknownCodes = aggregators.UnknownCodesSkip
	}
	if opts.Queue == "" {
		opts.Queue = aggregators.QueueAll
	}
	return &ingestionService{
		opts:        opts,
		extractor:   extractor,
		reportStore: reportStore,
	}
}

func (s *ingestionService) IngestFile(ctx context.Context, path string) (*models.HistogramReport, error) {
	reader, err := OpenLogReader(path)
	if err != nil {
		metricRunsTotal.WithLabelValues(codeLogOpen).Inc()
		return nil, err
	}
	defer reader.Close()

	return s.ingest(ctx, reader, s.opts.Queue)
}

func (s *ingestionService) IngestReader(ctx context.Context, name string, queue string, r io.Reader) (*models.HistogramReport, error) {
	if queue == "" {
		queue = s.opts.Queue
	}
	reader := NewLogReader(name, r)
	defer reader.Close()

	return s.ingest(ctx, reader, queue)
}

func (s *ingestionService) ingest(ctx context.Context, reader LogReader, queue string) (*models.HistogramReport, error) {
	startedAt := time.Now()
	runID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldComponent, "ingestion").
		Str(loggers.FieldRunID, runID).
		Str(loggers.FieldLogFile, reader.Name()).
		Logger()
	ctx = logger.WithContext(ctx)
	logger.Debug().Msgf("started run with queue: %s, malformed lines: %s, unknown codes: %s",
		queue, s.opts.MalformedLines, s.opts.UnknownCodes)

	report, err := s.run(ctx, reader, runID, queue)
	metricRunDurationSeconds.WithLabelValues().Observe(time.Since(startedAt).Seconds())
	if err != nil {
		metricRunsTotal.WithLabelValues(errorCode(err)).Inc()
		return nil, err
	}

	metricRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Info().
		Int64("lines_read", report.Lines.Read).
		Int64("lines_ingested", report.Lines.Ingested).
		Int64("lines_malformed", report.Lines.Malformed).
		Int64("single_node_jobs", report.SingleNodeJobs).
		Msg("finished run")
	return report, nil
}

func (s *ingestionService) run(ctx context.Context, reader LogReader, runID string, queue string) (*models.HistogramReport, error) {
	logger := loggers.Ctx(ctx)
	aggregator := aggregators.NewHourlyAggregator(aggregators.Options{
		LogFile:      reader.Name(),
		Queue:        queue,
		UnknownCodes: s.opts.UnknownCodes,
	}, s.extractor)

	var lines models.LineStats
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, ok := reader.Next()
		if !ok {
			break
		}
		lines.Read++

		record, err := ParseRecord(line, reader.LineNumber())
		if err != nil {
			if s.opts.MalformedLines == MalformedLinesSkip {
				lines.Malformed++
				metricLinesReadTotal.WithLabelValues(valueMalformed).Inc()
				logger.Warn().Err(err).Int(loggers.FieldLineNumber, reader.LineNumber()).Msg("skipping malformed line")
				continue
			}
			metricLinesReadTotal.WithLabelValues(valueFailed).Inc()
			return nil, err
		}

		err = aggregator.Ingest(ctx, record)
		switch {
		case err == nil:
			lines.Ingested++
			metricLinesReadTotal.WithLabelValues(valueIngested).Inc()
		case errors.Is(err, aggregators.ErrUnknownEventCode):
			lines.UnknownCode++
			metricLinesReadTotal.WithLabelValues(valueUnknownCode).Inc()
			logger.Debug().
				Int(loggers.FieldLineNumber, record.LineNumber).
				Str(loggers.FieldEventCode, string(record.EventCode)).
				Msg("skipping unknown event code")
		case errors.Is(err, aggregators.ErrRecordFiltered):
			lines.FilteredByQueue++
			metricLinesReadTotal.WithLabelValues(valueFilteredByQueue).Inc()
		default:
			metricLinesReadTotal.WithLabelValues(valueFailed).Inc()
			return nil, err
		}
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}

	report, err := aggregator.Report(runID)
	if err != nil {
		return nil, err
	}
	lines.MalformedAccounting = report.Lines.MalformedAccounting
	report.Lines = lines

	if s.reportStore != nil {
		key, err := s.reportStore.Save(ctx, report)
		if err != nil {
			return nil, errInternalExportFailed(err)
		}
		logger.Info().Str("report_key", key).Msg("exported report")
	}

	return report, nil
}

func errorCode(err error) string {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code
	}
	return valueFailed
}

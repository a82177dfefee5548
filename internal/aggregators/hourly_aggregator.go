package aggregators

import (
	"context"
	"fmt"
	"time"

	"pbshist/internal/models"
	"pbshist/internal/shared/loggers"
)

// QueueAll disables the queue filter.
const QueueAll = "*"

// UnknownCodePolicy decides what happens to records whose event code is not in the job mask.
type UnknownCodePolicy string

const (
	// UnknownCodesSkip rejects such records with ErrUnknownEventCode (closed set).
	UnknownCodesSkip UnknownCodePolicy = "skip"
	// UnknownCodesCount adds a histogram column for every new code (open set).
	UnknownCodesCount UnknownCodePolicy = "count"
)

// Options configures a single aggregation run.
type Options struct {
	LogFile      string
	Queue        string
	UnknownCodes UnknownCodePolicy
}

// HourlyAggregator accumulates accounting records into a 24 x K histogram.
type HourlyAggregator interface {
	// Ingest counts record into the hourly histogram. ErrUnknownEventCode and
	// ErrRecordFiltered are tolerated rejections; any other error is fatal for the run.
	Ingest(ctx context.Context, record *models.Record) error
	// Finalize recomputes the totals from the histogram. It may be called repeatedly.
	Finalize()

	LogFilePath() string
	LogDate() (time.Time, error)
	EventCodes() []models.EventCode
	HistogramCell(hour int, code models.EventCode) int64
	// Total returns the finalized total of code; 0 before Finalize.
	Total(code models.EventCode) int64
	SingleNodeJobCount() int64
	SingleNodeJobRatio() (float64, error)
	// MalformedAccountingCount counts malformed blobs among records whose fields were
	// extracted; blobs are only parsed for E records or under a queue filter.
	MalformedAccountingCount() int64

	// Report finalizes and snapshots the aggregate state.
	Report(runID string) (*models.HistogramReport, error)
}

type histogramKey struct {
	hour int
	code models.EventCode
}

type hourlyAggregator struct {
	opts      Options
	extractor KeyValueExtractor

	histogram  map[histogramKey]int64
	extraCodes []models.EventCode
	totals     map[models.EventCode]int64

	singleNodeJobs      int64
	malformedAccounting int64

	hasRecords bool
	logDate    time.Time
}

// NewHourlyAggregator returns an aggregator with all 24 x 15 known cells seeded to zero.
// An aggregator holds the state of exactly one run and must not be reused.
func NewHourlyAggregator(opts Options, extractor KeyValueExtractor) HourlyAggregator {
	if opts.Queue == "" {
		opts.Queue = QueueAll
	}
	if opts.UnknownCodes == "" {
		opts.UnknownCodes = UnknownCodesSkip
	}

	a := &hourlyAggregator{
		opts:      opts,
		extractor: extractor,
		histogram: make(map[histogramKey]int64, models.HoursPerDay*len(models.JobMask)),
		totals:    make(map[models.EventCode]int64, len(models.JobMask)),
	}
	for _, code := range models.SortedEventCodes() {
		a.seed(code)
	}
	return a
}

func (a *hourlyAggregator) seed(code models.EventCode) {
	for hour := 0; hour < models.HoursPerDay; hour++ {
		a.histogram[histogramKey{hour: hour, code: code}] = 0
	}
}

func (a *hourlyAggregator) Ingest(ctx context.Context, record *models.Record) error {
	hour := record.Hour()

	// the first parsed record dates the log, whether or not it is counted
	if !a.hasRecords {
		a.hasRecords = true
		a.logDate = models.LogDay(record.Timestamp)
	}

	lazy := &lazyFields{record: record, extractor: a.extractor}
	defer func() {
		if lazy.extracted && !lazy.ok {
			a.malformedAccounting++
			metricMalformedAccountingTotal.WithLabelValues(eventCodeLabel(string(record.EventCode), record.EventCode.Known())).Inc()
			loggers.Ctx(ctx).Debug().
				Int(loggers.FieldLineNumber, record.LineNumber).
				Str(loggers.FieldJobID, record.JobID).
				Msg("malformed accounting blob, fields dropped")
		}
	}()

	if a.opts.Queue != QueueAll {
		fields, _ := lazy.get()
		if fields[FieldQueue] != a.opts.Queue {
			return fmt.Errorf("line %d: %w", record.LineNumber, ErrRecordFiltered)
		}
	}

	code := record.EventCode
	if !code.Known() {
		if a.opts.UnknownCodes != UnknownCodesCount {
			return fmt.Errorf("line %d: %w %q", record.LineNumber, ErrUnknownEventCode, code)
		}
		a.addExtraCode(code)
	}

	a.histogram[histogramKey{hour: hour, code: code}]++
	metricEventsCountedTotal.WithLabelValues(eventCodeLabel(string(code), code.Known()), models.HourBucketID(hour)).Inc()

	if code == models.EventEnded {
		fields, ok := lazy.get()
		if !ok {
			return nil
		}
		nodeCount, found := fields[FieldNodeCount]
		if !found {
			return errMissingAccountingField(record, FieldNodeCount)
		}
		if nodeCount == "1" {
			a.singleNodeJobs++
			metricSingleNodeJobsTotal.WithLabelValues().Inc()
		}
	}

	return nil
}

func (a *hourlyAggregator) addExtraCode(code models.EventCode) {
	for _, extra := range a.extraCodes {
		if extra == code {
			return
		}
	}
	a.extraCodes = append(a.extraCodes, code)
	a.seed(code)
}

func (a *hourlyAggregator) Finalize() {
	totals := make(map[models.EventCode]int64, len(models.JobMask)+len(a.extraCodes))
	for _, code := range a.EventCodes() {
		var sum int64
		for hour := 0; hour < models.HoursPerDay; hour++ {
			sum += a.histogram[histogramKey{hour: hour, code: code}]
		}
		totals[code] = sum
	}
	a.totals = totals
}

func (a *hourlyAggregator) LogFilePath() string {
	return a.opts.LogFile
}

func (a *hourlyAggregator) LogDate() (time.Time, error) {
	if !a.hasRecords {
		return time.Time{}, errEmptyLog(a.opts.LogFile)
	}
	return a.logDate, nil
}

// EventCodes returns the histogram columns: the job mask followed by any code
// admitted under UnknownCodesCount, in column order.
func (a *hourlyAggregator) EventCodes() []models.EventCode {
	codes := models.SortedEventCodes()
	if len(a.extraCodes) == 0 {
		return codes
	}
	extras := models.SortCodes(append([]models.EventCode(nil), a.extraCodes...))
	return append(codes, extras...)
}

func (a *hourlyAggregator) HistogramCell(hour int, code models.EventCode) int64 {
	return a.histogram[histogramKey{hour: hour, code: code}]
}

func (a *hourlyAggregator) Total(code models.EventCode) int64 {
	return a.totals[code]
}

func (a *hourlyAggregator) SingleNodeJobCount() int64 {
	return a.singleNodeJobs
}

// SingleNodeJobRatio returns the share of ended jobs that ran on one node, in percent.
func (a *hourlyAggregator) SingleNodeJobRatio() (float64, error) {
	ended := a.Total(models.EventEnded)
	if ended == 0 {
		return 0, errNoEndedJobs()
	}
	return float64(a.singleNodeJobs) / float64(ended) * 100, nil
}

func (a *hourlyAggregator) MalformedAccountingCount() int64 {
	return a.malformedAccounting
}

func (a *hourlyAggregator) Report(runID string) (*models.HistogramReport, error) {
	logDate, err := a.LogDate()
	if err != nil {
		return nil, err
	}
	a.Finalize()

	codes := a.EventCodes()
	report := &models.HistogramReport{
		RunID:          runID,
		LogFile:        a.opts.LogFile,
		LogDate:        logDate,
		Queue:          a.opts.Queue,
		EventCodes:     codes,
		Hourly:         make([]models.HourlyCounts, models.HoursPerDay),
		Totals:         make(map[string]int64, len(codes)+1),
		SingleNodeJobs: a.singleNodeJobs,
		Lines:          models.LineStats{MalformedAccounting: a.malformedAccounting},
	}

	for hour := 0; hour < models.HoursPerDay; hour++ {
		counts := make(map[models.EventCode]int64, len(codes))
		for _, code := range codes {
			counts[code] = a.HistogramCell(hour, code)
		}
		report.Hourly[hour] = models.HourlyCounts{Hour: hour, Counts: counts}
	}
	for _, code := range codes {
		report.Totals[string(code)] = a.Total(code)
	}
	report.Totals[models.TotalSingleNodeJobs] = a.singleNodeJobs

	if ratio, err := a.SingleNodeJobRatio(); err == nil {
		report.SingleNodeJobRatio = &ratio
	}

	return report, nil
}

// lazyFields extracts the accounting fields of a record at most once, on first use.
type lazyFields struct {
	record    *models.Record
	extractor KeyValueExtractor

	extracted bool
	fields    AccountingFields
	ok        bool
}

func (l *lazyFields) get() (AccountingFields, bool) {
	if !l.extracted {
		l.fields, l.ok = l.extractor.Extract(l.record.AccountingBlob)
		l.extracted = true
	}
	return l.fields, l.ok
}

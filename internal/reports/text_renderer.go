package reports

import (
	"fmt"
	"io"
	"strings"

	"pbshist/internal/models"
)

const (
	periodLayout = "Mon 02-01-2006"
	separator    = "----|------------------------------------------------" +
		"---------------------------------------------------------"
)

// Options toggles the optional report sections.
type Options struct {
	ShowRatios bool
	ShowLegend bool
}

// TextRenderer writes a HistogramReport as the fixed-width console report.
type TextRenderer interface {
	Render(w io.Writer, report *models.HistogramReport) error
}

type textRenderer struct {
	opts Options
}

func NewTextRenderer(opts Options) TextRenderer {
	return &textRenderer{opts: opts}
}

func (r *textRenderer) Render(w io.Writer, report *models.HistogramReport) error {
	var b strings.Builder

	r.writeHistogram(&b, report)
	if r.opts.ShowRatios {
		r.writeRatios(&b, report)
	}
	if r.opts.ShowLegend {
		r.writeLegend(&b, report.EventCodes)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *textRenderer) writeHistogram(b *strings.Builder, report *models.HistogramReport) {
	fmt.Fprintf(b, "\nPBS Accounting log...: %s\n", report.LogFile)
	fmt.Fprintf(b, "Date/Time period.....: %s\n\n", report.LogDate.Format(periodLayout))

	b.WriteString("    | ")
	for _, code := range report.EventCodes {
		fmt.Fprintf(b, "%6s ", code)
	}
	b.WriteString("\n")

	b.WriteString(separator + "\n")
	for hour := 0; hour < models.HoursPerDay; hour++ {
		fmt.Fprintf(b, " %02d | ", hour)
		for _, code := range report.EventCodes {
			fmt.Fprintf(b, "%6d ", report.Cell(hour, code))
		}
		b.WriteString("\n")
	}
	b.WriteString(separator + "\n")

	b.WriteString("    | ")
	for _, code := range report.EventCodes {
		fmt.Fprintf(b, "%6d ", report.Total(code))
	}
	b.WriteString("\n")
	b.WriteString(separator + "\n")
}

func (r *textRenderer) writeRatios(b *strings.Builder, report *models.HistogramReport) {
	ended := report.Total(models.EventEnded)

	b.WriteString("\nRatios:\n")
	if report.SingleNodeJobRatio == nil {
		fmt.Fprintf(b, "  Single Machine Jobs ended.... %d of %d [E] is n/a\n", report.SingleNodeJobs, ended)
		return
	}
	fmt.Fprintf(b, "  Single Machine Jobs ended.... %d of %d [E] is %.2f%%\n",
		report.SingleNodeJobs, ended, *report.SingleNodeJobRatio)
}

func (r *textRenderer) writeLegend(b *strings.Builder, codes []models.EventCode) {
	b.WriteString("\n\nLegend:\n")
	for _, entry := range Legend(codes) {
		fmt.Fprintf(b, "%3s = %s\n", entry.Code, entry.Description)
	}
	b.WriteString("\n")
}

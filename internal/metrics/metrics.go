/*
Package metrics collects per-run Prometheus metrics for layoutview.

A command-line run has no scrape endpoint, so metrics live in a private
registry and are written in text exposition format for the node-exporter
textfile collector:

	rec := metrics.NewRecorder()
	sheets, err := layoutview.Classify(ctx, path, layoutview.Options{Observer: rec})
	rec.ObserveRun(time.Since(start))
	err = rec.WriteTextfile("/var/lib/node_exporter/layoutview.prom")

# Available Metrics

  - layoutview_sheets_total: Sheets seen (counter)
    Labels: outcome (skipped_hidden, empty, analyzed)
  - layoutview_sheets_classified_total: Sheets emitted (counter)
    Labels: sheet_type (Data, Form, Unknown)
  - layoutview_sheet_density: Density of analyzed sheets (histogram)
  - layoutview_run_duration_seconds: Wall time of a run (histogram)
*/
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/ukaji3/layoutview-go/pkg/layoutview/models"
)

// Sheet outcomes.
const (
	OutcomeSkippedHidden = "skipped_hidden"
	OutcomeEmpty         = "empty"
	OutcomeAnalyzed      = "analyzed"
)

// Recorder holds the metrics of one process. It implements
// layoutview.Observer and is safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	SheetsTotal      *prometheus.CounterVec
	SheetsClassified *prometheus.CounterVec
	SheetDensity     prometheus.Histogram
	RunDuration      prometheus.Histogram
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		SheetsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "layoutview_sheets_total",
				Help: "Total number of sheets seen, by outcome",
			},
			[]string{"outcome"},
		),
		SheetsClassified: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "layoutview_sheets_classified_total",
				Help: "Total number of classified sheets, by sheet type",
			},
			[]string{"sheet_type"},
		),
		SheetDensity: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "layoutview_sheet_density",
				Help:    "Density of analyzed sheets",
				Buckets: prometheus.LinearBuckets(0.1, 0.1, 10), // 0.1 .. 1.0
			},
		),
		RunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "layoutview_run_duration_seconds",
				Help:    "Duration of a classification run in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// Registry returns the registry holding the recorder's metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// SheetSkipped counts a sheet left out for its visibility.
func (r *Recorder) SheetSkipped(_ string, _ models.SheetVisibility) {
	r.SheetsTotal.WithLabelValues(OutcomeSkippedHidden).Inc()
}

// SheetAnalyzed counts an analyzed sheet and records its density.
func (r *Recorder) SheetAnalyzed(st models.SheetStatistics) {
	if st.Density == 0 {
		r.SheetsTotal.WithLabelValues(OutcomeEmpty).Inc()
		return
	}
	r.SheetsTotal.WithLabelValues(OutcomeAnalyzed).Inc()
	r.SheetDensity.Observe(st.Density)
}

// SheetClassified counts an emitted sheet by type.
func (r *Recorder) SheetClassified(cs models.ClassifiedSheet) {
	r.SheetsClassified.WithLabelValues(string(cs.SheetType)).Inc()
}

// ObserveRun records the duration of a completed run.
func (r *Recorder) ObserveRun(d time.Duration) {
	r.RunDuration.Observe(d.Seconds())
}

// WriteTextfile writes every metric to path in text exposition format. The
// file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

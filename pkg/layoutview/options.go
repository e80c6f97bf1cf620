// Package layoutview classifies the visible sheets of an xlsx workbook as
// Data, Form or Unknown from structural statistics of their cells.
package layoutview

import "github.com/ukaji3/layoutview-go/pkg/layoutview/models"

// Observer receives per-sheet events during a run. Methods may be called
// from several goroutines at once.
type Observer interface {
	// SheetSkipped is called for every sheet that is not visible.
	SheetSkipped(name string, visibility models.SheetVisibility)
	// SheetAnalyzed is called once the statistics of a visible sheet are known.
	SheetAnalyzed(st models.SheetStatistics)
	// SheetClassified is called for every sheet kept in the classified result.
	SheetClassified(cs models.ClassifiedSheet)
}

// Options configures a run.
type Options struct {
	// Workers bounds how many sheets are analyzed concurrently.
	// Values below 1 mean 1.
	Workers int
	// Observer, if set, is notified of per-sheet events.
	Observer Observer
}

// DefaultOptions returns sequential options with no observer.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

func (o Options) workers() int {
	if o.Workers < 1 {
		return 1
	}
	return o.Workers
}

func (o Options) observer() Observer {
	if o.Observer == nil {
		return nopObserver{}
	}
	return o.Observer
}

type nopObserver struct{}

func (nopObserver) SheetSkipped(string, models.SheetVisibility) {}
func (nopObserver) SheetAnalyzed(models.SheetStatistics)        {}
func (nopObserver) SheetClassified(models.ClassifiedSheet)      {}

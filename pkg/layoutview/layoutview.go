package layoutview

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	"unicode/utf8"

	"github.com/ukaji3/layoutview-go/internal/logging"
	"github.com/ukaji3/layoutview-go/pkg/layoutview/classifier"
	"github.com/ukaji3/layoutview-go/pkg/layoutview/models"
	"github.com/ukaji3/layoutview-go/pkg/layoutview/output"
	"github.com/ukaji3/layoutview-go/pkg/layoutview/parser"
	"github.com/ukaji3/layoutview-go/pkg/layoutview/stats"
	"golang.org/x/sync/errgroup"
)

// Analyze computes the statistics of every visible sheet of the workbook at
// path, in workbook order. Sheets without data are included.
func Analyze(ctx context.Context, path string, opts Options) ([]models.SheetStatistics, error) {
	ctx = withRunID(ctx)
	log := logging.Ctx(ctx)
	obs := opts.observer()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	wb, err := parser.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer wb.Close()

	var visible []parser.SheetInfo
	for _, info := range wb.Sheets() {
		if info.Visibility != models.Visible {
			log.Debug().
				Str("sheet", info.Name).
				Str("visibility", string(info.Visibility)).
				Msg("sheet skipped")
			obs.SheetSkipped(info.Name, info.Visibility)
			continue
		}
		visible = append(visible, info)
	}

	results := make([]models.SheetStatistics, len(visible))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i, info := range visible {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			st, err := analyzeSheet(wb, info)
			if err != nil {
				return err
			}
			log.Debug().
				Str("sheet", st.SheetName).
				Int("first_row", st.FirstRow).
				Int("first_col", st.FirstCol).
				Int("end_row", st.EndRow).
				Int("end_col", st.EndCol).
				Float64("density", st.Density).
				Msg("sheet analyzed")
			obs.SheetAnalyzed(st)
			results[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func analyzeSheet(wb *parser.Workbook, info parser.SheetInfo) (models.SheetStatistics, error) {
	rng, err := wb.Range(info.Name)
	if err != nil {
		return models.SheetStatistics{}, &AnalysisError{SheetName: info.Name, Stage: StageReadRange, Err: err}
	}
	st := stats.Compute(info.Name, info.Visibility, rng)
	if err := rng.Err(); err != nil {
		return models.SheetStatistics{}, &AnalysisError{SheetName: info.Name, Stage: StageDecodeCell, Err: err}
	}
	return st, nil
}

// Classify analyzes the workbook at path and classifies each visible sheet.
// Sheets with a density of zero are left out of the result.
func Classify(ctx context.Context, path string, opts Options) ([]models.ClassifiedSheet, error) {
	ctx = withRunID(ctx)
	start := time.Now()

	sheets, err := Analyze(ctx, path, opts)
	if err != nil {
		return nil, err
	}

	obs := opts.observer()
	log := logging.Ctx(ctx)

	out := ClassifyStatistics(sheets)
	for _, cs := range out {
		log.Debug().
			Str("sheet", cs.SheetName).
			Str("sheet_type", string(cs.SheetType)).
			Msg("sheet classified")
		obs.SheetClassified(cs)
	}

	log.Debug().
		Str("path", path).
		Int("sheets", len(sheets)).
		Int("classified", len(out)).
		Dur("duration", time.Since(start)).
		Msg("workbook classified")

	return out, nil
}

// ClassifyStatistics classifies precomputed statistics, keeping input order
// and dropping sheets whose density is zero.
func ClassifyStatistics(sheets []models.SheetStatistics) []models.ClassifiedSheet {
	out := make([]models.ClassifiedSheet, 0, len(sheets))
	for _, st := range sheets {
		cs := classifier.ClassifySheet(st)
		if cs.Density > 0 {
			out = append(out, cs)
		}
	}
	return out
}

// ClassifyJSON classifies the workbook at path and returns the result as a
// compact JSON array.
func ClassifyJSON(ctx context.Context, path string) ([]byte, error) {
	if path == "" || !utf8.ValidString(path) {
		return nil, ErrInvalidPath
	}

	sheets, err := Classify(ctx, path, DefaultOptions())
	if err != nil {
		return nil, err
	}
	return output.ToJSON(sheets, false)
}

func withRunID(ctx context.Context) context.Context {
	if logging.RunIDFromContext(ctx) != "" {
		return ctx
	}
	return logging.ContextWithRunID(ctx, logging.NewRunID())
}

// Package classifier maps sheet statistics to a sheet type.
package classifier

import (
	"fmt"

	"github.com/ukaji3/layoutview-go/pkg/layoutview/models"
)

// Decision thresholds. These are fixed; changing one changes the output for
// existing workbooks.
const (
	ConclusiveDensity   = 0.70
	FormAspectRatio     = 4.0
	FormMaxColumns      = 4
	ModerateDensity     = 0.46
	WideTableMinColumns = 4
	ConsistentRows      = 0.50
	ConsistentDensity   = 0.40
	VeryConsistentRows  = 0.80
	FlatMinColumns      = 10
	FlatAspectRatio     = 0.5
	MinimumDensity      = 0.35
	MixedTypes          = 0.35
	MixedMinColumns     = 5
)

// ReasonZeroDensity is the reason reported for sheets without any data.
const ReasonZeroDensity = "Density is zero"

type rule struct {
	name      string
	sheetType models.SheetType
	match     func(s *models.SheetStatistics, cols int) bool
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{
		name:      "near-total occupancy",
		sheetType: models.SheetTypeData,
		match: func(s *models.SheetStatistics, _ int) bool {
			return s.Density > ConclusiveDensity
		},
	},
	{
		name:      "tall narrow key/value layout",
		sheetType: models.SheetTypeForm,
		match: func(s *models.SheetStatistics, cols int) bool {
			return s.AspectRatio > FormAspectRatio && cols <= FormMaxColumns && s.Density > MinimumDensity
		},
	},
	{
		name:      "dense wide table with consistent rows",
		sheetType: models.SheetTypeData,
		match: func(s *models.SheetStatistics, cols int) bool {
			return s.Density > ModerateDensity && cols > WideTableMinColumns && s.RowTypeConsistency > ConsistentRows
		},
	},
	{
		name:      "very consistent row structure",
		sheetType: models.SheetTypeData,
		match: func(s *models.SheetStatistics, _ int) bool {
			return s.Density > ConsistentDensity && s.RowTypeConsistency > VeryConsistentRows
		},
	},
	{
		name:      "wide flat many-column layout",
		sheetType: models.SheetTypeData,
		match: func(s *models.SheetStatistics, cols int) bool {
			return cols > FlatMinColumns && s.AspectRatio < FlatAspectRatio && s.Density > MinimumDensity
		},
	},
	{
		name:      "dense with mixed column types",
		sheetType: models.SheetTypeData,
		match: func(s *models.SheetStatistics, _ int) bool {
			return s.Density > ModerateDensity && s.DataTypeMix > MixedTypes
		},
	},
	{
		name:      "mixed column types across many columns",
		sheetType: models.SheetTypeData,
		match: func(s *models.SheetStatistics, cols int) bool {
			return s.Density > MinimumDensity && s.DataTypeMix > MixedTypes && cols > MixedMinColumns
		},
	},
}

const fallbackRule = "no table signal"

// Classify returns the sheet type of s and the reason for it. It is a pure
// function of s.
func Classify(s models.SheetStatistics) (models.SheetType, string) {
	if s.Density == 0 {
		return models.SheetTypeUnknown, ReasonZeroDensity
	}

	cols := s.EndCol - s.FirstCol + 1
	for _, r := range rules {
		if r.match(&s, cols) {
			return r.sheetType, reason(r.name, &s)
		}
	}
	return models.SheetTypeForm, reason(fallbackRule, &s)
}

// ClassifySheet wraps s with its classification.
func ClassifySheet(s models.SheetStatistics) models.ClassifiedSheet {
	sheetType, why := Classify(s)
	return models.ClassifiedSheet{
		SheetStatistics:      s,
		SheetType:            sheetType,
		ClassificationReason: why,
	}
}

func reason(rule string, s *models.SheetStatistics) string {
	return fmt.Sprintf("%s (density: %.3f, data_type_mix: %.3f, row_type_consistency: %.3f, aspect_ratio: %.2f)",
		rule, s.Density, s.DataTypeMix, s.RowTypeConsistency, s.AspectRatio)
}

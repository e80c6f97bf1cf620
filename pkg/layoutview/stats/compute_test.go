package stats

import (
	"math"
	"testing"

	"github.com/ukaji3/layoutview-go/pkg/layoutview/models"
)

const epsilon = 1e-9

func numberGrid(rows, cols int) [][]models.Cell {
	grid := make([][]models.Cell, rows)
	for r := range grid {
		grid[r] = make([]models.Cell, cols)
		for c := range grid[r] {
			grid[r][c] = models.FloatCell(float64(r*cols + c))
		}
	}
	return grid
}

func TestSample(t *testing.T) {
	tests := []struct {
		name    string
		bounds  models.Bounds
		wantOK  bool
		wantEnd int
	}{
		{"single cell", models.Bounds{}, true, 0},
		{"short sheet", models.Bounds{FirstRow: 2, EndRow: 50, EndCol: 3}, true, 50},
		{"exactly cap", models.Bounds{FirstRow: 0, EndRow: 99}, true, 99},
		{"tall sheet", models.Bounds{FirstRow: 10, EndRow: 500, EndCol: 1}, true, 109},
		{"inverted rows", models.Bounds{FirstRow: 5, EndRow: 4}, false, 0},
		{"inverted cols", models.Bounds{FirstCol: 3, EndCol: 1}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := Sample(tt.bounds)
			if ok != tt.wantOK {
				t.Fatalf("Sample(%+v) ok = %v, expected %v", tt.bounds, ok, tt.wantOK)
			}
			if ok && w.SampleEndRow != tt.wantEnd {
				t.Errorf("Sample(%+v).SampleEndRow = %d, expected %d", tt.bounds, w.SampleEndRow, tt.wantEnd)
			}
			if ok && w.Bounds != tt.bounds {
				t.Errorf("Sample(%+v) changed bounds to %+v", tt.bounds, w.Bounds)
			}
		})
	}
}

func TestComputeFullNumericSheet(t *testing.T) {
	st := Compute("Numbers", models.Visible, NewGrid(0, 0, numberGrid(11, 11)))

	if st.Bounds != (models.Bounds{EndRow: 10, EndCol: 10}) {
		t.Errorf("Bounds = %+v, expected (0,0)-(10,10)", st.Bounds)
	}
	if st.TotalCells != 121 || st.DataCells != 121 {
		t.Errorf("TotalCells, DataCells = %d, %d, expected 121, 121", st.TotalCells, st.DataCells)
	}
	if st.Density != 1.0 {
		t.Errorf("Density = %v, expected 1.0", st.Density)
	}
	if st.DataTypeMix != 0 {
		t.Errorf("DataTypeMix = %v, expected 0", st.DataTypeMix)
	}
	if st.RowTypeConsistency != 1.0 {
		t.Errorf("RowTypeConsistency = %v, expected 1.0", st.RowTypeConsistency)
	}
	if st.AspectRatio != 1.0 {
		t.Errorf("AspectRatio = %v, expected 1.0", st.AspectRatio)
	}
	if len(st.ColumnDataTypes) != 11 {
		t.Fatalf("len(ColumnDataTypes) = %d, expected 11", len(st.ColumnDataTypes))
	}
	for i, p := range st.ColumnDataTypes {
		if p.ColumnIndex != i || p.NumericCount != 11 || p.TotalCount != 11 || p.NumericTypeRatio != 1 {
			t.Errorf("ColumnDataTypes[%d] = %+v", i, p)
		}
	}
	if st.FirstRowFirstColContent == nil || *st.FirstRowFirstColContent != "0" {
		t.Errorf("FirstRowFirstColContent = %v, expected \"0\"", st.FirstRowFirstColContent)
	}
	if st.LastRowFirstColContent == nil || *st.LastRowFirstColContent != "110" {
		t.Errorf("LastRowFirstColContent = %v, expected \"110\"", st.LastRowFirstColContent)
	}
}

func TestComputeSamplesAtMostHundredRows(t *testing.T) {
	st := Compute("Tall", models.Visible, NewGrid(3, 2, numberGrid(250, 2)))

	if st.FirstRow != 3 || st.EndRow != 252 || st.FirstCol != 2 || st.EndCol != 3 {
		t.Errorf("Bounds = %+v, expected original extent (3,2)-(252,3)", st.Bounds)
	}
	if st.TotalCells != 200 {
		t.Errorf("TotalCells = %d, expected 200", st.TotalCells)
	}
	if st.AspectRatio != 50 {
		t.Errorf("AspectRatio = %v, expected 50", st.AspectRatio)
	}
	// Row 102 is the last sampled row: (102-3)*2 = 198.
	if st.LastRowFirstColContent == nil || *st.LastRowFirstColContent != "198" {
		t.Errorf("LastRowFirstColContent = %v, expected \"198\"", st.LastRowFirstColContent)
	}
	if len(st.ColumnDataTypes) != 2 || st.ColumnDataTypes[0].ColumnIndex != 2 {
		t.Errorf("ColumnDataTypes = %+v", st.ColumnDataTypes)
	}
	if st.ColumnDataTypes[0].TotalCount != 100 {
		t.Errorf("ColumnDataTypes[0].TotalCount = %d, expected 100", st.ColumnDataTypes[0].TotalCount)
	}
}

func TestComputeMalformedBounds(t *testing.T) {
	grid := NewGrid(0, 0, numberGrid(3, 3)).WithBounds(models.Bounds{FirstRow: 5, EndRow: 2, EndCol: 2})
	st := Compute("Broken", models.Visible, grid)

	if st.Bounds != (models.Bounds{}) {
		t.Errorf("Bounds = %+v, expected zero", st.Bounds)
	}
	if st.TotalCells != 0 || st.DataCells != 0 || st.Density != 0 {
		t.Errorf("counts = %d/%d density %v, expected zero", st.DataCells, st.TotalCells, st.Density)
	}
	if st.FirstRowFirstColContent != nil || st.LastRowFirstColContent != nil {
		t.Error("expected no corner samples")
	}
	if st.ColumnDataTypes == nil || len(st.ColumnDataTypes) != 0 {
		t.Errorf("ColumnDataTypes = %v, expected empty non-nil slice", st.ColumnDataTypes)
	}
}

func TestComputeNoStoredCells(t *testing.T) {
	st := Compute("Blank", models.Visible, NewGrid(0, 0, nil))

	if st.TotalCells != 1 || st.DataCells != 0 || st.Density != 0 {
		t.Errorf("counts = %d/%d density %v, expected 0/1 density 0", st.DataCells, st.TotalCells, st.Density)
	}
	if len(st.ColumnDataTypes) != 1 {
		t.Errorf("len(ColumnDataTypes) = %d, expected 1", len(st.ColumnDataTypes))
	}
	if st.FirstRowFirstColContent != nil {
		t.Errorf("FirstRowFirstColContent = %q, expected nil", *st.FirstRowFirstColContent)
	}
}

func TestComputeCornerSamplesSkipEmptyCells(t *testing.T) {
	grid := NewGrid(0, 0, [][]models.Cell{
		{models.TextCell("  "), models.TextCell("b")},
		{models.TextCell("x"), models.TextCell("y")},
		{models.BoolCell(true), models.EmptyCell()},
	})
	st := Compute("Corners", models.Visible, grid)

	if st.FirstRowFirstColContent != nil {
		t.Errorf("FirstRowFirstColContent = %q, expected nil for blank text", *st.FirstRowFirstColContent)
	}
	if st.LastRowFirstColContent == nil || *st.LastRowFirstColContent != "true" {
		t.Errorf("LastRowFirstColContent = %v, expected \"true\"", st.LastRowFirstColContent)
	}
	if st.DataCells != 4 {
		t.Errorf("DataCells = %d, expected 4", st.DataCells)
	}
}

func TestComputeScoresStayInRange(t *testing.T) {
	grids := map[string][][]models.Cell{
		"mixed": {
			{models.TextCell("Name"), models.TextCell("Qty"), models.TextCell("Price")},
			{models.TextCell("Apple"), models.IntCell(3), models.TextCell("1,200.50")},
			{models.TextCell("Pear"), models.EmptyCell(), models.FloatCell(2.5)},
			{models.ErrorCell("#N/A"), models.TextCell("7%"), models.BoolCell(false)},
		},
		"ragged": {
			{models.TextCell("a")},
			{},
			{models.EmptyCell(), models.EmptyCell(), models.EmptyCell(), models.IntCell(1)},
		},
	}

	for name, rows := range grids {
		st := Compute(name, models.Visible, NewGrid(0, 0, rows))
		for metric, v := range map[string]float64{
			"density":              st.Density,
			"data_type_mix":        st.DataTypeMix,
			"row_type_consistency": st.RowTypeConsistency,
		} {
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Errorf("%s: %s = %v, expected value in [0,1]", name, metric, v)
			}
		}
		if st.DataCells > st.TotalCells {
			t.Errorf("%s: DataCells %d > TotalCells %d", name, st.DataCells, st.TotalCells)
		}
		if len(st.ColumnDataTypes) != st.EndCol-st.FirstCol+1 {
			t.Errorf("%s: len(ColumnDataTypes) = %d, expected %d", name, len(st.ColumnDataTypes), st.EndCol-st.FirstCol+1)
		}
	}
}

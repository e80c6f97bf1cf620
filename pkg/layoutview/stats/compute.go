package stats

import "github.com/ukaji3/layoutview-go/pkg/layoutview/models"

// Compute builds the statistics of one sheet from its cells.
//
// A malformed extent yields a zeroed record with no column profiles and no
// corner samples.
func Compute(name string, visibility models.SheetVisibility, src CellSource) models.SheetStatistics {
	st := models.SheetStatistics{
		SheetName:       name,
		Visible:         visibility,
		ColumnDataTypes: []models.ColumnTypeProfile{},
	}

	w, ok := Sample(src.Bounds())
	if !ok {
		return st
	}
	st.Bounds = w.Bounds

	st.TotalCells, st.DataCells = CountCells(src, w)
	st.Density = Density(st.DataCells, st.TotalCells)
	st.FirstRowFirstColContent, st.LastRowFirstColContent = CornerSamples(src, w)

	st.ColumnDataTypes = ProfileColumns(src, w)
	st.DataTypeMix = MixEntropy(st.ColumnDataTypes)
	st.RowTypeConsistency = RowConsistency(src, w)
	st.AspectRatio = AspectRatio(w.RowCount(), w.ColumnCount())

	return st
}

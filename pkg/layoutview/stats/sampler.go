package stats

import "github.com/ukaji3/layoutview-go/pkg/layoutview/models"

// MaxSampleRows caps the number of rows scanned per sheet.
const MaxSampleRows = 100

// Window is the row-capped part of an extent that statistics are computed over.
// Columns are never clamped.
type Window struct {
	models.Bounds
	// SampleEndRow is the last row scanned, never past EndRow.
	SampleEndRow int
}

// Sample clamps the row span of b to MaxSampleRows rows starting at FirstRow.
// ok is false when b is malformed (first > end on either axis).
func Sample(b models.Bounds) (w Window, ok bool) {
	if !b.Valid() {
		return Window{}, false
	}
	end := b.EndRow
	if limit := b.FirstRow + MaxSampleRows - 1; limit < end {
		end = limit
	}
	return Window{Bounds: b, SampleEndRow: end}, true
}

// RowCount returns the number of sampled rows.
func (w Window) RowCount() int {
	return w.SampleEndRow - w.FirstRow + 1
}

// cellAt returns the cell at (row, col), treating absent cells as empty.
func cellAt(src CellSource, row, col int) models.Cell {
	if c, ok := src.Cell(row, col); ok {
		return c
	}
	return models.EmptyCell()
}

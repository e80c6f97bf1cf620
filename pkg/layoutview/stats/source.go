// Package stats computes structural statistics over a sheet's occupied region.
//
// The engine only reads cells through CellSource, so a decoded worksheet and
// an in-memory Grid are interchangeable.
package stats

import "github.com/ukaji3/layoutview-go/pkg/layoutview/models"

// CellSource is a 2-D cell accessor over an occupied extent.
type CellSource interface {
	// Bounds returns the occupied extent.
	Bounds() models.Bounds
	// Cell returns the cell at (row, col), 0-indexed. ok is false when no
	// cell is stored at that position.
	Cell(row, col int) (cell models.Cell, ok bool)
}

// Grid is an in-memory CellSource. Rows[i][j] is the cell at
// (FirstRow+i, FirstCol+j).
type Grid struct {
	FirstRow int
	FirstCol int
	Rows     [][]models.Cell

	bounds *models.Bounds
}

// NewGrid returns a Grid whose extent is derived from its rows.
func NewGrid(firstRow, firstCol int, rows [][]models.Cell) *Grid {
	return &Grid{FirstRow: firstRow, FirstCol: firstCol, Rows: rows}
}

// WithBounds overrides the derived extent. It is used to model decoders that
// report an extent which does not match the stored cells.
func (g *Grid) WithBounds(b models.Bounds) *Grid {
	g.bounds = &b
	return g
}

// Bounds implements CellSource.
func (g *Grid) Bounds() models.Bounds {
	if g.bounds != nil {
		return *g.bounds
	}
	width := 0
	for _, row := range g.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if len(g.Rows) == 0 || width == 0 {
		return models.Bounds{}
	}
	return models.Bounds{
		FirstRow: g.FirstRow,
		FirstCol: g.FirstCol,
		EndRow:   g.FirstRow + len(g.Rows) - 1,
		EndCol:   g.FirstCol + width - 1,
	}
}

// Cell implements CellSource.
func (g *Grid) Cell(row, col int) (models.Cell, bool) {
	r, c := row-g.FirstRow, col-g.FirstCol
	if r < 0 || r >= len(g.Rows) || c < 0 || c >= len(g.Rows[r]) {
		return models.Cell{}, false
	}
	return g.Rows[r][c], true
}

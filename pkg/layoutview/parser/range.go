package parser

import (
	"fmt"

	"github.com/ukaji3/layoutview-go/pkg/layoutview/models"
	"github.com/xuri/excelize/v2"
)

type cellKey struct{ row, col int }

// Range is the stored content of one sheet.
//
// Cells are decoded on first access and kept, so each stored value costs one
// round of excelize lookups however often it is read. The first decoding
// failure is kept and reported by Err. A Range is not safe for concurrent use.
type Range struct {
	wb     *Workbook
	sheet  string
	rows   [][]string
	bounds models.Bounds
	stored bool

	cells   map[cellKey]models.Cell
	decodes int
	err     error
}

// Bounds returns the occupied extent, or (0,0,0,0) when no cell is stored.
func (r *Range) Bounds() models.Bounds {
	return r.bounds
}

// Empty reports whether the sheet has no stored cell.
func (r *Range) Empty() bool {
	return !r.stored
}

// Cell returns the decoded cell at (row, col). Positions inside the extent
// without a stored value are Empty; positions outside it are absent.
func (r *Range) Cell(row, col int) (models.Cell, bool) {
	b := r.bounds
	if !r.stored || row < b.FirstRow || row > b.EndRow || col < b.FirstCol || col > b.EndCol {
		return models.Cell{}, false
	}
	if row >= len(r.rows) || col >= len(r.rows[row]) || r.rows[row][col] == "" {
		return models.EmptyCell(), true
	}

	key := cellKey{row, col}
	if c, ok := r.cells[key]; ok {
		return c, true
	}

	r.decodes++
	c, err := r.wb.decodeCell(r.sheet, row, col, r.rows[row][col])
	if err != nil {
		if r.err == nil {
			axis, _ := excelize.CoordinatesToCellName(col+1, row+1)
			r.err = fmt.Errorf("cell %s: %w", axis, err)
		}
		c = models.EmptyCell()
	}
	if r.cells == nil {
		r.cells = make(map[cellKey]models.Cell)
	}
	r.cells[key] = c
	return c, true
}

// Err returns the first error met while decoding cells.
func (r *Range) Err() error {
	return r.err
}

// findDataBounds finds the bounding box of cells with a stored value.
func findDataBounds(rows [][]string) (models.Bounds, bool) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	if minRow < 0 {
		return models.Bounds{}, false
	}
	return models.Bounds{FirstRow: minRow, FirstCol: minCol, EndRow: maxRow, EndCol: maxCol}, true
}

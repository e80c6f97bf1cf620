package stats

// CountCells returns the number of cells in the window and how many of them
// are non-empty.
func CountCells(src CellSource, w Window) (total, data int) {
	total = w.RowCount() * w.ColumnCount()
	for row := w.FirstRow; row <= w.SampleEndRow; row++ {
		for col := w.FirstCol; col <= w.EndCol; col++ {
			if !IsEmpty(cellAt(src, row, col)) {
				data++
			}
		}
	}
	return total, data
}

// Density returns data/total, or 0 when total is 0.
func Density(data, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(data) / float64(total)
}

// CornerSamples renders the first-column cells of the window's first and last
// sampled rows. A nil result means the cell is empty.
func CornerSamples(src CellSource, w Window) (first, last *string) {
	return sampleAt(src, w.FirstRow, w.FirstCol), sampleAt(src, w.SampleEndRow, w.FirstCol)
}

func sampleAt(src CellSource, row, col int) *string {
	c := cellAt(src, row, col)
	if IsEmpty(c) {
		return nil
	}
	s := c.String()
	return &s
}

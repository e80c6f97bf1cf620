package stats

// AspectRatio returns sampled rows per column, or 0 when there are no columns.
func AspectRatio(rows, cols int) float64 {
	if cols <= 0 {
		return 0
	}
	return float64(rows) / float64(cols)
}

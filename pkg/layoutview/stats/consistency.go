package stats

import "math"

// consistencySpreadWeight scales the standard deviation in 1/(1+k·σ).
const consistencySpreadWeight = 3.0

// RowConsistency scores how uniform the numeric fraction of each sampled row
// is. Rows without data are ignored; fewer than two rows with data score 0.
func RowConsistency(src CellSource, w Window) float64 {
	fractions := RowNumericFractions(src, w)
	if len(fractions) < 2 {
		return 0
	}
	return 1 / (1 + consistencySpreadWeight*populationStdDev(fractions))
}

// RowNumericFractions returns, for every sampled row with at least one
// non-empty cell, the share of its non-empty cells that are numeric.
func RowNumericFractions(src CellSource, w Window) []float64 {
	fractions := make([]float64, 0, w.RowCount())
	for row := w.FirstRow; row <= w.SampleEndRow; row++ {
		var numeric, filled int
		for col := w.FirstCol; col <= w.EndCol; col++ {
			c := cellAt(src, row, col)
			if IsEmpty(c) {
				continue
			}
			filled++
			if IsNumeric(c) {
				numeric++
			}
		}
		if filled > 0 {
			fractions = append(fractions, float64(numeric)/float64(filled))
		}
	}
	return fractions
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationStdDev divides by n, not n-1.
func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sumSquaredDiff float64
	for _, v := range values {
		diff := v - m
		sumSquaredDiff += diff * diff
	}
	return math.Sqrt(sumSquaredDiff / float64(len(values)))
}

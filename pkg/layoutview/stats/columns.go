package stats

import (
	"math"

	"github.com/ukaji3/layoutview-go/pkg/layoutview/models"
)

// ProfileColumns counts numeric and text cells in every column of the extent
// over the sampled rows. Profiles are returned in ascending column order.
func ProfileColumns(src CellSource, w Window) []models.ColumnTypeProfile {
	profiles := make([]models.ColumnTypeProfile, 0, w.ColumnCount())
	for col := w.FirstCol; col <= w.EndCol; col++ {
		p := models.ColumnTypeProfile{ColumnIndex: col}
		for row := w.FirstRow; row <= w.SampleEndRow; row++ {
			c := cellAt(src, row, col)
			if IsEmpty(c) {
				continue
			}
			if IsNumeric(c) {
				p.NumericCount++
			} else {
				p.TextCount++
			}
		}
		p.TotalCount = p.NumericCount + p.TextCount
		if p.TotalCount > 0 {
			p.NumericTypeRatio = float64(p.NumericCount) / float64(p.TotalCount)
		}
		profiles = append(profiles, p)
	}
	return profiles
}

// MixEntropy averages the normalized numeric/text entropy of every column
// that has at least one non-empty cell.
func MixEntropy(profiles []models.ColumnTypeProfile) float64 {
	var sum float64
	var n int
	for _, p := range profiles {
		if p.TotalCount == 0 {
			continue
		}
		sum += columnEntropy(p)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// columnEntropy is the Shannon entropy of the numeric/text split in bits,
// so a 50/50 column scores 1 and a pure column scores 0.
func columnEntropy(p models.ColumnTypeProfile) float64 {
	total := float64(p.TotalCount)
	h := entropyTerm(float64(p.NumericCount)/total) + entropyTerm(float64(p.TextCount)/total)
	return math.Min(1, h/math.Ln2)
}

func entropyTerm(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return -p * math.Log(p)
}

package stats

import (
	"regexp"
	"strings"

	"github.com/ukaji3/layoutview-go/pkg/layoutview/models"
)

// Numeric text patterns, tried in order. They do not overlap.
var numericPatterns = []*regexp.Regexp{
	// 50%, -25.5%
	regexp.MustCompile(`^-?\d+(\.\d+)?%$`),
	// 1,234.56, -1,234
	regexp.MustCompile(`^-?\d{1,3}(,\d{3})+(\.\d+)?$`),
	// 123, -67.89
	regexp.MustCompile(`^-?\d+(\.\d+)?$`),
}

// IsEmpty reports whether a cell carries no data. Errors and blank text count
// as empty.
func IsEmpty(c models.Cell) bool {
	switch c.Kind {
	case models.CellEmpty, models.CellError:
		return true
	case models.CellText:
		return strings.TrimSpace(c.Text) == ""
	case models.CellInteger, models.CellFloat, models.CellBoolean, models.CellDateTime:
		return false
	}
	return true
}

// IsNumeric reports whether a cell is a number or numeric-looking text.
// Booleans and dates are not numeric.
func IsNumeric(c models.Cell) bool {
	switch c.Kind {
	case models.CellInteger, models.CellFloat:
		return true
	case models.CellText:
		return IsNumericText(c.Text)
	case models.CellEmpty, models.CellError, models.CellBoolean, models.CellDateTime:
		return false
	}
	return false
}

// IsNumericText reports whether s, once trimmed, is a plain, thousands-grouped
// or percentage number.
func IsNumericText(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, p := range numericPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

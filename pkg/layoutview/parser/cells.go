package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/layoutview-go/pkg/layoutview/models"
	"github.com/xuri/excelize/v2"
)

// Layouts accepted for ISO 8601 date cells (t="d").
var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"15:04:05",
}

// decodeCell converts the raw stored value of a cell into a typed Cell.
// row and col are 0-based.
func (w *Workbook) decodeCell(sheet string, row, col int, raw string) (models.Cell, error) {
	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return models.Cell{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	cellType, err := w.file.GetCellType(sheet, axis)
	if err != nil {
		return models.Cell{}, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.BoolCell(parseBool(raw)), nil
	case excelize.CellTypeError:
		return models.ErrorCell(raw), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.TextCell(raw), nil
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return models.DateTimeCell(t), nil
		}
		return models.TextCell(raw), nil
	}

	// Unset or explicit number type.
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.TextCell(raw), nil
	}

	isDate, err := w.isDateStyled(sheet, axis)
	if err != nil {
		return models.Cell{}, err
	}
	if isDate {
		t, err := excelize.ExcelDateToTime(v, w.date1904)
		if err == nil {
			return models.DateTimeCell(t), nil
		}
	}
	return models.FloatCell(v), nil
}

// isDateStyled reports whether the cell's number format renders a date or
// time. Must be called with w.mu held.
func (w *Workbook) isDateStyled(sheet, axis string) (bool, error) {
	styleID, err := w.file.GetCellStyle(sheet, axis)
	if err != nil {
		return false, err
	}
	if cached, ok := w.dateStyles[styleID]; ok {
		return cached, nil
	}

	style, err := w.file.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	isDate := false
	if style != nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		} else {
			isDate = isBuiltInDateFormat(style.NumFmt)
		}
	}
	w.dateStyles[styleID] = isDate
	return isDate, nil
}

// isBuiltInDateFormat reports whether a built-in number format id is a date
// or time format. 27-36 and 50-58 are the East Asian locale date formats.
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom number format code contains date
// or time tokens outside quoted literals, escapes and bracketed sections.
func isDateFormatCode(code string) bool {
	if strings.EqualFold(code, "general") {
		return false
	}
	// Only the first section (positive numbers) matters.
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}

	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		default:
			switch ch | 0x20 {
			case 'y', 'm', 'd', 'h', 's':
				return true
			}
		}
	}
	return false
}

func parseBool(raw string) bool {
	return raw == "1" || strings.EqualFold(raw, "true")
}

func parseISODate(raw string) (time.Time, bool) {
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Package models defines data structures for sheet layout classification.
package models

import (
	"strconv"
	"time"
)

// CellKind tags the variant held by a Cell.
type CellKind int

const (
	// CellEmpty is a cell with no value.
	CellEmpty CellKind = iota
	// CellError is a formula error such as #DIV/0!.
	CellError
	// CellInteger is a whole number.
	CellInteger
	// CellFloat is a floating point number.
	CellFloat
	// CellBoolean is TRUE or FALSE.
	CellBoolean
	// CellText is a string value.
	CellText
	// CellDateTime is a date or time value.
	CellDateTime
)

// DateTimeLayout is the rendering used for DateTime cells.
const DateTimeLayout = "2006-01-02T15:04:05"

var cellKindNames = [...]string{
	CellEmpty:    "Empty",
	CellError:    "Error",
	CellInteger:  "Integer",
	CellFloat:    "Float",
	CellBoolean:  "Boolean",
	CellText:     "Text",
	CellDateTime: "DateTime",
}

func (k CellKind) String() string {
	if k < 0 || int(k) >= len(cellKindNames) {
		return "CellKind(" + strconv.Itoa(int(k)) + ")"
	}
	return cellKindNames[k]
}

// Cell is a decoded cell value. Only the field matching Kind is meaningful.
type Cell struct {
	Kind CellKind
	// Int holds the value of an Integer cell.
	Int int64
	// Float holds the value of a Float cell.
	Float float64
	// Bool holds the value of a Boolean cell.
	Bool bool
	// Text holds the value of a Text cell or the code of an Error cell.
	Text string
	// Time holds the value of a DateTime cell.
	Time time.Time
}

// EmptyCell returns an Empty cell.
func EmptyCell() Cell { return Cell{Kind: CellEmpty} }

// ErrorCell returns an Error cell carrying the given error code.
func ErrorCell(code string) Cell { return Cell{Kind: CellError, Text: code} }

// IntCell returns an Integer cell.
func IntCell(v int64) Cell { return Cell{Kind: CellInteger, Int: v} }

// FloatCell returns a Float cell.
func FloatCell(v float64) Cell { return Cell{Kind: CellFloat, Float: v} }

// BoolCell returns a Boolean cell.
func BoolCell(v bool) Cell { return Cell{Kind: CellBoolean, Bool: v} }

// TextCell returns a Text cell.
func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

// DateTimeCell returns a DateTime cell.
func DateTimeCell(t time.Time) Cell { return Cell{Kind: CellDateTime, Time: t} }

// String renders the cell the way it is reported in corner samples.
func (c Cell) String() string {
	switch c.Kind {
	case CellEmpty:
		return ""
	case CellError, CellText:
		return c.Text
	case CellInteger:
		return strconv.FormatInt(c.Int, 10)
	case CellFloat:
		return strconv.FormatFloat(c.Float, 'f', -1, 64)
	case CellBoolean:
		return strconv.FormatBool(c.Bool)
	case CellDateTime:
		return c.Time.Format(DateTimeLayout)
	}
	return ""
}

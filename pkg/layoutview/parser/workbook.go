// Package parser decodes xlsx workbooks into sheets and typed cell ranges.
package parser

import (
	"fmt"
	"sync"

	"github.com/ukaji3/layoutview-go/pkg/layoutview/models"
	"github.com/xuri/excelize/v2"
)

// SheetInfo identifies a sheet and its visibility.
type SheetInfo struct {
	Name       string
	Visibility models.SheetVisibility
}

// Workbook is an open xlsx file.
//
// excelize reads are serialized through mu, so a Workbook and the Ranges it
// returns may be used from several goroutines.
type Workbook struct {
	file     *excelize.File
	path     string
	sheets   []SheetInfo
	date1904 bool

	mu         sync.Mutex
	dateStyles map[int]bool
}

// Open opens the workbook at path and reads its sheet list.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}

	wb := &Workbook{
		file:       f,
		path:       path,
		dateStyles: make(map[int]bool),
	}

	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}

	states, err := readSheetStates(path)
	if err != nil {
		states = nil
	}

	for _, name := range f.GetSheetList() {
		vis, ok := states[name]
		if !ok {
			vis, err = wb.visibleFallback(name)
			if err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("sheet %q visibility: %w", name, err)
			}
		}
		wb.sheets = append(wb.sheets, SheetInfo{Name: name, Visibility: vis})
	}

	return wb, nil
}

// visibleFallback is used when workbook.xml could not be read directly. It
// cannot tell hidden from very hidden.
func (w *Workbook) visibleFallback(name string) (models.SheetVisibility, error) {
	visible, err := w.file.GetSheetVisible(name)
	if err != nil {
		return "", err
	}
	if visible {
		return models.Visible, nil
	}
	return models.Hidden, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// Path returns the path the workbook was opened from.
func (w *Workbook) Path() string {
	return w.path
}

// Sheets returns every sheet in workbook order.
func (w *Workbook) Sheets() []SheetInfo {
	out := make([]SheetInfo, len(w.sheets))
	copy(out, w.sheets)
	return out
}

// Range reads the stored cells of a sheet.
func (w *Workbook) Range(sheet string) (*Range, error) {
	w.mu.Lock()
	rows, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	w.mu.Unlock()
	if err != nil {
		return nil, err
	}

	r := &Range{wb: w, sheet: sheet, rows: rows}
	r.bounds, r.stored = findDataBounds(rows)
	return r, nil
}

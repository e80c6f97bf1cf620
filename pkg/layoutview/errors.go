package layoutview

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrInvalidPath indicates an empty path or one that is not valid UTF-8.
var ErrInvalidPath = errors.New("invalid path")

// AnalysisStage names the step of sheet analysis that failed.
type AnalysisStage string

const (
	// StageReadRange is loading the stored rows of a sheet.
	StageReadRange AnalysisStage = "read range"
	// StageDecodeCell is typing a stored cell value.
	StageDecodeCell AnalysisStage = "decode cell"
)

// AnalysisError reports a sheet whose cells could not be read. It aborts the
// whole run, so no partial result exists when it is returned.
type AnalysisError struct {
	SheetName string
	Stage     AnalysisStage
	Err       error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("sheet %q: %s: %v", e.SheetName, e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

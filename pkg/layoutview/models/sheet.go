package models

// SheetVisibility is the visibility state of a sheet tab.
type SheetVisibility string

const (
	// Visible sheets are shown as tabs and are the only ones analyzed.
	Visible SheetVisibility = "Visible"
	// Hidden sheets can be unhidden from the application UI.
	Hidden SheetVisibility = "Hidden"
	// VeryHidden sheets can only be unhidden programmatically.
	VeryHidden SheetVisibility = "VeryHidden"
)

// Bounds is an occupied cell extent, 0-indexed and inclusive on both ends.
type Bounds struct {
	// FirstRow is the first occupied row.
	FirstRow int `json:"first_row" yaml:"first_row"`
	// FirstCol is the first occupied column.
	FirstCol int `json:"first_col" yaml:"first_col"`
	// EndRow is the last occupied row.
	EndRow int `json:"end_row" yaml:"end_row"`
	// EndCol is the last occupied column.
	EndCol int `json:"end_col" yaml:"end_col"`
}

// Valid reports whether the extent covers at least one cell.
func (b Bounds) Valid() bool {
	return b.FirstRow <= b.EndRow && b.FirstCol <= b.EndCol
}

// ColumnCount returns the number of columns in the extent.
func (b Bounds) ColumnCount() int {
	if !b.Valid() {
		return 0
	}
	return b.EndCol - b.FirstCol + 1
}

// ColumnTypeProfile counts numeric and text cells in one column of the sample.
type ColumnTypeProfile struct {
	// ColumnIndex is the 0-indexed column in the sheet.
	ColumnIndex int `json:"column_index" yaml:"column_index"`
	// NumericCount is the number of numeric cells.
	NumericCount int `json:"numeric_count" yaml:"numeric_count"`
	// TextCount is the number of non-empty, non-numeric cells.
	TextCount int `json:"text_count" yaml:"text_count"`
	// TotalCount is NumericCount + TextCount.
	TotalCount int `json:"total_count" yaml:"total_count"`
	// NumericTypeRatio is NumericCount / TotalCount, or 0 for an empty column.
	NumericTypeRatio float64 `json:"numeric_type_ratio" yaml:"numeric_type_ratio"`
}

// SheetStatistics holds the structural metrics computed for one visible sheet.
//
// Bounds is the true occupied extent; all counts and scores are computed over
// the row-capped sample window.
type SheetStatistics struct {
	SheetName string `json:"sheet_name" yaml:"sheet_name"`
	Bounds    `yaml:",inline"`

	TotalCells int     `json:"total_cells" yaml:"total_cells"`
	DataCells  int     `json:"data_cells" yaml:"data_cells"`
	Density    float64 `json:"density" yaml:"density"`

	Visible SheetVisibility `json:"visible" yaml:"visible"`

	// FirstRowFirstColContent is the rendered cell at the sample's first row and column.
	FirstRowFirstColContent *string `json:"first_row_first_col_content" yaml:"first_row_first_col_content"`
	// LastRowFirstColContent is the rendered cell at the sample's last row and first column.
	LastRowFirstColContent *string `json:"last_row_first_col_content" yaml:"last_row_first_col_content"`

	DataTypeMix        float64             `json:"data_type_mix" yaml:"data_type_mix"`
	ColumnDataTypes    []ColumnTypeProfile `json:"column_data_types" yaml:"column_data_types"`
	RowTypeConsistency float64             `json:"row_type_consistency" yaml:"row_type_consistency"`
	AspectRatio        float64             `json:"aspect_ratio" yaml:"aspect_ratio"`
}

package models

// SheetType is the layout class assigned to a sheet.
type SheetType string

const (
	// SheetTypeData is a table of repeated records.
	SheetTypeData SheetType = "Data"
	// SheetTypeForm is a labeled key/value layout.
	SheetTypeForm SheetType = "Form"
	// SheetTypeUnknown is assigned to sheets without any data.
	SheetTypeUnknown SheetType = "Unknown"
)

// ClassifiedSheet is a SheetStatistics together with its classification.
// It serializes as a single flat object.
type ClassifiedSheet struct {
	SheetStatistics `yaml:",inline"`

	SheetType            SheetType `json:"sheet_type" yaml:"sheet_type"`
	ClassificationReason string    `json:"classification_reason" yaml:"classification_reason"`
}

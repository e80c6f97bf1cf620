package output

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/ukaji3/layoutview-go/pkg/layoutview/models"
)

func sampleSheet() models.ClassifiedSheet {
	first := "ID"
	return models.ClassifiedSheet{
		SheetStatistics: models.SheetStatistics{
			SheetName:               "Data",
			Bounds:                  models.Bounds{FirstRow: 0, FirstCol: 0, EndRow: 10, EndCol: 3},
			TotalCells:              44,
			DataCells:               44,
			Density:                 1,
			Visible:                 models.Visible,
			FirstRowFirstColContent: &first,
			ColumnDataTypes: []models.ColumnTypeProfile{
				{ColumnIndex: 0, NumericCount: 10, TextCount: 1, TotalCount: 11, NumericTypeRatio: 10.0 / 11},
			},
			AspectRatio: 2.75,
		},
		SheetType:            models.SheetTypeData,
		ClassificationReason: "near-total occupancy (density: 1.000, data_type_mix: 0.000, row_type_consistency: 0.000, aspect_ratio: 2.75)",
	}
}

func TestToJSONFlatObject(t *testing.T) {
	data, err := ToJSON([]models.ClassifiedSheet{sampleSheet()}, false)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 element, got %d", len(decoded))
	}

	obj := decoded[0]
	keys := []string{
		"sheet_name", "first_row", "first_col", "end_row", "end_col",
		"total_cells", "data_cells", "density", "visible",
		"first_row_first_col_content", "last_row_first_col_content",
		"data_type_mix", "column_data_types", "row_type_consistency",
		"aspect_ratio", "sheet_type", "classification_reason",
	}
	for _, k := range keys {
		if _, ok := obj[k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}
	if len(obj) != len(keys) {
		t.Errorf("expected %d keys, got %d", len(keys), len(obj))
	}
	if obj["visible"] != "Visible" {
		t.Errorf("visible = %v, expected Visible", obj["visible"])
	}
	if obj["last_row_first_col_content"] != nil {
		t.Errorf("last_row_first_col_content = %v, expected null", obj["last_row_first_col_content"])
	}
	if obj["sheet_type"] != "Data" {
		t.Errorf("sheet_type = %v, expected Data", obj["sheet_type"])
	}
}

func TestToJSONCompactAndPretty(t *testing.T) {
	sheets := []models.ClassifiedSheet{sampleSheet()}

	compact, err := ToJSON(sheets, false)
	if err != nil {
		t.Fatalf("ToJSON(compact) error = %v", err)
	}
	if strings.Contains(string(compact), "\n") {
		t.Error("compact output should not contain newlines")
	}

	pretty, err := ToJSON(sheets, true)
	if err != nil {
		t.Fatalf("ToJSON(pretty) error = %v", err)
	}
	if !strings.Contains(string(pretty), "\n  {") {
		t.Errorf("pretty output should be indented: %s", pretty)
	}
}

func TestToJSONEmptySequence(t *testing.T) {
	data, err := ToJSON([]models.ClassifiedSheet{}, false)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("ToJSON(empty) = %s, expected []", data)
	}
}

func TestToYAML(t *testing.T) {
	data, err := ToYAML([]models.ClassifiedSheet{sampleSheet()})
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{
		"- sheet_name: Data",
		"  first_row: 0",
		"  end_col: 3",
		"  visible: Visible",
		"  sheet_type: Data",
		"  last_row_first_col_content: null",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.input, got, err)
		}
	}
}

func TestEncode(t *testing.T) {
	v := []string{"a"}

	data, err := Encode(v, FormatJSON, false)
	if err != nil || string(data) != `["a"]` {
		t.Errorf("Encode(json) = %s, %v", data, err)
	}
	data, err = Encode(v, FormatYAML, false)
	if err != nil || string(data) != "- a\n" {
		t.Errorf("Encode(yaml) = %q, %v", data, err)
	}
	if _, err := Encode(v, Format("toml"), false); err == nil {
		t.Error("Encode(toml) should fail")
	}
}

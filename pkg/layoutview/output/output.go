// Package output encodes classification results.
package output

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	// FormatJSON is a UTF-8 JSON array of sheet objects.
	FormatJSON Format = "json"
	// FormatYAML is a YAML sequence with the same field names.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (must be json or yaml)", s)
	}
}

// ToJSON encodes v as JSON. Compact output has no insignificant whitespace;
// pretty output is indented by two spaces.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToYAML encodes v as YAML with two-space indentation.
func ToYAML(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode encodes v in the given format. pretty only affects JSON.
func Encode(v interface{}, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return ToJSON(v, pretty)
	case FormatYAML:
		return ToYAML(v)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

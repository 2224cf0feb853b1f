package export

import (
	"asciimaid/diagram"
	"asciimaid/render"

	"github.com/goccy/go-json"
)

// JSONExporter exports laid-out diagrams to JSON format
type JSONExporter struct {
	opts render.Options
}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter(opts render.Options) *JSONExporter {
	return &JSONExporter{opts: opts}
}

// Export lays out d and encodes the resulting geometry.
func (e *JSONExporter) Export(d *diagram.Diagram) (string, error) {
	g, err := Layout(d, e.opts)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetFileExtension returns the file extension for JSON
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}

package export

import (
	"asciimaid/diagram"
	"asciimaid/render"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLExporter exports laid-out diagrams to YAML format
type YAMLExporter struct {
	opts render.Options
}

// NewYAMLExporter creates a new YAML exporter
func NewYAMLExporter(opts render.Options) *YAMLExporter {
	return &YAMLExporter{opts: opts}
}

// Export lays out d and encodes the resulting geometry.
func (e *YAMLExporter) Export(d *diagram.Diagram) (string, error) {
	g, err := Layout(d, e.opts)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return "", fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding yaml: %w", err)
	}
	return sb.String(), nil
}

// GetFileExtension returns the file extension for YAML
func (e *YAMLExporter) GetFileExtension() string {
	return ".yaml"
}

// GetFormatName returns the format name
func (e *YAMLExporter) GetFormatName() string {
	return "YAML"
}

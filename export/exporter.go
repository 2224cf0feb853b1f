// Package export provides functionality to export diagrams to various text-based formats
package export

import (
	"asciimaid/diagram"
	"asciimaid/render"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned for format names no exporter handles.
var ErrUnknownFormat = errors.New("unknown export format")

// Format represents an export format
type Format string

const (
	// FormatASCII exports the rendered ASCII drawing (default)
	FormatASCII Format = "ascii"
	// FormatJSON exports laid-out geometry as JSON
	FormatJSON Format = "json"
	// FormatYAML exports laid-out geometry as YAML
	FormatYAML Format = "yaml"
	// FormatMermaid exports the diagram back to Mermaid syntax
	FormatMermaid Format = "mermaid"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a diagram to the target format
	Export(d *diagram.Diagram) (string, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format. Layout and
// canvas settings come from opts.
func NewExporter(format Format, opts render.Options) (Exporter, error) {
	switch format {
	case FormatASCII:
		return NewASCIIExporter(opts), nil
	case FormatJSON:
		return NewJSONExporter(opts), nil
	case FormatYAML:
		return NewYAMLExporter(opts), nil
	case FormatMermaid:
		return NewMermaidExporter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "ascii", "text", "txt":
		return FormatASCII, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "mermaid", "mmd":
		return FormatMermaid, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatASCII,
		FormatJSON,
		FormatYAML,
		FormatMermaid,
	}
}

// GetFormatDescriptions returns human-readable descriptions of all formats
func GetFormatDescriptions() map[Format]string {
	return map[Format]string{
		FormatASCII:   "ASCII art (default)",
		FormatJSON:    "Laid-out geometry as JSON",
		FormatYAML:    "Laid-out geometry as YAML",
		FormatMermaid: "Mermaid diagram syntax",
	}
}

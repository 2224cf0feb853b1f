// Package importer turns diagram source text into a diagram.Diagram.
package importer

import (
	"asciimaid/diagram"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrEmptyDiagram is returned when the input holds no diagram lines.
	ErrEmptyDiagram = errors.New("empty diagram content")
	// ErrUnsupportedType is returned for diagram kinds that cannot be drawn.
	ErrUnsupportedType = errors.New("unsupported diagram type")
	// ErrNoNodes is returned when a diagram declares no nodes or participants.
	ErrNoNodes = errors.New("no nodes found")
	// ErrDanglingArrow is returned for an arrow that is missing an endpoint.
	ErrDanglingArrow = errors.New("arrow is missing an endpoint")
	// ErrUnknownFormat is returned when no importer matches the input.
	ErrUnknownFormat = errors.New("unable to detect format")
)

// LineError reports a problem on one line of the source text.
type LineError struct {
	Line int    // 1-based line number in the original input
	Text string // the offending line, trimmed
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("error parsing line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Importer interface defines methods for importing diagrams from various formats
type Importer interface {
	// CanImport checks if the given content can be imported by this importer
	CanImport(content string) bool

	// Import converts the input content into a diagram
	Import(content string) (*diagram.Diagram, error)

	// GetFormatName returns the name of the format
	GetFormatName() string

	// GetFileExtensions returns common file extensions for this format
	GetFileExtensions() []string
}

// ImporterRegistry manages available importers
type ImporterRegistry struct {
	importers []Importer
}

// NewImporterRegistry creates a registry holding the JSON and Mermaid importers.
func NewImporterRegistry() *ImporterRegistry {
	return &ImporterRegistry{
		importers: []Importer{
			NewJSONImporter(),
			NewMermaidImporter(),
		},
	}
}

// Register adds a new importer to the registry
func (r *ImporterRegistry) Register(importer Importer) {
	r.importers = append(r.importers, importer)
}

// DetectFormat attempts to detect the format of the given content
func (r *ImporterRegistry) DetectFormat(content string) (Importer, error) {
	for _, imp := range r.importers {
		if imp.CanImport(content) {
			return imp, nil
		}
	}
	return nil, ErrUnknownFormat
}

// ForFile returns the importer registered for the extension of path.
func (r *ImporterRegistry) ForFile(path string) (Importer, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}
	for _, imp := range r.importers {
		for _, e := range imp.GetFileExtensions() {
			if e == ext {
				return imp, true
			}
		}
	}
	return nil, false
}

// Import attempts to import content using auto-detection
func (r *ImporterRegistry) Import(content string) (*diagram.Diagram, error) {
	importer, err := r.DetectFormat(content)
	if err != nil {
		return nil, err
	}
	return importer.Import(content)
}

// ImportFile imports content read from path, preferring the importer that
// owns the file extension and falling back to content detection.
func (r *ImporterRegistry) ImportFile(path, content string) (*diagram.Diagram, error) {
	if imp, ok := r.ForFile(path); ok {
		return imp.Import(content)
	}
	return r.Import(content)
}

// ImportWithFormat imports content using a specific format
func (r *ImporterRegistry) ImportWithFormat(content, format string) (*diagram.Diagram, error) {
	format = strings.ToLower(format)

	for _, imp := range r.importers {
		if strings.ToLower(imp.GetFormatName()) == format {
			return imp.Import(content)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// GetAvailableFormats returns a list of available import formats
func (r *ImporterRegistry) GetAvailableFormats() []string {
	formats := make([]string, len(r.importers))
	for i, imp := range r.importers {
		formats[i] = imp.GetFormatName()
	}
	return formats
}

package export

import (
	"asciimaid/diagram"
	"asciimaid/render"
	"fmt"
)

// ASCIIExporter exports diagrams to ASCII art
type ASCIIExporter struct {
	renderer *render.RendererRegistry
}

// NewASCIIExporter creates a new ASCII exporter
func NewASCIIExporter(opts render.Options) *ASCIIExporter {
	return &ASCIIExporter{
		renderer: render.NewRegistry(opts),
	}
}

// Export converts the diagram to ASCII art
func (e *ASCIIExporter) Export(d *diagram.Diagram) (string, error) {
	if d == nil {
		return "", fmt.Errorf("diagram is nil")
	}

	output, err := e.renderer.Render(d)
	if err != nil {
		return "", fmt.Errorf("failed to render diagram: %w", err)
	}

	return output, nil
}

// GetFileExtension returns the recommended file extension
func (e *ASCIIExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *ASCIIExporter) GetFormatName() string {
	return "ASCII Art"
}

package render

import (
	"asciimaid/diagram"
	"fmt"
)

// RendererRegistry manages diagram renderers by type.
type RendererRegistry struct {
	renderers []diagram.DiagramRenderer
}

// NewRendererRegistry creates a new renderer registry.
func NewRendererRegistry() *RendererRegistry {
	return &RendererRegistry{
		renderers: make([]diagram.DiagramRenderer, 0),
	}
}

// Register adds a renderer to the registry. Earlier registrations win
// when more than one renderer accepts a type.
func (r *RendererRegistry) Register(renderer diagram.DiagramRenderer) {
	r.renderers = append(r.renderers, renderer)
}

// GetRenderer returns the appropriate renderer for the given diagram type.
func (r *RendererRegistry) GetRenderer(diagramType diagram.Type) (diagram.DiagramRenderer, error) {
	for _, renderer := range r.renderers {
		if renderer.CanRender(diagramType) {
			return renderer, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, diagramType)
}

// Render renders a diagram using the appropriate renderer.
func (r *RendererRegistry) Render(d *diagram.Diagram) (string, error) {
	if d == nil {
		return "", ErrNilDiagram
	}
	renderer, err := r.GetRenderer(d.Type)
	if err != nil {
		return "", err
	}
	return renderer.Render(d)
}

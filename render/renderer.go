// Package render rasterizes laid-out diagrams onto an ASCII canvas.
package render

import (
	"asciimaid/canvas"
	"asciimaid/diagram"
	"asciimaid/layout"
	"errors"
)

var (
	// ErrNilDiagram is returned when there is nothing to render.
	ErrNilDiagram = errors.New("diagram is nil")
	// ErrUnsupportedType is returned when no renderer handles a diagram type.
	ErrUnsupportedType = errors.New("no renderer available for diagram type")
)

// Options bundles the layout spacing and canvas sizing used by a render.
type Options struct {
	Graph    layout.GraphOptions
	Sequence layout.SequenceOptions
	Canvas   canvas.SizeOptions
}

// DefaultOptions returns the standard spacing and canvas margins.
func DefaultOptions() Options {
	return Options{
		Graph:    layout.DefaultGraphOptions(),
		Sequence: layout.DefaultSequenceOptions(),
		Canvas:   canvas.DefaultSizeOptions(),
	}
}

// NewRegistry returns a registry holding the graph and sequence renderers.
func NewRegistry(opts Options) *RendererRegistry {
	registry := NewRendererRegistry()
	registry.Register(NewGraphRenderer(opts))
	registry.Register(NewSequenceRenderer(opts))
	return registry
}

// Render lays out d and draws it with the renderer for its type.
func Render(d *diagram.Diagram, opts Options) (string, error) {
	return NewRegistry(opts).Render(d)
}

// RenderGraph lays out and draws a flowchart or state diagram.
func RenderGraph(d *diagram.Diagram, opts Options) (string, error) {
	if d == nil {
		return "", ErrNilDiagram
	}
	return NewGraphRenderer(opts).Render(d)
}

// RenderSequence lays out and draws a sequence diagram.
func RenderSequence(d *diagram.Diagram, opts Options) (string, error) {
	if d == nil {
		return "", ErrNilDiagram
	}
	return NewSequenceRenderer(opts).Render(d)
}

package diagram

// DiagramRenderer handles rendering of specific diagram types.
type DiagramRenderer interface {
	// CanRender returns true if this renderer can handle the given diagram type.
	CanRender(diagramType Type) bool

	// Render lays out the diagram and returns the string output.
	Render(diagram *Diagram) (string, error)
}

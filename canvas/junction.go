package canvas

// Merge decides what a cell holding existing becomes when incoming is
// written over it. The rules, in priority order:
//
//  1. a blank cell takes the incoming glyph
//  2. a line crossed by the other line glyph becomes a corner
//  3. a corner written over a line replaces it
//  4. an arrowhead written over a line or corner replaces it
//  5. anything else is dropped and the cell keeps its glyph
//
// The second result is false when the write was dropped.
func Merge(existing, incoming rune) (rune, bool) {
	switch {
	case existing == Blank:
		return incoming, true
	case isLine(existing) && isLine(incoming) && existing != incoming:
		return Corner, true
	case incoming == Corner && isLine(existing):
		return Corner, true
	case IsArrowhead(incoming) && (isLine(existing) || existing == Corner):
		return incoming, true
	default:
		return existing, false
	}
}

// IsArrowhead checks if a character is an arrowhead.
func IsArrowhead(r rune) bool {
	switch r {
	case ArrowDown, ArrowUp, ArrowLeft, ArrowRight:
		return true
	default:
		return false
	}
}

// isLine checks if a character is a straight line segment.
func isLine(r rune) bool {
	return r == Horizontal || r == Vertical
}

package mdast

// Span represents a byte range in the source content.
type Span struct {
	// Start is the byte index where the range begins (inclusive).
	Start int

	// End is the byte index where the range ends (exclusive).
	End int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns true if the given offset is within this span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Position represents a 1-based line and column in a document.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// SourcePosition represents a span in terms of line/column positions.
type SourcePosition struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Start returns the start position.
func (sp SourcePosition) Start() Position {
	return Position{Line: sp.StartLine, Column: sp.StartColumn}
}

// End returns the end position.
func (sp SourcePosition) End() Position {
	return Position{Line: sp.EndLine, Column: sp.EndColumn}
}

// IsValid returns true if both start and end positions are valid.
func (sp SourcePosition) IsValid() bool {
	return sp.StartLine > 0 && sp.StartColumn > 0 &&
		sp.EndLine > 0 && sp.EndColumn > 0
}

// IsSingleLine returns true if start and end are on the same line.
func (sp SourcePosition) IsSingleLine() bool {
	return sp.StartLine == sp.EndLine
}

// SourcePosition returns the line/column range for this node.
// Returns an invalid position if the node has no document or no span.
func (n *Node) SourcePosition() SourcePosition {
	if n.Doc == nil || n.Span == nil {
		return SourcePosition{}
	}

	startLine, startCol := n.Doc.LineAt(n.Span.Start)
	endLine, endCol := n.Doc.LineAt(n.Span.End)

	return SourcePosition{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}

// Text returns the source text for this node's span.
// Returns nil if the node has no document or no span.
func (n *Node) Text() []byte {
	if n.Doc == nil || n.Span == nil {
		return nil
	}

	if n.Span.Start < 0 || n.Span.End > len(n.Doc.Source) || n.Span.Start > n.Span.End {
		return nil
	}

	return n.Doc.Source[n.Span.Start:n.Span.End]
}

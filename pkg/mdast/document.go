// Package mdast provides the Markdown AST representation used by the
// splitter. It defines an immutable view of a Markdown document:
// - Document: raw source, line metadata, and the AST root
// - AST nodes: structural representation carrying byte spans
package mdast

// Document is an immutable view of a parsed Markdown document.
// It holds the raw source, line metadata, and the AST root.
type Document struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Source is the full document bytes.
	Source []byte

	// Lines contains metadata for each line in the document.
	Lines []LineInfo

	// Root is the AST root node (Document kind).
	Root *Node
}

// LineInfo holds metadata for a single line in a document.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of source).
	EndOffset int
}

// NewDocument creates a new Document from source bytes.
// It builds the line index but does not parse (that requires a parser).
func NewDocument(path string, source []byte) *Document {
	return &Document{
		Path:   path,
		Source: source,
		Lines:  BuildLines(source),
		Root:   nil,
	}
}

package split

import "github.com/yaklabco/mdsplit/pkg/mdast"

// Heading is one entry in a document outline.
type Heading struct {
	// Level is the heading level, 1-6.
	Level int

	// Title is the flattened heading text.
	Title string

	// Line is the 1-based source line of the heading, 0 when the
	// heading carries no position.
	Line int
}

// Outline returns every heading in the document at any depth, in
// document order. Unlike section boundaries, the outline includes
// headings nested inside blockquotes and lists, and headings without
// positions (with Line 0).
func Outline(doc *mdast.Document) []Heading {
	if doc == nil || doc.Root == nil {
		return nil
	}

	var outline []Heading
	for _, node := range mdast.FindByKind(doc.Root, mdast.NodeHeading) {
		h := Heading{Title: headingTitle(node)}
		if node.Block != nil {
			h.Level = node.Block.HeadingLevel
		}
		if node.Span != nil {
			h.Line, _ = doc.LineAt(node.Span.Start)
		}
		outline = append(outline, h)
	}

	return outline
}

package split

import "github.com/yaklabco/mdsplit/pkg/mdast"

// Section is a contiguous substring of the source document delimited by
// two consecutive split points. Text is a view into the parsed source,
// not a copy.
type Section struct {
	// Text is source[Start:End].
	Text []byte

	// Start and End are the byte offsets of the section in the source.
	Start int
	End   int

	// Level is the level (1-6) of the heading that opens this section,
	// or 0 for a section with no opening heading (leading content).
	Level int

	// Title is the flattened text of the opening heading, empty for a
	// section with no opening heading.
	Title string

	// Line is the 1-based source line on which the section starts.
	Line int
}

// Len returns the section length in bytes.
func (s Section) Len() int {
	return s.End - s.Start
}

// HasHeading returns true if the section is opened by a heading.
func (s Section) HasHeading() bool {
	return s.Level > 0
}

// headingTitle flattens a heading node's inline content into a plain
// string: text and code-span content, in document order.
func headingTitle(heading *mdast.Node) string {
	var title []byte

	//nolint:errcheck,revive // Walk only returns nil errors here
	mdast.Walk(heading, func(n *mdast.Node) error {
		switch n.Kind {
		case mdast.NodeText, mdast.NodeCodeSpan:
			if n.Inline != nil {
				title = append(title, n.Inline.Text...)
			}
		case mdast.NodeSoftBreak, mdast.NodeHardBreak:
			title = append(title, ' ')
		default:
		}
		return nil
	})

	return string(title)
}

package goldmark

import (
	"github.com/yaklabco/mdsplit/pkg/mdast"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// mapper converts a goldmark AST into an mdast.Node tree, assigning
// byte spans from goldmark's line segments as it goes.
type mapper struct {
	content []byte
}

// newMapper creates a new mapper for the given content.
func newMapper(content []byte) *mapper {
	return &mapper{content: content}
}

// mapDocument converts a goldmark document node to an mdast.Node tree.
func (m *mapper) mapDocument(gmDoc ast.Node) *mdast.Node {
	doc := mdast.NewRoot()
	doc.Span = &mdast.Span{Start: 0, End: len(m.content)}
	m.mapChildren(gmDoc, doc)
	return doc
}

// mapChildren recursively maps all children of a goldmark node to mdast nodes.
func (m *mapper) mapChildren(gmParent ast.Node, parent *mdast.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if mdNode := m.mapNode(child); mdNode != nil {
			mdast.AppendChild(parent, mdNode)
		}
	}
}

// mapNode converts a single goldmark node to an mdast.Node.
func (m *mapper) mapNode(gmNode ast.Node) *mdast.Node {
	var node *mdast.Node

	switch gmn := gmNode.(type) {
	// Block-level nodes.
	case *ast.Document:
		node = mdast.NewNode(mdast.NodeDocument)
		m.mapChildren(gmNode, node)

	case *ast.Heading:
		node = m.mapHeading(gmn)

	case *ast.Paragraph:
		node = mdast.NewNode(mdast.NodeParagraph)
		node.Span = m.blockSpan(gmNode)
		m.mapChildren(gmNode, node)

	case *ast.List:
		node = mdast.NewNode(mdast.NodeList)
		m.mapChildren(gmNode, node)

	case *ast.ListItem:
		node = mdast.NewNode(mdast.NodeListItem)
		m.mapChildren(gmNode, node)

	case *ast.Blockquote:
		node = mdast.NewNode(mdast.NodeBlockquote)
		m.mapChildren(gmNode, node)

	case *ast.FencedCodeBlock:
		node = m.mapFencedCodeBlock(gmn)

	case *ast.CodeBlock:
		node = m.mapIndentedCodeBlock(gmn)

	case *ast.ThematicBreak:
		node = mdast.NewNode(mdast.NodeThematicBreak)

	case *ast.HTMLBlock:
		node = mdast.NewNode(mdast.NodeHTMLBlock)
		node.Span = m.blockSpan(gmNode)

	// Inline-level nodes.
	case *ast.Text:
		node = m.mapText(gmn)

	case *ast.Emphasis:
		node = m.mapEmphasis(gmn)

	case *ast.CodeSpan:
		node = m.mapCodeSpan(gmn)

	case *ast.Link:
		node = mdast.NewNode(mdast.NodeLink)
		node.Span = m.inlineSpan(gmNode)
		m.mapChildren(gmNode, node)

	case *ast.Image:
		node = mdast.NewNode(mdast.NodeImage)
		node.Span = m.inlineSpan(gmNode)
		m.mapChildren(gmNode, node)

	case *ast.AutoLink:
		node = m.mapAutoLink(gmn)

	case *ast.RawHTML:
		node = mdast.NewNode(mdast.NodeHTMLInline)
		node.Span = m.rawHTMLSpan(gmn)

	case *ast.String:
		node = m.mapString(gmn)

	// GFM extension nodes.
	case *east.Strikethrough:
		node = mdast.NewNode(mdast.NodeEmphasis)
		node.Ext = map[string]any{"strikethrough": true}
		node.Span = m.inlineSpan(gmNode)
		m.mapChildren(gmNode, node)

	case *east.TaskCheckBox:
		node = mdast.NewNode(mdast.NodeText)
		node.Ext = map[string]any{
			"taskCheckbox": true,
			"checked":      gmn.IsChecked,
		}

	case *east.Table:
		node = mdast.NewNode(mdast.NodeRaw)
		node.Ext = map[string]any{"table": true}
		m.mapChildren(gmNode, node)

	case *east.TableHeader, *east.TableRow, *east.TableCell:
		node = mdast.NewNode(mdast.NodeRaw)
		m.mapChildren(gmNode, node)

	default:
		// Fallback for unknown node types.
		node = mdast.NewNode(mdast.NodeRaw)
		m.mapChildren(gmNode, node)
	}

	return node
}

// mapHeading converts a goldmark Heading to an mdast node.
//
// The heading span starts at the beginning of the heading's first source
// line, not at the text after the ATX marker: split points cut at line
// starts so that the "# " prefix stays inside the heading's section.
// Headings with no line segments get a nil span.
func (m *mapper) mapHeading(h *ast.Heading) *mdast.Node {
	node := mdast.NewNode(mdast.NodeHeading)
	node.Block = mdast.NewBlockAttrs().WithHeadingLevel(h.Level)

	lines := h.Lines()
	if lines.Len() > 0 {
		first := lines.At(0)
		last := lines.At(lines.Len() - 1)
		node.Span = &mdast.Span{
			Start: m.lineStartBefore(first.Start),
			End:   last.Stop,
		}
	}

	m.mapChildren(h, node)
	return node
}

// lineStartBefore walks back from offset to the start of its source line.
func (m *mapper) lineStartBefore(offset int) int {
	start := offset
	if start > len(m.content) {
		start = len(m.content)
	}
	for start > 0 && m.content[start-1] != '\n' {
		start--
	}
	return start
}

// mapFencedCodeBlock converts a goldmark FencedCodeBlock to an mdast node.
func (m *mapper) mapFencedCodeBlock(codeBlock *ast.FencedCodeBlock) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeBlock)

	info := ""
	if codeBlock.Info != nil {
		info = string(codeBlock.Info.Value(m.content))
	}

	node.Block = mdast.NewBlockAttrs().WithCodeBlock(&mdast.CodeBlockAttrs{
		Info:     info,
		Indented: false,
	})
	node.Span = m.blockSpan(codeBlock)
	return node
}

// mapIndentedCodeBlock converts a goldmark indented CodeBlock to an mdast node.
func (m *mapper) mapIndentedCodeBlock(codeBlock *ast.CodeBlock) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeBlock)
	node.Block = mdast.NewBlockAttrs().WithCodeBlock(&mdast.CodeBlockAttrs{
		Indented: true,
	})
	node.Span = m.blockSpan(codeBlock)
	return node
}

// mapText converts a goldmark Text node to an mdast node.
func (m *mapper) mapText(textNode *ast.Text) *mdast.Node {
	// Check for soft/hard breaks.
	if textNode.SoftLineBreak() {
		return mdast.NewNode(mdast.NodeSoftBreak)
	}
	if textNode.HardLineBreak() {
		return mdast.NewNode(mdast.NodeHardBreak)
	}

	node := mdast.NewNode(mdast.NodeText)
	node.Inline = mdast.NewInlineAttrs().WithText(textNode.Value(m.content))
	seg := textNode.Segment
	node.Span = &mdast.Span{Start: seg.Start, End: seg.Stop}
	return node
}

// mapEmphasis converts a goldmark Emphasis node to an mdast node.
func (m *mapper) mapEmphasis(emphasis *ast.Emphasis) *mdast.Node {
	kind := mdast.NodeEmphasis
	if emphasis.Level == 2 {
		kind = mdast.NodeStrong
	}

	node := mdast.NewNode(kind)
	node.Span = m.inlineSpan(emphasis)
	m.mapChildren(emphasis, node)
	return node
}

// mapCodeSpan converts a goldmark CodeSpan to an mdast node.
func (m *mapper) mapCodeSpan(codeSpan *ast.CodeSpan) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeSpan)

	// Extract the code content from text children.
	var content []byte
	for child := codeSpan.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			content = append(content, textNode.Value(m.content)...)
		}
	}

	node.Inline = mdast.NewInlineAttrs().WithText(content)
	node.Span = m.inlineSpan(codeSpan)
	return node
}

// mapAutoLink converts a goldmark AutoLink to an mdast node.
func (m *mapper) mapAutoLink(al *ast.AutoLink) *mdast.Node {
	node := mdast.NewNode(mdast.NodeLink)

	// Create a text child with the link label.
	textNode := mdast.NewNode(mdast.NodeText)
	textNode.Inline = mdast.NewInlineAttrs().WithText(al.Label(m.content))
	mdast.AppendChild(node, textNode)

	return node
}

// mapString converts a goldmark String node to an mdast text node.
func (m *mapper) mapString(s *ast.String) *mdast.Node {
	node := mdast.NewNode(mdast.NodeText)
	node.Inline = mdast.NewInlineAttrs().WithText(s.Value)
	return node
}

// blockSpan extracts the byte span for a block node from its line
// segments. Returns nil when the node has no line segments (container
// blocks and empty blocks).
func (m *mapper) blockSpan(gmNode ast.Node) *mdast.Span {
	if gmNode.Type() == ast.TypeInline {
		return nil
	}

	lines := gmNode.Lines()
	if lines.Len() == 0 {
		return nil
	}

	first := lines.At(0)
	last := lines.At(lines.Len() - 1)
	return &mdast.Span{Start: first.Start, End: last.Stop}
}

// inlineSpan extracts the byte span for an inline node from its text
// children's segments. Returns nil when no child carries a segment.
func (m *mapper) inlineSpan(gmNode ast.Node) *mdast.Span {
	start := -1
	end := -1

	for child := gmNode.FirstChild(); child != nil; child = child.NextSibling() {
		t, ok := child.(*ast.Text)
		if !ok {
			continue
		}
		seg := t.Segment
		if start == -1 || seg.Start < start {
			start = seg.Start
		}
		if seg.Stop > end {
			end = seg.Stop
		}
	}

	if start == -1 {
		return nil
	}
	return &mdast.Span{Start: start, End: end}
}

// rawHTMLSpan extracts the byte span for a RawHTML node from its segments.
func (m *mapper) rawHTMLSpan(rawHTML *ast.RawHTML) *mdast.Span {
	segs := rawHTML.Segments
	if segs.Len() == 0 {
		return nil
	}

	start := -1
	end := -1
	for i := range segs.Len() {
		seg := segs.At(i)
		if start == -1 || seg.Start < start {
			start = seg.Start
		}
		if seg.Stop > end {
			end = seg.Stop
		}
	}

	return &mdast.Span{Start: start, End: end}
}

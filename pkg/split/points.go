package split

import "github.com/yaklabco/mdsplit/pkg/mdast"

// boundary is a collected heading boundary: where the heading's source
// line starts, plus the node for section metadata.
type boundary struct {
	start int
	node  *mdast.Node
}

// collectBoundaries gathers one boundary per top-level heading child of
// root, in document order. Only direct children of the document root are
// considered: headings nested inside blockquotes, lists, or HTML blocks
// do not open sections. Headings without a span are skipped. A maxLevel
// greater than zero drops headings deeper than that level.
//
// The result is non-decreasing by construction because children are
// visited in document order; nothing is re-sorted.
func collectBoundaries(root *mdast.Node, maxLevel int) []boundary {
	if root == nil {
		return nil
	}

	var boundaries []boundary
	for child := root.FirstChild; child != nil; child = child.Next {
		if child.Kind != mdast.NodeHeading {
			continue
		}
		if child.Span == nil {
			// No position captured for this heading; it cannot
			// contribute a split point.
			continue
		}
		if maxLevel > 0 && child.Block != nil && child.Block.HeadingLevel > maxLevel {
			continue
		}
		boundaries = append(boundaries, boundary{start: child.Span.Start, node: child})
	}

	return boundaries
}

// normalize guarantees a non-empty point sequence begins at offset 0,
// so leading content before the first heading becomes its own section.
// An empty sequence stays empty: the slicer handles the no-heading case.
func normalize(points []int) []int {
	if len(points) == 0 || points[0] == 0 {
		return points
	}
	return append([]int{0}, points...)
}

// Points returns the ordered split points for the document rooted at
// root: the start offset of every top-level heading that carries a
// position, with 0 inserted at the front when the document has content
// before its first heading. A document with no positioned headings
// yields an empty sequence.
func Points(root *mdast.Node) []int {
	boundaries := collectBoundaries(root, 0)
	points := make([]int, 0, len(boundaries))
	for _, b := range boundaries {
		points = append(points, b.start)
	}
	return normalize(points)
}

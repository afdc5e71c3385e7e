package split

import (
	"bytes"

	"github.com/yaklabco/mdsplit/pkg/mdast"
)

var frontMatterFence = []byte("---")

// frontMatterEnd returns the byte offset just past a leading YAML front
// matter block, or 0 when the document has none. Detection is
// line-based: the first line must be exactly "---", and the block ends
// at the next line that is exactly "---". An unterminated fence is not
// front matter.
//
// CommonMark parses the closing "---" after a "key: value" line as a
// setext-heading underline, which would cut a split point inside the
// front matter; the guard exists so that boundary can be discarded.
func frontMatterEnd(doc *mdast.Document) int {
	if doc == nil || len(doc.Lines) < 2 {
		return 0
	}

	if !isFenceLine(doc, 0) {
		return 0
	}

	for i := 1; i < len(doc.Lines); i++ {
		if isFenceLine(doc, i) {
			return doc.Lines[i].EndOffset
		}
	}

	return 0
}

// isFenceLine reports whether the 0-based line is exactly "---",
// ignoring a trailing CR.
func isFenceLine(doc *mdast.Document, line int) bool {
	info := doc.Lines[line]
	content := doc.Source[info.StartOffset:info.NewlineStart]
	return bytes.Equal(content, frontMatterFence)
}

package split

import (
	"context"

	"github.com/yaklabco/mdsplit/pkg/mdast"
	goldmarkparser "github.com/yaklabco/mdsplit/pkg/parser/goldmark"
)

// Parser converts raw Markdown bytes into a position-annotated document.
//
// The split package defines this interface in the consumer package;
// parser/goldmark provides the production implementation. Implementations
// must be deterministic for a given (path, content) pair, side-effect
// free, and must report byte offsets consistent with the original
// content's encoding (not character or line counts) for every heading
// node whenever possible.
type Parser interface {
	Parse(ctx context.Context, path string, content []byte) (*mdast.Document, error)
}

// Splitter splits Markdown documents into heading-aligned sections.
// A Splitter is immutable after construction and safe for concurrent
// use when its Parser is.
type Splitter struct {
	parser Parser
	opts   *Options
}

// New creates a Splitter backed by the goldmark parser, configured for
// the flavor in opts. A nil opts uses DefaultOptions.
func New(opts *Options) *Splitter {
	o := opts.normalized()
	return NewWithParser(goldmarkparser.New(o.Flavor), o)
}

// NewWithParser creates a Splitter using the given structural parser.
// A nil opts uses DefaultOptions.
func NewWithParser(parser Parser, opts *Options) *Splitter {
	return &Splitter{
		parser: parser,
		opts:   opts.normalized(),
	}
}

// Options returns a copy of the splitter's options.
func (s *Splitter) Options() Options {
	return *s.opts
}

// Split parses source and partitions it into sections. The result is
// guaranteed non-empty: a document with no headings (or no heading
// positions) yields exactly one section spanning the whole document.
// The only error is *ParseError, surfaced when the structural parser
// rejects the input or the context is cancelled.
func (s *Splitter) Split(ctx context.Context, source []byte) ([]Section, error) {
	return s.SplitFile(ctx, "", source)
}

// SplitFile is Split with a logical path attached for diagnostics.
// The path is never used for I/O.
func (s *Splitter) SplitFile(ctx context.Context, path string, content []byte) ([]Section, error) {
	doc, err := s.parser.Parse(ctx, path, content)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	boundaries := collectBoundaries(doc.Root, s.opts.MaxLevel)

	if s.opts.KeepFrontMatter {
		boundaries = dropFrontMatterBoundaries(doc, boundaries)
	}

	points := make([]int, 0, len(boundaries))
	for _, b := range boundaries {
		points = append(points, b.start)
	}
	points = normalize(points)

	texts := Slice(doc.Source, points)

	return decorate(doc, texts, points, boundaries), nil
}

// dropFrontMatterBoundaries removes boundaries that fall inside a
// leading YAML front matter block.
func dropFrontMatterBoundaries(doc *mdast.Document, boundaries []boundary) []boundary {
	end := frontMatterEnd(doc)
	if end == 0 {
		return boundaries
	}

	kept := boundaries[:0]
	for _, b := range boundaries {
		if b.start < end {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

// decorate attaches heading metadata to sliced section texts. A section
// whose start offset matches a collected boundary carries that heading's
// level and flattened title; leading-content sections carry level 0.
func decorate(doc *mdast.Document, texts [][]byte, points []int, boundaries []boundary) []Section {
	byStart := make(map[int]*mdast.Node, len(boundaries))
	for _, b := range boundaries {
		// First heading at an offset wins; ties do not occur in
		// well-formed trees.
		if _, ok := byStart[b.start]; !ok {
			byStart[b.start] = b.node
		}
	}

	sections := make([]Section, 0, len(texts))
	offset := 0
	for i, text := range texts {
		start := offset
		if len(points) > 0 {
			start = points[i]
		}
		end := start + len(text)
		offset = end

		section := Section{
			Text:  text,
			Start: start,
			End:   end,
		}

		if node, ok := byStart[start]; ok {
			if node.Block != nil {
				section.Level = node.Block.HeadingLevel
			}
			section.Title = headingTitle(node)
		}

		if line, _ := doc.LineAt(start); line > 0 {
			section.Line = line
		} else {
			section.Line = 1
		}

		sections = append(sections, section)
	}

	return sections
}

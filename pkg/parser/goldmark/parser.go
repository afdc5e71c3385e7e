// Package goldmark provides a split.Parser implementation using the
// goldmark library.
package goldmark

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdsplit/pkg/mdast"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Parser implements split.Parser using goldmark.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a new goldmark-based parser for the given flavor.
// Supported flavors are "commonmark" and "gfm".
// Invalid flavors default to "commonmark".
func New(flavor string) *Parser {
	f := flavorOrDefault(flavor)
	return &Parser{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Parse converts raw Markdown bytes into a fully-populated Document.
//
// The method:
//  1. Checks for context cancellation.
//  2. Builds a Document shell with path, a source snapshot, and lines.
//  3. Parses content with goldmark.
//  4. Builds the mdast.Node tree from the goldmark AST, assigning
//     byte spans as it maps.
//  5. Sets Doc back-references throughout the tree.
//
// Returns nil and an error if parsing fails or context is cancelled.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*mdast.Document, error) {
	// Check for early cancellation.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	// Create the document shell. The source is snapshotted so callers
	// mutating their buffer cannot invalidate node spans.
	doc := mdast.NewDocument(path, copyContent(content))

	// Parse with goldmark.
	reader := text.NewReader(doc.Source)
	gmDoc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	// Check for cancellation after parsing.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	// Build the mdast.Node tree with spans from the goldmark AST.
	mapper := newMapper(doc.Source)
	doc.Root = mapper.mapDocument(gmDoc)

	// Set Doc back-references.
	mdast.SetDocument(doc.Root, doc)

	return doc, nil
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	// Configure extensions based on flavor.
	switch flavor {
	case FlavorGFM:
		opts = append(opts,
			goldmark.WithExtensions(
				extension.GFM,
			),
		)
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}

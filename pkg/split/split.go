// Package split segments a Markdown document into contiguous, byte-exact
// sections, one per heading boundary.
//
// The core operation is a pure function of the input bytes: parse the
// document, collect the byte offset of every top-level heading, and
// partition the source between consecutive offsets. Sections are views
// into the parsed source, never re-serialized, so concatenating them in
// order reproduces the document byte for byte.
package split

import (
	"context"
)

// Split parses source and returns its heading-aligned sections.
// A nil opts uses DefaultOptions. This is a convenience wrapper around
// New and Splitter.Split for one-shot use.
func Split(ctx context.Context, source []byte, opts *Options) ([]Section, error) {
	return New(opts).Split(ctx, source)
}

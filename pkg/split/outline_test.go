package split_test

import (
	"context"
	"testing"

	"github.com/yaklabco/mdsplit/pkg/parser/goldmark"
	"github.com/yaklabco/mdsplit/pkg/split"
)

func TestOutline(t *testing.T) {
	t.Parallel()

	content := []byte("# Top\n\n## Nested\n\n> ### Quoted\n\nbody\n")
	doc, err := goldmark.New(goldmark.FlavorGFM).Parse(context.Background(), "test.md", content)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	outline := split.Outline(doc)

	want := []split.Heading{
		{Level: 1, Title: "Top", Line: 1},
		{Level: 2, Title: "Nested", Line: 3},
		{Level: 3, Title: "Quoted", Line: 5},
	}

	if len(outline) != len(want) {
		t.Fatalf("got %d headings, want %d", len(outline), len(want))
	}
	for i, w := range want {
		if outline[i] != w {
			t.Errorf("heading %d = %+v, want %+v", i, outline[i], w)
		}
	}
}

func TestOutline_Empty(t *testing.T) {
	t.Parallel()

	doc, err := goldmark.New(goldmark.FlavorGFM).Parse(context.Background(), "test.md", []byte("no headings here\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if outline := split.Outline(doc); len(outline) != 0 {
		t.Errorf("Outline() = %v, want empty", outline)
	}
}

func TestOutline_NilDocument(t *testing.T) {
	t.Parallel()

	if outline := split.Outline(nil); outline != nil {
		t.Errorf("Outline(nil) = %v, want nil", outline)
	}
}

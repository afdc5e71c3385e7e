package split_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/yaklabco/mdsplit/pkg/mdast"
	"github.com/yaklabco/mdsplit/pkg/split"
)

// stubParser returns a canned document or error, for exercising the
// splitter without goldmark.
type stubParser struct {
	doc *mdast.Document
	err error
}

func (p *stubParser) Parse(_ context.Context, path string, content []byte) (*mdast.Document, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.doc != nil {
		return p.doc, nil
	}
	doc := mdast.NewDocument(path, content)
	doc.Root = mdast.NewRoot()
	return doc, nil
}

func TestSplit_TwoHeadings(t *testing.T) {
	t.Parallel()

	sections, err := split.Split(context.Background(), []byte("# A\ntext1\n## B\ntext2\n"), nil)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	want := []string{"# A\ntext1\n", "## B\ntext2\n"}
	if len(sections) != len(want) {
		t.Fatalf("got %d sections, want %d", len(sections), len(want))
	}
	for i, w := range want {
		if string(sections[i].Text) != w {
			t.Errorf("section %d = %q, want %q", i, sections[i].Text, w)
		}
	}

	if sections[0].Level != 1 || sections[0].Title != "A" {
		t.Errorf("section 0 metadata = level %d title %q, want 1 %q", sections[0].Level, sections[0].Title, "A")
	}
	if sections[1].Level != 2 || sections[1].Title != "B" {
		t.Errorf("section 1 metadata = level %d title %q, want 2 %q", sections[1].Level, sections[1].Title, "B")
	}
	if sections[0].Line != 1 || sections[1].Line != 3 {
		t.Errorf("section lines = %d, %d, want 1, 3", sections[0].Line, sections[1].Line)
	}
}

func TestSplit_LeadingContent(t *testing.T) {
	t.Parallel()

	sections, err := split.Split(context.Background(), []byte("intro\n# A\nbody\n"), nil)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if string(sections[0].Text) != "intro\n" {
		t.Errorf("section 0 = %q, want %q", sections[0].Text, "intro\n")
	}
	if string(sections[1].Text) != "# A\nbody\n" {
		t.Errorf("section 1 = %q, want %q", sections[1].Text, "# A\nbody\n")
	}

	// The leading-content section has no opening heading.
	if sections[0].HasHeading() {
		t.Error("section 0 should not have a heading")
	}
	if sections[0].Level != 0 || sections[0].Title != "" {
		t.Errorf("section 0 metadata = level %d title %q, want 0 \"\"", sections[0].Level, sections[0].Title)
	}
}

func TestSplit_NoHeadings(t *testing.T) {
	t.Parallel()

	input := []byte("just plain text\n")
	sections, err := split.Split(context.Background(), input, nil)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if !bytes.Equal(sections[0].Text, input) {
		t.Errorf("section 0 = %q, want %q", sections[0].Text, input)
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	t.Parallel()

	sections, err := split.Split(context.Background(), []byte{}, nil)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	// Non-empty result even for empty input.
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if len(sections[0].Text) != 0 {
		t.Errorf("section 0 = %q, want empty", sections[0].Text)
	}
}

func TestSplit_Lossless(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"# A\ntext1\n## B\ntext2\n",
		"intro\n# A\nbody\n",
		"just plain text\n",
		"",
		"# A",
		"# A\n\n\n## B\n\n\n",
		"para\n\n> # quoted heading\n\n## real\nbody\n",
		"```\n# not a heading\n```\n\n# real\n",
		"<!--\n# commented out\n-->\n\n# real\n",
		"Title\n=====\nbody\n",
		"one\r\n# two\r\nthree\r\n",
	}

	for _, input := range inputs {
		sections, err := split.Split(context.Background(), []byte(input), nil)
		if err != nil {
			t.Errorf("Split(%q) error = %v", input, err)
			continue
		}

		var rejoined []byte
		for _, s := range sections {
			rejoined = append(rejoined, s.Text...)
		}
		if string(rejoined) != input {
			t.Errorf("Split(%q): concatenation = %q", input, rejoined)
		}
		if len(sections) == 0 {
			t.Errorf("Split(%q): empty result", input)
		}
	}
}

func TestSplit_HeadingCountCorrespondence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"two headings no front matter", "# A\nx\n## B\ny\n", 2},
		{"one heading with leading content", "intro\n# A\n", 2},
		{"no headings", "plain\n", 1},
		{"empty", "", 1},
		{"three headings", "# A\n## B\n### C\n", 3},
		{"nested heading does not count", "# A\n\n> ## B\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sections, err := split.Split(context.Background(), []byte(tt.input), nil)
			if err != nil {
				t.Fatalf("Split() error = %v", err)
			}
			if len(sections) != tt.want {
				t.Errorf("got %d sections, want %d", len(sections), tt.want)
			}
		})
	}
}

func TestSplit_CodeBlockHeadingDoesNotSplit(t *testing.T) {
	t.Parallel()

	input := []byte("```\n# not a heading\n```\n")
	sections, err := split.Split(context.Background(), input, nil)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
}

func TestSplit_MaxLevel(t *testing.T) {
	t.Parallel()

	input := []byte("# A\none\n## B\ntwo\n### C\nthree\n")

	opts := &split.Options{MaxLevel: 2}
	sections, err := split.Split(context.Background(), input, opts)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if string(sections[1].Text) != "## B\ntwo\n### C\nthree\n" {
		t.Errorf("section 1 = %q", sections[1].Text)
	}
}

func TestSplit_FrontMatter(t *testing.T) {
	t.Parallel()

	input := []byte("---\ntitle: x\n---\n\n# A\nbody\n")

	t.Run("guard on", func(t *testing.T) {
		t.Parallel()

		opts := &split.Options{KeepFrontMatter: true}
		sections, err := split.Split(context.Background(), input, opts)
		if err != nil {
			t.Fatalf("Split() error = %v", err)
		}

		if len(sections) != 2 {
			t.Fatalf("got %d sections, want 2", len(sections))
		}
		if string(sections[0].Text) != "---\ntitle: x\n---\n\n" {
			t.Errorf("section 0 = %q", sections[0].Text)
		}
		if string(sections[1].Text) != "# A\nbody\n" {
			t.Errorf("section 1 = %q", sections[1].Text)
		}
	})

	t.Run("guard off", func(t *testing.T) {
		t.Parallel()

		// CommonMark reads "title: x\n---" as a setext heading, so the
		// pure boundary semantics cut inside the front matter.
		sections, err := split.Split(context.Background(), input, nil)
		if err != nil {
			t.Fatalf("Split() error = %v", err)
		}

		if len(sections) != 3 {
			t.Fatalf("got %d sections, want 3", len(sections))
		}
	})
}

func TestSplit_ParserWithoutPositions(t *testing.T) {
	t.Parallel()

	// A collaborator that emits headings without spans degrades to one
	// whole-document section, silently.
	source := []byte("# A\nbody\n## B\nmore\n")
	doc := mdast.NewDocument("x.md", source)
	root := mdast.NewRoot()
	h := mdast.NewNode(mdast.NodeHeading)
	h.Block = mdast.NewBlockAttrs().WithHeadingLevel(1)
	mdast.AppendChild(root, h)
	doc.Root = root

	s := split.NewWithParser(&stubParser{doc: doc}, nil)
	sections, err := s.Split(context.Background(), source)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if !bytes.Equal(sections[0].Text, source) {
		t.Errorf("section 0 = %q, want whole document", sections[0].Text)
	}
}

func TestSplit_ParseFailure(t *testing.T) {
	t.Parallel()

	parseErr := errors.New("bad input")
	s := split.NewWithParser(&stubParser{err: parseErr}, nil)

	_, err := s.SplitFile(context.Background(), "doc.md", []byte("# A\n"))
	if err == nil {
		t.Fatal("expected error")
	}

	var pe *split.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, want *split.ParseError", err)
	}
	if pe.Path != "doc.md" {
		t.Errorf("Path = %q, want %q", pe.Path, "doc.md")
	}
	if !errors.Is(err, parseErr) {
		t.Error("ParseError should wrap the parser diagnostic")
	}
}

func TestSplit_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := split.Split(ctx, []byte("# A\n"), nil)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}

	var pe *split.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("error type = %T, want *split.ParseError", err)
	}
}

func TestSplit_SectionOffsets(t *testing.T) {
	t.Parallel()

	input := []byte("intro\n# A\nbody\n")
	sections, err := split.Split(context.Background(), input, nil)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if sections[0].Start != 0 || sections[0].End != 6 {
		t.Errorf("section 0 range = [%d, %d), want [0, 6)", sections[0].Start, sections[0].End)
	}
	if sections[1].Start != 6 || sections[1].End != len(input) {
		t.Errorf("section 1 range = [%d, %d), want [6, %d)", sections[1].Start, sections[1].End, len(input))
	}
}

func TestSplitter_Options(t *testing.T) {
	t.Parallel()

	s := split.New(nil)
	opts := s.Options()

	if opts.Flavor != split.FlavorGFM {
		t.Errorf("default flavor = %q, want %q", opts.Flavor, split.FlavorGFM)
	}
	if opts.KeepFrontMatter {
		t.Error("front matter guard should default to off")
	}
	if opts.MaxLevel != 0 {
		t.Errorf("default MaxLevel = %d, want 0", opts.MaxLevel)
	}
}

func TestSplit_TitleWithInlineMarkup(t *testing.T) {
	t.Parallel()

	sections, err := split.Split(context.Background(), []byte("# Using `mdsplit` *well*\nbody\n"), nil)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Title != "Using mdsplit well" {
		t.Errorf("Title = %q, want %q", sections[0].Title, "Using mdsplit well")
	}
}

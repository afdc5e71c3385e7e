package split

import (
	"testing"

	"github.com/yaklabco/mdsplit/pkg/mdast"
)

func TestFrontMatterEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   int
	}{
		{"no front matter", "# A\nbody\n", 0},
		{"basic", "---\ntitle: x\n---\nbody\n", 17},
		{"empty block", "---\n---\nbody\n", 8},
		{"unterminated", "---\ntitle: x\n", 0},
		{"fence not on first line", "\n---\ntitle: x\n---\n", 0},
		{"fence with trailing chars", "----\ntitle: x\n---\n", 0},
		{"empty document", "", 0},
		{"crlf fences", "---\r\ntitle: x\r\n---\r\nbody\r\n", 20},
		{"terminator at eof without newline", "---\ntitle: x\n---", 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := mdast.NewDocument("test.md", []byte(tt.source))
			if got := frontMatterEnd(doc); got != tt.want {
				t.Errorf("frontMatterEnd() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFrontMatterEnd_NilDocument(t *testing.T) {
	t.Parallel()

	if got := frontMatterEnd(nil); got != 0 {
		t.Errorf("frontMatterEnd(nil) = %d, want 0", got)
	}
}

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountFencedLanguages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want map[string]int
	}{
		{
			name: "no fences",
			text: "# Heading\n\njust prose\n",
			want: map[string]int{},
		},
		{
			name: "labeled backtick fence",
			text: "```go\npackage main\n```\n",
			want: map[string]int{"go": 1},
		},
		{
			name: "labeled tilde fence",
			text: "~~~yaml\nkey: value\n~~~\n",
			want: map[string]int{"yaml": 1},
		},
		{
			name: "info string with attributes keeps first word",
			text: "```rust ignore\nfn main() {}\n```\n",
			want: map[string]int{"rust": 1},
		},
		{
			name: "uppercase tag normalized",
			text: "```Go\npackage main\n```\n",
			want: map[string]int{"go": 1},
		},
		{
			name: "unlabeled block detected by content",
			text: "```\npackage main\n\nfunc main() {}\n```\n",
			want: map[string]int{"go": 1},
		},
		{
			name: "unterminated fence still counted",
			text: "```go\nfunc open() {}\n",
			want: map[string]int{"go": 1},
		},
		{
			name: "longer fence not closed by shorter",
			text: "````go\n```\nstill inside\n````\n",
			want: map[string]int{"go": 1},
		},
		{
			name: "tilde does not close backtick fence",
			text: "```go\n~~~\ncode\n```\n",
			want: map[string]int{"go": 1},
		},
		{
			name: "indented fence up to three spaces",
			text: "   ```json\n   {\"a\": 1}\n   ```\n",
			want: map[string]int{"json": 1},
		},
		{
			name: "multiple blocks accumulate",
			text: "```go\npackage a\n```\n\ntext\n\n```go\npackage b\n```\n",
			want: map[string]int{"go": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			counts := make(map[string]int)
			countFencedLanguages([]byte(tt.text), counts)
			assert.Equal(t, tt.want, counts)
		})
	}
}

func TestParseFenceOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		ok       bool
		wantLang string
	}{
		{"plain text", "hello", false, ""},
		{"two backticks", "``go", false, ""},
		{"bare fence", "```", true, ""},
		{"fence with lang", "```python", true, "python"},
		{"backtick in info rejected", "```go `x`", false, ""},
		{"tilde fence with backtick info allowed", "~~~go `x`", true, "go"},
		{"crlf stripped", "```sh\r", true, "sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, lang, ok := parseFenceOpen([]byte(tt.line))
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.wantLang, lang)
			}
		})
	}
}

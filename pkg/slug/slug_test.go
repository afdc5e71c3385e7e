package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Hello", "hello"},
		{"spaces", "Hello World", "hello-world"},
		{"punctuation dropped", "What's New?", "whats-new"},
		{"underscores kept", "snake_case", "snake_case"},
		{"hyphens kept", "pre-built", "pre-built"},
		{"multiple spaces", "a  b", "a-b"},
		{"leading spaces", "  intro", "intro"},
		{"trailing punctuation", "Done!", "done"},
		{"numbers", "Top 10 Tips", "top-10-tips"},
		{"unicode letters", "Café Menu", "café-menu"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
		{"consecutive hyphens collapse", "a -- b", "a-b"},
		{"code ticks dropped", "Using `mdsplit`", "using-mdsplit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Make(tt.input)
			if got != tt.expected {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDeduper(t *testing.T) {
	d := NewDeduper()

	tests := []struct {
		input    string
		expected string
	}{
		{"Intro", "intro"},
		{"Intro", "intro-1"},
		{"Intro", "intro-2"},
		{"Other", "other"},
		{"INTRO", "intro-3"},
	}

	for _, tt := range tests {
		if got := d.Take(tt.input); got != tt.expected {
			t.Errorf("Take(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestDeduper_Independent(t *testing.T) {
	d1 := NewDeduper()
	d2 := NewDeduper()

	if got := d1.Take("a"); got != "a" {
		t.Errorf("d1.Take = %q, want %q", got, "a")
	}
	if got := d2.Take("a"); got != "a" {
		t.Errorf("d2.Take = %q, want %q", got, "a")
	}
}

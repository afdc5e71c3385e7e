package split

import (
	"bytes"
	"testing"
)

func TestSlice_Basic(t *testing.T) {
	t.Parallel()

	source := []byte("# A\ntext1\n## B\ntext2\n")
	sections := Slice(source, []int{0, 10})

	want := []string{"# A\ntext1\n", "## B\ntext2\n"}
	assertSections(t, sections, want)
}

func TestSlice_LeadingContent(t *testing.T) {
	t.Parallel()

	source := []byte("intro\n# A\nbody\n")
	sections := Slice(source, []int{0, 6})

	assertSections(t, sections, []string{"intro\n", "# A\nbody\n"})
}

func TestSlice_NoPoints(t *testing.T) {
	t.Parallel()

	source := []byte("just plain text\n")
	sections := Slice(source, nil)

	assertSections(t, sections, []string{"just plain text\n"})
}

func TestSlice_EmptySourceNoPoints(t *testing.T) {
	t.Parallel()

	sections := Slice([]byte{}, nil)

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if len(sections[0]) != 0 {
		t.Errorf("expected empty section, got %q", sections[0])
	}
}

func TestSlice_SinglePointAtZero(t *testing.T) {
	t.Parallel()

	source := []byte("# only heading\n")
	sections := Slice(source, []int{0})

	assertSections(t, sections, []string{"# only heading\n"})
}

func TestSlice_TiedPoints(t *testing.T) {
	t.Parallel()

	// Equal consecutive points must not crash; they produce an empty
	// section between them.
	source := []byte("abcdef")
	sections := Slice(source, []int{0, 3, 3})

	assertSections(t, sections, []string{"abc", "", "def"})
}

func TestSlice_PointAtSourceLength(t *testing.T) {
	t.Parallel()

	source := []byte("abc")
	sections := Slice(source, []int{0, 3})

	assertSections(t, sections, []string{"abc", ""})
}

func TestSlice_Lossless(t *testing.T) {
	t.Parallel()

	source := []byte("# A\none\n## B\ntwo\n### C\nthree\n")
	sections := Slice(source, []int{0, 8, 17})

	var rejoined []byte
	for _, s := range sections {
		rejoined = append(rejoined, s...)
	}
	if !bytes.Equal(rejoined, source) {
		t.Errorf("concatenated sections = %q, want %q", rejoined, source)
	}
}

func TestSlice_ZeroCopy(t *testing.T) {
	t.Parallel()

	source := []byte("# A\nbody\n")
	sections := Slice(source, []int{0})

	// The section must alias the source, not copy it.
	if &sections[0][0] != &source[0] {
		t.Error("section should be a view into source")
	}
}

func TestSlice_PanicsOnMalformedPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points []int
	}{
		{"first not zero", []int{5, 10}},
		{"decreasing", []int{0, 10, 5}},
		{"beyond length", []int{0, 100}},
		{"negative", []int{0, -1}},
	}

	source := []byte("0123456789")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				if recover() == nil {
					t.Errorf("Slice(%v) did not panic", tt.points)
				}
			}()
			Slice(source, tt.points)
		})
	}
}

func assertSections(t *testing.T, got [][]byte, want []string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d sections, want %d", len(got), len(want))
	}
	for i := range want {
		if string(got[i]) != want[i] {
			t.Errorf("section %d = %q, want %q", i, got[i], want[i])
		}
	}
}

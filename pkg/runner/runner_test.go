package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/yaklabco/mdsplit/pkg/mdast"
	"github.com/yaklabco/mdsplit/pkg/runner"
	"github.com/yaklabco/mdsplit/pkg/split"
)

// countingParser counts parse calls for concurrency testing, delegating
// to a stub document.
type countingParser struct {
	count *atomic.Int32
}

func (p *countingParser) Parse(_ context.Context, path string, content []byte) (*mdast.Document, error) {
	p.count.Add(1)
	doc := mdast.NewDocument(path, content)
	doc.Root = mdast.NewRoot()
	return doc, nil
}

// failingParser rejects every file.
type failingParser struct{}

func (p *failingParser) Parse(_ context.Context, _ string, _ []byte) (*mdast.Document, error) {
	return nil, errors.New("synthetic parse failure")
}

func TestNew(t *testing.T) {
	t.Parallel()

	r := runner.New(runner.Options{})

	if r.Splitter == nil {
		t.Error("Splitter not set")
	}
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	r := runner.New(runner.Options{})

	ctx := context.Background()
	opts := runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	}

	result, err := r.Run(ctx, opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 0 {
		t.Errorf("FilesDiscovered = %d, want 0", result.Stats.FilesDiscovered)
	}

	if len(result.Files) != 0 {
		t.Errorf("len(Files) = %d, want 0", len(result.Files))
	}
}

func TestRunner_Run_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mdFile := filepath.Join(dir, "test.md")
	if err := os.WriteFile(mdFile, []byte("# One\ntext\n## Two\nmore\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	r := runner.New(runner.Options{})

	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesProcessed != 1 {
		t.Fatalf("FilesProcessed = %d, want 1", result.Stats.FilesProcessed)
	}
	if len(result.Files) != 1 {
		t.Fatalf("len(Files) = %d, want 1", len(result.Files))
	}

	fr := result.Files[0]
	if fr.Err != nil {
		t.Fatalf("file error = %v", fr.Err)
	}
	if fr.SectionCount() != 2 {
		t.Errorf("SectionCount() = %d, want 2", fr.SectionCount())
	}
	if result.Stats.SectionsTotal != 2 {
		t.Errorf("SectionsTotal = %d, want 2", result.Stats.SectionsTotal)
	}
	if result.Stats.BytesTotal != len("# One\ntext\n## Two\nmore\n") {
		t.Errorf("BytesTotal = %d", result.Stats.BytesTotal)
	}
}

func TestRunner_Run_MultipleFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	contents := map[string]string{
		"a.md": "# A\n",
		"b.md": "intro\n# B\n",
		"c.md": "no headings\n",
	}
	for name, content := range contents {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	r := runner.New(runner.Options{})

	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesProcessed != 3 {
		t.Errorf("FilesProcessed = %d, want 3", result.Stats.FilesProcessed)
	}

	// Deterministic ordering by path.
	wantOrder := []string{"a.md", "b.md", "c.md"}
	for i, want := range wantOrder {
		if filepath.Base(result.Files[i].Path) != want {
			t.Errorf("Files[%d] = %s, want %s", i, result.Files[i].Path, want)
		}
	}

	// a.md: 1 section, b.md: 2 sections, c.md: 1 section.
	if result.Stats.SectionsTotal != 4 {
		t.Errorf("SectionsTotal = %d, want 4", result.Stats.SectionsTotal)
	}
}

func TestRunner_Run_PerFileErrorsDoNotAbort(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a.md", "b.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("# H\n"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	r := runner.NewWithSplitter(split.NewWithParser(&failingParser{}, nil))

	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesFailed != 2 {
		t.Errorf("FilesFailed = %d, want 2", result.Stats.FilesFailed)
	}
	if !result.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}

	for _, fr := range result.Files {
		if fr.Err == nil {
			t.Errorf("file %s: expected error", fr.Path)
		}
		var pe *split.ParseError
		if !errors.As(fr.Err, &pe) {
			t.Errorf("file %s: error type = %T, want *split.ParseError", fr.Path, fr.Err)
		}
	}
}

func TestRunner_Run_SerialVsParallelConsistency(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for idx := range 20 {
		name := "file" + string(rune('a'+idx)) + ".md"
		content := "# Heading\n\nbody\n\n## Sub\nmore\n"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	run := func(jobs int) *runner.Result {
		r := runner.New(runner.Options{})
		result, err := r.Run(context.Background(), runner.Options{
			Paths:      []string{"."},
			WorkingDir: dir,
			Jobs:       jobs,
		})
		if err != nil {
			t.Fatalf("Run(jobs=%d) error = %v", jobs, err)
		}
		return result
	}

	serial := run(1)
	parallel := run(8)

	if serial.Stats.SectionsTotal != parallel.Stats.SectionsTotal {
		t.Errorf("section totals differ: serial %d, parallel %d",
			serial.Stats.SectionsTotal, parallel.Stats.SectionsTotal)
	}
	if len(serial.Files) != len(parallel.Files) {
		t.Fatalf("file counts differ: %d vs %d", len(serial.Files), len(parallel.Files))
	}
	for i := range serial.Files {
		if serial.Files[i].Path != parallel.Files[i].Path {
			t.Errorf("file order differs at %d: %s vs %s",
				i, serial.Files[i].Path, parallel.Files[i].Path)
		}
	}
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// Create files.
	for idx := range 10 {
		path := filepath.Join(dir, string(rune('a'+idx))+".md")
		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	r := runner.New(runner.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately.

	_, err := r.Run(ctx, runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	// Should get a cancellation error from discovery or processing.
	if err == nil {
		t.Log("no error returned, cancellation may not have been caught")
	} else if !errors.Is(err, context.Canceled) {
		t.Logf("expected context.Canceled, got: %v", err)
	}
}

func TestRunner_Run_ConcurrentProcessing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	fileCount := 50
	for idx := range fileCount {
		path := filepath.Join(dir, "file"+string(rune('a'+idx%26))+string(rune('0'+idx/26))+".md")
		if err := os.WriteFile(path, []byte("# Test\n"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	var parseCount atomic.Int32
	parser := &countingParser{count: &parseCount}
	r := runner.NewWithSplitter(split.NewWithParser(parser, nil))

	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Jobs:       8,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesProcessed != fileCount {
		t.Errorf("FilesProcessed = %d, want %d", result.Stats.FilesProcessed, fileCount)
	}

	if int(parseCount.Load()) != fileCount {
		t.Errorf("parser called %d times, want %d", parseCount.Load(), fileCount)
	}
}

func TestResult_HasFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		want   bool
	}{
		{"nil result", nil, false},
		{"empty result", &runner.Result{}, false},
		{
			"failed files",
			&runner.Result{Stats: runner.Stats{FilesFailed: 1}},
			true,
		},
		{
			"run errors",
			&runner.Result{Errors: []error{errors.New("boom")}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.result.HasFailures(); got != tt.want {
				t.Errorf("HasFailures() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFileResult_Bytes(t *testing.T) {
	t.Parallel()

	fr := runner.FileResult{
		Sections: []split.Section{
			{Start: 0, End: 6},
			{Start: 6, End: 15},
		},
	}

	if got := fr.Bytes(); got != 15 {
		t.Errorf("Bytes() = %d, want 15", got)
	}
	if got := fr.SectionCount(); got != 2 {
		t.Errorf("SectionCount() = %d, want 2", got)
	}
}

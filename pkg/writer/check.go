package writer

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/yaklabco/mdsplit/pkg/fsutil"
	"github.com/yaklabco/mdsplit/pkg/slug"
	"github.com/yaklabco/mdsplit/pkg/split"
)

// StaleFile describes an output file whose content differs from what a
// fresh split would produce.
type StaleFile struct {
	// Path is the section file path.
	Path string

	// Diff is the unified diff from on-disk content to expected
	// content.
	Diff *Diff
}

// CheckResult reports how a document's on-disk section files compare
// to a fresh split.
type CheckResult struct {
	// Dir is the document's output directory.
	Dir string

	// Missing lists expected section files that do not exist.
	Missing []string

	// Stale lists section files whose content is out of date.
	Stale []StaleFile

	// Extra lists section-numbered files in the output directory that
	// a fresh split would not produce.
	Extra []string
}

// Clean reports whether the on-disk output matches a fresh split.
func (c *CheckResult) Clean() bool {
	return len(c.Missing) == 0 && len(c.Stale) == 0 && len(c.Extra) == 0
}

// sectionFilePattern matches names the writer produces (NN-slug.md).
var sectionFilePattern = regexp.MustCompile(`^\d{2}-[^/]*\.md$`)

// CheckDocument compares the expected section files for inputPath
// against what is on disk, without writing anything.
func (w *Writer) CheckDocument(ctx context.Context, inputPath string, sections []split.Section) (*CheckResult, error) {
	dir := DocumentDir(w.opts.OutDir, inputPath)
	result := &CheckResult{Dir: dir}

	expected := make(map[string]struct{}, len(sections))

	dedupe := slug.NewDeduper()
	for i, sec := range sections {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("check %s: %w", inputPath, ctx.Err())
		default:
		}

		path := filepath.Join(dir, sectionFileName(i+1, sec, dedupe))
		expected[filepath.Base(path)] = struct{}{}

		onDisk, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			if errors.Is(err, fsutil.ErrNotFound) {
				result.Missing = append(result.Missing, path)
				continue
			}
			return result, fmt.Errorf("read section file %s: %w", path, err)
		}

		if info.Hash != sha256.Sum256(sec.Text) {
			result.Stale = append(result.Stale, StaleFile{
				Path: path,
				Diff: GenerateDiff(path, onDisk, sec.Text),
			})
		}
	}

	extra, err := findExtraFiles(dir, expected)
	if err != nil {
		return result, err
	}
	result.Extra = extra

	return result, nil
}

// findExtraFiles lists section-numbered files in dir that are not in
// the expected set. A missing directory yields no extras.
func findExtraFiles(dir string, expected map[string]struct{}) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read output directory %s: %w", dir, err)
	}

	var extra []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !sectionFilePattern.MatchString(name) {
			continue
		}
		if _, ok := expected[name]; !ok {
			extra = append(extra, filepath.Join(dir, name))
		}
	}
	slices.Sort(extra)

	return extra, nil
}

package writer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/mdsplit/pkg/fsutil"
	"github.com/yaklabco/mdsplit/pkg/slug"
	"github.com/yaklabco/mdsplit/pkg/split"
)

// ErrNoOutDir is returned when Options.OutDir is empty.
var ErrNoOutDir = errors.New("output directory not set")

// Writer writes a document's sections to numbered files under the
// configured output directory.
type Writer struct {
	opts Options
}

// New creates a Writer. OutDir must be set.
func New(opts Options) (*Writer, error) {
	if opts.OutDir == "" {
		return nil, ErrNoOutDir
	}
	if opts.Mode == 0 {
		opts.Mode = fsutil.DefaultFileMode
	}
	return &Writer{opts: opts}, nil
}

// WriteDocument writes the sections of one input file to
// <outDir>/<input-stem>/NN-<slug>.md and returns a manifest of the
// produced files. Files whose on-disk content already matches are left
// untouched.
func (w *Writer) WriteDocument(ctx context.Context, inputPath string, sections []split.Section) (*Manifest, error) {
	dir := DocumentDir(w.opts.OutDir, inputPath)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}

	manifest := &Manifest{
		Dir:     dir,
		Entries: make([]Entry, 0, len(sections)),
	}

	dedupe := slug.NewDeduper()
	for i, sec := range sections {
		select {
		case <-ctx.Done():
			return manifest, fmt.Errorf("write %s: %w", inputPath, ctx.Err())
		default:
		}

		path := filepath.Join(dir, sectionFileName(i+1, sec, dedupe))

		if w.opts.Backup.Enabled {
			if _, err := fsutil.CreateBackup(ctx, path, w.opts.Backup); err != nil {
				return manifest, fmt.Errorf("backup %s: %w", path, err)
			}
		}

		written, err := fsutil.WriteAtomicIfChanged(ctx, path, sec.Text, w.opts.Mode)
		if err != nil {
			return manifest, fmt.Errorf("write section file %s: %w", path, err)
		}

		manifest.Entries = append(manifest.Entries, Entry{
			Path:    path,
			Bytes:   sec.Len(),
			Written: written,
		})
	}

	return manifest, nil
}

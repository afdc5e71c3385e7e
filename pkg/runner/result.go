package runner

import (
	"time"

	"github.com/yaklabco/mdsplit/pkg/fsutil"
	"github.com/yaklabco/mdsplit/pkg/split"
)

// FileResult holds the sections of one processed file.
type FileResult struct {
	// Path is the file path that was processed.
	Path string

	// Sections contains the file's sections in document order.
	// Nil when Err is set.
	Sections []split.Section

	// Info is the file's metadata snapshot from read time, usable for
	// detecting the source changing before its sections are written.
	Info *fsutil.FileInfo

	// Err is set if the file could not be read or parsed.
	Err error
}

// SectionCount returns the number of sections in this file.
func (fr *FileResult) SectionCount() int {
	return len(fr.Sections)
}

// Bytes returns the total section bytes for this file.
func (fr *FileResult) Bytes() int {
	total := 0
	for _, s := range fr.Sections {
		total += s.Len()
	}
	return total
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully split.
	FilesProcessed int

	// FilesFailed is the number of files that could not be processed.
	FilesFailed int

	// SectionsTotal is the total number of sections across all files.
	SectionsTotal int

	// BytesTotal is the total number of section bytes across all files.
	BytesTotal int

	// Duration is the wall-clock time of the whole run.
	Duration time.Duration
}

// Result is the overall runner result.
type Result struct {
	// Files contains the result for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileResult

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasFailures reports whether any file failed to process.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesFailed > 0 || len(r.Errors) > 0
}

// accumulate updates the result with a file result.
func (r *Result) accumulate(fr FileResult) {
	r.Files = append(r.Files, fr)

	if fr.Err != nil {
		r.Stats.FilesFailed++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.SectionsTotal += fr.SectionCount()
	r.Stats.BytesTotal += fr.Bytes()
}

package analysis

import "time"

// ReportVersion identifies the report schema for machine consumers.
const ReportVersion = "1.0"

// Totals aggregates counts across the whole run.
type Totals struct {
	// Files is the number of files the runner attempted.
	Files int `json:"files"`

	// FilesFailed is the number of files that could not be processed.
	FilesFailed int `json:"files_failed"`

	// Sections is the total section count across all files.
	Sections int `json:"sections"`

	// Bytes is the total section bytes across all files.
	Bytes int `json:"bytes"`

	// Headings is the number of sections opened by a heading.
	Headings int `json:"headings"`

	// MinSection, AvgSection and MaxSection describe section sizes
	// in bytes. All zero when no sections were produced.
	MinSection int `json:"min_section"`
	AvgSection int `json:"avg_section"`
	MaxSection int `json:"max_section"`
}

// LevelCount is the number of sections opened by headings of one level.
// Level 0 counts preamble sections, which have no opening heading.
type LevelCount struct {
	Level    int `json:"level"`
	Sections int `json:"sections"`
}

// FileAnalysis summarizes one processed file.
type FileAnalysis struct {
	// Path is the file path, relative to the working directory when
	// possible.
	Path string `json:"path"`

	// Sections is the file's section count.
	Sections int `json:"sections"`

	// Bytes is the file's total section bytes.
	Bytes int `json:"bytes"`

	// Levels lists the distinct heading levels present, ascending.
	Levels []int `json:"levels,omitempty"`

	// Failed is true when the file could not be read or parsed.
	Failed bool `json:"failed,omitempty"`
}

// LanguageCount is the number of fenced code blocks tagged or detected
// as one language.
type LanguageCount struct {
	Language string `json:"language"`
	Blocks   int    `json:"blocks"`
}

// Report contains pre-computed views of a run's results, ready for
// rendering by the stats command.
type Report struct {
	// Version is the report schema version.
	Version string `json:"version"`

	// Timestamp records when the report was generated (UTC).
	Timestamp time.Time `json:"timestamp"`

	// Totals holds run-wide aggregates.
	Totals Totals `json:"totals"`

	// ByLevel holds section counts per opening-heading level,
	// ascending by level.
	ByLevel []LevelCount `json:"by_level,omitempty"`

	// ByFile holds per-file rows, ordered per Options.SortBy.
	ByFile []FileAnalysis `json:"by_file,omitempty"`

	// Languages holds the fenced-code language census, descending by
	// block count.
	Languages []LanguageCount `json:"languages,omitempty"`
}

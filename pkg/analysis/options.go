package analysis

import "fmt"

// SortField specifies how per-file rows are ordered in a report.
type SortField string

const (
	// SortByPath orders files lexicographically by path.
	SortByPath SortField = "path"

	// SortBySections orders files by section count.
	SortBySections SortField = "sections"

	// SortByBytes orders files by total section bytes.
	SortByBytes SortField = "bytes"
)

// IsValid reports whether the sort field is one of the known values.
func (s SortField) IsValid() bool {
	switch s {
	case SortByPath, SortBySections, SortByBytes:
		return true
	}
	return false
}

// ParseSortField converts a string into a SortField.
func ParseSortField(s string) (SortField, error) {
	field := SortField(s)
	if !field.IsValid() {
		return "", fmt.Errorf("unknown sort field %q (valid: path, sections, bytes)", s)
	}
	return field, nil
}

// Options controls report generation.
type Options struct {
	// SortBy selects the ordering of ByFile rows.
	SortBy SortField

	// SortDesc reverses the sort order when true.
	SortDesc bool

	// WorkingDir is used to relativize file paths in the report.
	// Empty leaves paths as the runner produced them.
	WorkingDir string

	// IncludeByFile controls whether per-file rows are produced.
	IncludeByFile bool

	// IncludeLanguages controls whether the fenced-code language
	// census is computed. Detection of unlabeled blocks has a cost,
	// so callers that only need totals can switch it off.
	IncludeLanguages bool
}

// DefaultOptions returns the default analysis options.
func DefaultOptions() Options {
	return Options{
		SortBy:           SortByPath,
		IncludeByFile:    true,
		IncludeLanguages: true,
	}
}

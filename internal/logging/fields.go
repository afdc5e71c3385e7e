// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldFlavor      = "flavor"
	FieldFrontMatter = "front_matter"
	FieldMaxLevel    = "max_level"
	FieldOutDir      = "out_dir"
	FieldCheck       = "check"
	FieldJobs        = "jobs"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesFailed     = "files_failed"
	FieldSections        = "sections"
	FieldSplitPoints     = "split_points"
	FieldBytes           = "bytes"
	FieldFilesWritten    = "files_written"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Section fields.
	FieldTitle = "title"
	FieldLevel = "level"
	FieldLine  = "line"
)

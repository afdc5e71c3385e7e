package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdsplit/pkg/runner"
)

// jsonSchemaVersion identifies the JSON output schema.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's sections.
type JSONFileResult struct {
	Path     string        `json:"path"`
	Sections []JSONSection `json:"sections"`
	Error    string        `json:"error,omitempty"`
}

// JSONSection represents a single section.
type JSONSection struct {
	Index int    `json:"index"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Level int    `json:"level"`
	Title string `json:"title,omitempty"`
	Line  int    `json:"line"`
	Text  string `json:"text,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int    `json:"filesDiscovered"`
	FilesProcessed  int    `json:"filesProcessed"`
	FilesFailed     int    `json:"filesFailed"`
	TotalSections   int    `json:"totalSections"`
	TotalBytes      int    `json:"totalBytes"`
	Elapsed         string `json:"elapsed"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	return nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:     file.Path,
			Sections: make([]JSONSection, 0, len(file.Sections)),
		}

		if file.Err != nil {
			fileResult.Error = file.Err.Error()
		}

		for i, sec := range file.Sections {
			jsonSec := JSONSection{
				Index: i + 1,
				Start: sec.Start,
				End:   sec.End,
				Level: sec.Level,
				Title: sec.Title,
				Line:  sec.Line,
			}
			if r.opts.IncludeText {
				jsonSec.Text = string(sec.Text)
			}
			fileResult.Sections = append(fileResult.Sections, jsonSec)
		}

		output.Files = append(output.Files, fileResult)
	}

	output.Summary = JSONSummary{
		FilesDiscovered: result.Stats.FilesDiscovered,
		FilesProcessed:  result.Stats.FilesProcessed,
		FilesFailed:     result.Stats.FilesFailed,
		TotalSections:   result.Stats.SectionsTotal,
		TotalBytes:      result.Stats.BytesTotal,
		Elapsed:         result.Stats.Duration.String(),
	}

	return output
}

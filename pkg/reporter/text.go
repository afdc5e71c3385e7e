package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdsplit/internal/ui/pretty"
	"github.com/yaklabco/mdsplit/pkg/runner"
)

// TextReporter formats results as styled terminal output: a header per
// file, then each section's banner, a dashed rule, and the raw section
// bytes.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to split."))
		}
		return nil
	}

	for _, file := range result.Files {
		if file.Err != nil {
			fmt.Fprintln(r.bw, r.styles.FormatFileError(file.Path, file.Err))
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file.Path, len(file.Sections)))

		for i, sec := range file.Sections {
			fmt.Fprintln(r.bw, r.styles.FormatSectionHeading(i+1, sec))
			fmt.Fprintln(r.bw, r.styles.SectionSeparator())
			r.bw.Write(sec.Text)
			if n := sec.Len(); n == 0 || sec.Text[n-1] != '\n' {
				fmt.Fprintln(r.bw)
			}
			fmt.Fprintln(r.bw, r.styles.SectionSeparator())
		}

		// Blank line between files.
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return nil
}

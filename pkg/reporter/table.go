package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/yaklabco/mdsplit/internal/ui/pretty"
	"github.com/yaklabco/mdsplit/pkg/runner"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// TableReporter formats results as a styled section table.
type TableReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)

	termWidth := getTerminalWidth(opts.Writer)

	return &TableReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, colorEnabled, termWidth),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (err error) {
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

	if r.opts.PerFile {
		r.reportPerFile(result)
	} else {
		r.reportCombined(result)
	}

	return nil
}

// reportCombined outputs all files in a single table.
func (r *TableReporter) reportCombined(result *runner.Result) {
	table := r.formatter.FormatTable(result)
	fmt.Fprint(r.bw, table)

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.formatter.FormatTableSummary(result.Stats))
	}
}

// reportPerFile outputs a separate table for each file.
func (r *TableReporter) reportPerFile(result *runner.Result) {
	for _, file := range result.Files {
		if file.Err != nil {
			fmt.Fprintln(r.bw, r.styles.FormatFileError(file.Path, file.Err))
			continue
		}
		if len(file.Sections) == 0 {
			continue
		}

		fmt.Fprintln(r.bw)
		fmt.Fprintln(r.bw, r.styles.Bold.Render(file.Path))

		table := r.formatter.FormatFileTable(file)
		fmt.Fprint(r.bw, table)
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.formatter.FormatTableSummary(result.Stats))
	}
}

// getTerminalWidth attempts to get the terminal width from the writer.
func getTerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}

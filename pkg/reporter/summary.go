package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/mdsplit/internal/ui/pretty"
	"github.com/yaklabco/mdsplit/pkg/analysis"
)

// Table layout constants for summary output.
// All tables use the same width for visual consistency.
const (
	tableWidth        = 90 // Width of table separators.
	fileColWidth      = 60 // Width of the file path column.
	labelColWidth     = 30 // Width of the level/language label column.
	numColWidth       = 10 // Width of numeric columns.
	maxFilePathLength = 58 // Maximum characters for file path before truncation.
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryRenderer formats results as aggregated summary tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.Totals.Files == 0 {
		fmt.Fprintln(r.out, r.styles.Dim.Render("No files to split."))
		return nil
	}

	r.renderFileTable(report.ByFile)

	if len(report.ByLevel) > 0 {
		fmt.Fprintln(r.out)
		r.renderLevelTable(report.ByLevel)
	}

	if len(report.Languages) > 0 {
		fmt.Fprintln(r.out)
		r.renderLanguageTable(report.Languages)
	}

	fmt.Fprintln(r.out)
	r.renderTotals(report.Totals)

	return nil
}

func (r *SummaryRenderer) renderFileTable(files []analysis.FileAnalysis) {
	if len(files) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Files"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	// Header - pad first, then style
	fmt.Fprintf(r.out, "%s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Sections", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Bytes", numColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, file := range files {
		path := file.Path
		if len(path) > maxFilePathLength {
			path = "…" + path[len(path)-(maxFilePathLength-1):]
		}

		paddedPath := padRight(path, fileColWidth)
		if file.Failed {
			fmt.Fprintf(r.out, "%s %s\n",
				r.styles.TableErrorRow.Render(paddedPath),
				r.styles.Error.Render(padLeft("failed", numColWidth)),
			)
			continue
		}

		fmt.Fprintf(r.out, "%s %s %s\n",
			paddedPath,
			padLeft(strconv.Itoa(file.Sections), numColWidth),
			padLeft(pretty.FormatBytes(file.Bytes), numColWidth),
		)
	}
}

func (r *SummaryRenderer) renderLevelTable(levels []analysis.LevelCount) {
	fmt.Fprintln(r.out, r.styles.Bold.Render("Sections by Level"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, lc := range levels {
		label := "preamble"
		if lc.Level > 0 {
			label = "level " + strconv.Itoa(lc.Level) + " (" + strings.Repeat("#", lc.Level) + ")"
		}
		fmt.Fprintf(r.out, "%s %s\n",
			padRight(label, labelColWidth),
			padLeft(strconv.Itoa(lc.Sections), numColWidth),
		)
	}
}

func (r *SummaryRenderer) renderLanguageTable(langs []analysis.LanguageCount) {
	fmt.Fprintln(r.out, r.styles.Bold.Render("Code Block Languages"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, lang := range langs {
		fmt.Fprintf(r.out, "%s %s\n",
			padRight(lang.Language, labelColWidth),
			padLeft(strconv.Itoa(lang.Blocks), numColWidth),
		)
	}
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals) {
	sectionWord := "sections"
	if totals.Sections == 1 {
		sectionWord = "section"
	}
	fileWord := "files"
	if totals.Files == 1 {
		fileWord = "file"
	}

	parts := []string{
		fmt.Sprintf("%d %s in %d %s", totals.Sections, sectionWord, totals.Files, fileWord),
		fmt.Sprintf("(%s)", pretty.FormatBytes(totals.Bytes)),
	}
	if totals.FilesFailed > 0 {
		parts = append(parts, r.styles.Failure.Render(fmt.Sprintf("%d failed", totals.FilesFailed)))
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+strings.Join(parts, " "))
}

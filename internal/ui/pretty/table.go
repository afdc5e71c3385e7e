package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdsplit/pkg/runner"
	"github.com/yaklabco/mdsplit/pkg/split"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 6 // FILE, SECTION, LEVEL, LINE, BYTES, TITLE
	minFileWidth     = 20
	minTitleWidth    = 25
	sectionColWidth  = 7
	levelColWidth    = 5
	lineColWidth     = 6
	bytesColWidth    = 8
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow represents a single section row in the table.
type TableRow struct {
	File    string
	Index   int
	Level   int
	Line    int
	Bytes   int
	Title   string
	Failed  bool
	ErrText string
}

// TableFormatter formats sections as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// FormatTable formats runner results as a styled table, one row per
// section grouped by file.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	fileGroups := t.collectRows(result)
	if len(fileGroups) == 0 {
		return ""
	}

	colWidths := t.calculateColumnWidths(fileGroups)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(colWidths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	isFirstGroup := true
	for _, group := range fileGroups {
		if !isFirstGroup {
			builder.WriteString(t.formatSeparator(colWidths, lightSeparator))
			builder.WriteString("\n")
		}
		isFirstGroup = false

		for _, row := range group {
			builder.WriteString(t.formatRow(row, colWidths))
			builder.WriteString("\n")
		}
	}

	builder.WriteString(t.formatSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	return builder.String()
}

// FormatFileTable formats a single file's sections as a standalone table.
func (t *TableFormatter) FormatFileTable(file runner.FileResult) string {
	if file.Err != nil || len(file.Sections) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(file.Sections))
	for i, sec := range file.Sections {
		rows = append(rows, sectionRow(file.Path, i+1, sec))
	}

	colWidths := t.calculateColumnWidths([][]TableRow{rows})

	var builder strings.Builder
	builder.WriteString(t.formatHeader(colWidths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")
	for _, row := range rows {
		builder.WriteString(t.formatRow(row, colWidths))
		builder.WriteString("\n")
	}
	builder.WriteString(t.formatSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	return builder.String()
}

// FormatTableSummary formats the one-line stats trailer under a table.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats) string {
	return t.styles.FormatSummaryOneLine(stats)
}

func sectionRow(path string, index int, sec split.Section) TableRow {
	title := sec.Title
	if !sec.HasHeading() {
		title = "(preamble)"
	}
	return TableRow{
		File:  path,
		Index: index,
		Level: sec.Level,
		Line:  sec.Line,
		Bytes: sec.Len(),
		Title: title,
	}
}

// collectRows collects section rows grouped by file. Failed files
// become a single error row so they stay visible in the table.
func (t *TableFormatter) collectRows(result *runner.Result) [][]TableRow {
	var groups [][]TableRow

	for _, file := range result.Files {
		if file.Err != nil {
			groups = append(groups, []TableRow{{
				File:    file.Path,
				Failed:  true,
				ErrText: file.Err.Error(),
			}})
			continue
		}

		if len(file.Sections) == 0 {
			continue
		}

		rows := make([]TableRow, 0, len(file.Sections))
		for i, sec := range file.Sections {
			rows = append(rows, sectionRow(file.Path, i+1, sec))
		}
		groups = append(groups, rows)
	}

	return groups
}

type columnWidths struct {
	file  int
	title int
}

// calculateColumnWidths determines column widths based on content,
// constrained to the terminal width by shrinking the title column.
func (t *TableFormatter) calculateColumnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		file:  minFileWidth,
		title: minTitleWidth,
	}

	for _, group := range groups {
		for _, row := range group {
			if len(row.File) > widths.file {
				widths.file = len(row.File)
			}
			if len(row.Title) > widths.title {
				widths.title = len(row.Title)
			}
		}
	}

	fixed := sectionColWidth + levelColWidth + lineColWidth + bytesColWidth +
		tablePadding*tableColumnCount
	totalWidth := widths.file + widths.title + fixed
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.title = max(minTitleWidth, widths.title-excess)
	}

	return widths
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %*s  %*s  %*s  %*s  %-*s",
		widths.file, "FILE",
		sectionColWidth, "SECTION",
		levelColWidth, "LEVEL",
		lineColWidth, "LINE",
		bytesColWidth, "BYTES",
		widths.title, "TITLE",
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	totalWidth := widths.file + widths.title + sectionColWidth + levelColWidth +
		lineColWidth + bytesColWidth + tablePadding*tableColumnCount
	return t.styles.TableSeparator.Render(strings.Repeat(char, totalWidth))
}

func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	if row.Failed {
		content := fmt.Sprintf(" %-*s  %s",
			widths.file, truncateString(row.File, widths.file),
			truncateString("error: "+row.ErrText, widths.title+sectionColWidth+levelColWidth+lineColWidth+bytesColWidth),
		)
		return t.styles.TableErrorRow.Render(content)
	}

	level := "-"
	if row.Level > 0 {
		level = strconv.Itoa(row.Level)
	}

	return fmt.Sprintf(" %-*s  %*d  %*s  %*d  %*d  %-*s",
		widths.file, truncateString(row.File, widths.file),
		sectionColWidth, row.Index,
		levelColWidth, level,
		lineColWidth, row.Line,
		bytesColWidth, row.Bytes,
		widths.title, truncateString(row.Title, widths.title),
	)
}

// truncateString shortens s to width runes, appending an ellipsis.
func truncateString(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return s[:width-1] + "…"
}

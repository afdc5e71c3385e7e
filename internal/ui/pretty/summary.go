package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdsplit/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"

	kib = 1024
	mib = 1024 * 1024
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 sections in 3 files (4.2 KiB), 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesProcessed == 0 && stats.FilesFailed == 0 {
		return s.Dim.Render("No files processed") + "\n"
	}

	var parts []string

	sectionWord := "sections"
	if stats.SectionsTotal == 1 {
		sectionWord = "section"
	}
	parts = append(parts, fmt.Sprintf("%d %s", stats.SectionsTotal, sectionWord))

	fileWord := wordFiles
	if stats.FilesProcessed == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s (%s)",
		stats.FilesProcessed, fileWord, FormatBytes(stats.BytesTotal)))

	if stats.FilesFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesFailed)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files discovered:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files processed:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesFailed > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesFailed)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total sections:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.SectionsTotal)) + "\n")
	builder.WriteString("  Total bytes:       " +
		s.SummaryValue.Render(FormatBytes(stats.BytesTotal)) + "\n")
	builder.WriteString("  Elapsed:           " +
		s.SummaryValue.Render(stats.Duration.String()) + "\n")

	builder.WriteString("\n")

	if stats.FilesFailed > 0 {
		builder.WriteString(s.Failure.Render("Completed with failures"))
	} else {
		builder.WriteString(s.Success.Render("Done"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatBytes renders a byte count in human-readable form.
func FormatBytes(n int) string {
	switch {
	case n >= mib:
		return fmt.Sprintf("%.1f MiB", float64(n)/float64(mib))
	case n >= kib:
		return fmt.Sprintf("%.1f KiB", float64(n)/float64(kib))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

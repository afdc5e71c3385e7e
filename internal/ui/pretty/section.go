package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdsplit/pkg/split"
)

// sectionSeparatorWidth is the width of the dashed rule printed between
// sections in text output.
const sectionSeparatorWidth = 60

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, sectionCount int) string {
	header := s.FilePath.Render(path)
	word := "sections"
	if sectionCount == 1 {
		word = "section"
	}
	header += s.Dim.Render(fmt.Sprintf(" (%d %s)", sectionCount, word))
	return header
}

// FormatSectionHeading formats the one-line banner above a section's
// content: index, heading title when present, and location details.
func (s *Styles) FormatSectionHeading(index int, sec split.Section) string {
	label := s.SectionLabel.Render(fmt.Sprintf("Section %d", index))

	detail := fmt.Sprintf("line %d, %d bytes", sec.Line, sec.Len())
	if !sec.HasHeading() {
		return fmt.Sprintf("%s  %s  %s",
			label,
			s.Dim.Render("(preamble)"),
			s.Location.Render("("+detail+")"),
		)
	}

	title := sec.Title
	if title == "" {
		title = "(untitled)"
	}
	return fmt.Sprintf("%s  %s %s  %s",
		label,
		s.Dim.Render(strings.Repeat("#", sec.Level)),
		s.HeadingTitle.Render(title),
		s.Location.Render("("+detail+")"),
	)
}

// SectionSeparator returns the dashed rule printed between sections.
func (s *Styles) SectionSeparator() string {
	return s.TableSeparator.Render(strings.Repeat("-", sectionSeparatorWidth))
}

// FormatFileError formats a per-file failure line.
func (s *Styles) FormatFileError(path string, err error) string {
	return fmt.Sprintf("%s: %s",
		s.FilePath.Render(path),
		s.Error.Render(fmt.Sprintf("error: %v", err)),
	)
}

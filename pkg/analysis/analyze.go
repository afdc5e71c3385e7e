package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/mdsplit/pkg/runner"
)

// Analyze builds a Report from a runner result in a single pass over
// the files and their sections.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now().UTC(),
	}

	if result == nil {
		return report
	}

	levelCounts := make(map[int]int)
	langCounts := make(map[string]int)
	minSection := -1

	for _, fr := range result.Files {
		fa := FileAnalysis{Path: makeRelativePath(fr.Path, opts.WorkingDir)}

		if fr.Err != nil {
			fa.Failed = true
			report.Totals.FilesFailed++
			report.ByFile = append(report.ByFile, fa)
			continue
		}

		levelsSeen := make(map[int]struct{})

		for _, sec := range fr.Sections {
			size := sec.Len()
			report.Totals.Sections++
			report.Totals.Bytes += size

			if minSection < 0 || size < minSection {
				minSection = size
			}
			if size > report.Totals.MaxSection {
				report.Totals.MaxSection = size
			}

			levelCounts[sec.Level]++
			if sec.HasHeading() {
				report.Totals.Headings++
				levelsSeen[sec.Level] = struct{}{}
			}

			if opts.IncludeLanguages {
				countFencedLanguages(sec.Text, langCounts)
			}
		}

		fa.Sections = len(fr.Sections)
		fa.Bytes = fr.Bytes()
		fa.Levels = sortedLevels(levelsSeen)
		report.ByFile = append(report.ByFile, fa)
	}

	report.Totals.Files = len(result.Files)
	if report.Totals.Sections > 0 {
		report.Totals.MinSection = minSection
		report.Totals.AvgSection = report.Totals.Bytes / report.Totals.Sections
	}

	report.ByLevel = buildLevelCounts(levelCounts)
	report.Languages = buildLanguageCounts(langCounts)

	if opts.IncludeByFile {
		sortByFile(report.ByFile, opts)
	} else {
		report.ByFile = nil
	}

	return report
}

// makeRelativePath converts an absolute path to one relative to the
// working directory when that yields a cleaner display path.
func makeRelativePath(path, workingDir string) string {
	if workingDir == "" {
		return path
	}
	rel, err := filepath.Rel(workingDir, path)
	if err != nil || len(rel) >= len(path) {
		return path
	}
	return rel
}

func sortedLevels(seen map[int]struct{}) []int {
	if len(seen) == 0 {
		return nil
	}
	levels := make([]int, 0, len(seen))
	for level := range seen {
		levels = append(levels, level)
	}
	slices.Sort(levels)
	return levels
}

func buildLevelCounts(counts map[int]int) []LevelCount {
	if len(counts) == 0 {
		return nil
	}
	out := make([]LevelCount, 0, len(counts))
	for level, n := range counts {
		out = append(out, LevelCount{Level: level, Sections: n})
	}
	slices.SortFunc(out, func(a, b LevelCount) int {
		return cmp.Compare(a.Level, b.Level)
	})
	return out
}

func buildLanguageCounts(counts map[string]int) []LanguageCount {
	if len(counts) == 0 {
		return nil
	}
	out := make([]LanguageCount, 0, len(counts))
	for lang, n := range counts {
		out = append(out, LanguageCount{Language: lang, Blocks: n})
	}
	// Most frequent first; ties break alphabetically.
	slices.SortFunc(out, func(a, b LanguageCount) int {
		if c := cmp.Compare(b.Blocks, a.Blocks); c != 0 {
			return c
		}
		return cmp.Compare(a.Language, b.Language)
	})
	return out
}

// sortByFile orders per-file rows per the options. Path is always the
// final tiebreaker so output is deterministic.
func sortByFile(files []FileAnalysis, opts Options) {
	slices.SortFunc(files, func(a, b FileAnalysis) int {
		var c int
		switch opts.SortBy {
		case SortBySections:
			c = cmp.Compare(a.Sections, b.Sections)
		case SortByBytes:
			c = cmp.Compare(a.Bytes, b.Bytes)
		default:
			c = cmp.Compare(a.Path, b.Path)
		}
		if opts.SortDesc {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(a.Path, b.Path)
		}
		return c
	})
}

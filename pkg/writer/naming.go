package writer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdsplit/pkg/slug"
	"github.com/yaklabco/mdsplit/pkg/split"
)

// preambleSlug names sections that have no opening heading.
const preambleSlug = "preamble"

// DocumentDir returns the output directory for one input file:
// <outDir>/<input-stem>. A stemless input (e.g. stdin's empty path)
// maps to the out dir itself.
func DocumentDir(outDir, inputPath string) string {
	stem := inputStem(inputPath)
	if stem == "" {
		return outDir
	}
	return filepath.Join(outDir, stem)
}

// inputStem returns the input file's base name without its extension.
func inputStem(inputPath string) string {
	base := filepath.Base(inputPath)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// sectionFileName builds the file name for one section:
// NN-<slug>.md, NN being the two-digit 1-based section index. Slugs
// repeat across sections, so the deduper appends -1, -2, … as needed.
func sectionFileName(index int, sec split.Section, dedupe *slug.Deduper) string {
	name := preambleSlug
	if sec.HasHeading() {
		if s := slug.Make(sec.Title); s != "" {
			name = s
		} else {
			name = fmt.Sprintf("section-%d", index)
		}
	}
	return fmt.Sprintf("%02d-%s.md", index, dedupe.Take(name))
}

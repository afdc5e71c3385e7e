package configloader

import (
	"strings"

	"github.com/yaklabco/mdsplit/pkg/config"
)

// flavorAliases maps alternative flavor spellings to their canonical
// values. This accepts the names other Markdown tools use for the same
// dialects.
//
//nolint:gochecknoglobals // Read-only lookup table.
var flavorAliases = map[string]config.Flavor{
	"github":          config.FlavorGFM,
	"github-flavored": config.FlavorGFM,
	"common-mark":     config.FlavorCommonMark,
	"common_mark":     config.FlavorCommonMark,
	"cm":              config.FlavorCommonMark,
}

// formatAliases maps alternative format spellings to their canonical
// values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var formatAliases = map[string]config.OutputFormat{
	"txt":   config.FormatText,
	"plain": config.FormatText,
}

// NormalizeFlavor resolves a flavor alias to its canonical value.
// Unknown values are returned lowercased so validation can report them.
func NormalizeFlavor(flavor config.Flavor) config.Flavor {
	lower := strings.ToLower(strings.TrimSpace(string(flavor)))
	if canonical, ok := flavorAliases[lower]; ok {
		return canonical
	}
	return config.Flavor(lower)
}

// NormalizeFormat resolves a format alias to its canonical value.
// Unknown values are returned lowercased so validation can report them.
func NormalizeFormat(format config.OutputFormat) config.OutputFormat {
	lower := strings.ToLower(strings.TrimSpace(string(format)))
	if canonical, ok := formatAliases[lower]; ok {
		return canonical
	}
	return config.OutputFormat(lower)
}

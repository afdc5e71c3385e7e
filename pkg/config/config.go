// Package config defines core configuration types for mdsplit.
// These types are pure data structures with no dependency on config
// loaders; discovery and merging live in internal/configloader.
package config

// Flavor specifies the Markdown flavor to use for parsing.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// IsValid returns true if the flavor is a known value.
func (f Flavor) IsValid() bool {
	switch f {
	case FlavorCommonMark, FlavorGFM:
		return true
	default:
		return false
	}
}

// OutputFormat specifies the output format for sections and reports.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatTable   OutputFormat = "table"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the output format is a known value.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatTable, FormatSummary:
		return true
	default:
		return false
	}
}

// ColorMode controls when output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is a known value.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// OutputConfig controls how sections and reports are rendered.
type OutputConfig struct {
	// Format is the output format: text, json, table, or summary.
	Format OutputFormat `mapstructure:"format" yaml:"format"`

	// Color controls colorized output: auto, always, or never.
	Color ColorMode `mapstructure:"color" yaml:"color"`
}

// FilesConfig controls file discovery.
type FilesConfig struct {
	// Extensions lists the file extensions treated as Markdown.
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`

	// Include contains glob patterns to include; empty means all.
	Include []string `mapstructure:"include" yaml:"include"`

	// Exclude contains glob patterns to exclude.
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`

	// FollowSymlinks enables traversal into symlinked files and dirs.
	FollowSymlinks bool `mapstructure:"follow_symlinks" yaml:"follow_symlinks"`
}

// Config is the root configuration structure for mdsplit.
type Config struct {
	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `mapstructure:"flavor" yaml:"flavor"`

	// FrontMatter keeps a leading YAML front matter block attached to
	// the first section instead of splitting inside it.
	FrontMatter bool `mapstructure:"front_matter" yaml:"front_matter"`

	// MaxLevel caps the heading levels that open sections.
	// 0 means split at every heading level 1-6.
	MaxLevel int `mapstructure:"max_level" yaml:"max_level"`

	// Output controls rendering of sections and reports.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Files controls file discovery.
	Files FilesConfig `mapstructure:"files" yaml:"files"`

	// Jobs specifies the number of parallel workers (0 = NumCPU).
	Jobs int `mapstructure:"jobs" yaml:"jobs"`

	// CLI-level options (not persisted to config files).

	// OutDir is the directory section files are written to.
	OutDir string `mapstructure:"-" yaml:"-"`

	// Check verifies out-dir freshness instead of writing.
	Check bool `mapstructure:"-" yaml:"-"`
}

// DefaultExtensions are the file extensions discovered by default.
func DefaultExtensions() []string {
	return []string{".md", ".markdown", ".mdown"}
}

// DefaultExcludes are the glob patterns excluded by default.
func DefaultExcludes() []string {
	return []string{"**/node_modules/**", "**/vendor/**"}
}

// NewConfig returns a Config with sensible defaults: the permissive GFM
// dialect, front matter kept attached to the first section, and no
// heading-level cap.
func NewConfig() *Config {
	return &Config{
		Flavor:      FlavorGFM,
		FrontMatter: true,
		MaxLevel:    0,
		Output: OutputConfig{
			Format: FormatText,
			Color:  ColorAuto,
		},
		Files: FilesConfig{
			Extensions:     DefaultExtensions(),
			Include:        nil,
			Exclude:        DefaultExcludes(),
			FollowSymlinks: false,
		},
		Jobs: 0, // 0 means use NumCPU
	}
}

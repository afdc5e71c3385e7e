package split

// Flavor names accepted by Options.Flavor.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Options configures a Splitter.
type Options struct {
	// Flavor selects the Markdown dialect: "gfm" or "commonmark".
	// Empty means gfm, the permissive default (tables, strikethrough,
	// autolinks enabled).
	Flavor string

	// KeepFrontMatter discards split points falling inside a leading
	// YAML front matter block, keeping the front matter attached to
	// the first section. Off by default: the pure boundary semantics
	// treat every positioned top-level heading as a cut.
	KeepFrontMatter bool

	// MaxLevel caps the heading levels that open sections: headings
	// deeper than MaxLevel do not split. Zero means no cap (levels
	// 1-6 all split).
	MaxLevel int
}

// DefaultOptions returns the default splitter options: GFM flavor, no
// front matter guard, no level cap.
func DefaultOptions() *Options {
	return &Options{
		Flavor:          FlavorGFM,
		KeepFrontMatter: false,
		MaxLevel:        0,
	}
}

// normalized returns a copy of opts with defaults applied. A nil opts
// yields DefaultOptions.
func (o *Options) normalized() *Options {
	if o == nil {
		return DefaultOptions()
	}

	out := *o
	if out.Flavor == "" {
		out.Flavor = FlavorGFM
	}
	if out.MaxLevel < 0 {
		out.MaxLevel = 0
	}
	return &out
}

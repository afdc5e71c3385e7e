package configloader

import "github.com/yaklabco/mdsplit/pkg/config"

// Overlay is a partial configuration in which every scalar is a
// pointer. A nil field means "not set here" and leaves the value from a
// lower-precedence source intact; this is what lets a config file or
// flag set front_matter to false even though the default is true.
type Overlay struct {
	Flavor      *config.Flavor `yaml:"flavor"`
	FrontMatter *bool          `yaml:"front_matter"`
	MaxLevel    *int           `yaml:"max_level"`
	Output      OutputOverlay  `yaml:"output"`
	Files       FilesOverlay   `yaml:"files"`
	Jobs        *int           `yaml:"jobs"`
}

// OutputOverlay holds partial output settings.
type OutputOverlay struct {
	Format *config.OutputFormat `yaml:"format"`
	Color  *config.ColorMode    `yaml:"color"`
}

// FilesOverlay holds partial file discovery settings.
// Slices replace the base value entirely when non-nil.
type FilesOverlay struct {
	Extensions     []string `yaml:"extensions"`
	Include        []string `yaml:"include"`
	Exclude        []string `yaml:"exclude"`
	FollowSymlinks *bool    `yaml:"follow_symlinks"`
}

// apply writes the overlay's set fields onto cfg.
func apply(cfg *config.Config, o *Overlay) {
	if cfg == nil || o == nil {
		return
	}

	if o.Flavor != nil {
		cfg.Flavor = *o.Flavor
	}
	if o.FrontMatter != nil {
		cfg.FrontMatter = *o.FrontMatter
	}
	if o.MaxLevel != nil {
		cfg.MaxLevel = *o.MaxLevel
	}
	if o.Jobs != nil {
		cfg.Jobs = *o.Jobs
	}

	if o.Output.Format != nil {
		cfg.Output.Format = *o.Output.Format
	}
	if o.Output.Color != nil {
		cfg.Output.Color = *o.Output.Color
	}

	if o.Files.Extensions != nil {
		cfg.Files.Extensions = o.Files.Extensions
	}
	if o.Files.Include != nil {
		cfg.Files.Include = o.Files.Include
	}
	if o.Files.Exclude != nil {
		cfg.Files.Exclude = o.Files.Exclude
	}
	if o.Files.FollowSymlinks != nil {
		cfg.Files.FollowSymlinks = *o.Files.FollowSymlinks
	}
}

// ApplyAll applies overlays in order, with later overlays taking
// precedence over earlier ones.
func ApplyAll(cfg *config.Config, overlays ...*Overlay) {
	for _, o := range overlays {
		apply(cfg, o)
	}
}

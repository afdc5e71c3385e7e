package config

// GenerateTemplate creates a starter configuration file with every
// setting documented, most of them commented out at their defaults.
func GenerateTemplate() []byte {
	return []byte(`# mdsplit configuration
# See: https://github.com/yaklabco/mdsplit

# Markdown flavor: gfm or commonmark
flavor: gfm

# Keep a leading YAML front matter block attached to the first section
front_matter: true

# Cap on heading levels that open sections (0 = split at levels 1-6)
max_level: 0

# Output settings
output:
  # Format: text, json, table, or summary
  format: text
  # Color: auto, always, or never
  color: auto

# File discovery
files:
  extensions: [.md, .markdown, .mdown]
  # include: []
  exclude:
    - "**/node_modules/**"
    - "**/vendor/**"
  follow_symlinks: false

# Number of parallel workers (0 = number of CPUs)
jobs: 0
`)
}

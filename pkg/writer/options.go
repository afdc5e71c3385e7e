// Package writer emits section files for split documents: one output
// directory per input file, one numbered Markdown file per section,
// written atomically. Check mode compares expected output against what
// is on disk instead of writing.
package writer

import (
	"os"

	"github.com/yaklabco/mdsplit/pkg/fsutil"
)

// dirMode is the permission mode for created output directories.
const dirMode os.FileMode = 0755

// Options controls section file output.
type Options struct {
	// OutDir is the root output directory. Each input file gets a
	// subdirectory named after its stem.
	OutDir string

	// Mode is the permission mode for written section files.
	// Zero means fsutil.DefaultFileMode.
	Mode os.FileMode

	// Backup controls backups of existing section files that are about
	// to be overwritten with different content.
	Backup fsutil.BackupConfig
}
